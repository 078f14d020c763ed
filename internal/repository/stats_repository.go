package repository

import "context"

type StatsRepository interface {
	CountMembers(ctx context.Context) (int, error)
}
