package repository

import (
	"context"

	"github.com/bagdasarian/member-directory/internal/domain"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *domain.Member) error
	ListAll(ctx context.Context) ([]*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int64) error
}
