package sqlite

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/member-directory/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) CountMembers(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM members
	`

	var count int
	err := r.executor.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, domain.NewReadFailedError("count members", err)
	}

	return count, nil
}
