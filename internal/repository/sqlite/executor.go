package sqlite

import (
	"context"
	"database/sql"
)

// DBExecutor покрывает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
