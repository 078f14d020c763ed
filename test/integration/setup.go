//go:build integration
// +build integration

package integration

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/bagdasarian/member-directory/internal/config"
	"github.com/bagdasarian/member-directory/internal/db"
	"github.com/stretchr/testify/require"
)

// setupTestDB открывает настоящее файловое хранилище во временном каталоге
func setupTestDB(t *testing.T) *sql.DB {
	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(t.TempDir(), "members.db")

	database, err := db.NewSQLite(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
