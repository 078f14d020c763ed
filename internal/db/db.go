package db

import (
	"database/sql"
	"fmt"

	"github.com/bagdasarian/member-directory/internal/config"
	"github.com/bagdasarian/member-directory/internal/domain"
	_ "modernc.org/sqlite"
)

// Одна таблица members, ключ id выдается движком автоинкрементом.
const schema = `
CREATE TABLE IF NOT EXISTS members (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL,
	position TEXT NOT NULL,
	birthday TEXT NOT NULL,
	nickname TEXT NOT NULL
);
`

// NewSQLite открывает локальный файл хранилища и инициализирует схему.
// Повторные вызовы идемпотентны.
func NewSQLite(cfg *config.Config) (*sql.DB, error) {
	dsn := cfg.Storage.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, domain.NewStorageUnavailableError(err)
	}

	if err := database.Ping(); err != nil {
		_ = database.Close()
		return nil, domain.NewStorageUnavailableError(err)
	}

	if _, err := database.Exec(schema); err != nil {
		_ = database.Close()
		return nil, domain.NewStorageUnavailableError(err)
	}

	return database, nil
}

func MustLoad(cfg *config.Config) *sql.DB {
	database, err := NewSQLite(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to open storage: %v", err))
	}
	return database
}
