package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS results (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id     TEXT NOT NULL,
			type        TEXT NOT NULL,
			difficulty  TEXT NOT NULL DEFAULT '',
			winner      TEXT NOT NULL,
			player_x    TEXT NOT NULL DEFAULT '',
			player_o    TEXT NOT NULL DEFAULT '',
			finished_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS results_player_x ON results (player_x, finished_at)`,
		`CREATE INDEX IF NOT EXISTS results_player_o ON results (player_o, finished_at)`,
	}

	for _, query := range queries {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create schema: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
