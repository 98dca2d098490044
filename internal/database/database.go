package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the tables on first run so a fresh database
// works without a separate migration step.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id            uuid PRIMARY KEY,
			name          text NOT NULL,
			email         text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			created_at    timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id            uuid PRIMARY KEY,
			title         text NOT NULL,
			description   text NOT NULL,
			due_date      timestamptz NOT NULL,
			status        text NOT NULL,
			assigned_user uuid NOT NULL REFERENCES users (id),
			created_at    timestamptz NOT NULL,
			updated_at    timestamptz NOT NULL
		);`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
