package db

import (
	"context"
	_ "embed"
	"fmt"
)

var (
	//go:embed schema.sql
	schemaSQL string

	//go:embed seed.sql
	seedSQL string
)

// Migrate creates the tables if they are missing. With seed set, the
// sample categories and questions are loaded into an empty database.
func Migrate(ctx context.Context, db DBTX, seed bool) (seeded bool, err error) {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return false, fmt.Errorf("apply schema: %w", err)
	}
	if !seed {
		return false, nil
	}

	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	if _, err := db.Exec(ctx, seedSQL); err != nil {
		return false, fmt.Errorf("apply seed data: %w", err)
	}
	return true, nil
}
