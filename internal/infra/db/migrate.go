package db

import (
	"context"
	"database/sql"
)

// MigrateUp creates the news and categories tables and their indexes.
// Statements are idempotent.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS categories (
    id            TEXT PRIMARY KEY,
    category_name TEXT NOT NULL
)`); err != nil {
		return err
	}

	// category_id is a plain reference: dangling ids are legal and read
	// back with no expanded category.
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS news (
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL,
    author        TEXT NOT NULL,
    category_id   TEXT NOT NULL,
    add_to_slider BOOLEAN NOT NULL DEFAULT FALSE,
    news_image    TEXT NOT NULL,
    added_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// listing order
		`CREATE INDEX IF NOT EXISTS idx_news_added_at ON news(added_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_news_category_id ON news(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_news_slider ON news(add_to_slider) WHERE add_to_slider = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown drops everything MigrateUp created. All stored news is lost.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_news_slider`,
		`DROP INDEX IF EXISTS idx_news_category_id`,
		`DROP INDEX IF EXISTS idx_news_added_at`,
		`DROP TABLE IF EXISTS news`,
		`DROP TABLE IF EXISTS categories`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
