// Package cache is the durable SQLite replica of the remote data set. It
// holds one table per collection plus a generic app store for the session
// record. The replica is written only with data the remote service has
// confirmed; it never generates ids of its own.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/treiher/valens-client/internal/client/cache/migrations"
	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// Cache is a handle to the local replica. All methods are safe for
// concurrent use; every call runs in its own transaction.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the replica at dsn and applies any
// pending schema migrations.
func Open(ctx context.Context, dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	return &Cache{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, c.db, nil, fn)
}

// The exercises, routines and training_sessions tables all share the same
// shape (id TEXT primary key, JSON document). The helpers below implement
// the store contract once for that shape; nested parts survive as documents
// without a relational mapping.

func selectDocument[T any](ctx context.Context, tx dbx.DBTX, table, id string) (T, error) {
	var result T

	var doc string
	query := fmt.Sprintf(`SELECT document FROM %s WHERE id = ?`, table)
	if err := tx.QueryRowContext(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result, fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
		}
		return result, fmt.Errorf("failed to select from %s: %w", table, err)
	}

	if err := json.Unmarshal([]byte(doc), &result); err != nil {
		return result, fmt.Errorf("failed to decode %s document: %w", table, err)
	}
	return result, nil
}

func selectDocuments[T any](ctx context.Context, tx dbx.DBTX, table string) ([]T, error) {
	query := fmt.Sprintf(`SELECT document FROM %s ORDER BY id`, table)
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", table, err)
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var item T
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", table, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func insertDocument(ctx context.Context, tx dbx.DBTX, table, id string, entity any) error {
	var count int
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE id = ?`, table)
	if err := tx.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return fmt.Errorf("failed to select from %s: %w", table, err)
	}
	if count > 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrConflict)
	}
	return upsertDocument(ctx, tx, table, id, entity)
}

func upsertDocument(ctx context.Context, tx dbx.DBTX, table, id string, entity any) error {
	doc, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", table, err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, document) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET document = excluded.document`, table)
	if _, err := tx.ExecContext(ctx, query, id, string(doc)); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", table, err)
	}
	return nil
}

func deleteRow(ctx context.Context, tx dbx.DBTX, table, keyColumn, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, keyColumn)
	if _, err := tx.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

func clearTable(ctx context.Context, tx dbx.DBTX, table string) error {
	query := fmt.Sprintf(`DELETE FROM %s`, table)
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	return nil
}
