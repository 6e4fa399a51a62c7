package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// Body-fat entries carry seven optional skinfold measurements, so they are
// stored as JSON documents keyed by date rather than as columns.

// GetBodyFat returns the entry for the given date, or ErrNotFound.
func (c *Cache) GetBodyFat(ctx context.Context, date domain.Date) (domain.BodyFat, error) {
	var bf domain.BodyFat
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var doc string
		row := tx.QueryRowContext(ctx,
			`SELECT document FROM body_fat WHERE date = ?`, date.String())
		if err := row.Scan(&doc); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("body fat %s: %w", date, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to select body fat: %w", err)
		}
		if err := json.Unmarshal([]byte(doc), &bf); err != nil {
			return fmt.Errorf("failed to decode body fat document: %w", err)
		}
		return nil
	})
	return bf, err
}

// ReadBodyFat lists all entries ordered by date.
func (c *Cache) ReadBodyFat(ctx context.Context) ([]domain.BodyFat, error) {
	var result []domain.BodyFat
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT document FROM body_fat ORDER BY date`)
		if err != nil {
			return fmt.Errorf("failed to select body fat: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var doc string
			if err := rows.Scan(&doc); err != nil {
				return err
			}
			var bf domain.BodyFat
			if err := json.Unmarshal([]byte(doc), &bf); err != nil {
				return fmt.Errorf("failed to decode body fat document: %w", err)
			}
			result = append(result, bf)
		}
		return rows.Err()
	})
	return result, err
}

// AddBodyFat inserts a new entry. A second entry for the same date fails
// with ErrConflict.
func (c *Cache) AddBodyFat(ctx context.Context, bodyFat domain.BodyFat) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var count int
		row := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM body_fat WHERE date = ?`, bodyFat.Date.String())
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("failed to select body fat: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("body fat %s: %w", bodyFat.Date, domain.ErrConflict)
		}
		return putBodyFat(ctx, tx, bodyFat)
	})
}

// PutBodyFat upserts an entry by date.
func (c *Cache) PutBodyFat(ctx context.Context, bodyFat domain.BodyFat) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return putBodyFat(ctx, tx, bodyFat)
	})
}

// ReplaceAllBodyFat overwrites the whole collection in one transaction.
func (c *Cache) ReplaceAllBodyFat(ctx context.Context, bodyFat []domain.BodyFat) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearTable(ctx, tx, "body_fat"); err != nil {
			return err
		}
		for _, bf := range bodyFat {
			if err := putBodyFat(ctx, tx, bf); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteBodyFat removes the entry for the given date, if any.
func (c *Cache) DeleteBodyFat(ctx context.Context, date domain.Date) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "body_fat", "date", date.String())
	})
}

func putBodyFat(ctx context.Context, tx dbx.DBTX, bodyFat domain.BodyFat) error {
	doc, err := json.Marshal(bodyFat)
	if err != nil {
		return fmt.Errorf("failed to encode body fat document: %w", err)
	}
	query := `INSERT INTO body_fat (date, document) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET document = excluded.document`
	if _, err := tx.ExecContext(ctx, query, bodyFat.Date.String(), string(doc)); err != nil {
		return fmt.Errorf("failed to upsert body fat: %w", err)
	}
	return nil
}
