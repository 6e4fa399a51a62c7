package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// GetBodyWeight returns the entry for the given date, or ErrNotFound.
func (c *Cache) GetBodyWeight(ctx context.Context, date domain.Date) (domain.BodyWeight, error) {
	var bw domain.BodyWeight
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		row := tx.QueryRowContext(ctx,
			`SELECT date, weight FROM body_weight WHERE date = ?`, date.String())
		var d string
		if err := row.Scan(&d, &bw.Weight); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("body weight %s: %w", date, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to select body weight: %w", err)
		}
		parsed, err := domain.ParseDate(d)
		if err != nil {
			return err
		}
		bw.Date = parsed
		return nil
	})
	return bw, err
}

// ReadBodyWeight lists all entries ordered by date.
func (c *Cache) ReadBodyWeight(ctx context.Context) ([]domain.BodyWeight, error) {
	var result []domain.BodyWeight
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT date, weight FROM body_weight ORDER BY date`)
		if err != nil {
			return fmt.Errorf("failed to select body weight: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var d string
			var bw domain.BodyWeight
			if err := rows.Scan(&d, &bw.Weight); err != nil {
				return err
			}
			if bw.Date, err = domain.ParseDate(d); err != nil {
				return err
			}
			result = append(result, bw)
		}
		return rows.Err()
	})
	return result, err
}

// AddBodyWeight inserts a new entry. A second entry for the same date fails
// with ErrConflict.
func (c *Cache) AddBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var count int
		row := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM body_weight WHERE date = ?`, bodyWeight.Date.String())
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("failed to select body weight: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("body weight %s: %w", bodyWeight.Date, domain.ErrConflict)
		}
		return putBodyWeight(ctx, tx, bodyWeight)
	})
}

// PutBodyWeight upserts an entry by date.
func (c *Cache) PutBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return putBodyWeight(ctx, tx, bodyWeight)
	})
}

// ReplaceAllBodyWeight overwrites the whole collection in one transaction.
func (c *Cache) ReplaceAllBodyWeight(ctx context.Context, bodyWeight []domain.BodyWeight) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearTable(ctx, tx, "body_weight"); err != nil {
			return err
		}
		for _, bw := range bodyWeight {
			if err := putBodyWeight(ctx, tx, bw); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteBodyWeight removes the entry for the given date, if any.
func (c *Cache) DeleteBodyWeight(ctx context.Context, date domain.Date) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "body_weight", "date", date.String())
	})
}

func putBodyWeight(ctx context.Context, tx dbx.DBTX, bodyWeight domain.BodyWeight) error {
	query := `INSERT INTO body_weight (date, weight) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET weight = excluded.weight`
	if _, err := tx.ExecContext(ctx, query, bodyWeight.Date.String(), bodyWeight.Weight); err != nil {
		return fmt.Errorf("failed to upsert body weight: %w", err)
	}
	return nil
}
