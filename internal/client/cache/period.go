package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// GetPeriod returns the entry for the given date, or ErrNotFound.
func (c *Cache) GetPeriod(ctx context.Context, date domain.Date) (domain.Period, error) {
	var period domain.Period
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		row := tx.QueryRowContext(ctx,
			`SELECT date, intensity FROM period WHERE date = ?`, date.String())
		var d string
		var intensity uint8
		if err := row.Scan(&d, &intensity); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("period %s: %w", date, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to select period: %w", err)
		}
		parsed, err := domain.ParseDate(d)
		if err != nil {
			return err
		}
		period.Date = parsed
		period.Intensity = domain.Intensity(intensity)
		return nil
	})
	return period, err
}

// ReadPeriod lists all entries ordered by date.
func (c *Cache) ReadPeriod(ctx context.Context) ([]domain.Period, error) {
	var result []domain.Period
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT date, intensity FROM period ORDER BY date`)
		if err != nil {
			return fmt.Errorf("failed to select period: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var d string
			var intensity uint8
			if err := rows.Scan(&d, &intensity); err != nil {
				return err
			}
			var period domain.Period
			if period.Date, err = domain.ParseDate(d); err != nil {
				return err
			}
			period.Intensity = domain.Intensity(intensity)
			result = append(result, period)
		}
		return rows.Err()
	})
	return result, err
}

// AddPeriod inserts a new entry. A second entry for the same date fails
// with ErrConflict.
func (c *Cache) AddPeriod(ctx context.Context, period domain.Period) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var count int
		row := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM period WHERE date = ?`, period.Date.String())
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("failed to select period: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("period %s: %w", period.Date, domain.ErrConflict)
		}
		return putPeriod(ctx, tx, period)
	})
}

// PutPeriod upserts an entry by date.
func (c *Cache) PutPeriod(ctx context.Context, period domain.Period) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return putPeriod(ctx, tx, period)
	})
}

// ReplaceAllPeriod overwrites the whole collection in one transaction.
func (c *Cache) ReplaceAllPeriod(ctx context.Context, period []domain.Period) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearTable(ctx, tx, "period"); err != nil {
			return err
		}
		for _, p := range period {
			if err := putPeriod(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePeriod removes the entry for the given date, if any.
func (c *Cache) DeletePeriod(ctx context.Context, date domain.Date) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "period", "date", date.String())
	})
}

func putPeriod(ctx context.Context, tx dbx.DBTX, period domain.Period) error {
	query := `INSERT INTO period (date, intensity) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET intensity = excluded.intensity`
	if _, err := tx.ExecContext(ctx, query, period.Date.String(), uint8(period.Intensity)); err != nil {
		return fmt.Errorf("failed to upsert period: %w", err)
	}
	return nil
}
