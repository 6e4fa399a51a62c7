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

// The app table is a generic key/value store. The session record lives
// under a single well-known key.
const sessionKey = "session"

// WriteSession stores the session user, overwriting any previous session.
func (c *Cache) WriteSession(ctx context.Context, user domain.User) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		query := `INSERT INTO app (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
		if _, err := tx.ExecContext(ctx, query, sessionKey, string(doc)); err != nil {
			return fmt.Errorf("failed to write session: %w", err)
		}
		return nil
	})
}

// InitializeSession returns the stored session user. It fails with
// ErrNoSession when the slot is empty.
func (c *Cache) InitializeSession(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var doc string
		row := tx.QueryRowContext(ctx, `SELECT value FROM app WHERE key = ?`, sessionKey)
		if err := row.Scan(&doc); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNoSession
			}
			return fmt.Errorf("failed to read session: %w", err)
		}
		if err := json.Unmarshal([]byte(doc), &user); err != nil {
			return fmt.Errorf("failed to decode session: %w", err)
		}
		return nil
	})
	return user, err
}

// DeleteSession removes the session record. Deleting an empty slot is not
// an error.
func (c *Cache) DeleteSession(ctx context.Context) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "app", "key", sessionKey)
	})
}

// ClearAppData empties the app store. Collection tables are untouched.
func (c *Cache) ClearAppData(ctx context.Context) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return clearTable(ctx, tx, "app")
	})
}

// ClearSessionDependentData empties every collection table in one
// transaction. The app store is untouched.
func (c *Cache) ClearSessionDependentData(ctx context.Context) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{
			"body_weight", "body_fat", "period",
			"exercises", "routines", "training_sessions",
		} {
			if err := clearTable(ctx, tx, table); err != nil {
				return err
			}
		}
		return nil
	})
}
