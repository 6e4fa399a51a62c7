package cache

import (
	"context"

	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// GetRoutine returns the routine with the given id, or ErrNotFound.
func (c *Cache) GetRoutine(ctx context.Context, id domain.RoutineID) (domain.Routine, error) {
	var routine domain.Routine
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		routine, err = selectDocument[domain.Routine](ctx, tx, "routines", id.String())
		return err
	})
	return routine, err
}

// ReadRoutines lists all routines.
func (c *Cache) ReadRoutines(ctx context.Context) ([]domain.Routine, error) {
	var result []domain.Routine
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		result, err = selectDocuments[domain.Routine](ctx, tx, "routines")
		return err
	})
	return result, err
}

// AddRoutine inserts a new routine. A second routine with the same id fails
// with ErrConflict.
func (c *Cache) AddRoutine(ctx context.Context, routine domain.Routine) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return insertDocument(ctx, tx, "routines", routine.ID.String(), routine)
	})
}

// PutRoutine upserts a routine by id.
func (c *Cache) PutRoutine(ctx context.Context, routine domain.Routine) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return upsertDocument(ctx, tx, "routines", routine.ID.String(), routine)
	})
}

// ReplaceAllRoutines overwrites the whole collection in one transaction.
func (c *Cache) ReplaceAllRoutines(ctx context.Context, routines []domain.Routine) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearTable(ctx, tx, "routines"); err != nil {
			return err
		}
		for _, r := range routines {
			if err := upsertDocument(ctx, tx, "routines", r.ID.String(), r); err != nil {
				return err
			}
		}
		return nil
	})
}

// ModifyRoutine applies a partial update: nil arguments leave the
// corresponding field untouched. The read and the write share one
// transaction.
func (c *Cache) ModifyRoutine(ctx context.Context, id domain.RoutineID, name *domain.Name, archived *bool, sections domain.RoutineParts) (domain.Routine, error) {
	var routine domain.Routine
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		routine, err = selectDocument[domain.Routine](ctx, tx, "routines", id.String())
		if err != nil {
			return err
		}
		if name != nil {
			routine.Name = *name
		}
		if archived != nil {
			routine.Archived = *archived
		}
		if sections != nil {
			routine.Sections = sections
		}
		return upsertDocument(ctx, tx, "routines", id.String(), routine)
	})
	return routine, err
}

// DeleteRoutine removes the routine with the given id, if any.
func (c *Cache) DeleteRoutine(ctx context.Context, id domain.RoutineID) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "routines", "id", id.String())
	})
}
