package cache

import (
	"context"

	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// GetExercise returns the exercise with the given id, or ErrNotFound.
func (c *Cache) GetExercise(ctx context.Context, id domain.ExerciseID) (domain.Exercise, error) {
	var exercise domain.Exercise
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		exercise, err = selectDocument[domain.Exercise](ctx, tx, "exercises", id.String())
		return err
	})
	return exercise, err
}

// ReadExercises lists all exercises.
func (c *Cache) ReadExercises(ctx context.Context) ([]domain.Exercise, error) {
	var result []domain.Exercise
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		result, err = selectDocuments[domain.Exercise](ctx, tx, "exercises")
		return err
	})
	return result, err
}

// AddExercise inserts a new exercise. A second exercise with the same id
// fails with ErrConflict.
func (c *Cache) AddExercise(ctx context.Context, exercise domain.Exercise) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return insertDocument(ctx, tx, "exercises", exercise.ID.String(), exercise)
	})
}

// PutExercise upserts an exercise by id.
func (c *Cache) PutExercise(ctx context.Context, exercise domain.Exercise) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return upsertDocument(ctx, tx, "exercises", exercise.ID.String(), exercise)
	})
}

// ReplaceAllExercises overwrites the whole collection in one transaction.
func (c *Cache) ReplaceAllExercises(ctx context.Context, exercises []domain.Exercise) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearTable(ctx, tx, "exercises"); err != nil {
			return err
		}
		for _, e := range exercises {
			if err := upsertDocument(ctx, tx, "exercises", e.ID.String(), e); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteExercise removes the exercise with the given id, if any.
func (c *Cache) DeleteExercise(ctx context.Context, id domain.ExerciseID) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "exercises", "id", id.String())
	})
}
