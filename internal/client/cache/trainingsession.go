package cache

import (
	"context"

	"github.com/treiher/valens-client/internal/dbx"
	"github.com/treiher/valens-client/internal/domain"
)

// GetTrainingSession returns the training session with the given id, or
// ErrNotFound.
func (c *Cache) GetTrainingSession(ctx context.Context, id domain.TrainingSessionID) (domain.TrainingSession, error) {
	var trainingSession domain.TrainingSession
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		trainingSession, err = selectDocument[domain.TrainingSession](ctx, tx, "training_sessions", id.String())
		return err
	})
	return trainingSession, err
}

// ReadTrainingSessions lists all training sessions.
func (c *Cache) ReadTrainingSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	var result []domain.TrainingSession
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		result, err = selectDocuments[domain.TrainingSession](ctx, tx, "training_sessions")
		return err
	})
	return result, err
}

// AddTrainingSession inserts a new training session. A second one with the
// same id fails with ErrConflict.
func (c *Cache) AddTrainingSession(ctx context.Context, trainingSession domain.TrainingSession) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return insertDocument(ctx, tx, "training_sessions", trainingSession.ID.String(), trainingSession)
	})
}

// PutTrainingSession upserts a training session by id.
func (c *Cache) PutTrainingSession(ctx context.Context, trainingSession domain.TrainingSession) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return upsertDocument(ctx, tx, "training_sessions", trainingSession.ID.String(), trainingSession)
	})
}

// ReplaceAllTrainingSessions overwrites the whole collection in one
// transaction.
func (c *Cache) ReplaceAllTrainingSessions(ctx context.Context, trainingSessions []domain.TrainingSession) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearTable(ctx, tx, "training_sessions"); err != nil {
			return err
		}
		for _, ts := range trainingSessions {
			if err := upsertDocument(ctx, tx, "training_sessions", ts.ID.String(), ts); err != nil {
				return err
			}
		}
		return nil
	})
}

// ModifyTrainingSession applies a partial update: nil arguments leave the
// corresponding field untouched. The read and the write share one
// transaction.
func (c *Cache) ModifyTrainingSession(ctx context.Context, id domain.TrainingSessionID, notes *string, elements domain.TrainingSessionElements) (domain.TrainingSession, error) {
	var trainingSession domain.TrainingSession
	err := c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		trainingSession, err = selectDocument[domain.TrainingSession](ctx, tx, "training_sessions", id.String())
		if err != nil {
			return err
		}
		if notes != nil {
			trainingSession.Notes = *notes
		}
		if elements != nil {
			trainingSession.Elements = elements
		}
		return upsertDocument(ctx, tx, "training_sessions", id.String(), trainingSession)
	})
	return trainingSession, err
}

// DeleteTrainingSession removes the training session with the given id, if
// any.
func (c *Cache) DeleteTrainingSession(ctx context.Context, id domain.TrainingSessionID) error {
	return c.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return deleteRow(ctx, tx, "training_sessions", "id", id.String())
	})
}
