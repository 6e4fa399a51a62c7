package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

func (r *CachedRepository) SyncTrainingSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	return syncCollection(ctx, r, "training_sessions", r.remote.ReadTrainingSessions, r.cache.ReplaceAllTrainingSessions)
}

func (r *CachedRepository) ReadTrainingSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	return r.cache.ReadTrainingSessions(ctx)
}

// CreateTrainingSession lets the remote service assign the id and caches
// exactly the record it returns.
func (r *CachedRepository) CreateTrainingSession(ctx context.Context, routine *domain.RoutineID, date domain.Date, notes string, elements domain.TrainingSessionElements) (domain.TrainingSession, error) {
	return executeThenMirror(ctx, r, "training_sessions",
		func(ctx context.Context) (domain.TrainingSession, error) {
			return r.remote.CreateTrainingSession(ctx, routine, date, notes, elements)
		},
		r.cache.PutTrainingSession,
	)
}

// ModifyTrainingSession mirrors the same partial update into the cache
// rather than the returned record.
func (r *CachedRepository) ModifyTrainingSession(ctx context.Context, id domain.TrainingSessionID, notes *string, elements domain.TrainingSessionElements) (domain.TrainingSession, error) {
	return executeThenMirror(ctx, r, "training_sessions",
		func(ctx context.Context) (domain.TrainingSession, error) {
			return r.remote.ModifyTrainingSession(ctx, id, notes, elements)
		},
		func(ctx context.Context, _ domain.TrainingSession) error {
			_, err := r.cache.ModifyTrainingSession(ctx, id, notes, elements)
			return err
		},
	)
}

func (r *CachedRepository) DeleteTrainingSession(ctx context.Context, id domain.TrainingSessionID) (domain.TrainingSessionID, error) {
	return executeThenMirror(ctx, r, "training_sessions",
		func(ctx context.Context) (domain.TrainingSessionID, error) {
			return r.remote.DeleteTrainingSession(ctx, id)
		},
		r.cache.DeleteTrainingSession,
	)
}
