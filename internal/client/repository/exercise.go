package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

func (r *CachedRepository) SyncExercises(ctx context.Context) ([]domain.Exercise, error) {
	return syncCollection(ctx, r, "exercises", r.remote.ReadExercises, r.cache.ReplaceAllExercises)
}

func (r *CachedRepository) ReadExercises(ctx context.Context) ([]domain.Exercise, error) {
	return r.cache.ReadExercises(ctx)
}

// CreateExercise lets the remote service assign the id and caches exactly
// the record it returns.
func (r *CachedRepository) CreateExercise(ctx context.Context, name domain.Name, muscles []domain.ExerciseMuscle) (domain.Exercise, error) {
	return executeThenMirror(ctx, r, "exercises",
		func(ctx context.Context) (domain.Exercise, error) {
			return r.remote.CreateExercise(ctx, name, muscles)
		},
		r.cache.PutExercise,
	)
}

func (r *CachedRepository) ReplaceExercise(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	return executeThenMirror(ctx, r, "exercises",
		func(ctx context.Context) (domain.Exercise, error) {
			return r.remote.ReplaceExercise(ctx, exercise)
		},
		r.cache.PutExercise,
	)
}

func (r *CachedRepository) DeleteExercise(ctx context.Context, id domain.ExerciseID) (domain.ExerciseID, error) {
	return executeThenMirror(ctx, r, "exercises",
		func(ctx context.Context) (domain.ExerciseID, error) {
			return r.remote.DeleteExercise(ctx, id)
		},
		r.cache.DeleteExercise,
	)
}
