package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

func (r *CachedRepository) SyncRoutines(ctx context.Context) ([]domain.Routine, error) {
	return syncCollection(ctx, r, "routines", r.remote.ReadRoutines, r.cache.ReplaceAllRoutines)
}

func (r *CachedRepository) ReadRoutines(ctx context.Context) ([]domain.Routine, error) {
	return r.cache.ReadRoutines(ctx)
}

// CreateRoutine lets the remote service assign the id and caches exactly
// the record it returns.
func (r *CachedRepository) CreateRoutine(ctx context.Context, name domain.Name, sections domain.RoutineParts) (domain.Routine, error) {
	return executeThenMirror(ctx, r, "routines",
		func(ctx context.Context) (domain.Routine, error) {
			return r.remote.CreateRoutine(ctx, name, sections)
		},
		r.cache.PutRoutine,
	)
}

// ModifyRoutine mirrors the same partial update into the cache rather than
// the returned record, so fields the server does not echo stay intact.
func (r *CachedRepository) ModifyRoutine(ctx context.Context, id domain.RoutineID, name *domain.Name, archived *bool, sections domain.RoutineParts) (domain.Routine, error) {
	return executeThenMirror(ctx, r, "routines",
		func(ctx context.Context) (domain.Routine, error) {
			return r.remote.ModifyRoutine(ctx, id, name, archived, sections)
		},
		func(ctx context.Context, _ domain.Routine) error {
			_, err := r.cache.ModifyRoutine(ctx, id, name, archived, sections)
			return err
		},
	)
}

func (r *CachedRepository) DeleteRoutine(ctx context.Context, id domain.RoutineID) (domain.RoutineID, error) {
	return executeThenMirror(ctx, r, "routines",
		func(ctx context.Context) (domain.RoutineID, error) {
			return r.remote.DeleteRoutine(ctx, id)
		},
		r.cache.DeleteRoutine,
	)
}
