package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

func (r *CachedRepository) SyncBodyFat(ctx context.Context) ([]domain.BodyFat, error) {
	return syncCollection(ctx, r, "body_fat", r.remote.ReadBodyFat, r.cache.ReplaceAllBodyFat)
}

func (r *CachedRepository) ReadBodyFat(ctx context.Context) ([]domain.BodyFat, error) {
	return r.cache.ReadBodyFat(ctx)
}

func (r *CachedRepository) CreateBodyFat(ctx context.Context, bodyFat domain.BodyFat) (domain.BodyFat, error) {
	return executeThenMirror(ctx, r, "body_fat",
		func(ctx context.Context) (domain.BodyFat, error) {
			return r.remote.CreateBodyFat(ctx, bodyFat)
		},
		r.cache.AddBodyFat,
	)
}

func (r *CachedRepository) ReplaceBodyFat(ctx context.Context, bodyFat domain.BodyFat) (domain.BodyFat, error) {
	return executeThenMirror(ctx, r, "body_fat",
		func(ctx context.Context) (domain.BodyFat, error) {
			return r.remote.ReplaceBodyFat(ctx, bodyFat)
		},
		r.cache.PutBodyFat,
	)
}

func (r *CachedRepository) DeleteBodyFat(ctx context.Context, date domain.Date) (domain.Date, error) {
	return executeThenMirror(ctx, r, "body_fat",
		func(ctx context.Context) (domain.Date, error) {
			return r.remote.DeleteBodyFat(ctx, date)
		},
		r.cache.DeleteBodyFat,
	)
}
