package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

func (r *CachedRepository) SyncPeriod(ctx context.Context) ([]domain.Period, error) {
	return syncCollection(ctx, r, "period", r.remote.ReadPeriod, r.cache.ReplaceAllPeriod)
}

func (r *CachedRepository) ReadPeriod(ctx context.Context) ([]domain.Period, error) {
	return r.cache.ReadPeriod(ctx)
}

func (r *CachedRepository) CreatePeriod(ctx context.Context, period domain.Period) (domain.Period, error) {
	return executeThenMirror(ctx, r, "period",
		func(ctx context.Context) (domain.Period, error) {
			return r.remote.CreatePeriod(ctx, period)
		},
		r.cache.AddPeriod,
	)
}

func (r *CachedRepository) ReplacePeriod(ctx context.Context, period domain.Period) (domain.Period, error) {
	return executeThenMirror(ctx, r, "period",
		func(ctx context.Context) (domain.Period, error) {
			return r.remote.ReplacePeriod(ctx, period)
		},
		r.cache.PutPeriod,
	)
}

func (r *CachedRepository) DeletePeriod(ctx context.Context, date domain.Date) (domain.Date, error) {
	return executeThenMirror(ctx, r, "period",
		func(ctx context.Context) (domain.Date, error) {
			return r.remote.DeletePeriod(ctx, date)
		},
		r.cache.DeletePeriod,
	)
}
