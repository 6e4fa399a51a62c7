package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

// Users are shared between the devices of all users of one service, so they
// are never cached and every operation goes to the remote service.

func (r *CachedRepository) ReadUsers(ctx context.Context) ([]domain.User, error) {
	return r.remote.ReadUsers(ctx)
}

func (r *CachedRepository) CreateUser(ctx context.Context, name domain.Name, sex domain.Sex) (domain.User, error) {
	return r.remote.CreateUser(ctx, name, sex)
}

func (r *CachedRepository) ReplaceUser(ctx context.Context, user domain.User) (domain.User, error) {
	return r.remote.ReplaceUser(ctx, user)
}

func (r *CachedRepository) DeleteUser(ctx context.Context, id domain.UserID) (domain.UserID, error) {
	return r.remote.DeleteUser(ctx, id)
}
