package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

// RequestSession authenticates against the remote service. On success the
// session is mirrored into the cache so it can be resumed offline later.
func (r *CachedRepository) RequestSession(ctx context.Context, userID domain.UserID) (domain.User, error) {
	user, err := r.remote.RequestSession(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if err := r.cache.WriteSession(ctx, user); err != nil {
		r.log.Warn(ctx, "failed to mirror session into cache", "error", err)
	}
	r.sessions.Activate(user)
	return user, nil
}

// InitializeSession resumes the cached session without a network call.
func (r *CachedRepository) InitializeSession(ctx context.Context) (domain.User, error) {
	user, err := r.cache.InitializeSession(ctx)
	if err != nil {
		return domain.User{}, err
	}
	r.sessions.Activate(user)
	return user, nil
}

// DeleteSession logs out remotely, then drops the cached session and all
// session-dependent cached data. The cascade failures leave stale local
// data behind but the logout itself has already succeeded.
func (r *CachedRepository) DeleteSession(ctx context.Context) error {
	if err := r.remote.DeleteSession(ctx); err != nil {
		return err
	}
	if err := r.cache.DeleteSession(ctx); err != nil {
		r.log.Warn(ctx, "failed to delete cached session", "error", err)
	}
	if err := r.cache.ClearSessionDependentData(ctx); err != nil {
		r.log.Warn(ctx, "failed to clear session-dependent cached data", "error", err)
	}
	r.sessions.Deactivate()
	return nil
}

// ReadVersion reports the remote service version. It doubles as a
// connectivity probe and has no cache path.
func (r *CachedRepository) ReadVersion(ctx context.Context) (string, error) {
	return r.remote.ReadVersion(ctx)
}
