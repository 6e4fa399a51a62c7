// Package repository implements domain.Repository on top of two stores: the
// authoritative remote store and the durable local cache. Writes go to the
// remote service first and are mirrored into the cache only after the remote
// service has confirmed them, so the replica may fall behind but never runs
// ahead of the server. Reads are served from the cache; Sync refreshes a
// whole cached collection from the remote snapshot.
package repository

import (
	"context"

	"github.com/treiher/valens-client/internal/client/session"
	"github.com/treiher/valens-client/internal/domain"
	"github.com/treiher/valens-client/internal/logging"
)

// RemoteStore is the remote-service surface the repository consumes.
type RemoteStore interface {
	RequestSession(ctx context.Context, userID domain.UserID) (domain.User, error)
	DeleteSession(ctx context.Context) error

	ReadVersion(ctx context.Context) (string, error)

	ReadUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, name domain.Name, sex domain.Sex) (domain.User, error)
	ReplaceUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id domain.UserID) (domain.UserID, error)

	ReadBodyWeight(ctx context.Context) ([]domain.BodyWeight, error)
	CreateBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error)
	ReplaceBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error)
	DeleteBodyWeight(ctx context.Context, date domain.Date) (domain.Date, error)

	ReadBodyFat(ctx context.Context) ([]domain.BodyFat, error)
	CreateBodyFat(ctx context.Context, bodyFat domain.BodyFat) (domain.BodyFat, error)
	ReplaceBodyFat(ctx context.Context, bodyFat domain.BodyFat) (domain.BodyFat, error)
	DeleteBodyFat(ctx context.Context, date domain.Date) (domain.Date, error)

	ReadPeriod(ctx context.Context) ([]domain.Period, error)
	CreatePeriod(ctx context.Context, period domain.Period) (domain.Period, error)
	ReplacePeriod(ctx context.Context, period domain.Period) (domain.Period, error)
	DeletePeriod(ctx context.Context, date domain.Date) (domain.Date, error)

	ReadExercises(ctx context.Context) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, name domain.Name, muscles []domain.ExerciseMuscle) (domain.Exercise, error)
	ReplaceExercise(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error)
	DeleteExercise(ctx context.Context, id domain.ExerciseID) (domain.ExerciseID, error)

	ReadRoutines(ctx context.Context) ([]domain.Routine, error)
	CreateRoutine(ctx context.Context, name domain.Name, sections domain.RoutineParts) (domain.Routine, error)
	ModifyRoutine(ctx context.Context, id domain.RoutineID, name *domain.Name, archived *bool, sections domain.RoutineParts) (domain.Routine, error)
	DeleteRoutine(ctx context.Context, id domain.RoutineID) (domain.RoutineID, error)

	ReadTrainingSessions(ctx context.Context) ([]domain.TrainingSession, error)
	CreateTrainingSession(ctx context.Context, routine *domain.RoutineID, date domain.Date, notes string, elements domain.TrainingSessionElements) (domain.TrainingSession, error)
	ModifyTrainingSession(ctx context.Context, id domain.TrainingSessionID, notes *string, elements domain.TrainingSessionElements) (domain.TrainingSession, error)
	DeleteTrainingSession(ctx context.Context, id domain.TrainingSessionID) (domain.TrainingSessionID, error)
}

// LocalCache is the replica surface the repository consumes.
type LocalCache interface {
	WriteSession(ctx context.Context, user domain.User) error
	InitializeSession(ctx context.Context) (domain.User, error)
	DeleteSession(ctx context.Context) error
	ClearSessionDependentData(ctx context.Context) error

	ReadBodyWeight(ctx context.Context) ([]domain.BodyWeight, error)
	AddBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) error
	PutBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) error
	ReplaceAllBodyWeight(ctx context.Context, bodyWeight []domain.BodyWeight) error
	DeleteBodyWeight(ctx context.Context, date domain.Date) error

	ReadBodyFat(ctx context.Context) ([]domain.BodyFat, error)
	AddBodyFat(ctx context.Context, bodyFat domain.BodyFat) error
	PutBodyFat(ctx context.Context, bodyFat domain.BodyFat) error
	ReplaceAllBodyFat(ctx context.Context, bodyFat []domain.BodyFat) error
	DeleteBodyFat(ctx context.Context, date domain.Date) error

	ReadPeriod(ctx context.Context) ([]domain.Period, error)
	AddPeriod(ctx context.Context, period domain.Period) error
	PutPeriod(ctx context.Context, period domain.Period) error
	ReplaceAllPeriod(ctx context.Context, period []domain.Period) error
	DeletePeriod(ctx context.Context, date domain.Date) error

	ReadExercises(ctx context.Context) ([]domain.Exercise, error)
	PutExercise(ctx context.Context, exercise domain.Exercise) error
	ReplaceAllExercises(ctx context.Context, exercises []domain.Exercise) error
	DeleteExercise(ctx context.Context, id domain.ExerciseID) error

	ReadRoutines(ctx context.Context) ([]domain.Routine, error)
	PutRoutine(ctx context.Context, routine domain.Routine) error
	ReplaceAllRoutines(ctx context.Context, routines []domain.Routine) error
	ModifyRoutine(ctx context.Context, id domain.RoutineID, name *domain.Name, archived *bool, sections domain.RoutineParts) (domain.Routine, error)
	DeleteRoutine(ctx context.Context, id domain.RoutineID) error

	ReadTrainingSessions(ctx context.Context) ([]domain.TrainingSession, error)
	PutTrainingSession(ctx context.Context, trainingSession domain.TrainingSession) error
	ReplaceAllTrainingSessions(ctx context.Context, trainingSessions []domain.TrainingSession) error
	ModifyTrainingSession(ctx context.Context, id domain.TrainingSessionID, notes *string, elements domain.TrainingSessionElements) (domain.TrainingSession, error)
	DeleteTrainingSession(ctx context.Context, id domain.TrainingSessionID) error
}

// CachedRepository composes the remote store and the local cache and keeps
// the session manager in step with successful session operations.
type CachedRepository struct {
	remote   RemoteStore
	cache    LocalCache
	sessions *session.Manager
	log      logging.Logger
}

var _ domain.Repository = (*CachedRepository)(nil)

// New returns a repository backed by the given stores.
func New(remote RemoteStore, cache LocalCache, sessions *session.Manager, log logging.Logger) *CachedRepository {
	return &CachedRepository{remote: remote, cache: cache, sessions: sessions, log: log}
}

// syncCollection reads the full remote collection and replaces the cached
// copy with it. A cache failure leaves the replica stale but does not fail
// the call; the remote snapshot is authoritative either way.
func syncCollection[T any](ctx context.Context, r *CachedRepository, name string,
	read func(context.Context) ([]T, error),
	replaceAll func(context.Context, []T) error,
) ([]T, error) {
	items, err := read(ctx)
	if err != nil {
		return nil, err
	}
	if err := replaceAll(ctx, items); err != nil {
		r.log.Warn(ctx, "failed to update cached collection", "collection", name, "error", err)
	}
	return items, nil
}

// executeThenMirror runs the remote mutation and, only on success, mirrors
// it into the cache. A mirror failure leaves the replica stale but never
// propagates; the remote service has already accepted the change.
func executeThenMirror[T any](ctx context.Context, r *CachedRepository, name string,
	execute func(context.Context) (T, error),
	mirror func(context.Context, T) error,
) (T, error) {
	result, err := execute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := mirror(ctx, result); err != nil {
		r.log.Warn(ctx, "failed to mirror change into cache", "collection", name, "error", err)
	}
	return result, nil
}
