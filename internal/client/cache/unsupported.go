package cache

import (
	"context"

	"github.com/treiher/valens-client/internal/domain"
)

// The replica never generates ids and never holds the authoritative data
// set, so server-side operations have no local rendition. Reaching one of
// these is a programming error, not a runtime condition.

func (c *Cache) RequestSession(context.Context, domain.UserID) (domain.User, error) {
	panic("RequestSession is not supported by the local cache")
}

func (c *Cache) ReadVersion(context.Context) (string, error) {
	panic("ReadVersion is not supported by the local cache")
}

func (c *Cache) ReadUsers(context.Context) ([]domain.User, error) {
	panic("ReadUsers is not supported by the local cache")
}

func (c *Cache) CreateUser(context.Context, domain.Name, domain.Sex) (domain.User, error) {
	panic("CreateUser is not supported by the local cache")
}

func (c *Cache) ReplaceUser(context.Context, domain.User) (domain.User, error) {
	panic("ReplaceUser is not supported by the local cache")
}

func (c *Cache) DeleteUser(context.Context, domain.UserID) (domain.UserID, error) {
	panic("DeleteUser is not supported by the local cache")
}

func (c *Cache) CreateExercise(context.Context, domain.Name, []domain.ExerciseMuscle) (domain.Exercise, error) {
	panic("CreateExercise is not supported by the local cache")
}

func (c *Cache) CreateRoutine(context.Context, domain.Name, domain.RoutineParts) (domain.Routine, error) {
	panic("CreateRoutine is not supported by the local cache")
}

func (c *Cache) CreateTrainingSession(context.Context, *domain.RoutineID, domain.Date, string, domain.TrainingSessionElements) (domain.TrainingSession, error) {
	panic("CreateTrainingSession is not supported by the local cache")
}

func (c *Cache) SyncBodyWeight(context.Context) ([]domain.BodyWeight, error) {
	panic("SyncBodyWeight is not supported by the local cache")
}

func (c *Cache) SyncBodyFat(context.Context) ([]domain.BodyFat, error) {
	panic("SyncBodyFat is not supported by the local cache")
}

func (c *Cache) SyncPeriod(context.Context) ([]domain.Period, error) {
	panic("SyncPeriod is not supported by the local cache")
}

func (c *Cache) SyncExercises(context.Context) ([]domain.Exercise, error) {
	panic("SyncExercises is not supported by the local cache")
}

func (c *Cache) SyncRoutines(context.Context) ([]domain.Routine, error) {
	panic("SyncRoutines is not supported by the local cache")
}

func (c *Cache) SyncTrainingSessions(context.Context) ([]domain.TrainingSession, error) {
	panic("SyncTrainingSessions is not supported by the local cache")
}
