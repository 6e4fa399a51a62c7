package domain

import "context"

// The repository interfaces are implemented twice: by the remote store
// (authoritative, network-backed) and by the local cache (durable replica),
// and once more by the cached repository that composes the two. Sync reads
// the full remote collection and replaces the cached copy; Read serves the
// cached copy without touching the network.

// SessionRepository manages the singleton session of the authenticated user.
type SessionRepository interface {
	// RequestSession authenticates against the remote service. It requires
	// network connectivity; there is no cache fallback.
	RequestSession(ctx context.Context, userID UserID) (User, error)

	// InitializeSession resumes a previously established session from the
	// cache without a network call. It fails with ErrNoSession if no
	// session is cached.
	InitializeSession(ctx context.Context) (User, error)

	// DeleteSession logs out and invalidates all session-scoped cached data.
	DeleteSession(ctx context.Context) error
}

// VersionRepository reports the version of the remote service.
type VersionRepository interface {
	ReadVersion(ctx context.Context) (string, error)
}

// UserRepository manages users. Users are remote-authoritative and never
// cached outside the session slot.
type UserRepository interface {
	ReadUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, name Name, sex Sex) (User, error)
	ReplaceUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, id UserID) (UserID, error)
}

// BodyWeightRepository manages body-weight entries keyed by date.
type BodyWeightRepository interface {
	SyncBodyWeight(ctx context.Context) ([]BodyWeight, error)
	ReadBodyWeight(ctx context.Context) ([]BodyWeight, error)
	CreateBodyWeight(ctx context.Context, bodyWeight BodyWeight) (BodyWeight, error)
	ReplaceBodyWeight(ctx context.Context, bodyWeight BodyWeight) (BodyWeight, error)
	DeleteBodyWeight(ctx context.Context, date Date) (Date, error)
}

// BodyFatRepository manages body-fat entries keyed by date.
type BodyFatRepository interface {
	SyncBodyFat(ctx context.Context) ([]BodyFat, error)
	ReadBodyFat(ctx context.Context) ([]BodyFat, error)
	CreateBodyFat(ctx context.Context, bodyFat BodyFat) (BodyFat, error)
	ReplaceBodyFat(ctx context.Context, bodyFat BodyFat) (BodyFat, error)
	DeleteBodyFat(ctx context.Context, date Date) (Date, error)
}

// PeriodRepository manages period entries keyed by date.
type PeriodRepository interface {
	SyncPeriod(ctx context.Context) ([]Period, error)
	ReadPeriod(ctx context.Context) ([]Period, error)
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	ReplacePeriod(ctx context.Context, period Period) (Period, error)
	DeletePeriod(ctx context.Context, date Date) (Date, error)
}

// ExerciseRepository manages exercises. Ids are assigned by the remote
// service on create.
type ExerciseRepository interface {
	SyncExercises(ctx context.Context) ([]Exercise, error)
	ReadExercises(ctx context.Context) ([]Exercise, error)
	CreateExercise(ctx context.Context, name Name, muscles []ExerciseMuscle) (Exercise, error)
	ReplaceExercise(ctx context.Context, exercise Exercise) (Exercise, error)
	DeleteExercise(ctx context.Context, id ExerciseID) (ExerciseID, error)
}

// RoutineRepository manages routines. Modify is a partial update: nil
// arguments leave the corresponding field untouched.
type RoutineRepository interface {
	SyncRoutines(ctx context.Context) ([]Routine, error)
	ReadRoutines(ctx context.Context) ([]Routine, error)
	CreateRoutine(ctx context.Context, name Name, sections RoutineParts) (Routine, error)
	ModifyRoutine(ctx context.Context, id RoutineID, name *Name, archived *bool, sections RoutineParts) (Routine, error)
	DeleteRoutine(ctx context.Context, id RoutineID) (RoutineID, error)
}

// TrainingSessionRepository manages training sessions. Modify is a partial
// update: nil arguments leave the corresponding field untouched.
type TrainingSessionRepository interface {
	SyncTrainingSessions(ctx context.Context) ([]TrainingSession, error)
	ReadTrainingSessions(ctx context.Context) ([]TrainingSession, error)
	CreateTrainingSession(ctx context.Context, routine *RoutineID, date Date, notes string, elements TrainingSessionElements) (TrainingSession, error)
	ModifyTrainingSession(ctx context.Context, id TrainingSessionID, notes *string, elements TrainingSessionElements) (TrainingSession, error)
	DeleteTrainingSession(ctx context.Context, id TrainingSessionID) (TrainingSessionID, error)
}

// Repository is the full surface consumed by application logic.
type Repository interface {
	SessionRepository
	VersionRepository
	UserRepository
	BodyWeightRepository
	BodyFatRepository
	PeriodRepository
	ExerciseRepository
	RoutineRepository
	TrainingSessionRepository
}
