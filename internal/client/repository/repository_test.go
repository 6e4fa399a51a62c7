package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treiher/valens-client/internal/client/cache"
	"github.com/treiher/valens-client/internal/client/session"
	"github.com/treiher/valens-client/internal/domain"
	"github.com/treiher/valens-client/internal/logging"
)

// fakeRemote implements only the operations a test needs; calling anything
// else panics through the embedded nil interface.
type fakeRemote struct {
	RemoteStore

	err error

	user             domain.User
	bodyWeight       []domain.BodyWeight
	routine          domain.Routine
	deleteSessionErr error

	readBodyWeightCalls int
}

func (f *fakeRemote) RequestSession(ctx context.Context, userID domain.UserID) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	return f.user, nil
}

func (f *fakeRemote) DeleteSession(ctx context.Context) error {
	return f.deleteSessionErr
}

func (f *fakeRemote) ReadBodyWeight(ctx context.Context) ([]domain.BodyWeight, error) {
	f.readBodyWeightCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bodyWeight, nil
}

func (f *fakeRemote) CreateBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error) {
	if f.err != nil {
		return domain.BodyWeight{}, f.err
	}
	return bodyWeight, nil
}

func (f *fakeRemote) ReplacePeriod(ctx context.Context, period domain.Period) (domain.Period, error) {
	if f.err != nil {
		return domain.Period{}, f.err
	}
	return period, nil
}

func (f *fakeRemote) DeleteBodyWeight(ctx context.Context, date domain.Date) (domain.Date, error) {
	if f.err != nil {
		return domain.Date{}, f.err
	}
	return date, nil
}

func (f *fakeRemote) DeleteBodyFat(ctx context.Context, date domain.Date) (domain.Date, error) {
	if f.err != nil {
		return domain.Date{}, f.err
	}
	return date, nil
}

func (f *fakeRemote) CreateRoutine(ctx context.Context, name domain.Name, sections domain.RoutineParts) (domain.Routine, error) {
	if f.err != nil {
		return domain.Routine{}, f.err
	}
	return f.routine, nil
}

func (f *fakeRemote) ModifyRoutine(ctx context.Context, id domain.RoutineID, name *domain.Name, archived *bool, sections domain.RoutineParts) (domain.Routine, error) {
	if f.err != nil {
		return domain.Routine{}, f.err
	}
	routine := f.routine
	if name != nil {
		routine.Name = *name
	}
	if archived != nil {
		routine.Archived = *archived
	}
	if sections != nil {
		routine.Sections = sections
	}
	return routine, nil
}

// flakyCache delegates to a real cache but fails selected operations.
type flakyCache struct {
	LocalCache
	replaceAllErr error
	addErr        error
}

func (c *flakyCache) ReplaceAllBodyWeight(ctx context.Context, bodyWeight []domain.BodyWeight) error {
	if c.replaceAllErr != nil {
		return c.replaceAllErr
	}
	return c.LocalCache.ReplaceAllBodyWeight(ctx, bodyWeight)
}

func (c *flakyCache) AddBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) error {
	if c.addErr != nil {
		return c.addErr
	}
	return c.LocalCache.AddBodyWeight(ctx, bodyWeight)
}

type testEnv struct {
	repo     *CachedRepository
	remote   *fakeRemote
	cache    *cache.Cache
	sessions *session.Manager
	logs     *bytes.Buffer
}

func setup(t *testing.T, remote *fakeRemote) *testEnv {
	t.Helper()
	c, err := cache.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	var logs bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	sessions := session.NewManager()
	return &testEnv{
		repo:     New(remote, c, sessions, log),
		remote:   remote,
		cache:    c,
		sessions: sessions,
		logs:     &logs,
	}
}

func TestSyncReplacesCachedCollection(t *testing.T) {
	ctx := context.Background()
	snapshot := []domain.BodyWeight{
		{Date: domain.NewDate(2020, 1, 1), Weight: 79},
		{Date: domain.NewDate(2020, 1, 2), Weight: 80},
	}
	env := setup(t, &fakeRemote{bodyWeight: snapshot})

	// a stale entry that no longer exists remotely
	require.NoError(t, env.cache.AddBodyWeight(ctx, domain.BodyWeight{Date: domain.NewDate(2019, 12, 31), Weight: 85}))

	got, err := env.repo.SyncBodyWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	cached, err := env.repo.ReadBodyWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, cached)
}

func TestSyncRemoteFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{err: domain.ErrNoConnection})

	stale := domain.BodyWeight{Date: domain.NewDate(2019, 12, 31), Weight: 85}
	require.NoError(t, env.cache.AddBodyWeight(ctx, stale))

	_, err := env.repo.SyncBodyWeight(ctx)
	assert.ErrorIs(t, err, domain.ErrNoConnection)

	cached, err := env.repo.ReadBodyWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.BodyWeight{stale}, cached)
}

func TestSyncCacheFailureReturnsRemoteSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshot := []domain.BodyWeight{{Date: domain.NewDate(2020, 1, 1), Weight: 79}}
	remote := &fakeRemote{bodyWeight: snapshot}
	env := setup(t, remote)
	env.repo.cache = &flakyCache{LocalCache: env.cache, replaceAllErr: errors.New("disk full")}

	got, err := env.repo.SyncBodyWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
	assert.Contains(t, env.logs.String(), "failed to update cached collection")
}

func TestCachedReadDoesNotTouchRemote(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{err: domain.ErrNoConnection})

	bw := domain.BodyWeight{Date: domain.NewDate(2020, 1, 1), Weight: 79}
	require.NoError(t, env.cache.AddBodyWeight(ctx, bw))

	got, err := env.repo.ReadBodyWeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.BodyWeight{bw}, got)
	assert.Zero(t, env.remote.readBodyWeightCalls)
}

func TestCreateMirrorsIntoCache(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{})

	bw := domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}
	got, err := env.repo.CreateBodyWeight(ctx, bw)
	require.NoError(t, err)
	assert.Equal(t, bw, got)

	cached, err := env.cache.GetBodyWeight(ctx, bw.Date)
	require.NoError(t, err)
	assert.Equal(t, bw, cached)
}

func TestCreateRemoteFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{err: domain.ErrNoConnection})

	bw := domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}
	_, err := env.repo.CreateBodyWeight(ctx, bw)
	assert.ErrorIs(t, err, domain.ErrNoConnection)

	_, err = env.cache.GetBodyWeight(ctx, bw.Date)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateConflictRetainsOriginalEntry(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{err: domain.ErrConflict})

	original := domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}
	require.NoError(t, env.cache.AddBodyWeight(ctx, original))

	_, err := env.repo.CreateBodyWeight(ctx, domain.BodyWeight{Date: original.Date, Weight: 82})
	assert.ErrorIs(t, err, domain.ErrConflict)

	cached, err := env.cache.GetBodyWeight(ctx, original.Date)
	require.NoError(t, err)
	assert.Equal(t, original, cached)
}

func TestReplacePeriodMirrorsExactly(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{})

	date := domain.NewDate(2020, 2, 2)
	require.NoError(t, env.cache.AddPeriod(ctx, domain.Period{Date: date, Intensity: domain.IntensityLight}))

	replacement := domain.Period{Date: date, Intensity: domain.IntensityHeavy}
	got, err := env.repo.ReplacePeriod(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	cached, err := env.repo.ReadPeriod(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Period{replacement}, cached)
}

func TestCreateMirrorFailureIsNotPropagated(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{})
	env.repo.cache = &flakyCache{LocalCache: env.cache, addErr: errors.New("disk full")}

	bw := domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}
	got, err := env.repo.CreateBodyWeight(ctx, bw)
	require.NoError(t, err)
	assert.Equal(t, bw, got)
	assert.Contains(t, env.logs.String(), "failed to mirror change into cache")
}

func TestDeleteMirrorsIntoCache(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{})

	bw := domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}
	require.NoError(t, env.cache.AddBodyWeight(ctx, bw))

	got, err := env.repo.DeleteBodyWeight(ctx, bw.Date)
	require.NoError(t, err)
	assert.Equal(t, bw.Date, got)

	_, err = env.cache.GetBodyWeight(ctx, bw.Date)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAbsentEntryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{})

	date := domain.NewDate(2020, 2, 2)
	got, err := env.repo.DeleteBodyFat(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, date, got)

	cached, err := env.cache.ReadBodyFat(ctx)
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestCreateRoutineCachesServerAssignedID(t *testing.T) {
	ctx := context.Background()
	name, err := domain.NewName("Push Day")
	require.NoError(t, err)
	assigned := domain.Routine{ID: domain.RoutineID{UUID: uuid.New()}, Name: name}
	env := setup(t, &fakeRemote{routine: assigned})

	got, err := env.repo.CreateRoutine(ctx, name, nil)
	require.NoError(t, err)
	assert.Equal(t, assigned.ID, got.ID)

	cached, err := env.cache.GetRoutine(ctx, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, assigned, cached)
}

func TestModifyRoutineMirrorsPartialUpdate(t *testing.T) {
	ctx := context.Background()
	name, err := domain.NewName("Push Day")
	require.NoError(t, err)
	routine := domain.Routine{ID: domain.RoutineID{UUID: uuid.New()}, Name: name}
	env := setup(t, &fakeRemote{routine: routine})

	require.NoError(t, env.cache.PutRoutine(ctx, routine))

	archived := true
	got, err := env.repo.ModifyRoutine(ctx, routine.ID, nil, &archived, nil)
	require.NoError(t, err)
	assert.True(t, got.Archived)

	cached, err := env.cache.GetRoutine(ctx, routine.ID)
	require.NoError(t, err)
	assert.True(t, cached.Archived)
	assert.Equal(t, routine.Name, cached.Name)
}

func TestRequestSessionActivatesAndMirrors(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: domain.UserID{UUID: uuid.New()}, Name: "Alice"}
	env := setup(t, &fakeRemote{user: user})

	got, err := env.repo.RequestSession(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	current, active := env.sessions.Current()
	assert.True(t, active)
	assert.Equal(t, user, current)

	cached, err := env.cache.InitializeSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, cached)
}

func TestRequestSessionFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{err: domain.ErrNoConnection})

	_, err := env.repo.RequestSession(ctx, domain.UserID{UUID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNoConnection)

	_, active := env.sessions.Current()
	assert.False(t, active)
	_, err = env.cache.InitializeSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestInitializeSessionResumesFromCache(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: domain.UserID{UUID: uuid.New()}, Name: "Alice"}
	env := setup(t, &fakeRemote{err: domain.ErrNoConnection})

	require.NoError(t, env.cache.WriteSession(ctx, user))

	got, err := env.repo.InitializeSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	current, active := env.sessions.Current()
	assert.True(t, active)
	assert.Equal(t, user, current)
}

func TestInitializeSessionWithoutCachedSession(t *testing.T) {
	ctx := context.Background()
	env := setup(t, &fakeRemote{})

	_, err := env.repo.InitializeSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, active := env.sessions.Current()
	assert.False(t, active)
}

func TestDeleteSessionClearsSessionDependentData(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: domain.UserID{UUID: uuid.New()}, Name: "Alice"}
	env := setup(t, &fakeRemote{user: user})

	_, err := env.repo.RequestSession(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, env.cache.AddBodyWeight(ctx, domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}))

	require.NoError(t, env.repo.DeleteSession(ctx))

	_, active := env.sessions.Current()
	assert.False(t, active)
	_, err = env.cache.InitializeSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
	cached, err := env.cache.ReadBodyWeight(ctx)
	require.NoError(t, err)
	assert.Empty(t, cached)
}

func TestDeleteSessionRemoteFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: domain.UserID{UUID: uuid.New()}, Name: "Alice"}
	env := setup(t, &fakeRemote{user: user, deleteSessionErr: domain.ErrNoConnection})

	_, err := env.repo.RequestSession(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, env.cache.AddBodyWeight(ctx, domain.BodyWeight{Date: domain.NewDate(2020, 2, 2), Weight: 80}))

	err = env.repo.DeleteSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoConnection)

	_, active := env.sessions.Current()
	assert.True(t, active)
	cached, err := env.cache.ReadBodyWeight(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}
