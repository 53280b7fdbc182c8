package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/client/storage"
	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

var (
	testOwner = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	testWall  = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	syncedAt  = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEnv собирает моки обеих сторон поверх срезов узлов
type fakeEnv struct {
	remote   *RemoteMock
	local    *storage.CountableStorageMock
	metadata *storage.MetadataStorageMock
	server   []models.Countable
	cache    []models.Countable
	lastSync time.Time
}

func newFakeEnv(server, cache []models.Countable) *fakeEnv {
	env := &fakeEnv{server: server, cache: cache}

	env.remote = &RemoteMock{
		GetOwnerCountablesFunc: func(ctx context.Context, owner uuid.UUID) ([]models.Countable, error) {
			return env.server, nil
		},
		SaveCountablesFunc: func(ctx context.Context, owner uuid.UUID, nodes []models.Countable) error {
			env.server = nodes
			return nil
		},
	}
	env.local = &storage.CountableStorageMock{
		GetAllCountablesFunc: func(ctx context.Context) ([]models.Countable, error) {
			return env.cache, nil
		},
		ReplaceAllFunc: func(ctx context.Context, nodes []models.Countable) error {
			env.cache = nodes
			return nil
		},
	}
	env.metadata = &storage.MetadataStorageMock{
		GetLastSyncTimeFunc: func(ctx context.Context) (time.Time, error) {
			return env.lastSync, nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, t time.Time) error {
			env.lastSync = t
			return nil
		},
	}

	return env
}

func (env *fakeEnv) service() *service {
	svc := NewService(env.remote, env.local, env.metadata, testLogger()).(*service)
	svc.now = func() time.Time { return syncedAt }
	return svc
}

func findNode(t *testing.T, nodes []models.Countable, id models.CountableID) models.Countable {
	t.Helper()
	for _, c := range nodes {
		if c.ID() == id {
			return c
		}
	}
	require.Failf(t, "node not found", "%s", id)
	return models.Countable{}
}

func newPhase(name string, parent models.CountableID, created time.Time, count int32) *models.Phase {
	p := models.NewPhase(name, testOwner, parent, created)
	p.Count = count
	return p
}

func TestNewService(t *testing.T) {
	env := newFakeEnv(nil, nil)
	logger := testLogger()

	svc, ok := NewService(env.remote, env.local, env.metadata, logger).(*service)
	require.True(t, ok)
	assert.Equal(t, env.remote, svc.remote)
	assert.Equal(t, env.local, svc.localStorage)
	assert.Equal(t, env.metadata, svc.metadataStorage)
	assert.Equal(t, logger, svc.logger)
	assert.NotNil(t, svc.now)
}

func TestSync_EmptyLocal_EmptyServer(t *testing.T) {
	env := newFakeEnv(nil, nil)

	result, err := env.service().Sync(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, &SyncResult{}, result)

	require.Len(t, env.remote.SaveCountablesCalls(), 1)
	assert.Equal(t, testOwner, env.remote.SaveCountablesCalls()[0].Owner)
	assert.Empty(t, env.server)
	assert.Empty(t, env.cache)
	assert.Equal(t, syncedAt, env.lastSync)
}

func TestSync_FirstSyncPushesLocalTree(t *testing.T) {
	counter := models.NewCounter("C", testOwner, nil, testWall)
	phase := newPhase("P1", counter.ID, testWall.Add(time.Minute), 12)
	counter.Children = []models.CountableID{phase.ID}
	cache := []models.Countable{models.FromCounter(counter), models.FromPhase(phase)}

	env := newFakeEnv(nil, cache)

	result, err := env.service().Sync(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Pulled)
	assert.Equal(t, 2, result.Local)
	assert.Equal(t, 2, result.Stored)

	assert.ElementsMatch(t, cache, env.server)
	assert.Equal(t, env.server, env.cache)
}

func TestSync_OfflineClientAndServer(t *testing.T) {
	// сервер переименовал счетчик, клиент офлайн добавил фазу
	serverCounter := models.NewCounter("renamed", testOwner, nil, testWall)
	serverCounter.LastEdit = testWall.Add(10 * time.Minute)
	p1 := newPhase("P1", serverCounter.ID, testWall.Add(time.Minute), 10)

	localCounter := serverCounter.Clone()
	localCounter.Name = "C"
	localCounter.LastEdit = testWall
	p3 := newPhase("P3", serverCounter.ID, testWall.Add(5*time.Minute), 7)
	localCounter.Children = []models.CountableID{p1.ID, p3.ID}

	env := newFakeEnv(
		[]models.Countable{models.FromCounter(serverCounter), models.FromPhase(p1)},
		[]models.Countable{models.FromCounter(localCounter), models.FromPhase(p1.Clone()), models.FromPhase(p3)},
	)

	result, err := env.service().Sync(context.Background(), testOwner)
	require.NoError(t, err)

	wantMerge := countable.MergeResult{Added: 1, Replaced: 1, Kept: 1, Relinked: 1}
	assert.Equal(t, wantMerge, result.MergeResult)
	assert.Equal(t, 2, result.Pulled)
	assert.Equal(t, 3, result.Local)
	assert.Equal(t, 3, result.Stored)
	assert.Zero(t, result.Orphaned)

	stored := findNode(t, env.cache, serverCounter.ID)
	assert.Equal(t, "renamed", stored.Counter.Name)
	assert.Equal(t, []models.CountableID{p1.ID, p3.ID}, stored.Counter.Children)
	assert.Equal(t, env.server, env.cache)

	tree, err := countable.FromNodes(testOwner, env.cache)
	require.NoError(t, err)
	total, err := tree.Recursive().Count(serverCounter.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(17), total)
}

func TestSync_ReplacedCounterKeepsServerOnlyChildren(t *testing.T) {
	counter := models.NewCounter("C", testOwner, nil, testWall)
	p1 := newPhase("P1", counter.ID, testWall.Add(time.Minute), 1)
	p2 := newPhase("P2", counter.ID, testWall.Add(2*time.Minute), 5)

	// локально счетчик переименован позже, но фазу P2 клиент не видел
	localCounter := counter.Clone()
	localCounter.Name = "local rename"
	localCounter.LastEdit = testWall.Add(30 * time.Minute)
	localCounter.Children = []models.CountableID{p1.ID}

	env := newFakeEnv(
		[]models.Countable{models.FromCounter(counter), models.FromPhase(p1), models.FromPhase(p2)},
		[]models.Countable{models.FromCounter(localCounter), models.FromPhase(p1.Clone())},
	)

	result, err := env.service().Sync(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, countable.MergeResult{Replaced: 2}, result.MergeResult)

	stored := findNode(t, env.cache, counter.ID)
	assert.Equal(t, "local rename", stored.Counter.Name)
	assert.Equal(t, []models.CountableID{p1.ID, p2.ID}, stored.Counter.Children)
}

func TestSync_DropsOrphans(t *testing.T) {
	orphan := newPhase("orphan", models.NewCountableID(), testWall, 3)
	env := newFakeEnv(nil, []models.Countable{models.FromPhase(orphan)})

	result, err := env.service().Sync(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Orphaned)
	assert.Zero(t, result.Stored)
	assert.Empty(t, env.cache)
}

func TestSync_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		setup         func(env *fakeEnv)
		name          string
		wantReplaced  bool
		wantLastSaved bool
	}{
		{
			name: "fetch fails",
			setup: func(env *fakeEnv) {
				env.remote.GetOwnerCountablesFunc = func(ctx context.Context, owner uuid.UUID) ([]models.Countable, error) {
					return nil, boom
				}
			},
		},
		{
			name: "local load fails",
			setup: func(env *fakeEnv) {
				env.local.GetAllCountablesFunc = func(ctx context.Context) ([]models.Countable, error) {
					return nil, boom
				}
			},
		},
		{
			name: "push fails",
			setup: func(env *fakeEnv) {
				env.remote.SaveCountablesFunc = func(ctx context.Context, owner uuid.UUID, nodes []models.Countable) error {
					return boom
				}
			},
		},
		{
			name: "local store fails",
			setup: func(env *fakeEnv) {
				env.local.ReplaceAllFunc = func(ctx context.Context, nodes []models.Countable) error {
					return boom
				}
			},
			wantReplaced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv(nil, nil)
			tt.setup(env)

			result, err := env.service().Sync(context.Background(), testOwner)
			assert.ErrorIs(t, err, boom)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantReplaced, len(env.local.ReplaceAllCalls()) > 0)
			assert.Empty(t, env.metadata.SaveLastSyncTimeCalls())
		})
	}
}

func TestSync_SaveLastSyncTimeFailureIsNotFatal(t *testing.T) {
	env := newFakeEnv(nil, nil)
	env.metadata.SaveLastSyncTimeFunc = func(ctx context.Context, t time.Time) error {
		return storage.ErrStorageClosed
	}

	result, err := env.service().Sync(context.Background(), testOwner)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, env.metadata.SaveLastSyncTimeCalls(), 1)
}

func TestGetLastSyncTime(t *testing.T) {
	env := newFakeEnv(nil, nil)
	env.lastSync = syncedAt

	got, err := env.service().GetLastSyncTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, syncedAt, got)

	env.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (time.Time, error) {
		return time.Time{}, storage.ErrStorageClosed
	}
	_, err = env.service().GetLastSyncTime(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestGetPendingSyncCount(t *testing.T) {
	counter := models.NewCounter("C", testOwner, nil, testWall)
	before := newPhase("before", counter.ID, testWall, 1)
	after := newPhase("after", counter.ID, testWall, 1)
	after.LastEdit = syncedAt.Add(time.Second)
	cache := []models.Countable{models.FromCounter(counter), models.FromPhase(before), models.FromPhase(after)}

	tests := []struct {
		lastErr  error
		lastSync time.Time
		name     string
		want     int
	}{
		{name: "never synced", want: 3},
		{name: "after last sync", lastSync: syncedAt, want: 1},
		{name: "metadata error counts everything", lastErr: storage.ErrStorageClosed, lastSync: syncedAt, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv(nil, cache)
			env.metadata.GetLastSyncTimeFunc = func(ctx context.Context) (time.Time, error) {
				return tt.lastSync, tt.lastErr
			}

			got, err := env.service().GetPendingSyncCount(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPendingSyncCount_StorageError(t *testing.T) {
	env := newFakeEnv(nil, nil)
	env.local.GetAllCountablesFunc = func(ctx context.Context) ([]models.Countable, error) {
		return nil, storage.ErrStorageClosed
	}

	_, err := env.service().GetPendingSyncCount(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
