package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalRepo(t *testing.T) *localEntryRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{Path: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewLocalEntryRepository(db, logger.Nop()).(*localEntryRepository)

	// deterministic clock: each write gets the next millisecond
	var tick int64
	repo.now = func() int64 { tick++; return tick }

	return repo
}

func TestLocalRepo_SetAndGet(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))

	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "dark", *got)
}

func TestLocalRepo_GetAbsent(t *testing.T) {
	repo := newTestLocalRepo(t)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocalRepo_RemoveLeavesTombstone(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Remove(ctx, "theme"))

	// Get and ListKeys treat the tombstone as absent...
	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Nil(t, got)

	keys, err := repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.NotContains(t, keys, "theme")

	// ...but States still exposes it, with the deletion's timestamp.
	states, err := repo.States(ctx)
	require.NoError(t, err)
	entry, ok := states["theme"]
	require.True(t, ok, "tombstone must stay visible in States")
	assert.True(t, entry.Deleted())
	assert.Equal(t, int64(2), entry.UpdatedAt)
}

func TestLocalRepo_SetStampsIncreasingTimestamps(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Set(ctx, "b", "2"))
	require.NoError(t, repo.Set(ctx, "a", "3"))

	states, err := repo.States(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), states["a"].UpdatedAt)
	assert.Equal(t, int64(2), states["b"].UpdatedAt)
}

func TestLocalRepo_ApplyRemoteKeepsServerTimestamp(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ApplyRemote(ctx, "theme", models.StringValue("light"), 5000))

	states, err := repo.States(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), states["theme"].UpdatedAt)

	// re-applying the same entry is a no-op, not an error
	require.NoError(t, repo.ApplyRemote(ctx, "theme", models.StringValue("light"), 5000))
}

func TestLocalRepo_ApplyRemoteTombstoneRemoves(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.ApplyRemote(ctx, "theme", nil, 9000))

	got, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocalRepo_OnChangeFiresOnlyForLocalWrites(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	var changed []string
	repo.SetOnChange(func(name string) { changed = append(changed, name) })

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Remove(ctx, "a"))
	require.NoError(t, repo.ApplyRemote(ctx, "b", models.StringValue("2"), 100))

	assert.Equal(t, []string{"a", "a"}, changed, "ApplyRemote must not fire the callback")
}

func TestLocalRepo_ListKeysSorted(t *testing.T) {
	repo := newTestLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "b", "2"))
	require.NoError(t, repo.Set(ctx, "a", "1"))

	keys, err := repo.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}
