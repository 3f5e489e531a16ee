package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techiehelp/internal/config"
)

// steppingClock returns base, base+1s, base+2s, ...
func steppingClock(base time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := base.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("rec-%d", n)
	}
}

func newTestLocalStore(t *testing.T, opts ...Option) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(":memory:", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestLocalStore_StoreThenFetchNewestFirst(t *testing.T) {
	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	s := newTestLocalStore(t, WithClock(steppingClock(base)), WithIDGenerator(sequentialIDs()))
	ctx := context.Background()

	first, err := s.Store(ctx, "What is your mission?", "mission text")
	require.NoError(t, err)
	second, err := s.Store(ctx, "Who is the founder?", "founder text")
	require.NoError(t, err)

	history, err := s.FetchHistory(ctx)
	require.NoError(t, err)

	want := []ChatRecord{second, first}
	if diff := cmp.Diff(want, history); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "rec-2", history[0].ID)
	assert.True(t, history[0].Timestamp.Equal(base.Add(time.Second)))
}

func TestLocalStore_OrderIsByTimestampNotInsertion(t *testing.T) {
	stamps := []time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	i := 0
	s := newTestLocalStore(t, WithClock(func() time.Time { t := stamps[i]; i++; return t }))
	ctx := context.Background()

	for _, q := range []string{"jan3", "jan1", "jan2"} {
		_, err := s.Store(ctx, q, "r")
		require.NoError(t, err)
	}

	history, err := s.FetchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"jan3", "jan2", "jan1"}, []string{history[0].Query, history[1].Query, history[2].Query})
}

func TestLocalStore_DuplicatesAreKept(t *testing.T) {
	same := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestLocalStore(t, WithClock(func() time.Time { return same }))
	ctx := context.Background()

	a, err := s.Store(ctx, "contact", "email us")
	require.NoError(t, err)
	b, err := s.Store(ctx, "contact", "email us")
	require.NoError(t, err)

	history, err := s.FetchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, b.ID, history[0].ID, "equal stamps list the later insert first")
}

func TestLocalStore_EmptyHistory(t *testing.T) {
	s := newTestLocalStore(t)

	history, err := s.FetchHistory(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestLocalStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "chat.db")
	ctx := context.Background()

	s, err := NewLocalStore(path)
	require.NoError(t, err)
	rec, err := s.Store(ctx, "q", "r")
	require.NoError(t, err)
	require.NoError(t, s.Close(ctx))

	reopened, err := NewLocalStore(path)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	history, err := reopened.FetchHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, rec.ID, history[0].ID)
	assert.True(t, rec.Timestamp.Equal(history[0].Timestamp))
}

func TestLocalStore_ClosedFails(t *testing.T) {
	s, err := NewLocalStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close(context.Background()))

	_, err = s.Store(context.Background(), "q", "r")
	assert.Error(t, err)
	_, err = s.FetchHistory(context.Background())
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StorageConfig{
		Backend:    config.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, s)
	require.NoError(t, s.Close(ctx))

	_, err = Open(ctx, config.StorageConfig{Backend: "redis"})
	assert.Error(t, err)
}
