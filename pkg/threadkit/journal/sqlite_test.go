package journal_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/threadkit/pkg/threadkit/journal"
)

func TestSQLiteStore_AppendAndList(t *testing.T) {
	store, err := journal.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Append(ctx, journal.NewEntry("thr-1", journal.EventCreated)))
	require.NoError(t, store.Append(ctx, journal.NewEntry("thr-1", journal.EventStarted)))
	require.NoError(t, store.Append(ctx, journal.NewEntry("thr-2", journal.EventCreated)))
	require.NoError(t, store.Append(ctx, journal.NewEntry("thr-1", journal.EventFinished)))

	entries, err := store.ListByThread(ctx, "thr-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, journal.EventCreated, entries[0].Event)
	assert.Equal(t, journal.EventStarted, entries[1].Event)
	assert.Equal(t, journal.EventFinished, entries[2].Event)
	assert.False(t, entries[0].At.IsZero())

	entries, err = store.ListByThread(ctx, "thr-unknown")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSQLiteStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "journal.db")
	ctx := context.Background()

	store1, err := journal.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store1.Append(ctx, journal.NewEntry("thr-1", journal.EventCreated)))
	require.NoError(t, store1.Close())

	// Reopening the database sees the earlier entries.
	store2, err := journal.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	entries, err := store2.ListByThread(ctx, "thr-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, journal.EventCreated, entries[0].Event)
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := journal.NewSQLiteStore("/nonexistent/path/journal.db")
	assert.Error(t, err)
}

func TestSQLiteStore_CloseIdempotent(t *testing.T) {
	store, err := journal.NewSQLiteStore(":memory:")
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_Closed(t *testing.T) {
	store, err := journal.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	err = store.Append(context.Background(), journal.NewEntry("thr-1", journal.EventCreated))
	assert.ErrorIs(t, err, journal.ErrStoreClosed)

	_, err = store.ListByThread(context.Background(), "thr-1")
	assert.ErrorIs(t, err, journal.ErrStoreClosed)
}
