package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vfs "github.com/hupe1980/dataframe/internal/fs"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("x,y\n1,2\n3,4\n")
	require.NoError(t, store.Put(ctx, "sales/2024.csv", data))

	_, err := os.Stat(filepath.Join(tmpDir, "sales", "2024.csv"))
	require.NoError(t, err)

	blob, err := store.Open(ctx, "sales/2024.csv")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 3)
	n, err := blob.ReadAt(ctx, buf, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1,2", string(buf))

	rc, err := blob.ReadRange(ctx, 8, 100)
	require.NoError(t, err)
	tail, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "3,4\n", string(tail))
	require.NoError(t, rc.Close())
	require.NoError(t, blob.Close())
	require.NoError(t, blob.Close())

	require.NoError(t, store.Put(ctx, "sales/2025.csv", nil))
	require.NoError(t, store.Put(ctx, "other.csv", data))

	names, err := store.List(ctx, "sales/")
	require.NoError(t, err)
	assert.Equal(t, []string{"sales/2024.csv", "sales/2025.csv"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"other.csv", "sales/2024.csv", "sales/2025.csv"}, all)

	empty, err := ReadAll(ctx, store, "sales/2025.csv")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, store.Delete(ctx, "other.csv"))
	require.NoError(t, store.Delete(ctx, "other.csv"))

	_, err = store.Open(ctx, "other.csv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_RejectsEscapingNames(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "../escape.csv", []byte("a")))
	_, err := store.Open(ctx, "/etc/passwd")
	assert.Error(t, err)
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "missing"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_PutFailureLeavesNoFile(t *testing.T) {
	tmpDir := t.TempDir()
	ffs := vfs.NewFaultyFS(nil)
	ffs.AddRule(".tmp-", vfs.Fault{FailOnSync: true, FailAfterBytes: -1})

	store := newLocalStore(tmpDir, ffs)
	ctx := context.Background()

	err := store.Put(ctx, "t.csv", []byte("a,b\n"))
	require.ErrorIs(t, err, vfs.ErrInjected)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "a.csv", nil), context.Canceled)
	_, err := store.Open(ctx, "a.csv")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_OpenThroughFileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	ffs := vfs.NewFaultyFS(nil)
	ffs.AddRule("noopen.csv", vfs.Fault{FailOnOpen: true, FailAfterBytes: -1})
	ffs.AddRule("noread.csv", vfs.Fault{FailOnRead: true, FailAfterBytes: -1})
	ffs.AddRule("wrapped.csv", vfs.Fault{FailAfterBytes: -1})

	store := newLocalStore(tmpDir, ffs)
	ctx := context.Background()
	for _, name := range []string{"noopen.csv", "noread.csv", "wrapped.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x,y\n1,2\n"), 0o644))
	}

	_, err := store.Open(ctx, "noopen.csv")
	assert.ErrorIs(t, err, vfs.ErrInjected)

	_, err = store.Open(ctx, "noread.csv")
	assert.ErrorIs(t, err, vfs.ErrInjected)

	// A wrapped file has no descriptor to map and is read into memory.
	data, err := ReadAll(ctx, store, "wrapped.csv")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n1,2\n", string(data))
}
