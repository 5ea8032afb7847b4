package osfs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dosco/resload/plugin"
	"github.com/dosco/resload/plugin/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsFS(t *testing.T) {
	t.Run("openMissing", openMissing)
	t.Run("createThenOpen", createThenOpen)
	t.Run("createDir", createDir)
}

func openMissing(t *testing.T) {
	fs := osfs.NewFSWithBase(t.TempDir())

	_, err := fs.Open("hello.txt")
	assert.ErrorIs(t, err, plugin.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var pe *os.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "open", pe.Op)
	assert.Contains(t, err.Error(), "file not found: open ")
}

func createThenOpen(t *testing.T) {
	dir := t.TempDir()
	fs := osfs.NewFSWithBase(dir)

	w, err := fs.Create("hello.txt")
	require.NoError(t, err)
	_, err = io.WriteString(w, "hi\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	b, err := os.ReadFile(filepath.Join(dir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(b))

	r, err := fs.Open("hello.txt")
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck

	b, err = io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(b))
}

func createDir(t *testing.T) {
	dir := t.TempDir()
	fs := osfs.NewFSWithBase(dir)

	_, err := fs.Create("a/b/c.txt")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, plugin.ErrNotFound)

	require.NoError(t, fs.CreateDir("a/b"))
	w, err := fs.Create("a/b/c.txt")
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
