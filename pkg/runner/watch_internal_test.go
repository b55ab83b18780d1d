package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScope(t *testing.T, root string) (*watchScope, *fsnotify.Watcher) {
	t.Helper()

	d, err := newDiscoverer(Options{WorkingDir: root})
	require.NoError(t, err)

	fsw, err := fsnotify.NewWatcher()
	require.NoError(t, err)

	return &watchScope{d: d, files: map[string]struct{}{}, roots: []string{root}}, fsw
}

func TestWatchScope_AddIfDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	scope, fsw := newTestScope(t, root)
	defer fsw.Close()

	sub := filepath.Join(root, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))
	file := filepath.Join(root, "a.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	isDir, err := scope.addIfDir(fsw, sub)
	require.NoError(t, err)
	assert.True(t, isDir)
	assert.Contains(t, fsw.WatchList(), sub)

	isDir, err = scope.addIfDir(fsw, file)
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = scope.addIfDir(fsw, filepath.Join(root, "gone"))
	require.NoError(t, err)
	assert.False(t, isDir)
}

func TestWatchScope_AddIfDirReportsWatchFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	scope, fsw := newTestScope(t, root)
	require.NoError(t, fsw.Close())

	sub := filepath.Join(root, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))

	isDir, err := scope.addIfDir(fsw, sub)
	assert.True(t, isDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), sub)
}

func TestWatchScope_AddIfDirSkipsHiddenDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	scope, fsw := newTestScope(t, root)
	defer fsw.Close()

	hidden := filepath.Join(root, ".git")
	require.NoError(t, os.Mkdir(hidden, 0o755))

	isDir, err := scope.addIfDir(fsw, hidden)
	require.NoError(t, err)
	assert.True(t, isDir)
	assert.NotContains(t, fsw.WatchList(), hidden)
}
