package cachestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	relPath := "sample.go"
	abs := filepath.Join(root, relPath)
	require.NoError(t, os.WriteFile(abs, []byte("package sample\n"), 0o644))
	info, err := os.Stat(abs)
	require.NoError(t, err)

	store, err := Open(root)
	require.NoError(t, err)
	defer store.Close()

	rec := &model.FileRecord{
		AbsPath:    abs,
		RelPath:    relPath,
		Language:   model.LangGo,
		ModTime:    info.ModTime(),
		Size:       info.Size(),
		TotalLines: 1,
	}
	require.NoError(t, store.SaveFile(rec))
	require.NoError(t, store.SaveManifest([]string{relPath}))

	result, ok := store.Load(root, []string{relPath})
	require.True(t, ok)
	require.Contains(t, result.Files, relPath)
	assert.Equal(t, model.LangGo, result.Files[relPath].Language)
	assert.Equal(t, 1, result.Files[relPath].TotalLines)
}

func TestLoadMissesOnFileListChange(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(root, "sample.go")
	require.NoError(t, os.WriteFile(abs, []byte("package sample\n"), 0o644))
	info, err := os.Stat(abs)
	require.NoError(t, err)

	store, err := Open(root)
	require.NoError(t, err)
	defer store.Close()

	rec := &model.FileRecord{AbsPath: abs, RelPath: "sample.go", ModTime: info.ModTime(), Size: info.Size()}
	require.NoError(t, store.SaveFile(rec))
	require.NoError(t, store.SaveManifest([]string{"sample.go"}))

	_, ok := store.Load(root, []string{"sample.go", "new.go"})
	assert.False(t, ok)
}

func TestLoadMissesOnStaleModTime(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(root, "sample.go")
	require.NoError(t, os.WriteFile(abs, []byte("package sample\n"), 0o644))
	info, err := os.Stat(abs)
	require.NoError(t, err)

	store, err := Open(root)
	require.NoError(t, err)
	defer store.Close()

	rec := &model.FileRecord{AbsPath: abs, RelPath: "sample.go", ModTime: info.ModTime().Add(-time.Hour), Size: info.Size()}
	require.NoError(t, store.SaveFile(rec))
	require.NoError(t, store.SaveManifest([]string{"sample.go"}))

	_, ok := store.Load(root, []string{"sample.go"})
	assert.False(t, ok)
}

func TestLoadMissesWithoutManifest(t *testing.T) {
	root := t.TempDir()
	store, err := Open(root)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Load(root, []string{"sample.go"})
	assert.False(t, ok)
}
