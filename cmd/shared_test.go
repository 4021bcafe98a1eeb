package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/query"
)

func TestBuildEngineIndexesRealProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(`package sample

func Helper() int {
	return 1
}
`), 0o644))

	eng, err := buildEngine(context.Background(), root)
	require.NoError(t, err)

	records := eng.Find("Helper", query.FindOptions{})
	require.Len(t, records, 1)
	assert.Equal(t, "sample.go", records[0].File)
}

func TestBuildEngineHonorsIgnoreConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".ucn.yml"), []byte("ignore:\n  - generated\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "generated"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "generated", "skip.go"), []byte(`package generated

func Skipped() int { return 0 }
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(`package sample

func Kept() int { return 0 }
`), 0o644))

	eng, err := buildEngine(context.Background(), root)
	require.NoError(t, err)

	assert.Empty(t, eng.Find("Skipped", query.FindOptions{}))
	assert.NotEmpty(t, eng.Find("Kept", query.FindOptions{}))
}
