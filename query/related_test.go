package query

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/index"
)

func buildRelatedEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "helper.go"), []byte(`package sample

func Helper(a int) int {
	return a + 1
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "caller.go"), []byte(`package sample

func CallerA() int {
	return Helper(1) + Common()
}

func CallerB() int {
	return Helper(2) + Common()
}

func Common() int {
	return 0
}
`), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineRelatedIncludesSameFileSymbols(t *testing.T) {
	eng := buildRelatedEngine(t)
	records, ok := eng.Related("CallerA")
	require.True(t, ok)

	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "CallerB")
	assert.Contains(t, names, "Common")
}

func TestEngineRelatedIncludesSharedCalleeAcrossFiles(t *testing.T) {
	eng := buildRelatedEngine(t)
	records, ok := eng.Related("Helper")
	require.True(t, ok)

	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Common")
}

func TestEngineRelatedUnknownNameReturnsFalse(t *testing.T) {
	eng := buildRelatedEngine(t)
	_, ok := eng.Related("DoesNotExist")
	assert.False(t, ok)
}
