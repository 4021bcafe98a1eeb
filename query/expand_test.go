package query

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/cachestore"
	"github.com/mleoca/ucn/index"
)

func buildExpandEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(`package sample

func Helper(a int) int {
	return a + 1
}

func Caller() int {
	return Helper(1)
}
`), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineExpandReturnsSourceForKnownFile(t *testing.T) {
	eng := buildExpandEngine(t)
	item := cachestore.ExpandableItem{Label: "callee:Helper", File: "sample.go", StartLine: 3, EndLine: 5}

	result, ok := eng.Expand(item)
	require.True(t, ok)
	assert.Equal(t, "callee:Helper", result.Label)
	assert.Contains(t, result.Source, "func Helper(a int) int {")
}

func TestEngineExpandUnknownFileReturnsFalse(t *testing.T) {
	eng := buildExpandEngine(t)
	_, ok := eng.Expand(cachestore.ExpandableItem{File: "missing.go", StartLine: 1, EndLine: 1})
	assert.False(t, ok)
}

func TestContextExpandableItemsRoundTripThroughExpand(t *testing.T) {
	eng := buildExpandEngine(t)
	ctxResult, ok := eng.Context("Caller", ContextOptions{})
	require.True(t, ok)
	require.NotEmpty(t, ctxResult.Expandable)

	result, ok := eng.Expand(ctxResult.Expandable[0])
	require.True(t, ok)
	assert.NotEmpty(t, result.Source)
}
