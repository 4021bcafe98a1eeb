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

func buildTraceEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(`package sample

func A() int {
	return B()
}

func B() int {
	return A()
}
`), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineTraceFollowsCalleesUntilCycle(t *testing.T) {
	eng := buildTraceEngine(t)
	node, ok := eng.Trace("A", TraceOptions{})
	require.True(t, ok)
	assert.Equal(t, "A", node.Name)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "B", node.Children[0].Name)
	assert.False(t, node.Children[0].Circular)
	require.Len(t, node.Children[0].Children, 1)
	assert.Equal(t, "A", node.Children[0].Children[0].Name)
	assert.True(t, node.Children[0].Children[0].Circular)
}

func TestEngineTraceDepthOneHasNoChildren(t *testing.T) {
	eng := buildTraceEngine(t)
	node, ok := eng.Trace("A", TraceOptions{Depth: 1})
	require.True(t, ok)
	assert.Empty(t, node.Children)
}

func TestEngineTraceUnknownNameReturnsFalse(t *testing.T) {
	eng := buildTraceEngine(t)
	_, ok := eng.Trace("DoesNotExist", TraceOptions{})
	assert.False(t, ok)
}
