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

const smartGoSource = `package sample

type Widget struct {
	Name string
}

func Helper(w Widget) int {
	return len(w.Name)
}

func Run() int {
	return Helper(Widget{})
}
`

func buildSmartEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(smartGoSource), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineSmartIncludesFirstHopCallee(t *testing.T) {
	eng := buildSmartEngine(t)
	result, ok := eng.Smart("Run", SmartOptions{})
	require.True(t, ok)
	assert.Equal(t, "Run", result.Symbol.Name)
	require.Len(t, result.Callees, 1)
	assert.Equal(t, "Helper", result.Callees[0].Name)
	assert.NotEmpty(t, result.Callees[0].Source)
}

func TestEngineSmartWithTypesResolvesParamType(t *testing.T) {
	eng := buildSmartEngine(t)
	result, ok := eng.Smart("Helper", SmartOptions{WithTypes: true})
	require.True(t, ok)
	require.Len(t, result.Types, 1)
	assert.Equal(t, "Widget", result.Types[0].Name)
}

func TestEngineSmartWithoutTypesLeavesTypesEmpty(t *testing.T) {
	eng := buildSmartEngine(t)
	result, ok := eng.Smart("Helper", SmartOptions{})
	require.True(t, ok)
	assert.Empty(t, result.Types)
}

func TestEngineSmartUnknownNameReturnsFalse(t *testing.T) {
	eng := buildSmartEngine(t)
	_, ok := eng.Smart("DoesNotExist", SmartOptions{})
	assert.False(t, ok)
}
