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

const typedefGoSource = `package sample

type Widget struct {
	Name string
}

type Greeter interface {
	Greet() string
}

func widget() int {
	return 0
}
`

func buildTypedefEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(typedefGoSource), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineTypedefReturnsStructKind(t *testing.T) {
	eng := buildTypedefEngine(t)
	records := eng.Typedef("Widget")
	require.Len(t, records, 1)
	assert.Equal(t, "struct", records[0].Kind)
}

func TestEngineTypedefReturnsInterfaceKind(t *testing.T) {
	eng := buildTypedefEngine(t)
	records := eng.Typedef("Greeter")
	require.Len(t, records, 1)
	assert.Equal(t, "interface", records[0].Kind)
}

func TestEngineTypedefExcludesNonTypeSymbols(t *testing.T) {
	eng := buildTypedefEngine(t)
	records := eng.Typedef("widget")
	assert.Empty(t, records)
}

func TestEngineTypedefUnknownNameIsEmpty(t *testing.T) {
	eng := buildTypedefEngine(t)
	records := eng.Typedef("DoesNotExist")
	assert.Empty(t, records)
}
