package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePythonSource = `class Widget:
    def describe(self):
        return self.name

def helper(a):
    return a + 1

def run():
    return helper(1)
`

func TestBuildIndexesPythonFunctionsAndClasses(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.py"), []byte(samplePythonSource), 0o644))

	idx, err := Build(context.Background(), root, BuildOptions{})
	require.NoError(t, err)

	fr, ok := idx.File("sample.py")
	require.True(t, ok)
	require.Len(t, fr.Functions, 2)
	assert.False(t, fr.ParseError)

	var names []string
	for _, fn := range fr.Functions {
		names = append(names, fn.Name)
	}
	assert.Contains(t, names, "helper")
	assert.Contains(t, names, "run")
	assert.NotContains(t, names, "describe") // class member, not a top-level function

	require.Len(t, fr.Types, 1)
	assert.Equal(t, "Widget", fr.Types[0].Name)
	require.Len(t, fr.Types[0].Members, 1)
	assert.Equal(t, "describe", fr.Types[0].Members[0].Name)
	assert.True(t, fr.Types[0].Members[0].IsMethod)

	helper, ok := idx.Best("helper")
	require.True(t, ok)
	callers := idx.Callers(helper, ResolveOptions{})
	require.Len(t, callers, 1)
	require.NotNil(t, callers[0].Call.Enclosing)
	assert.Equal(t, "run", callers[0].Call.Enclosing.Name)
}

func TestBuildFindsPythonAllExports(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.py"), []byte(`__all__ = ["helper"]

def helper():
    return 1

def hidden():
    return 2
`), 0o644))

	idx, err := Build(context.Background(), root, BuildOptions{})
	require.NoError(t, err)

	fr, ok := idx.File("sample.py")
	require.True(t, ok)
	require.Len(t, fr.Exports, 1)
	assert.Equal(t, "helper", fr.Exports[0].Name)
}
