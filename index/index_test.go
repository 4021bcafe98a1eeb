package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

const sampleGoSource = `package sample

type Widget struct {
	Name string
}

func (w *Widget) Describe() string {
	return w.Name
}

func Helper() int {
	return 42
}

func Run() int {
	return Helper()
}
`

func TestBuildIndexesGoFunctionsAndTypes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sample.go", sampleGoSource)

	idx, err := Build(context.Background(), root, BuildOptions{})
	require.NoError(t, err)

	fr, ok := idx.File("sample.go")
	require.True(t, ok)
	assert.False(t, fr.ParseError)
	assert.Len(t, fr.Functions, 2) // Helper, Run (Describe is a type member)
	require.Len(t, fr.Types, 1)
	assert.Equal(t, "Widget", fr.Types[0].Name)
	assert.Equal(t, model.KindStruct, fr.Types[0].Kind)
	require.Len(t, fr.Types[0].Members, 1)
	assert.Equal(t, "Describe", fr.Types[0].Members[0].Name)

	helper, ok := idx.Best("Helper")
	require.True(t, ok)
	assert.Equal(t, "sample.go", helper.Record.File)

	callers := idx.Callers(helper, ResolveOptions{IncludeMethods: true})
	require.Len(t, callers, 1)
	assert.Equal(t, "Run", callers[0].Call.Enclosing.Name)
}

func TestBuildSkipsFilesLargerThanMaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sample.go", sampleGoSource)

	idx, err := Build(context.Background(), root, BuildOptions{MaxFileSize: 10})
	require.NoError(t, err)

	fr, ok := idx.File("sample.go")
	require.True(t, ok)
	assert.True(t, fr.ParseError)
	assert.Empty(t, fr.Functions)
}

func TestBuildAppliesIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sample.go", sampleGoSource)
	writeFile(t, root, "generated/gen.go", "package generated\n")

	idx, err := Build(context.Background(), root, BuildOptions{Ignore: []string{"**/generated/**"}})
	require.NoError(t, err)

	_, ok := idx.File("generated/gen.go")
	assert.False(t, ok)
	_, ok = idx.File("sample.go")
	assert.True(t, ok)
}
