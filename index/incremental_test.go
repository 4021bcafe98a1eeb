package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateReplacesFunctionsInChangedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sample.go", "package sample\n\nfunc Old() int {\n\treturn 1\n}\n")

	idx, err := Build(context.Background(), root, BuildOptions{})
	require.NoError(t, err)

	_, ok := idx.Best("Old")
	require.True(t, ok)

	writeFile(t, root, "sample.go", "package sample\n\nfunc New() int {\n\treturn 2\n}\n")
	require.NoError(t, idx.Update(context.Background(), []string{"sample.go"}, nil))

	_, ok = idx.Best("Old")
	assert.False(t, ok)
	newSym, ok := idx.Best("New")
	require.True(t, ok)
	assert.Equal(t, "sample.go", newSym.Record.File)
}

func TestUpdateRemovesVanishedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sample.go", "package sample\n\nfunc Gone() int {\n\treturn 1\n}\n")

	idx, err := Build(context.Background(), root, BuildOptions{})
	require.NoError(t, err)

	abs := filepath.Join(root, "sample.go")
	require.NoError(t, os.Remove(abs))
	require.NoError(t, idx.Update(context.Background(), []string{"sample.go"}, nil))

	_, ok := idx.File("sample.go")
	assert.False(t, ok)
	_, ok = idx.Best("Gone")
	assert.False(t, ok)
}

func TestUpdateRebuildsImportEdgesForJS(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "import { helper } from \"./b.js\";\n")
	writeFile(t, root, "b.js", "export function helper() { return 1; }\n")

	idx, err := Build(context.Background(), root, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, idx.ImportEdges(), 1)

	writeFile(t, root, "a.js", "import { helper } from \"./b.js\";\nconsole.log(helper());\n")
	require.NoError(t, idx.Update(context.Background(), []string{"a.js"}, nil))

	edges := idx.ImportEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, "a.js", edges[0].From)
	assert.Equal(t, "b.js", edges[0].To)
}

func TestRelPathsUnderConvertsAbsoluteToRelative(t *testing.T) {
	idx := &Index{Root: "/proj"}
	got := idx.RelPathsUnder([]string{"/proj/pkg/widget.go", "/proj/main.go"})
	assert.ElementsMatch(t, []string{"pkg/widget.go", "main.go"}, got)
}
