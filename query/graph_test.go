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

func buildJSGraphEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.js"), []byte(`
import { helper } from "./b.js";
export function run() {
	return helper();
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.js"), []byte(`
export function helper() {
	return 1;
}
`), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineGraphFollowsImports(t *testing.T) {
	eng := buildJSGraphEngine(t)
	nodes := eng.Graph("a.js", GraphOptions{Direction: GraphImports})

	var files []string
	for _, n := range nodes {
		files = append(files, n.File)
	}
	assert.Contains(t, files, "a.js")
	assert.Contains(t, files, "b.js")
}

func TestEngineGraphFollowsImporters(t *testing.T) {
	eng := buildJSGraphEngine(t)
	nodes := eng.Graph("b.js", GraphOptions{Direction: GraphImporters})

	var files []string
	for _, n := range nodes {
		files = append(files, n.File)
	}
	assert.Contains(t, files, "a.js")
}

func TestEngineExportersListsImportingFiles(t *testing.T) {
	eng := buildJSGraphEngine(t)
	exporters := eng.Exporters("b.js")
	assert.Contains(t, exporters, "a.js")
}

func TestEngineImportsReturnsFileImportRecords(t *testing.T) {
	eng := buildJSGraphEngine(t)
	imports, ok := eng.Imports("a.js")
	require.True(t, ok)
	require.Len(t, imports, 1)
	assert.Equal(t, "./b.js", imports[0].Source)
}
