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

func buildEngineWithTestFile(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample.go"), []byte(`package sample

func Helper(a int) int {
	return a + 1
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sample_test.go"), []byte(`package sample

func TestHelper() {
	Helper(2)
}
`), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineTestsFindsCallSiteInTestFile(t *testing.T) {
	eng := buildEngineWithTestFile(t)
	refs := eng.Tests("Helper", TestsOptions{})
	require.NotEmpty(t, refs)
	assert.Equal(t, "sample_test.go", refs[0].File)
	assert.Equal(t, "TestHelper", refs[0].Enclosing)
}

func TestEngineTestsCallsOnlyFiltersNonCallReferences(t *testing.T) {
	eng := buildEngineWithTestFile(t)
	refs := eng.Tests("Helper", TestsOptions{CallsOnly: true})
	for _, r := range refs {
		assert.Equal(t, "sample_test.go", r.File)
	}
}
