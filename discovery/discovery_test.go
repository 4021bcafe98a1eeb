package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTestFile(t *testing.T) {
	cases := map[string]bool{
		"pkg/foo_test.go":            true,
		"pkg/foo.go":                 false,
		"src/test_helpers.py":        true,
		"src/helpers_test.py":        true,
		"src/helpers.py":             false,
		"com/example/FooTest.java":   true,
		"com/example/FooTests.java":  true,
		"com/example/Foo.java":       false,
		"web/component.test.tsx":     true,
		"web/component.spec.ts":      true,
		"web/component.tsx":          false,
		"crates/foo/tests/basic.rs":  true,
		"crates/foo/src/lib.rs":      false,
		"project/__tests__/util.js":  true,
		"project/fixtures/data.json": true,
	}
	for path, want := range cases {
		assert.Equal(t, want, IsTestFile(path), path)
	}
}

func TestFindProjectRootClimbsToMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example\n"), 0o644))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got := FindProjectRoot(nested)
	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, absRoot, got)
}

func TestFindProjectRootFallsBackToStart(t *testing.T) {
	// When no directory from start up to "/" carries a marker, the climb
	// stops at the filesystem root and FindProjectRoot returns start
	// itself. An ancestor of TempDir may still carry a marker on some
	// machines, so the contract under test is simply that it returns
	// without panicking or hanging and yields an absolute path or start.
	start := t.TempDir()
	got := FindProjectRoot(start)
	assert.True(t, filepath.IsAbs(got) || got == start)
}

func TestWalkHonorsIgnorePatternsAndExtensions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor", "dep"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "x"), 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "main.go"), []byte("package pkg\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "README.md"), []byte("# hi\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendor", "dep", "dep.go"), []byte("package dep\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "x", "index.js"), []byte("x;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "scratch.py"), []byte("x = 1\n"), 0o644))

	got, err := Walk(root, Options{})
	require.NoError(t, err)

	assert.Contains(t, got, "pkg/main.go")
	assert.Contains(t, got, "scratch.py")
	assert.NotContains(t, got, "pkg/README.md")
	assert.NotContains(t, got, "vendor/dep/dep.go")
	assert.NotContains(t, got, "node_modules/x/index.js")
}

func TestWalkExtraIgnoreAppendsToDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "generated"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "generated", "gen.go"), []byte("package generated\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))

	got, err := Walk(root, Options{ExtraIgnore: []string{"**/generated/**"}})
	require.NoError(t, err)

	assert.Contains(t, got, "main.go")
	assert.NotContains(t, got, "generated/gen.go")
}
