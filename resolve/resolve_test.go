package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func newResolver(t *testing.T, relPaths []string) (*Resolver, string) {
	t.Helper()
	root := t.TempDir()
	fs := NewFileSet(root, relPaths)
	return New(root, fs), root
}

func TestResolveJSRelativeLiteralPath(t *testing.T) {
	r, root := newResolver(t, []string{"src/a.js", "src/b.js"})
	abs, ok := r.Resolve(filepath.Join(root, "src", "a.js"), model.Import{Source: "./b.js"}, model.LangJavaScript)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "b.js"), abs)
}

func TestResolveJSRelativeExtensionAppended(t *testing.T) {
	r, root := newResolver(t, []string{"src/a.js", "src/b.js"})
	abs, ok := r.Resolve(filepath.Join(root, "src", "a.js"), model.Import{Source: "./b"}, model.LangJavaScript)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "b.js"), abs)
}

func TestResolveJSRelativeIndexFile(t *testing.T) {
	r, root := newResolver(t, []string{"src/a.js", "src/util/index.js"})
	abs, ok := r.Resolve(filepath.Join(root, "src", "a.js"), model.Import{Source: "./util"}, model.LangJavaScript)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "util", "index.js"), abs)
}

func TestResolveJSBareSpecifierUnresolved(t *testing.T) {
	r, root := newResolver(t, []string{"src/a.js"})
	_, ok := r.Resolve(filepath.Join(root, "src", "a.js"), model.Import{Source: "lodash"}, model.LangJavaScript)
	assert.False(t, ok)
}

func TestResolvePythonBarePackageImport(t *testing.T) {
	r, root := newResolver(t, []string{"pkg/mod.py", "pkg/__init__.py"})
	abs, ok := r.Resolve(filepath.Join(root, "main.py"), model.Import{Source: "pkg.mod", Kind: model.ImportNamed}, model.LangPython)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "pkg", "mod.py"), abs)
}

func TestResolvePythonRelativeImport(t *testing.T) {
	r, root := newResolver(t, []string{"pkg/mod.py", "pkg/other.py"})
	abs, ok := r.Resolve(filepath.Join(root, "pkg", "other.py"), model.Import{Source: ".mod", Kind: model.ImportRelative}, model.LangPython)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "pkg", "mod.py"), abs)
}

func TestResolveGoSamePackagePrefix(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module github.com/example/app\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	fs := NewFileSet(root, []string{"pkg/widget.go"})
	r := New(root, fs)

	abs, ok := r.Resolve(filepath.Join(root, "main.go"), model.Import{Source: "github.com/example/app/pkg"}, model.LangGo)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "pkg", "widget.go"), abs)
}

func TestResolveGoOutsideModuleUnresolved(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module github.com/example/app\n"), 0o644))
	fs := NewFileSet(root, []string{"pkg/widget.go"})
	r := New(root, fs)

	_, ok := r.Resolve(filepath.Join(root, "main.go"), model.Import{Source: "fmt"}, model.LangGo)
	assert.False(t, ok)
}

func TestResolveRustCratePath(t *testing.T) {
	r, root := newResolver(t, []string{"src/util.rs"})
	abs, ok := r.Resolve(filepath.Join(root, "src", "main.rs"), model.Import{Source: "crate::util"}, model.LangRust)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "util.rs"), abs)
}

func TestResolveRustModDeclaration(t *testing.T) {
	r, root := newResolver(t, []string{"src/child.rs"})
	abs, ok := r.Resolve(filepath.Join(root, "src", "main.rs"), model.Import{Source: "child", Kind: model.ImportStatic}, model.LangRust)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "child.rs"), abs)
}

func TestResolveJavaNamedImportFindsClassFile(t *testing.T) {
	r, root := newResolver(t, []string{"com/example/Widget.java", "com/example/Other.java"})
	abs, ok := r.Resolve("", model.Import{Source: "com.example.Widget", Kind: model.ImportNamed}, model.LangJava)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "com", "example", "Widget.java"), abs)
}

func TestResolveJavaNamedImportDoesNotMatchWrongClass(t *testing.T) {
	r, _ := newResolver(t, []string{"com/example/Other.java"})
	_, ok := r.Resolve("", model.Import{Source: "com.example.Widget", Kind: model.ImportNamed}, model.LangJava)
	assert.False(t, ok)
}

func TestResolveJavaStaticImportFindsDeclaringClass(t *testing.T) {
	r, _ := newResolver(t, []string{"com/example/Widget.java"})
	abs, ok := r.Resolve("", model.Import{Source: "com.example.Widget.helper", Kind: model.ImportStatic}, model.LangJava)
	require.True(t, ok)
	assert.Equal(t, "Widget.java", filepath.Base(abs))
}

func TestResolveJavaWildcardImportMatchesAnyPackageMember(t *testing.T) {
	r, _ := newResolver(t, []string{"com/example/Widget.java"})
	abs, ok := r.Resolve("", model.Import{Source: "com.example", Kind: model.ImportNamespace, Names: []string{"*"}}, model.LangJava)
	require.True(t, ok)
	assert.Equal(t, "Widget.java", filepath.Base(abs))
}
