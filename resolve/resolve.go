// Package resolve implements the Import Resolver (§4.5): it turns an
// Import specifier plus the importing file's path into an absolute
// in-project path, or reports it unresolved. Each language gets its
// own resolution strategy; all of them consult a FileSet rather than
// the filesystem directly so the resolver stays pure and testable.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mleoca/ucn/model"
)

// FileSet is the existence oracle the resolver consults. It holds
// every absolute path discovery found, so probing candidate paths
// never touches the filesystem again after the initial walk.
type FileSet struct {
	root   string
	exists map[string]bool
}

// NewFileSet builds a FileSet from project-relative paths (as
// produced by discovery.Walk) rooted at root.
func NewFileSet(root string, relPaths []string) *FileSet {
	fs := &FileSet{root: root, exists: make(map[string]bool, len(relPaths))}
	for _, rel := range relPaths {
		fs.exists[filepath.Join(root, filepath.FromSlash(rel))] = true
	}
	return fs
}

// Exists reports whether abs is a file the set knows about.
func (fs *FileSet) Exists(abs string) bool {
	return fs.exists[abs]
}

// Resolver resolves Import specifiers to absolute in-project paths.
// The zero value with a nil FileSet always reports everything
// unresolved; construct with New to get real behavior.
type Resolver struct {
	root        string
	files       *FileSet
	goModule    string // module directive from go.mod, empty if none
	pythonRoots []string
}

// New builds a Resolver for a project rooted at root, using files as
// the existence oracle. It looks for a go.mod at root to learn the Go
// module prefix and treats root (plus any "src" directory) as Python
// source roots.
func New(root string, files *FileSet) *Resolver {
	r := &Resolver{root: root, files: files}
	r.goModule = readGoModule(filepath.Join(root, "go.mod"))
	r.pythonRoots = []string{root}
	if _, err := os.Stat(filepath.Join(root, "src")); err == nil {
		r.pythonRoots = append(r.pythonRoots, filepath.Join(root, "src"))
	}
	return r
}

func readGoModule(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module"))
		}
	}
	return ""
}

// Resolve maps one Import found in importerAbsPath (an absolute path
// under r.root) to an absolute in-project path. ok is false when the
// specifier cannot be placed inside the project, per §4.5's per-
// language rules.
func (r *Resolver) Resolve(importerAbsPath string, imp model.Import, lang model.Language) (abs string, ok bool) {
	if r == nil || r.files == nil {
		return "", false
	}
	switch lang {
	case model.LangJavaScript, model.LangTypeScript:
		return r.resolveJS(importerAbsPath, imp.Source)
	case model.LangPython:
		return r.resolvePython(importerAbsPath, imp.Source, imp.Kind)
	case model.LangGo:
		return r.resolveGo(imp.Source)
	case model.LangRust:
		return r.resolveRust(importerAbsPath, imp)
	case model.LangJava:
		return r.resolveJava(imp)
	default:
		return "", false
	}
}

var jsExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// resolveJS implements the relative-specifier probing rule: the
// literal path, then the path with each supported extension appended,
// then an index file inside it. Bare specifiers are never resolved
// (package.json main/exports fields are out of scope).
func (r *Resolver) resolveJS(importerAbsPath, specifier string) (string, bool) {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") && !filepath.IsAbs(specifier) {
		return "", false
	}
	var base string
	if filepath.IsAbs(specifier) {
		base = filepath.Join(r.root, specifier)
	} else {
		base = filepath.Join(filepath.Dir(importerAbsPath), specifier)
	}
	if r.files.Exists(base) {
		return base, true
	}
	for _, ext := range jsExtensions {
		if candidate := base + ext; r.files.Exists(candidate) {
			return candidate, true
		}
	}
	for _, ext := range jsExtensions {
		if candidate := filepath.Join(base, "index"+ext); r.files.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// resolvePython implements dot-count relative resolution for `from
// .x import y` style specifiers (kind carries no dot count itself;
// the dots are embedded in imp.Source by the extractor as leading
// dots) and project-source-root probing for bare `import pkg.sub`.
func (r *Resolver) resolvePython(importerAbsPath, source string, kind model.ImportKind) (string, bool) {
	dots := 0
	for dots < len(source) && source[dots] == '.' {
		dots++
	}
	rest := strings.TrimPrefix(source[dots:], ".")
	segments := []string{}
	if rest != "" {
		segments = strings.Split(rest, ".")
	}
	if dots > 0 {
		dir := filepath.Dir(importerAbsPath)
		for i := 1; i < dots; i++ {
			dir = filepath.Dir(dir)
		}
		return r.probePythonModule(dir, segments)
	}
	if len(segments) == 0 {
		return "", false
	}
	for _, srcRoot := range r.pythonRoots {
		if abs, ok := r.probePythonModule(srcRoot, segments); ok {
			return abs, true
		}
	}
	return "", false
}

func (r *Resolver) probePythonModule(dir string, segments []string) (string, bool) {
	if len(segments) == 0 {
		if r.files.Exists(filepath.Join(dir, "__init__.py")) {
			return filepath.Join(dir, "__init__.py"), true
		}
		return "", false
	}
	path := dir
	for _, seg := range segments {
		path = filepath.Join(path, seg)
	}
	if candidate := path + ".py"; r.files.Exists(candidate) {
		return candidate, true
	}
	if candidate := filepath.Join(path, "__init__.py"); r.files.Exists(candidate) {
		return candidate, true
	}
	return "", false
}

// resolveGo maps an import path sharing the go.mod module prefix to
// the directory it names under the project root; every file in that
// directory package is a valid target, so the lexically first .go file
// in the directory wins.
func (r *Resolver) resolveGo(importPath string) (string, bool) {
	if r.goModule == "" || !strings.HasPrefix(importPath, r.goModule) {
		return "", false
	}
	rest := strings.TrimPrefix(importPath, r.goModule)
	rest = strings.TrimPrefix(rest, "/")
	dir := filepath.Join(r.root, filepath.FromSlash(rest))
	best := ""
	for abs := range r.files.exists {
		if filepath.Dir(abs) == dir && strings.HasSuffix(abs, ".go") && (best == "" || abs < best) {
			best = abs
		}
	}
	if best != "" {
		return best, true
	}
	return "", false
}

// resolveRust resolves `use` paths lexically from the crate root
// (the project's top-level src/ directory when the importing file is
// under it, otherwise the project root)
// and `mod x;` declarations relative to the importing file's own
// directory, per §4.5.
func (r *Resolver) resolveRust(importerAbsPath string, imp model.Import) (string, bool) {
	if imp.Kind == model.ImportStatic {
		dir := filepath.Dir(importerAbsPath)
		name := imp.Source
		if candidate := filepath.Join(dir, name+".rs"); r.files.Exists(candidate) {
			return candidate, true
		}
		if candidate := filepath.Join(dir, name, "mod.rs"); r.files.Exists(candidate) {
			return candidate, true
		}
		return "", false
	}
	path := imp.Source
	var segments []string
	var base string
	switch {
	case strings.HasPrefix(path, "crate::"):
		base = r.rustCrateRoot(importerAbsPath)
		segments = strings.Split(strings.TrimPrefix(path, "crate::"), "::")
	case strings.HasPrefix(path, "self::"):
		base = filepath.Dir(importerAbsPath)
		segments = strings.Split(strings.TrimPrefix(path, "self::"), "::")
	case strings.HasPrefix(path, "super::"):
		base = filepath.Dir(filepath.Dir(importerAbsPath))
		segments = strings.Split(strings.TrimPrefix(path, "super::"), "::")
	default:
		return "", false // extern-crate specifiers are never in-project
	}
	dir := base
	for i, seg := range segments {
		if i == len(segments)-1 {
			if candidate := filepath.Join(dir, seg+".rs"); r.files.Exists(candidate) {
				return candidate, true
			}
			if candidate := filepath.Join(dir, seg, "mod.rs"); r.files.Exists(candidate) {
				return candidate, true
			}
			return "", false
		}
		dir = filepath.Join(dir, seg)
	}
	return "", false
}

func (r *Resolver) rustCrateRoot(importerAbsPath string) string {
	if src := filepath.Join(r.root, "src"); dirContains(src, importerAbsPath) {
		return src
	}
	return r.root
}

func dirContains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && !strings.HasPrefix(rel, "..")
}

// resolveJava converts a dotted import path to a package directory plus
// a target class, per §4.5 (Java source roots are simply "wherever the
// package path is found"). A wildcard import's Source is package-only
// (e.g. "com.foo" for `import com.foo.*;`), so any file under that
// package satisfies the edge. A named or static import's Source keeps
// the class (and, for static imports, the member) appended to the
// package (e.g. "com.foo.Bar" or "com.foo.Bar.method"), so the trailing
// segment(s) must be stripped before the remainder is a package path,
// and the candidate file's own basename must match the class segment
// rather than merely share a directory suffix.
func (r *Resolver) resolveJava(imp model.Import) (string, bool) {
	segments := strings.Split(imp.Source, ".")
	if len(segments) == 0 || segments[0] == "" {
		return "", false
	}

	if imp.Kind == model.ImportNamespace {
		pkgPath := filepath.Join(segments...)
		for abs := range r.files.exists {
			if !strings.HasSuffix(abs, ".java") {
				continue
			}
			if strings.HasSuffix(filepath.Dir(abs), pkgPath) {
				return abs, true
			}
		}
		return "", false
	}

	className := segments[len(segments)-1]
	pkgSegments := segments[:len(segments)-1]
	if imp.Kind == model.ImportStatic && len(pkgSegments) > 0 {
		className = pkgSegments[len(pkgSegments)-1]
		pkgSegments = pkgSegments[:len(pkgSegments)-1]
	}
	pkgPath := filepath.Join(pkgSegments...)

	for abs := range r.files.exists {
		if !strings.HasSuffix(abs, ".java") {
			continue
		}
		if strings.TrimSuffix(filepath.Base(abs), ".java") != className {
			continue
		}
		if pkgPath == "" || strings.HasSuffix(filepath.Dir(abs), pkgPath) {
			return abs, true
		}
	}
	return "", false
}
