// Package discovery walks a project directory, honoring ignore rules
// and detecting test files and the project root, the way §4.7
// describes. It never reads file contents beyond a stat call — parsing
// is the extractor layer's job.
package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mleoca/ucn/languages"
)

// defaultIgnorePatterns mirrors the teacher's own .gitignore-aware
// directory pruning in graph/initialize.go, generalized to a glob list
// instead of a fixed name set so project-local patterns compose with it.
var defaultIgnorePatterns = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
	"**/dist/**",
	"**/build/**",
	"**/target/**",
	"**/.ucn-cache/**",
	"**/__pycache__/**",
	"**/*.pyc",
	"**/.venv/**",
	"**/venv/**",
	"**/.mypy_cache/**",
	"**/.pytest_cache/**",
	"**/coverage/**",
}

// projectMarkers are checked, in order, while climbing from a starting
// directory toward the filesystem root to detect the project root.
var projectMarkers = []string{".git", "go.mod", "package.json", "pyproject.toml", "Cargo.toml", "pom.xml", "build.gradle"}

// Options configures a Walk call.
type Options struct {
	// ExtraIgnore is appended to the default ignore glob list (from a
	// project's .ucn.yml, per SPEC_FULL's ambient configuration).
	ExtraIgnore []string
	// FollowSymlinks controls whether symlinked directories are
	// descended into. Defaults to true per §4.7 when Options is the
	// zero value; set FollowSymlinksSet to override with false.
	FollowSymlinks    bool
	FollowSymlinksSet bool
}

func (o Options) followSymlinks() bool {
	if !o.FollowSymlinksSet {
		return true
	}
	return o.FollowSymlinks
}

// FindProjectRoot climbs from start looking for a project marker,
// falling back to start itself if none is found.
func FindProjectRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// Walk returns every supported source file under root, project-
// relative paths using forward slashes, sorted lexicographically (the
// ordering §5 requires queries to rely on).
func Walk(root string, opts Options) ([]string, error) {
	patterns := make([]string, 0, len(defaultIgnorePatterns)+len(opts.ExtraIgnore))
	patterns = append(patterns, defaultIgnorePatterns...)
	patterns = append(patterns, opts.ExtraIgnore...)

	var out []string
	walkFn := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, never fail the whole walk
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if isIgnored(rel+"/", patterns) {
				return filepath.SkipDir
			}
			return nil
		}
		if isIgnored(rel, patterns) {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !supportedExt(ext) {
			return nil
		}
		out = append(out, rel)
		return nil
	}

	if opts.followSymlinks() {
		if err := walkFollowingSymlinks(root, walkFn); err != nil {
			return nil, err
		}
	} else if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

func supportedExt(ext string) bool {
	for _, supported := range languages.SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func isIgnored(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// walkFollowingSymlinks behaves like filepath.WalkDir but resolves
// symlinked directories instead of treating them as leaf entries.
func walkFollowingSymlinks(root string, fn fs_WalkDirFunc) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err == nil && d.Type()&os.ModeSymlink != 0 {
			resolved, statErr := os.Stat(path)
			if statErr == nil && resolved.IsDir() {
				entries, readErr := os.ReadDir(path)
				if readErr == nil {
					for _, entry := range entries {
						if walkErr := filepath.WalkDir(filepath.Join(path, entry.Name()), fn); walkErr != nil && walkErr != filepath.SkipDir {
							return walkErr
						}
					}
				}
				return nil
			}
		}
		return fn(path, d, err)
	})
}

type fs_WalkDirFunc = filepath.WalkDirFunc

var testFilePathSubstrings = []string{"test", "spec", "__tests__", "__mocks__", "fixture", "mock"}

var testFileNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`_test\.go$`),
	regexp.MustCompile(`^test_.*\.py$`),
	regexp.MustCompile(`.*_test\.py$`),
	regexp.MustCompile(`.*Test\.java$`),
	regexp.MustCompile(`.*Tests\.java$`),
	regexp.MustCompile(`\.test\.[jt]sx?$`),
	regexp.MustCompile(`\.spec\.[jt]sx?$`),
}

// IsTestFile applies the §6 test-file heuristic: a path-substring match
// (case-insensitive) or a per-language filename pattern.
func IsTestFile(relPath string) bool {
	lower := strings.ToLower(relPath)
	for _, sub := range testFilePathSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	base := filepath.Base(relPath)
	for _, pattern := range testFileNamePatterns {
		if pattern.MatchString(base) {
			return true
		}
	}
	if strings.Contains(relPath, "tests/") && strings.HasSuffix(relPath, ".rs") {
		return true
	}
	return false
}
