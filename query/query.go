// Package query implements the read-only Query Engine (§4.9): one
// function per operation, each taking the built Index plus a small
// typed options struct and returning a plain data result — never a
// thrown error for a resolution failure, per §7's taxonomy. The one
// operation with an error return is DiffImpact, which reports a failed
// git invocation. No operation panics on an unknown option value.
package query

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mleoca/ucn/extract"
	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/languages"
	"github.com/mleoca/ucn/model"
	"github.com/mleoca/ucn/parse"
)

// Engine wraps a built Index with the project root needed to re-read
// source text on demand (§5's memory discipline: source is never
// retained, so any query that wants a snippet re-reads the file).
type Engine struct {
	Idx  *index.Index
	Root string
}

// New returns an Engine over an already-built Index.
func New(idx *index.Index) *Engine {
	return &Engine{Idx: idx, Root: idx.Root}
}

// NotFound is the structured "resolution failure" result §7 item 3
// requires: an empty result plus a did-you-mean list of symbols whose
// name contains the query substring.
type NotFound struct {
	Query       string
	DidYouMean  []string
}

func (e *Engine) didYouMean(name string) []string {
	records := e.Idx.FindSubstring(name)
	seen := make(map[string]bool, len(records))
	var out []string
	for _, r := range records {
		if !seen[r.Name] {
			seen[r.Name] = true
			out = append(out, r.Name)
		}
	}
	return out
}

// NotFoundFor builds the §7 item 3 resolution-failure result for a
// query argument that didn't resolve to anything: an empty result plus
// a did-you-mean list of in-project names containing the query as a
// substring. Every operation that returns an (_, ok bool) pair on a
// name miss should report this back to its caller instead of a bare
// false, so callers across the CLI and the remote-procedure surface
// get the same suggestion behavior.
func (e *Engine) NotFoundFor(query string) NotFound {
	return NotFound{Query: query, DidYouMean: e.didYouMean(query)}
}

// pathMatches implements the shared exclude/in path-pattern filter
// used by find/usages/deadcode/etc. in §4.9: `in` restricts to paths
// matching any of its doublestar patterns, `exclude` removes paths
// matching any of its own.
func pathMatches(relPath string, in, exclude []string) bool {
	if len(in) > 0 {
		matched := false
		for _, pat := range in {
			if ok, _ := doublestar.Match(pat, relPath); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pat := range exclude {
		if ok, _ := doublestar.Match(pat, relPath); ok {
			return false
		}
	}
	return true
}

// filePattern reports whether relPath satisfies an optional `file`
// glob filter (empty pattern always matches).
func filePattern(relPath, pattern string) bool {
	if pattern == "" {
		return true
	}
	ok, _ := doublestar.Match(pattern, relPath)
	if ok {
		return true
	}
	return strings.Contains(relPath, pattern)
}

// readLines reads an absolute file path and returns its lines,
// 1-indexed (readLines(...)[0] is unused; line N is at index N). Used
// by every query that must produce a source snippet. Returns nil, and
// lets callers degrade gracefully, when the file can no longer be read
// (§7 item 4: I/O failure at query time).
func readLines(absPath string) []string {
	f, err := os.Open(absPath)
	if err != nil {
		return nil
	}
	defer f.Close()
	lines := []string{""}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// snippet renders lines [start, end] (1-based, inclusive) of absPath,
// joined with newlines. Returns "" if the file can't be read or the
// range is out of bounds.
func snippet(absPath string, start, end int) string {
	lines := readLines(absPath)
	if lines == nil || start < 1 || start >= len(lines) {
		return ""
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}
	return strings.Join(lines[start:end+1], "\n")
}

func (e *Engine) abs(relPath string) string {
	return filepath.Join(e.Root, filepath.FromSlash(relPath))
}

// reparse re-parses a file on demand for queries that need to walk its
// syntax tree again (usages, verify) rather than just slice lines out
// of it. Returns ok=false on any I/O or parse failure, matching §7
// items 2 and 4 — the caller degrades (empty result) rather than
// propagating an error.
func (e *Engine) reparse(fr *model.FileRecord) (extract.Extractor, []byte, *sitter.Node, bool) {
	ext := extract.ForLanguage(fr.Language)
	if ext == nil {
		return nil, nil, nil, false
	}
	source, err := os.ReadFile(fr.AbsPath)
	if err != nil {
		return nil, nil, nil, false
	}
	grammar := e.Idx.Grammar(fr.Language, languages.IsTSX(fr.AbsPath))
	if grammar == nil {
		return nil, nil, nil, false
	}
	tree, err := parse.Parse(context.Background(), grammar, source, nil)
	if err != nil {
		return nil, nil, nil, false
	}
	return ext, source, tree.RootNode(), true
}

// sortSymbolRecords orders records by total usage count descending,
// then by file path and start line; it does not consult the
// disambiguation score. Used by deadcode.
func sortSymbolRecords(records []model.SymbolRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].Usages.Total(), records[j].Usages.Total()
		if ti != tj {
			return ti > tj
		}
		if records[i].File != records[j].File {
			return records[i].File < records[j].File
		}
		return records[i].StartLine < records[j].StartLine
	})
}
