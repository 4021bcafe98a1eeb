package query

import (
	"strings"

	"github.com/mleoca/ucn/model"
)

// TestsOptions configures the tests query (§4.9).
type TestsOptions struct {
	CallsOnly bool // filter to entries that call name, or whose enclosing test description mentions it
}

// TestReference is one test-file reference to the queried symbol.
type TestReference struct {
	File      string
	Line      int
	Enclosing string // enclosing test function's name, if any
}

// Tests returns every reference to name found inside test files
// (§6's test-file heuristic, already applied at index time via
// FileRecord.IsTestFile).
func (e *Engine) Tests(name string, opts TestsOptions) []TestReference {
	var out []TestReference
	for _, relPath := range e.Idx.SortedFilePaths() {
		fr, ok := e.Idx.File(relPath)
		if !ok || !fr.IsTestFile || fr.Stale || fr.ParseError {
			continue
		}
		ext, source, root, ok := e.reparse(fr)
		if !ok {
			continue
		}
		for _, u := range ext.FindUsages(source, root, name) {
			if !u.IsInCodeOnlyToken {
				continue
			}
			enclosing := enclosingFunctionAt(fr, u.Line)
			if opts.CallsOnly {
				isCall := u.Kind == "call"
				mentionsName := enclosing != "" && strings.Contains(strings.ToLower(enclosing), strings.ToLower(name))
				if !isCall && !mentionsName {
					continue
				}
			}
			out = append(out, TestReference{File: relPath, Line: u.Line, Enclosing: enclosing})
		}
	}
	return out
}

// enclosingFunctionAt finds the name of the function whose span
// contains line, for attributing a usage to its enclosing test case.
func enclosingFunctionAt(fr *model.FileRecord, line int) string {
	for _, fn := range fr.Functions {
		if fn.StartLine <= line && line <= fn.EndLine {
			return fn.Name
		}
	}
	for _, td := range fr.Types {
		for _, m := range td.Members {
			if m.StartLine <= line && line <= m.EndLine {
				return m.Name
			}
		}
	}
	return ""
}
