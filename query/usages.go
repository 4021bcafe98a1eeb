package query

import "github.com/mleoca/ucn/model"

// UsagesOptions configures the usages query (§4.9).
type UsagesOptions struct {
	Exclude []string
	In      []string
	CodeOnly bool // omit occurrences inside comments/string literals
	Context  int  // lines of context before/after to attach
}

// UsageOccurrence is one syntactic occurrence of a name, with the file
// it was found in and optional surrounding context lines.
type UsageOccurrence struct {
	model.Usage
	File    string
	Before  []string
	After   []string
}

// Usages returns every syntactic occurrence of name across the
// project, classified per extract.FindUsages (§4.3's findUsagesInCode
// contract), filtered by path pattern and optionally by codeOnly.
func (e *Engine) Usages(name string, opts UsagesOptions) []UsageOccurrence {
	var out []UsageOccurrence
	for _, relPath := range e.Idx.SortedFilePaths() {
		if !pathMatches(relPath, opts.In, opts.Exclude) {
			continue
		}
		fr, ok := e.Idx.File(relPath)
		if !ok || fr.Stale || fr.ParseError {
			continue
		}
		ext, source, root, ok := e.reparse(fr)
		if !ok {
			continue
		}
		for _, u := range ext.FindUsages(source, root, name) {
			if opts.CodeOnly && !u.IsInCodeOnlyToken {
				continue
			}
			occ := UsageOccurrence{Usage: u, File: relPath}
			if opts.Context > 0 {
				lines := readLines(fr.AbsPath)
				occ.Before = contextSlice(lines, u.Line-opts.Context, u.Line-1)
				occ.After = contextSlice(lines, u.Line+1, u.Line+opts.Context)
			}
			out = append(out, occ)
		}
	}
	return out
}

func contextSlice(lines []string, start, end int) []string {
	if lines == nil {
		return nil
	}
	if start < 1 {
		start = 1
	}
	if end >= len(lines) {
		end = len(lines) - 1
	}
	if start > end {
		return nil
	}
	return append([]string(nil), lines[start:end+1]...)
}
