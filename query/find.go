package query

import "github.com/mleoca/ucn/model"

// FindOptions configures the find query (§4.9).
type FindOptions struct {
	File    string   // restrict to a single-file glob/substring
	Exact   bool     // match name exactly instead of by substring
	Exclude []string // path patterns to drop
	In      []string // path patterns to require
}

// Find returns every SymbolRecord matching name, sorted by total usage
// count descending then disambiguation score.
func (e *Engine) Find(name string, opts FindOptions) []model.SymbolRecord {
	var records []model.SymbolRecord
	if opts.Exact {
		records = e.Idx.FindExact(name)
	} else {
		records = e.Idx.FindSubstring(name)
	}
	out := records[:0]
	for _, r := range records {
		if !pathMatches(r.File, opts.In, opts.Exclude) {
			continue
		}
		if !filePattern(r.File, opts.File) {
			continue
		}
		out = append(out, r)
	}
	return out
}
