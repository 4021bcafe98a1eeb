package query

import "github.com/mleoca/ucn/index"

// ImpactOptions configures the impact query (§4.9).
type ImpactOptions struct {
	File    string
	Exclude []string
}

// CallSite is one call that resolves to the queried symbol, with
// verbatim argument text.
type CallSite struct {
	File      string
	Line      int
	Arguments []string
}

// Impact groups every call site resolving to name by caller file.
func (e *Engine) Impact(name string, opts ImpactOptions) (map[string][]CallSite, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return nil, false
	}
	if !filePattern(sym.Record.File, opts.File) {
		return nil, false
	}
	byFile := map[string][]CallSite{}
	for _, rc := range e.Idx.Callers(sym, index.ResolveOptions{IncludeMethods: true}) {
		if !pathMatches(rc.CallerFile, nil, opts.Exclude) {
			continue
		}
		var args []string
		for _, a := range rc.Call.Arguments {
			args = append(args, a.Text)
		}
		byFile[rc.CallerFile] = append(byFile[rc.CallerFile], CallSite{File: rc.CallerFile, Line: rc.Call.Line, Arguments: args})
	}
	return byFile, true
}
