package query

import (
	"sort"

	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
)

// ExampleOptions configures the example query (§4.9).
type ExampleOptions struct {
	MaxExamples  int // default 3
	IncludeTests bool
	Context      int // lines of source around each call site, default 2
}

// ExampleSite is one real call site picked to illustrate how name is
// used in practice, with a source snippet centered on the call.
type ExampleSite struct {
	File      string
	Line      int
	Enclosing string
	Arguments []string
	Snippet   string
}

// Example returns a handful of real call sites for name, favoring
// non-test callers and diverse argument shapes over raw call count —
// the same source-snippet-on-demand contract §5 asks for, reusing the
// callgraph resolution `impact`/`context` already rely on rather than
// re-walking source text for occurrences.
func (e *Engine) Example(name string, opts ExampleOptions) ([]ExampleSite, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return nil, false
	}

	max := opts.MaxExamples
	if max <= 0 {
		max = 3
	}
	ctx := opts.Context
	if ctx <= 0 {
		ctx = 2
	}

	callers := e.Idx.Callers(sym, index.ResolveOptions{IncludeMethods: true, IncludeUncertain: false})

	var candidates []ExampleSite
	for _, rc := range callers {
		fr, ok := e.Idx.File(rc.CallerFile)
		if !ok {
			continue
		}
		if fr.IsTestFile && !opts.IncludeTests {
			continue
		}
		site := ExampleSite{File: rc.CallerFile, Line: rc.Call.Line, Arguments: argTexts(rc.Call.Arguments)}
		if rc.Call.Enclosing != nil {
			site.Enclosing = rc.Call.Enclosing.Name
		}
		site.Snippet = snippet(fr.AbsPath, rc.Call.Line-ctx, rc.Call.Line+ctx)
		candidates = append(candidates, site)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ai, aj := len(candidates[i].Arguments), len(candidates[j].Arguments)
		if ai != aj {
			return ai > aj // richer call sites make better examples
		}
		if candidates[i].File != candidates[j].File {
			return candidates[i].File < candidates[j].File
		}
		return candidates[i].Line < candidates[j].Line
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates, true
}

func argTexts(args []model.Argument) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, a.Text)
	}
	return out
}
