package query

import (
	"github.com/mleoca/ucn/cachestore"
	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
)

// ContextOptions configures the context query (§4.9).
type ContextOptions struct {
	IncludeMethods   bool
	IncludeUncertain bool
	File             string
	Exclude          []string
}

// CallerInfo is one immediate caller, annotated with its own enclosing
// function.
type CallerInfo struct {
	File      string
	Line      int
	Enclosing *model.EnclosingFunction
}

// CalleeInfo is one immediate callee, annotated with a presentation
// weight (§4.9: "utility" for small, widely-called, or predicate-named
// functions; "normal" otherwise — heuristic, not contractual per §9).
type CalleeInfo struct {
	Name   string
	File   string
	Line   int
	Weight string
}

// ContextResult is the context query's composite answer.
type ContextResult struct {
	Symbol    model.SymbolRecord
	Callers   []CallerInfo
	Callees   []CalleeInfo
	Methods   []model.Function // populated only when Symbol is a class/interface/struct
	Expandable []cachestore.ExpandableItem
}

// Context resolves name to a symbol and reports its immediate callers,
// immediate callees (each weighted utility/normal), and for a type its
// method list. The returned Expandable list mirrors what the external
// protocol caches for an `expand N` follow-up; callers that want that
// behavior should Put() it into a cachestore.ExpandableCache themselves
// since this package has no opinion on cache lifetime.
func (e *Engine) Context(name string, opts ContextOptions) (ContextResult, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return ContextResult{}, false
	}
	if !filePattern(sym.Record.File, opts.File) || !pathMatches(sym.Record.File, nil, opts.Exclude) {
		return ContextResult{}, false
	}

	resolveOpts := index.ResolveOptions{IncludeMethods: opts.IncludeMethods, IncludeUncertain: opts.IncludeUncertain}
	result := ContextResult{Symbol: sym.Record}

	calleeCallCount := make(map[string]int) // name -> number of distinct call sites across the project, for the utility heuristic

	for _, rc := range e.Idx.Callers(sym, resolveOpts) {
		result.Callers = append(result.Callers, CallerInfo{File: rc.CallerFile, Line: rc.Call.Line, Enclosing: rc.Call.Enclosing})
	}

	if sym.Fn != nil {
		for _, rc := range e.Idx.Callees(sym, resolveOpts) {
			calleeName := rc.Call.Callee
			if rc.Target != nil {
				calleeName = rc.Target.Record.Name
				calleeCallCount[rc.Target.Record.Name] = rc.Target.Record.Usages.Calls
			}
			file := rc.CallerFile
			if rc.Target != nil {
				file = rc.Target.Record.File
			}
			result.Callees = append(result.Callees, CalleeInfo{Name: calleeName, File: file, Line: rc.Call.Line})
		}
		for i := range result.Callees {
			result.Callees[i].Weight = calleeWeight(result.Callees[i].Name, calleeCallCount[result.Callees[i].Name])
		}
	}

	if sym.Type != nil {
		result.Methods = sym.Type.Members
	}

	result.Expandable = buildExpandable(result)
	return result, true
}

// calleeWeight applies §4.9's heuristic: a utility is a widely-called
// function (3+ callers project-wide) or one whose name reads as a
// short predicate (is/has/can, or <=4 characters).
func calleeWeight(name string, callerCount int) string {
	if callerCount >= 3 {
		return "utility"
	}
	lower := name
	for _, prefix := range []string{"is", "has", "can"} {
		if len(lower) > len(prefix) && lower[:len(prefix)] == prefix {
			return "utility"
		}
	}
	if len(name) <= 4 {
		return "utility"
	}
	return "normal"
}

func buildExpandable(r ContextResult) []cachestore.ExpandableItem {
	var items []cachestore.ExpandableItem
	for _, c := range r.Callers {
		items = append(items, cachestore.ExpandableItem{Label: "caller", File: c.File, StartLine: c.Line, EndLine: c.Line})
	}
	for _, c := range r.Callees {
		items = append(items, cachestore.ExpandableItem{Label: "callee:" + c.Name, File: c.File, StartLine: c.Line, EndLine: c.Line})
	}
	for _, m := range r.Methods {
		items = append(items, cachestore.ExpandableItem{Label: "method:" + m.Name, File: r.Symbol.File, StartLine: m.StartLine, EndLine: m.EndLine})
	}
	return items
}
