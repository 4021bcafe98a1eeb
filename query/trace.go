package query

import "github.com/mleoca/ucn/index"

// TraceOptions configures the trace query (§4.9).
type TraceOptions struct {
	Depth            int
	IncludeMethods   bool
	IncludeUncertain bool
}

// TraceNode is one node in the callee tree trace() produces. Circular
// marks a node that revisits a (name, file) pair already on the
// current DFS path rather than recursing further (§8 boundary: "Cycles
// ... depth-limited BFS terminates" — trace applies the same rule to
// its own DFS).
type TraceNode struct {
	Name     string
	File     string
	Line     int
	Circular bool
	Children []TraceNode
}

// Trace builds the callee tree rooted at name, DFS up to depth.
func (e *Engine) Trace(name string, opts TraceOptions) (TraceNode, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return TraceNode{}, false
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = 5
	}
	resolveOpts := index.ResolveOptions{IncludeMethods: opts.IncludeMethods, IncludeUncertain: opts.IncludeUncertain}
	visited := map[string]bool{sym.Record.Name + "\x00" + sym.Record.File: true}
	root := TraceNode{Name: sym.Record.Name, File: sym.Record.File, Line: sym.Record.StartLine}
	root.Children = e.traceChildren(sym, resolveOpts, depth-1, visited)
	return root, true
}

func (e *Engine) traceChildren(sym *index.Symbol, opts index.ResolveOptions, remaining int, visited map[string]bool) []TraceNode {
	if remaining <= 0 || sym.Fn == nil {
		return nil
	}
	var out []TraceNode
	for _, rc := range e.Idx.Callees(sym, opts) {
		if rc.Target == nil {
			continue
		}
		key := rc.Target.Record.Name + "\x00" + rc.Target.Record.File
		node := TraceNode{Name: rc.Target.Record.Name, File: rc.Target.Record.File, Line: rc.Call.Line}
		if visited[key] {
			node.Circular = true
			out = append(out, node)
			continue
		}
		nextVisited := make(map[string]bool, len(visited)+1)
		for k := range visited {
			nextVisited[k] = true
		}
		nextVisited[key] = true
		node.Children = e.traceChildren(rc.Target, opts, remaining-1, nextVisited)
		out = append(out, node)
	}
	return out
}
