package query

import (
	"strings"

	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
)

// Related finds symbols in the same file as name, symbols whose name
// shares a morphological root with name, and symbols sharing at least
// one caller or callee with name (§4.9).
func (e *Engine) Related(name string) ([]model.SymbolRecord, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return nil, false
	}

	seen := map[string]bool{sym.Record.Name + "\x00" + sym.Record.File: true}
	var out []model.SymbolRecord

	add := func(r model.SymbolRecord) {
		key := r.Name + "\x00" + r.File
		if !seen[key] {
			seen[key] = true
			out = append(out, r)
		}
	}

	if fr, ok := e.Idx.File(sym.Record.File); ok {
		for _, fn := range fr.Functions {
			add(model.SymbolRecord{Name: fn.Name, File: sym.Record.File, Kind: "function", StartLine: fn.StartLine, EndLine: fn.EndLine})
		}
		for _, td := range fr.Types {
			add(model.SymbolRecord{Name: td.Name, File: sym.Record.File, Kind: string(td.Kind), StartLine: td.StartLine, EndLine: td.EndLine})
		}
	}

	root := morphRoot(sym.Record.Name)
	for _, r := range e.Idx.FindSubstring(root) {
		if morphRoot(r.Name) == root {
			add(r)
		}
	}

	// A symbol "shares a caller" with name when that caller's own
	// callees include some other in-project symbol; a symbol "shares a
	// callee" with name when it too calls one of name's callees.
	resolveOpts := index.ResolveOptions{IncludeMethods: true, IncludeUncertain: true}
	for _, rc := range e.Idx.Callers(sym, resolveOpts) {
		if rc.Call.Enclosing == nil {
			continue
		}
		callerSym, ok := e.Idx.Best(rc.Call.Enclosing.Name)
		if !ok {
			continue
		}
		for _, sibling := range e.Idx.Callees(callerSym, resolveOpts) {
			if sibling.Target != nil && sibling.Target.Record.Name != sym.Record.Name {
				add(sibling.Target.Record)
			}
		}
	}
	for _, callee := range e.Idx.Callees(sym, resolveOpts) {
		if callee.Target == nil {
			continue
		}
		for _, otherCaller := range e.Idx.Callers(callee.Target, resolveOpts) {
			if otherCaller.Call.Enclosing != nil && otherCaller.Call.Enclosing.Name != sym.Record.Name {
				if s, ok := e.Idx.Best(otherCaller.Call.Enclosing.Name); ok {
					add(s.Record)
				}
			}
		}
	}

	return out, true
}

// morphRoot is a cheap morphological-root approximation: lowercase,
// strip one common verb/noun suffix. Not a real stemmer: it groups
// getUser/getUsers-style families, but not names that reorder the
// parts (userGetter).
func morphRoot(name string) string {
	s := strings.ToLower(name)
	for _, suffix := range []string{"ing", "ers", "er", "ed", "es", "s"} {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix)+2 {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return s
}
