package query

import (
	"strings"

	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
)

// SmartOptions configures the smart query (§4.9).
type SmartOptions struct {
	WithTypes        bool
	IncludeMethods   bool
	IncludeUncertain bool
}

// SourceBlock is one piece of source text the smart/about/example
// queries attach, with the file/range it came from.
type SourceBlock struct {
	Name      string
	File      string
	StartLine int
	EndLine   int
	Source    string
}

// SmartResult bundles a symbol's own source with the source of every
// first-hop callee that resolves inside the project, and optionally
// any referenced type declaration.
type SmartResult struct {
	Symbol  SourceBlock
	Callees []SourceBlock
	Types   []SourceBlock
}

// Smart returns name's source plus its first-hop in-project callees'
// source (and, with WithTypes, the source of types referenced in its
// signature).
func (e *Engine) Smart(name string, opts SmartOptions) (SmartResult, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok || sym.Fn == nil {
		return SmartResult{}, false
	}
	fr, ok := e.Idx.File(sym.Record.File)
	if !ok {
		return SmartResult{}, false
	}
	result := SmartResult{Symbol: sourceBlockFor(sym.Record, fr.AbsPath)}

	seen := map[string]bool{sym.Record.Name + "\x00" + sym.Record.File: true}
	resolveOpts := index.ResolveOptions{IncludeMethods: opts.IncludeMethods, IncludeUncertain: opts.IncludeUncertain}
	for _, rc := range e.Idx.Callees(sym, resolveOpts) {
		if rc.Target == nil {
			continue
		}
		key := rc.Target.Record.Name + "\x00" + rc.Target.Record.File
		if seen[key] {
			continue
		}
		seen[key] = true
		calleeFR, ok := e.Idx.File(rc.Target.Record.File)
		if !ok {
			continue
		}
		result.Callees = append(result.Callees, sourceBlockFor(rc.Target.Record, calleeFR.AbsPath))
	}

	if opts.WithTypes {
		for _, typeName := range referencedTypeNames(sym.Fn) {
			typeSym, ok := e.Idx.Best(typeName)
			if !ok || typeSym.Type == nil {
				continue
			}
			typeFR, ok := e.Idx.File(typeSym.Record.File)
			if !ok {
				continue
			}
			result.Types = append(result.Types, sourceBlockFor(typeSym.Record, typeFR.AbsPath))
		}
	}
	return result, true
}

func sourceBlockFor(rec model.SymbolRecord, absPath string) SourceBlock {
	return SourceBlock{
		Name: rec.Name, File: rec.File, StartLine: rec.StartLine, EndLine: rec.EndLine,
		Source: snippet(absPath, rec.StartLine, rec.EndLine),
	}
}

// referencedTypeNames pulls every bare type identifier out of a
// function's parameter and return-type annotations, stripping generic
// arguments/array brackets/pointer-reference markers so the bare name
// matches a TypeDecl's Name.
func referencedTypeNames(fn *model.Function) []string {
	var names []string
	seen := map[string]bool{}
	add := func(raw string) {
		n := bareTypeName(raw)
		if n != "" && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, p := range fn.Params {
		add(p.Type)
	}
	add(fn.ReturnType)
	return names
}

func bareTypeName(raw string) string {
	s := raw
	for _, cut := range []string{"<", "[", "(", "*", "&"} {
		if i := strings.Index(s, cut); i >= 0 {
			s = s[:i]
		}
	}
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "::"); i >= 0 {
		s = s[i+2:]
	}
	return s
}
