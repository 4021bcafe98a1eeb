package query

import (
	"context"

	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
	"github.com/mleoca/ucn/vcs"
)

// DiffImpactOptions configures the diff-impact query (§4.9).
type DiffImpactOptions struct {
	Base   string // base revision; empty means working-tree vs HEAD
	Staged bool   // use staged changes instead of base
	File   string // restrict to one file
}

// AffectedSymbol is one symbol whose span overlaps a changed hunk, with
// every resolved caller.
type AffectedSymbol struct {
	Symbol  model.SymbolRecord
	Hunk    vcs.Hunk
	Callers []CallerInfo
}

// DiffImpact asks the vcs collaborator for changed hunks, maps each
// hunk to the symbol(s) whose span it overlaps, and lists every caller
// of each affected symbol.
func (e *Engine) DiffImpact(ctx context.Context, opts DiffImpactOptions) ([]AffectedSymbol, error) {
	var hunks []vcs.Hunk
	var err error
	if opts.Staged {
		hunks, err = vcs.StagedHunks(ctx, e.Root)
	} else {
		hunks, err = vcs.ChangedHunks(ctx, e.Root, opts.Base)
	}
	if err != nil {
		return nil, err
	}

	var out []AffectedSymbol
	for _, h := range hunks {
		if opts.File != "" && h.File != opts.File {
			continue
		}
		fr, ok := e.Idx.File(h.File)
		if !ok {
			continue
		}
		for _, sym := range e.symbolsOverlapping(fr, h) {
			callers := e.Idx.Callers(sym, index.ResolveOptions{IncludeMethods: true, IncludeUncertain: true})
			var callerInfos []CallerInfo
			for _, rc := range callers {
				callerInfos = append(callerInfos, CallerInfo{File: rc.CallerFile, Line: rc.Call.Line, Enclosing: rc.Call.Enclosing})
			}
			out = append(out, AffectedSymbol{Symbol: sym.Record, Hunk: h, Callers: callerInfos})
		}
	}
	return out, nil
}

// symbolsOverlapping finds every indexed symbol in fr whose span
// overlaps hunk's new-side line range, re-looked-up through the name
// index (matching on file+startLine) so the richer Symbol wrapper is
// returned rather than a bare name.
func (e *Engine) symbolsOverlapping(fr *model.FileRecord, h vcs.Hunk) []*index.Symbol {
	var out []*index.Symbol
	resolve := func(name string, start, end int) {
		if !spansOverlap(start, end, h.StartLine, h.EndLine) {
			return
		}
		for _, cand := range e.Idx.Entries(name) {
			if cand.Record.File == fr.RelPath && cand.Record.StartLine == start {
				out = append(out, cand)
				return
			}
		}
	}
	for _, fn := range fr.Functions {
		resolve(fn.Name, fn.StartLine, fn.EndLine)
	}
	for _, td := range fr.Types {
		resolve(td.Name, td.StartLine, td.EndLine)
		for _, m := range td.Members {
			resolve(m.Name, m.StartLine, m.EndLine)
		}
	}
	return out
}

func spansOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart <= bEnd && bStart <= aEnd
}
