package query

import (
	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
)

// VerifyOptions configures the verify query (§4.9).
type VerifyOptions struct {
	File string
}

// VerifyVerdict classifies one call site against the symbol's
// parameter list.
type VerifyVerdict string

const (
	VerdictOK              VerifyVerdict = "ok"
	VerdictMissingRequired VerifyVerdict = "missing-required"
	VerdictExtraArg        VerifyVerdict = "extra-arg"
	VerdictUncertain       VerifyVerdict = "uncertain"
)

// VerifiedCallSite is one resolved call site plus its argument counts
// and the verdict comparing them against the target's parameter list.
type VerifiedCallSite struct {
	File      string
	Line      int
	Positional int
	Named      int
	Verdict    VerifyVerdict
}

// Verify checks every resolved call site for name against its
// parameter list's required/optional/default/rest flags.
func (e *Engine) Verify(name string, opts VerifyOptions) ([]VerifiedCallSite, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return nil, false
	}
	if !filePattern(sym.Record.File, opts.File) {
		return nil, false
	}
	var out []VerifiedCallSite
	for _, rc := range e.Idx.Callers(sym, index.ResolveOptions{IncludeMethods: true, IncludeUncertain: true}) {
		positional, named := 0, 0
		for _, a := range rc.Call.Arguments {
			if a.IsNamed {
				named++
			} else {
				positional++
			}
		}
		verdict := VerdictUncertain
		if sym.Fn != nil {
			verdict = classifyCallSite(sym.Fn.Params, positional, named, rc.Call.Arguments)
		}
		out = append(out, VerifiedCallSite{File: rc.CallerFile, Line: rc.Call.Line, Positional: positional, Named: named, Verdict: verdict})
	}
	return out, true
}

func classifyCallSite(params []model.Param, positional, named int, args []model.Argument) VerifyVerdict {
	required := 0
	hasRest := false
	for _, p := range params {
		if p.IsRest {
			hasRest = true
			continue
		}
		if !p.Optional && !p.HasDefault {
			required++
		}
	}
	namedNames := map[string]bool{}
	for _, a := range args {
		if a.IsNamed {
			namedNames[a.Name] = true
		}
	}
	covered := positional
	for _, p := range params {
		if p.IsRest {
			continue
		}
		if namedNames[p.Name] {
			covered++
		}
	}
	if covered < required && !hasRest {
		return VerdictMissingRequired
	}
	if !hasRest && positional+named > len(params) {
		return VerdictExtraArg
	}
	return VerdictOK
}
