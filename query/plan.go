package query

import (
	"strings"

	"github.com/mleoca/ucn/model"
)

// RefactorKind is the proposed edit a plan() call synthesizes.
type RefactorKind string

const (
	RefactorAddParam    RefactorKind = "addParam"
	RefactorRemoveParam RefactorKind = "removeParam"
	RefactorRenameTo    RefactorKind = "renameTo"
)

// PlanOptions configures the plan query (§4.9).
type PlanOptions struct {
	Kind         RefactorKind
	Param        string // parameter name to add/remove
	DefaultValue string // default value for an added parameter
	RenameTo     string
	File         string
}

// PlanResult synthesizes a before/after signature for a proposed
// refactor and lists the call sites that would need to change — the
// same data verify() already computes, reused here rather than
// recomputed.
type PlanResult struct {
	Before     string
	After      string
	CallSites  []VerifiedCallSite
}

// Plan synthesizes a before/after signature for the requested refactor
// and reuses Verify's call-site analysis to list what would need to
// change.
func (e *Engine) Plan(name string, opts PlanOptions) (PlanResult, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok || sym.Fn == nil {
		return PlanResult{}, false
	}
	before := signatureText(name, sym.Fn.Params)
	after := before
	switch opts.Kind {
	case RefactorAddParam:
		params := append(append([]model.Param(nil), sym.Fn.Params...), model.Param{
			Name: opts.Param, HasDefault: opts.DefaultValue != "", Default: opts.DefaultValue, Optional: opts.DefaultValue != "",
		})
		after = signatureText(name, params)
	case RefactorRemoveParam:
		var params []model.Param
		for _, p := range sym.Fn.Params {
			if p.Name != opts.Param {
				params = append(params, p)
			}
		}
		after = signatureText(name, params)
	case RefactorRenameTo:
		after = signatureText(opts.RenameTo, sym.Fn.Params)
	}

	callSites, _ := e.Verify(name, VerifyOptions{File: opts.File})
	return PlanResult{Before: before, After: after, CallSites: callSites}, true
}

func signatureText(name string, params []model.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		text := p.Name
		if p.Type != "" {
			text += " " + p.Type
		}
		if p.HasDefault {
			text += "=" + p.Default
		}
		if p.IsRest {
			text = "..." + text
		}
		parts = append(parts, text)
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
