package query

// AboutOptions configures the about query (§4.9): a composite view
// over context/tests, with a cap on how many callers/callees to embed.
type AboutOptions struct {
	MaxCallers int
	MaxCallees int
	IncludeMethods   bool
	IncludeUncertain bool
}

// AboutResult is the about query's composite answer.
type AboutResult struct {
	Symbol     SourceBlock
	Callers    []CallerInfo
	Callees    []CalleeInfo
	Tests      []TestReference
	References int
}

// About composes the symbol's own source, its first N callers/callees,
// its referencing tests, and a reference count.
func (e *Engine) About(name string, opts AboutOptions) (AboutResult, bool) {
	sym, ok := e.Idx.Best(name)
	if !ok {
		return AboutResult{}, false
	}
	fr, ok := e.Idx.File(sym.Record.File)
	if !ok {
		return AboutResult{}, false
	}

	ctx, _ := e.Context(name, ContextOptions{IncludeMethods: opts.IncludeMethods, IncludeUncertain: opts.IncludeUncertain})

	maxCallers, maxCallees := opts.MaxCallers, opts.MaxCallees
	if maxCallers <= 0 {
		maxCallers = 5
	}
	if maxCallees <= 0 {
		maxCallees = 5
	}
	callers := ctx.Callers
	if len(callers) > maxCallers {
		callers = callers[:maxCallers]
	}
	callees := ctx.Callees
	if len(callees) > maxCallees {
		callees = callees[:maxCallees]
	}

	return AboutResult{
		Symbol:     sourceBlockFor(sym.Record, fr.AbsPath),
		Callers:    callers,
		Callees:    callees,
		Tests:      e.Tests(name, TestsOptions{}),
		References: sym.Record.Usages.Total() - sym.Record.Usages.Definitions,
	}, true
}
