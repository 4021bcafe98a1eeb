package query

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/index"
)

const integrationGoSource = `package sample

// Widget is a small exported type with one method.
type Widget struct {
	Name string
}

func (w *Widget) Describe() string {
	return w.Name
}

// Helper is called from Run but never from a test file.
func Helper(a int) int {
	return a + 1
}

func Run() int {
	return Helper(1)
}

func unused() int {
	return 0
}
`

func buildSampleEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	abs := filepath.Join(root, "sample.go")
	require.NoError(t, os.WriteFile(abs, []byte(integrationGoSource), 0o644))

	idx, err := index.Build(context.Background(), root, index.BuildOptions{})
	require.NoError(t, err)
	return New(idx)
}

func TestEngineFindExact(t *testing.T) {
	eng := buildSampleEngine(t)
	records := eng.Find("Helper", FindOptions{Exact: true})
	require.Len(t, records, 1)
	assert.Equal(t, "sample.go", records[0].File)
}

func TestEngineFindSubstringWithFileFilter(t *testing.T) {
	eng := buildSampleEngine(t)
	records := eng.Find("elp", FindOptions{File: "sample.go"})
	require.Len(t, records, 1)
	assert.Equal(t, "Helper", records[0].Name)

	none := eng.Find("elp", FindOptions{File: "other.go"})
	assert.Empty(t, none)
}

func TestEngineDeadcodeFindsUnusedUnexportedFunction(t *testing.T) {
	eng := buildSampleEngine(t)
	dead := eng.Deadcode(DeadcodeOptions{})

	var names []string
	for _, d := range dead {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "unused")
	assert.NotContains(t, names, "Helper") // exported, excluded by default
	assert.NotContains(t, names, "Run")    // exported, excluded by default
}

func TestEngineDeadcodeIncludeExportedSurfacesRun(t *testing.T) {
	eng := buildSampleEngine(t)
	dead := eng.Deadcode(DeadcodeOptions{IncludeExported: true})

	var names []string
	for _, d := range dead {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "Run") // exported but never called in-project
}

func TestEngineStatsCountsFilesLinesAndSymbols(t *testing.T) {
	eng := buildSampleEngine(t)
	stats := eng.Stats()

	assert.Equal(t, 1, stats.TotalFiles)
	assert.Equal(t, 1, stats.FilesByLang["go"])
	assert.Equal(t, 3, stats.SymbolsByKind["function"]) // Helper, Run, unused
	assert.Equal(t, 1, stats.SymbolsByKind["method"])   // Describe
	assert.Equal(t, 1, stats.SymbolsByKind["struct"])
}

func TestEngineFileExportsListsGoUppercaseNames(t *testing.T) {
	eng := buildSampleEngine(t)
	exports, ok := eng.FileExports("sample.go")
	require.True(t, ok)

	var names []string
	for _, e := range exports {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "Widget")
	assert.Contains(t, names, "Helper")
	assert.Contains(t, names, "Run")
	assert.NotContains(t, names, "unused")
}

func TestEngineFileExportsUnknownFile(t *testing.T) {
	eng := buildSampleEngine(t)
	_, ok := eng.FileExports("missing.go")
	assert.False(t, ok)
}

func TestEngineApiAcrossWholeProject(t *testing.T) {
	eng := buildSampleEngine(t)
	api := eng.Api("")
	require.Contains(t, api, "sample.go")
	assert.NotEmpty(t, api["sample.go"])
}

func TestEngineVerifyAcceptsCallWithAllRequiredArguments(t *testing.T) {
	eng := buildSampleEngine(t)
	sites, ok := eng.Verify("Helper", VerifyOptions{})
	require.True(t, ok)
	require.Len(t, sites, 1)
	assert.Equal(t, VerdictOK, sites[0].Verdict)
	assert.Equal(t, 1, sites[0].Positional)
}

func TestEngineVerifyUnknownNameReturnsNotFound(t *testing.T) {
	eng := buildSampleEngine(t)
	_, ok := eng.Verify("DoesNotExist", VerifyOptions{})
	assert.False(t, ok)

	nf := eng.NotFoundFor("DoesNotExist")
	assert.Equal(t, "DoesNotExist", nf.Query)
	assert.Empty(t, nf.DidYouMean)
}

func TestEngineNotFoundForSuggestsSubstringMatches(t *testing.T) {
	eng := buildSampleEngine(t)
	nf := eng.NotFoundFor("Help")
	assert.Contains(t, nf.DidYouMean, "Helper")
}

func TestEngineImpactGroupsCallSitesByFile(t *testing.T) {
	eng := buildSampleEngine(t)
	byFile, ok := eng.Impact("Helper", ImpactOptions{})
	require.True(t, ok)
	require.Contains(t, byFile, "sample.go")
	require.Len(t, byFile["sample.go"], 1)
	assert.Equal(t, []string{"1"}, byFile["sample.go"][0].Arguments)
}

func TestEngineImpactUnknownNameReturnsFalse(t *testing.T) {
	eng := buildSampleEngine(t)
	_, ok := eng.Impact("DoesNotExist", ImpactOptions{})
	assert.False(t, ok)
}

func TestEngineContextReportsCallersAndCallees(t *testing.T) {
	eng := buildSampleEngine(t)

	helperCtx, ok := eng.Context("Helper", ContextOptions{})
	require.True(t, ok)
	require.Len(t, helperCtx.Callers, 1)
	assert.Equal(t, "Run", helperCtx.Callers[0].Enclosing.Name)

	runCtx, ok := eng.Context("Run", ContextOptions{})
	require.True(t, ok)
	require.Len(t, runCtx.Callees, 1)
	assert.Equal(t, "Helper", runCtx.Callees[0].Name)
	assert.Equal(t, "normal", runCtx.Callees[0].Weight)
}

func TestEngineContextReportsMethodsForType(t *testing.T) {
	eng := buildSampleEngine(t)
	widgetCtx, ok := eng.Context("Widget", ContextOptions{})
	require.True(t, ok)
	require.Len(t, widgetCtx.Methods, 1)
	assert.Equal(t, "Describe", widgetCtx.Methods[0].Name)
}

func TestEngineAboutComposesSourceCallersAndTests(t *testing.T) {
	eng := buildSampleEngine(t)
	about, ok := eng.About("Helper", AboutOptions{})
	require.True(t, ok)
	assert.Equal(t, "Helper", about.Symbol.Name)
	require.Len(t, about.Callers, 1)
	assert.Equal(t, 1, about.References)
}

func TestEnginePlanAddParam(t *testing.T) {
	eng := buildSampleEngine(t)
	plan, ok := eng.Plan("Helper", PlanOptions{Kind: RefactorAddParam, Param: "b", DefaultValue: "0"})
	require.True(t, ok)
	assert.Equal(t, "Helper(a int)", plan.Before)
	assert.Equal(t, "Helper(a int, b=0)", plan.After)
	require.Len(t, plan.CallSites, 1)
}

func TestEnginePlanRemoveParam(t *testing.T) {
	eng := buildSampleEngine(t)
	plan, ok := eng.Plan("Helper", PlanOptions{Kind: RefactorRemoveParam, Param: "a"})
	require.True(t, ok)
	assert.Equal(t, "Helper()", plan.After)
}

func TestEnginePlanRenameTo(t *testing.T) {
	eng := buildSampleEngine(t)
	plan, ok := eng.Plan("Helper", PlanOptions{Kind: RefactorRenameTo, RenameTo: "Doer"})
	require.True(t, ok)
	assert.Equal(t, "Doer(a int)", plan.After)
}

func TestEnginePlanUnknownNameReturnsFalse(t *testing.T) {
	eng := buildSampleEngine(t)
	_, ok := eng.Plan("DoesNotExist", PlanOptions{})
	assert.False(t, ok)
}

func TestEngineStacktraceResolvesGoFrame(t *testing.T) {
	eng := buildSampleEngine(t)
	trace := "panic: runtime error\n\nsample.go:14 +0x1b\n"

	frames := eng.Stacktrace(trace)
	require.Len(t, frames, 1)
	assert.Equal(t, "sample.go", frames[0].File)
	assert.Equal(t, 14, frames[0].Line)
	assert.NotEmpty(t, frames[0].Snippet)
}

func TestEngineStacktraceIgnoresUnrecognizedLines(t *testing.T) {
	eng := buildSampleEngine(t)
	frames := eng.Stacktrace("just some text\nanother line\n")
	assert.Empty(t, frames)
}

func TestEngineExampleRanksCallByArgumentRichness(t *testing.T) {
	eng := buildSampleEngine(t)
	sites, ok := eng.Example("Helper", ExampleOptions{})
	require.True(t, ok)
	require.Len(t, sites, 1)
	assert.Equal(t, "sample.go", sites[0].File)
	assert.Equal(t, "Run", sites[0].Enclosing)
	assert.Equal(t, []string{"1"}, sites[0].Arguments)
}
