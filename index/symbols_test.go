package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func newTestIndex() *Index {
	return &Index{
		files: make(map[string]*model.FileRecord),
		byAbs: make(map[string]*model.FileRecord),
		names: make(map[string][]*Symbol),
	}
}

func TestScoreFavorsTypeLikeKinds(t *testing.T) {
	idx := newTestIndex()
	typeSym := &Symbol{
		Record: model.SymbolRecord{File: "pkg/widget.go", StartLine: 1, EndLine: 5},
		Type:   &model.TypeDecl{Kind: model.KindStruct},
	}
	funcSym := &Symbol{
		Record: model.SymbolRecord{File: "pkg/widget.go", StartLine: 10, EndLine: 15},
	}
	assert.Greater(t, idx.score(typeSym), idx.score(funcSym))
}

func TestScorePenalizesExamplesAndVendorPaths(t *testing.T) {
	idx := newTestIndex()
	examplePath := &Symbol{Record: model.SymbolRecord{File: "examples/foo.go", StartLine: 1, EndLine: 2}}
	plainPath := &Symbol{Record: model.SymbolRecord{File: "foo.go", StartLine: 1, EndLine: 2}}
	assert.Less(t, idx.score(examplePath), idx.score(plainPath))
}

func TestScoreFavorsLibSrcCorePaths(t *testing.T) {
	idx := newTestIndex()
	favored := &Symbol{Record: model.SymbolRecord{File: "internal/widget.go", StartLine: 1, EndLine: 2}}
	plain := &Symbol{Record: model.SymbolRecord{File: "widget.go", StartLine: 1, EndLine: 2}}
	assert.Greater(t, idx.score(favored), idx.score(plain))
}

func TestScorePenalizesTestFiles(t *testing.T) {
	idx := newTestIndex()
	testSym := &Symbol{Record: model.SymbolRecord{File: "widget_test.go", StartLine: 1, EndLine: 2, IsTestFile: true}}
	plain := &Symbol{Record: model.SymbolRecord{File: "widget.go", StartLine: 1, EndLine: 2}}
	assert.Less(t, idx.score(testSym), idx.score(plain))
}

func TestScoreSpanBonusCapsAtOneHundred(t *testing.T) {
	idx := newTestIndex()
	huge := &Symbol{Record: model.SymbolRecord{File: "widget.go", StartLine: 1, EndLine: 500}}
	modest := &Symbol{Record: model.SymbolRecord{File: "widget.go", StartLine: 1, EndLine: 120}}
	assert.Equal(t, idx.score(huge), idx.score(modest))
}

func TestAddSymbolDedupesByNameFileAndStartLine(t *testing.T) {
	idx := newTestIndex()
	fr := &model.FileRecord{RelPath: "widget.go", Language: model.LangGo}
	idx.addSymbol("widget.go", fr, "function", "Foo", 10, 20, &model.Function{Name: "Foo"}, nil)
	idx.addSymbol("widget.go", fr, "function", "Foo", 10, 20, &model.Function{Name: "Foo"}, nil)
	assert.Len(t, idx.names["Foo"], 1)
}

func TestAddSymbolKeepsDistinctStartLines(t *testing.T) {
	idx := newTestIndex()
	fr := &model.FileRecord{RelPath: "widget.go", Language: model.LangGo}
	idx.addSymbol("widget.go", fr, "function", "Foo", 10, 20, &model.Function{Name: "Foo"}, nil)
	idx.addSymbol("widget.go", fr, "function", "Foo", 30, 40, &model.Function{Name: "Foo"}, nil)
	assert.Len(t, idx.names["Foo"], 2)
}

func TestAddSymbolSkipsEmptyName(t *testing.T) {
	idx := newTestIndex()
	fr := &model.FileRecord{RelPath: "widget.go", Language: model.LangGo}
	idx.addSymbol("widget.go", fr, "function", "", 10, 20, &model.Function{}, nil)
	assert.Empty(t, idx.names)
}

func TestIsExportedSymbolGoUsesCase(t *testing.T) {
	fr := &model.FileRecord{Language: model.LangGo}
	assert.True(t, isExportedSymbol(fr, "Foo"))
	assert.False(t, isExportedSymbol(fr, "foo"))
}

func TestIsExportedSymbolPrefersExplicitExportsList(t *testing.T) {
	fr := &model.FileRecord{
		Language: model.LangJavaScript,
		Exports:  []model.Export{{Name: "widget"}},
	}
	assert.True(t, isExportedSymbol(fr, "widget"))
	assert.False(t, isExportedSymbol(fr, "helper"))
}

func TestFindExactOrdersByUsageThenScore(t *testing.T) {
	idx := newTestIndex()
	idx.names["Run"] = []*Symbol{
		{Record: model.SymbolRecord{Name: "Run", File: "examples/run.go", StartLine: 1, EndLine: 2, Usages: model.UsageCounts{Calls: 1}}},
		{Record: model.SymbolRecord{Name: "Run", File: "internal/run.go", StartLine: 1, EndLine: 2, Usages: model.UsageCounts{Calls: 5}}},
	}

	got := idx.FindExact("Run")
	require.Len(t, got, 2)
	assert.Equal(t, "internal/run.go", got[0].File)
	assert.Equal(t, "examples/run.go", got[1].File)
}

func TestBestReturnsTopRankedSymbol(t *testing.T) {
	idx := newTestIndex()
	idx.names["Widget"] = []*Symbol{
		{Record: model.SymbolRecord{Name: "Widget", File: "widget.go", StartLine: 1, EndLine: 2}},
		{Record: model.SymbolRecord{Name: "Widget", File: "widget.go", StartLine: 10, EndLine: 30},
			Type: &model.TypeDecl{Kind: model.KindStruct}},
	}

	best, ok := idx.Best("Widget")
	require.True(t, ok)
	assert.Equal(t, 10, best.Record.StartLine)
}

func TestBestMissingNameReturnsFalse(t *testing.T) {
	idx := newTestIndex()
	_, ok := idx.Best("DoesNotExist")
	assert.False(t, ok)
}

func TestFindSubstringIsCaseInsensitive(t *testing.T) {
	idx := newTestIndex()
	idx.names["HandleRequest"] = []*Symbol{
		{Record: model.SymbolRecord{Name: "HandleRequest", File: "server.go", StartLine: 1, EndLine: 2}},
	}

	got := idx.FindSubstring("handle")
	require.Len(t, got, 1)
	assert.Equal(t, "HandleRequest", got[0].Name)
}
