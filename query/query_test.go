package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func TestPathMatchesInAndExclude(t *testing.T) {
	assert.True(t, pathMatches("pkg/widget.go", nil, nil))
	assert.False(t, pathMatches("pkg/widget.go", []string{"cmd/**"}, nil))
	assert.True(t, pathMatches("pkg/widget.go", []string{"pkg/**"}, nil))
	assert.False(t, pathMatches("pkg/widget.go", nil, []string{"pkg/**"}))
	assert.True(t, pathMatches("pkg/widget.go", []string{"pkg/**"}, []string{"pkg/widget_test.go"}))
}

func TestFilePatternEmptyAlwaysMatches(t *testing.T) {
	assert.True(t, filePattern("pkg/widget.go", ""))
}

func TestFilePatternGlobAndSubstring(t *testing.T) {
	assert.True(t, filePattern("pkg/widget.go", "pkg/*.go"))
	assert.True(t, filePattern("pkg/widget.go", "widget"))
	assert.False(t, filePattern("pkg/widget.go", "gadget"))
}

func TestSnippetReturnsRequestedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	content := "line1\nline2\nline3\nline4\nline5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got := snippet(path, 2, 4)
	assert.Equal(t, "line2\nline3\nline4", got)
}

func TestSnippetMissingFileReturnsEmpty(t *testing.T) {
	got := snippet(filepath.Join(t.TempDir(), "nope.go"), 1, 2)
	assert.Equal(t, "", got)
}

func TestSnippetClampsEndToFileLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	got := snippet(path, 1, 100)
	assert.Equal(t, "one\ntwo", got)
}

func TestSortSymbolRecordsOrdersByUsageThenPosition(t *testing.T) {
	records := []model.SymbolRecord{
		{Name: "b", File: "b.go", StartLine: 1, Usages: model.UsageCounts{Calls: 1}},
		{Name: "a", File: "a.go", StartLine: 5, Usages: model.UsageCounts{Calls: 3}},
		{Name: "c", File: "a.go", StartLine: 1, Usages: model.UsageCounts{Calls: 3}},
	}
	sortSymbolRecords(records)

	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].Name)
	assert.Equal(t, "a", records[1].Name)
	assert.Equal(t, "b", records[2].Name)
}
