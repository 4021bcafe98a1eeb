package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mleoca/ucn/model"
)

func TestConfidenceForPlainShortFunctionIsHigh(t *testing.T) {
	fn := &model.Function{StartLine: 1, EndLine: 10}
	fr := &model.FileRecord{TotalLines: 100}
	assert.Equal(t, model.ConfidenceHigh, confidenceFor(fn, nil, fr))
}

func TestConfidenceForLongFunctionDegradesToMedium(t *testing.T) {
	fn := &model.Function{StartLine: 1, EndLine: 250}
	fr := &model.FileRecord{TotalLines: 100}
	assert.Equal(t, model.ConfidenceMedium, confidenceFor(fn, nil, fr))
}

func TestConfidenceForVeryLongFunctionIsLow(t *testing.T) {
	fn := &model.Function{StartLine: 1, EndLine: 600}
	fr := &model.FileRecord{TotalLines: 100}
	assert.Equal(t, model.ConfidenceLow, confidenceFor(fn, nil, fr))
}

func TestConfidenceForDeepGenericsDegrades(t *testing.T) {
	fn := &model.Function{StartLine: 1, EndLine: 10, Generics: []string{"T<U<V<W>>>"}}
	fr := &model.FileRecord{TotalLines: 100}
	assert.Equal(t, model.ConfidenceMedium, confidenceFor(fn, nil, fr))
}

func TestConfidenceForLargeFileDegradesEveryEntry(t *testing.T) {
	fn := &model.Function{StartLine: 1, EndLine: 10}
	fr := &model.FileRecord{TotalLines: 5000}
	assert.Equal(t, model.ConfidenceMedium, confidenceFor(fn, nil, fr))
}

func TestConfidenceForLargeTypeSpanDegrades(t *testing.T) {
	td := &model.TypeDecl{StartLine: 1, EndLine: 260}
	fr := &model.FileRecord{TotalLines: 100}
	assert.Equal(t, model.ConfidenceMedium, confidenceFor(nil, td, fr))
}

func TestGenericDepthFlatListIsZero(t *testing.T) {
	assert.Equal(t, 0, genericDepth([]string{"T", "U"}))
}

func TestGenericDepthNestedBrackets(t *testing.T) {
	assert.Equal(t, 2, genericDepth([]string{"T<U<V>>"}))
}
