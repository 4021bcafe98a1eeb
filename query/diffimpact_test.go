package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpansOverlap(t *testing.T) {
	assert.True(t, spansOverlap(10, 20, 15, 25))
	assert.True(t, spansOverlap(10, 20, 1, 10))
	assert.True(t, spansOverlap(10, 20, 20, 30))
	assert.False(t, spansOverlap(10, 20, 21, 30))
	assert.False(t, spansOverlap(10, 20, 1, 9))
}
