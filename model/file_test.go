package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageCountsTotalSumsAllBuckets(t *testing.T) {
	u := UsageCounts{Calls: 2, Definitions: 1, Imports: 3, References: 4}
	assert.Equal(t, 10, u.Total())
}

func TestUsageCountsTotalZeroValue(t *testing.T) {
	var u UsageCounts
	assert.Equal(t, 0, u.Total())
}
