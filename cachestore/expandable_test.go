package cachestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandableCachePutAndGet(t *testing.T) {
	c, err := NewExpandableCache(4)
	require.NoError(t, err)

	items := []ExpandableItem{
		{Label: "1", File: "a.go", StartLine: 1, EndLine: 5},
		{Label: "2", File: "b.go", StartLine: 10, EndLine: 20},
	}
	c.Put("/proj", "Widget", "", items)

	got, ok := c.Get("/proj", "Widget", "", 1)
	require.True(t, ok)
	assert.Equal(t, "a.go", got.File)

	got, ok = c.Get("/proj", "Widget", "", 2)
	require.True(t, ok)
	assert.Equal(t, "b.go", got.File)
}

func TestExpandableCacheGetOutOfRange(t *testing.T) {
	c, err := NewExpandableCache(4)
	require.NoError(t, err)
	c.Put("/proj", "Widget", "", []ExpandableItem{{Label: "1", File: "a.go"}})

	_, ok := c.Get("/proj", "Widget", "", 0)
	assert.False(t, ok)
	_, ok = c.Get("/proj", "Widget", "", 2)
	assert.False(t, ok)
}

func TestExpandableCacheGetUnknownKey(t *testing.T) {
	c, err := NewExpandableCache(4)
	require.NoError(t, err)
	_, ok := c.Get("/proj", "Missing", "", 1)
	assert.False(t, ok)
}

func TestExpandableCacheLatestTracksMostRecentPut(t *testing.T) {
	c, err := NewExpandableCache(4)
	require.NoError(t, err)

	c.Put("/proj", "Widget", "", []ExpandableItem{{Label: "1", File: "a.go"}})
	c.Put("/proj", "Gadget", "", []ExpandableItem{{Label: "1", File: "b.go"}})

	got, ok := c.Latest("/proj", 1)
	require.True(t, ok)
	assert.Equal(t, "b.go", got.File)
}

func TestExpandableCacheLatestUnknownProject(t *testing.T) {
	c, err := NewExpandableCache(4)
	require.NoError(t, err)
	_, ok := c.Latest("/unknown", 1)
	assert.False(t, ok)
}

func TestNewExpandableCacheDefaultsNonPositiveCapacity(t *testing.T) {
	c, err := NewExpandableCache(0)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
