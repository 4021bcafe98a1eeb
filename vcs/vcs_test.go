package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnifiedDiffModifiedHunk(t *testing.T) {
	diff := `diff --git a/pkg/widget.go b/pkg/widget.go
index 1234567..89abcde 100644
--- a/pkg/widget.go
+++ b/pkg/widget.go
@@ -10,2 +10,3 @@
 context line
+added line
 context line
`
	hunks := parseUnifiedDiff([]byte(diff))
	require.Len(t, hunks, 1)
	assert.Equal(t, "pkg/widget.go", hunks[0].File)
	assert.Equal(t, 10, hunks[0].StartLine)
	assert.Equal(t, 12, hunks[0].EndLine)
	assert.False(t, hunks[0].Added)
	assert.False(t, hunks[0].Removed)
}

func TestParseUnifiedDiffPureAddition(t *testing.T) {
	diff := `diff --git a/pkg/widget.go b/pkg/widget.go
--- a/pkg/widget.go
+++ b/pkg/widget.go
@@ -5,0 +6,2 @@
+line one
+line two
`
	hunks := parseUnifiedDiff([]byte(diff))
	require.Len(t, hunks, 1)
	assert.Equal(t, 6, hunks[0].StartLine)
	assert.Equal(t, 7, hunks[0].EndLine)
	assert.True(t, hunks[0].Added)
}

func TestParseUnifiedDiffPureDeletion(t *testing.T) {
	diff := `diff --git a/pkg/widget.go b/pkg/widget.go
--- a/pkg/widget.go
+++ b/pkg/widget.go
@@ -10,2 +9,0 @@
-removed one
-removed two
`
	hunks := parseUnifiedDiff([]byte(diff))
	require.Len(t, hunks, 1)
	assert.True(t, hunks[0].Removed)
	assert.Equal(t, 9, hunks[0].StartLine)
	assert.Equal(t, 9, hunks[0].EndLine)
}

func TestParseUnifiedDiffMultipleFiles(t *testing.T) {
	diff := `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
@@ -1,1 +1,1 @@
-old
+new
diff --git a/b.go b/b.go
--- a/b.go
+++ b/b.go
@@ -3,0 +4,1 @@
+added
`
	hunks := parseUnifiedDiff([]byte(diff))
	require.Len(t, hunks, 2)
	assert.Equal(t, "a.go", hunks[0].File)
	assert.Equal(t, "b.go", hunks[1].File)
}

func TestParseUnifiedDiffNoHunksIsEmpty(t *testing.T) {
	hunks := parseUnifiedDiff([]byte(""))
	assert.Empty(t, hunks)
}
