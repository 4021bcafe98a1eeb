package parse

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/smacker/go-tree-sitter/golang"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionConvertsZeroBasedToOneBased(t *testing.T) {
	line, col := Position(0, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = Position(9, 4)
	assert.Equal(t, 10, line)
	assert.Equal(t, 5, col)
}

func TestIsRetryableClassifiesBufferShapedErrors(t *testing.T) {
	assert.True(t, isRetryable(errors.New("buffer too small")))
	assert.True(t, isRetryable(errors.New("out of memory")))
	assert.True(t, isRetryable(errors.New("alloc failed")))
	assert.True(t, isRetryable(errors.New("invalid argument")))
	assert.False(t, isRetryable(errors.New("unexpected token")))
	assert.False(t, isRetryable(nil))
}

func TestBufferFloorDefaultsWithoutEnvVar(t *testing.T) {
	require.NoError(t, os.Unsetenv("UCN_BUFFER_SIZE"))
	assert.Equal(t, defaultFloor, bufferFloor())
}

func TestBufferFloorHonorsPositiveEnvVar(t *testing.T) {
	t.Setenv("UCN_BUFFER_SIZE", "2048")
	assert.Equal(t, 2048, bufferFloor())
}

func TestBufferFloorIgnoresNonPositiveEnvVar(t *testing.T) {
	t.Setenv("UCN_BUFFER_SIZE", "-5")
	assert.Equal(t, defaultFloor, bufferFloor())
}

func TestBufferFloorIgnoresGarbageEnvVar(t *testing.T) {
	t.Setenv("UCN_BUFFER_SIZE", "not-a-number")
	assert.Equal(t, defaultFloor, bufferFloor())
}

func TestParseSucceedsOnValidGoSource(t *testing.T) {
	lang := golang.GetLanguage()
	tree, err := Parse(context.Background(), lang, []byte("package sample\n\nfunc Run() int { return 1 }\n"), nil)
	require.NoError(t, err)
	require.NotNil(t, tree)
	defer tree.Close()
	root := tree.RootNode()
	assert.Equal(t, "source_file", root.Type())
}

func TestParseRejectsSourceAboveCeiling(t *testing.T) {
	lang := golang.GetLanguage()
	oversized := make([]byte, ceiling+1)
	_, err := Parse(context.Background(), lang, oversized, nil)
	require.Error(t, err)
	var bufErr *ErrBufferExhausted
	require.ErrorAs(t, err, &bufErr)
	assert.Equal(t, ceiling, bufErr.Size)
}

func TestParseReusesOldTreeForIncrementalReparse(t *testing.T) {
	lang := golang.GetLanguage()
	first, err := Parse(context.Background(), lang, []byte("package sample\n"), nil)
	require.NoError(t, err)

	second, err := Parse(context.Background(), lang, []byte("package sample\n\nfunc Run() {}\n"), first)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "source_file", second.RootNode().Type())
}
