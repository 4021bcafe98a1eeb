// Package parse wraps the tree-sitter grammar parser with the
// buffer-size escalation and position-convention behaviors described
// in spec §4.2. Extractors never call smacker/go-tree-sitter directly;
// they go through parse.Parse so every language gets the same retry
// and error-classification behavior.
package parse

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

const (
	defaultFloor = 1 << 20  // 1 MiB
	ceiling      = 64 << 20 // 64 MiB
)

// ErrBufferExhausted is returned when the grammar still fails after the
// buffer size has been escalated all the way to the ceiling, or when
// the source is larger than the ceiling. A grammar error that is not
// retryable is returned as it is instead. Callers catch either at the
// file boundary and record a parseError (§7).
type ErrBufferExhausted struct {
	Size int
	Err  error
}

func (e *ErrBufferExhausted) Error() string {
	return fmt.Sprintf("parse failed at buffer size %d: %v", e.Size, e.Err)
}

func (e *ErrBufferExhausted) Unwrap() error { return e.Err }

// bufferFloor returns the starting scratch-buffer size, honoring
// UCN_BUFFER_SIZE (spec §6) when it is set to a positive integer.
func bufferFloor() int {
	if v := os.Getenv("UCN_BUFFER_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultFloor
}

// isRetryable classifies an error message the way §4.2 specifies:
// buffer/memory/alloc/invalid-argument failures are retried at a
// larger size; anything else propagates immediately.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{"buffer", "memory", "alloc", "invalid argument", "invalid-argument"} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

// Parse parses source with lang, retrying at progressively larger
// scratch-buffer sizes on allocation-shaped failures. old, when
// non-nil, is passed through for incremental reparse; a nil old
// produces a fresh parse. Files whose content exceeds the 64MiB
// ceiling are reported via ErrBufferExhausted rather than crashing the
// index (§5 memory discipline).
func Parse(ctx context.Context, lang *sitter.Language, source []byte, old *sitter.Tree) (*sitter.Tree, error) {
	if len(source) > ceiling {
		return nil, &ErrBufferExhausted{Size: ceiling, Err: fmt.Errorf("source exceeds %d byte ceiling", ceiling)}
	}

	size := bufferFloor()
	// The floor only needs to be at least as large as the content
	// itself; smaller floors never matter here since smacker's parser
	// doesn't expose a separate scratch-buffer knob, but we still walk
	// the same doubling schedule on retryable errors so callers see
	// the size that was "in play" when a retry gives up.
	if size < len(source) {
		size = len(source)
	}

	var lastErr error
	for size <= ceiling {
		parser := sitter.NewParser()
		parser.SetLanguage(lang)

		tree, err := parser.ParseCtx(ctx, old, source)
		if err == nil {
			return tree, nil
		}
		lastErr = err
		if !isRetryable(err) {
			return nil, err
		}
		size *= 2
	}
	return nil, &ErrBufferExhausted{Size: size, Err: lastErr}
}

// Position converts a tree-sitter point (0-based row, 0-based column)
// to ucn's 1-based line/column convention. Every extractor must funnel
// node positions through this at the extractor boundary (§4.2).
func Position(row, column uint32) (line, col int) {
	return int(row) + 1, int(column) + 1
}
