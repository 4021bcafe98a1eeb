package query

import (
	"regexp"
	"strconv"
	"strings"
)

// StackFrame is one parsed line of a stack trace, resolved to the
// source location it names.
type StackFrame struct {
	RawLine string
	File    string
	Line    int
	Snippet string
}

// stackFramePatterns covers the common per-language trace-line shapes
// (§4.9 stacktrace): JS ("at fn (file:line:col)"), Python
// ("File "path", line N, in fn"), Go ("path/file.go:line +0x..."),
// Rust ("at path/file.rs:line:col"), Java
// ("at pkg.Class.method(File.java:line)").
var stackFramePatterns = []*regexp.Regexp{
	regexp.MustCompile(`at .*\(([^():]+\.[jt]sx?):(\d+):\d+\)`),            // JS/TS
	regexp.MustCompile(`File "([^"]+\.py)", line (\d+)`),                  // Python
	regexp.MustCompile(`([^\s:]+\.go):(\d+)(?:\s|$)`),                     // Go
	regexp.MustCompile(`at .*?([^\s():]+\.rs):(\d+)(?::\d+)?`),            // Rust
	regexp.MustCompile(`at [\w.$]+\(([^():]+\.java):(\d+)\)`),             // Java
}

// Stacktrace parses a stack-trace text blob line by line, resolving
// each recognized frame to {file, line, snippet}.
func (e *Engine) Stacktrace(text string) []StackFrame {
	var frames []StackFrame
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		for _, pat := range stackFramePatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			file := m[1]
			lineNo, _ := strconv.Atoi(m[2])
			frame := StackFrame{RawLine: line, File: file, Line: lineNo}
			if fr, ok := e.Idx.File(file); ok {
				frame.Snippet = snippet(fr.AbsPath, lineNo, lineNo)
			}
			frames = append(frames, frame)
			break
		}
	}
	return frames
}
