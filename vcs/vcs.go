// Package vcs is the minimal collaborator §1 reduces version control
// to: "given a base revision, return the set of changed hunks per
// file." Diff parsing itself is explicitly out of this system's core
// scope; this package exists only so `diff-impact` (§4.9) has
// something concrete to call. It shells out to the git binary rather
// than linking a diff library, since the only operation needed is
// "ask git for a unified diff and read the hunk headers" — no commit
// graph traversal, object-database access, or merge logic is ever
// touched, which is the only case in this codebase where standard-
// library-plus-subprocess is preferred over a third-party git client.
package vcs

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Hunk is one contiguous changed region in a file, as git reports it
// in a unified diff's `@@ -a,b +c,d @@` header.
type Hunk struct {
	File      string
	StartLine int // first new-side line touched, 1-based
	EndLine   int // last new-side line touched, 1-based
	Added     bool // true when the hunk only adds lines (no old-side span)
	Removed   bool // true when the hunk only removes lines (no new-side span)
}

var hunkHeader = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)
var diffGitLine = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)

// ChangedHunks runs `git diff <base>` inside repoRoot (base defaults to
// HEAD, so the working tree is compared with the last commit) and
// returns the changed hunks in diff order, each tagged with its file's
// new-side path (the old path for a deleted file). A file whose diff
// has no hunk, such as a pure rename, contributes nothing.
func ChangedHunks(ctx context.Context, repoRoot, base string) ([]Hunk, error) {
	if base == "" {
		base = "HEAD"
	}
	args := []string{"diff", "--unified=0", base}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoRoot
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("vcs: git diff: %w", err)
	}
	return parseUnifiedDiff(out), nil
}

// StagedHunks runs `git diff --staged` for the diff-impact query's
// `staged` option.
func StagedHunks(ctx context.Context, repoRoot string) ([]Hunk, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--unified=0", "--staged")
	cmd.Dir = repoRoot
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("vcs: git diff --staged: %w", err)
	}
	return parseUnifiedDiff(out), nil
}

func parseUnifiedDiff(out []byte) []Hunk {
	var hunks []Hunk
	currentFile := ""
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if m := diffGitLine.FindStringSubmatch(line); m != nil {
			currentFile = m[2]
			continue
		}
		if m := hunkHeader.FindStringSubmatch(line); m != nil {
			newStart, _ := strconv.Atoi(m[3])
			newCount := 1
			if m[4] != "" {
				newCount, _ = strconv.Atoi(m[4])
			}
			oldCount := 1
			if m[2] != "" {
				oldCount, _ = strconv.Atoi(m[2])
			}
			h := Hunk{File: currentFile, StartLine: newStart}
			if newCount == 0 {
				// Pure deletion: the new side has no lines; anchor on
				// the new-side line just before the removed lines.
				h.StartLine = newStart
				h.EndLine = newStart
				h.Removed = true
			} else {
				h.EndLine = newStart + newCount - 1
				h.Added = oldCount == 0
			}
			hunks = append(hunks, h)
		}
	}
	return hunks
}
