// Package extract implements the per-language syntactic extractors
// (spec §4.3-§4.4). Each language file in this package implements the
// same Extractor interface over a parsed tree-sitter tree; callers
// never need to know which language they're looking at beyond picking
// the right Extractor with ForLanguage.
package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// Extractor is the abstract contract every language module implements
// (§4.3). All operations are pure functions of (source, tree); none of
// them mutate the tree or retain references to source beyond the call.
type Extractor interface {
	Language() model.Language
	FindFunctions(source []byte, root *sitter.Node) []model.Function
	FindClasses(source []byte, root *sitter.Node) []model.TypeDecl
	FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant
	FindCalls(source []byte, root *sitter.Node) []model.Call
	FindImports(source []byte, root *sitter.Node) []model.Import
	FindExports(source []byte, root *sitter.Node) []model.Export
	FindUsages(source []byte, root *sitter.Node, name string) []model.Usage
}

// InstanceAttributeTyper is implemented only by the Python extractor
// (§4.3's optional findInstanceAttributeTypes operation).
type InstanceAttributeTyper interface {
	FindInstanceAttributeTypes(source []byte, root *sitter.Node) map[string]map[string]string
}

// ParseResult is the bundle `parse` returns per §4.3's table: totalLines
// plus the cheap-to-compute artifacts. Imports/Exports are populated
// separately by the caller only when requested.
type ParseResult struct {
	Language       model.Language
	TotalLines     int
	Functions      []model.Function
	Types          []model.TypeDecl
	StateConstants []model.StateConstant
}

// walk calls visit for node and every descendant, depth-first,
// pre-order. visit returns false to skip the subtree rooted at node.
func walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		walk(node.Child(i), visit)
	}
}

// countLines counts source lines the way §4.3 wants totalLines
// counted: every newline plus one, except that a final trailing newline
// does not start another line; an empty file counts as zero.
func countLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	n := 1
	for _, b := range source {
		if b == '\n' {
			n++
		}
	}
	if source[len(source)-1] == '\n' {
		n--
	}
	return n
}

// lineCol converts a tree-sitter point into ucn's 1-based convention.
func lineCol(p sitter.Point) (line, col int) {
	return int(p.Row) + 1, int(p.Column) + 1
}

// stateConstantPattern reports whether name looks like a top-level
// config/state binding per §4.3: ALL_CAPS, or CamelCase ending in one
// of Config/Settings/Options/State/Store/Context.
func stateConstantPattern(name string) bool {
	if name == "" {
		return false
	}
	if isAllCapsIdentifier(name) {
		return true
	}
	for _, suffix := range []string{"Config", "Settings", "Options", "State", "Store", "Context"} {
		if strings.HasSuffix(name, suffix) && name != suffix {
			return true
		}
	}
	return false
}

func isAllCapsIdentifier(name string) bool {
	hasLetter := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r == '_', r >= '0' && r <= '9':
			if r >= 'A' && r <= 'Z' {
				hasLetter = true
			}
		default:
			return false
		}
	}
	return hasLetter
}

// aliasTable is the local-alias map maintained while walking a
// function body (§4.4): `const a = b`, destructuring renames, ternary
// branches, and (Python) functools.partial bindings all populate it.
// nonCallable tracks identifiers bound to literals/collection literals/
// constructor results, which the call emitter must never report as
// function-reference callbacks.
type aliasTable struct {
	aliases     map[string][]string
	nonCallable map[string]bool
}

func newAliasTable() *aliasTable {
	return &aliasTable{aliases: make(map[string][]string), nonCallable: make(map[string]bool)}
}

func (t *aliasTable) bind(local string, targets ...string) {
	t.aliases[local] = append(t.aliases[local], targets...)
}

func (t *aliasTable) markNonCallable(name string) {
	t.nonCallable[name] = true
}

func (t *aliasTable) resolve(name string) []string {
	if v, ok := t.aliases[name]; ok {
		return v
	}
	return nil
}

func (t *aliasTable) isNonCallable(name string) bool {
	return t.nonCallable[name]
}

// enclosingStack tracks the function-definition nesting while a call
// emitter walks a tree, so every Call can be tagged with the record on
// top of the stack at its location (§4.4).
type enclosingStack struct {
	frames []model.EnclosingFunction
}

func (s *enclosingStack) push(f model.EnclosingFunction) { s.frames = append(s.frames, f) }
func (s *enclosingStack) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *enclosingStack) top() *model.EnclosingFunction {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	return &f
}

// higherOrderCallbackPositions is the closed catalogue from §4.4 item 7:
// for these callee names, argument positions listed are confirmed
// function-reference positions rather than merely potential callbacks.
// -1 means "every position".
var higherOrderCallbackPositions = map[string][]int{
	"map":              {0},
	"filter":           {0},
	"forEach":          {0},
	"reduce":           {0},
	"find":             {0},
	"findIndex":        {0},
	"some":             {0},
	"every":            {0},
	"sort":             {0},
	"addEventListener": {1},
	"removeEventListener": {1},
	"then":             {-1},
	"catch":            {-1},
	"finally":          {-1},
	"setTimeout":       {0},
	"setInterval":      {0},
	"on":               {1},
	"once":             {1},
	"use":              {0, 1},
	"get":              {1},
	"post":             {1},
	"put":              {1},
	"delete":           {1},
}

func confirmedCallbackPositions(callee string, position int) bool {
	positions, ok := higherOrderCallbackPositions[callee]
	if !ok {
		return false
	}
	for _, p := range positions {
		if p == -1 || p == position {
			return true
		}
	}
	return false
}

// docstringBefore returns the first meaningful line of commentNode (the
// comment found immediately before a declaration), with the common
// line-comment and block-comment markers and surrounding quotes
// stripped. A nil commentNode yields "".
func docstringBefore(source []byte, declStartLine int, commentNode *sitter.Node) string {
	if commentNode == nil {
		return ""
	}
	text := commentNode.Content(source)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "/**")
		line = strings.TrimPrefix(line, "/*!")
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimPrefix(line, "///")
		line = strings.TrimPrefix(line, "//!")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		line = strings.Trim(line, `"'`)
		if line != "" {
			return line
		}
	}
	return ""
}

// precedingComment returns node's immediately preceding sibling if it
// is a comment, else nil.
func precedingComment(node *sitter.Node) *sitter.Node {
	prev := node.PrevSibling()
	if prev == nil {
		return nil
	}
	if strings.Contains(prev.Type(), "comment") {
		return prev
	}
	return nil
}
