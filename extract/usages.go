package extract

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// identifierNodeTypes lists the grammar node types that carry a bare
// identifier token across every language this package supports. Most
// grammars call it "identifier"; a few languages use a distinct token
// type for the right-hand side of a dotted access.
var identifierNodeTypes = map[string]bool{
	"identifier": true, "field_identifier": true, "type_identifier": true,
	"property_identifier": true, "shorthand_property_identifier": true,
}

var commentOrStringType = regexp.MustCompile(`comment|string|literal`)

// genericFindUsages classifies every occurrence of name by looking at
// its immediate syntactic context: an identifier sitting in the "name"
// field of a node in defTypes is a definition; one nested under an
// importTypes node is an import; one that is the callee position of a
// call-shaped node (per isCall) is a call; anything else is a plain
// reference. Occurrences inside comments/string literals are still
// reported (via a raw text scan) but flagged IsInCodeOnlyToken=false so
// codeOnly callers can filter them out (§4.9 usages).
func genericFindUsages(source []byte, root *sitter.Node, name string, defTypes, importTypes map[string]bool, isCall func(*sitter.Node) bool) []model.Usage {
	var out []model.Usage
	seen := make(map[[2]int]bool)

	walk(root, func(n *sitter.Node) bool {
		if commentOrStringType.MatchString(n.Type()) {
			for _, u := range scanTextOccurrences(source, n, name) {
				key := [2]int{u.Line, u.Column}
				if !seen[key] {
					seen[key] = true
					out = append(out, u)
				}
			}
			return true
		}
		if !identifierNodeTypes[n.Type()] || n.Content(source) != name {
			return true
		}
		line, col := lineCol(n.StartPoint())
		key := [2]int{line, col}
		if seen[key] {
			return true
		}
		seen[key] = true
		out = append(out, model.Usage{Line: line, Column: col, Kind: classifyUsage(n, defTypes, importTypes, isCall), IsInCodeOnlyToken: true})
		return true
	})
	return out
}

func classifyUsage(n *sitter.Node, defTypes, importTypes map[string]bool, isCall func(*sitter.Node) bool) model.UsageKind {
	parent := n.Parent()
	if parent != nil {
		if defTypes[parent.Type()] {
			if nameField := parent.ChildByFieldName("name"); nameField == n {
				return model.UsageDefinition
			}
		}
		if isCall != nil && isCall(parent) {
			if fnField := parent.ChildByFieldName("function"); fnField == n {
				return model.UsageCall
			}
			if fnField := parent.ChildByFieldName("field"); fnField == n {
				return model.UsageCall
			}
		}
	}
	for anc := parent; anc != nil; anc = anc.Parent() {
		if importTypes[anc.Type()] {
			return model.UsageImport
		}
		if defTypes[anc.Type()] {
			break
		}
	}
	return model.UsageReference
}

// scanTextOccurrences finds whole-word occurrences of name inside a
// comment/string node's text, used so codeOnly=false callers see them.
func scanTextOccurrences(source []byte, n *sitter.Node, name string) []model.Usage {
	text := n.Content(source)
	startLine, startCol := lineCol(n.StartPoint())
	var out []model.Usage
	line, col := startLine, startCol
	for i := 0; i < len(text); {
		if text[i] == '\n' {
			line++
			col = 1
			i++
			continue
		}
		if strings.HasPrefix(text[i:], name) && !isIdentByte(runeBefore(text, i)) && !isIdentByte(runeAfter(text, i+len(name))) {
			out = append(out, model.Usage{Line: line, Column: col, Kind: model.UsageReference, IsInCodeOnlyToken: false})
		}
		col++
		i++
	}
	return out
}

func runeBefore(s string, i int) byte {
	if i == 0 {
		return 0
	}
	return s[i-1]
}

func runeAfter(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
