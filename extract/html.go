package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/languages"
	"github.com/mleoca/ucn/model"
	"github.com/mleoca/ucn/parse"
)

// HTMLExtractor implements Extractor for HTML, grounded in
// jinterlante1206-AleutianLocal's services/code_buddy/ast/
// html_parser.go: it walks document/element/script_element/
// style_element nodes directly (start_tag/self_closing_tag carry
// tag_name and attribute children; attribute splits into
// attribute_name and a quoted/unquoted attribute_value), and delegates
// inline <script> raw_text to the JavaScript extractor the same way
// that file delegates to its own JavaScriptParser — by reparsing the
// script's raw text with the JS grammar and shifting line numbers by
// the script block's offset (§4.4 item 10's embedded-script handling).
type HTMLExtractor struct {
	registry *languages.Registry
}

// NewHTMLExtractor constructs an HTMLExtractor ready to delegate
// inline script content to the JavaScript grammar.
func NewHTMLExtractor() HTMLExtractor {
	return HTMLExtractor{registry: languages.NewRegistry()}
}

func (HTMLExtractor) Language() model.Language { return model.LangHTML }

// scriptBlock is one inline <script>...</script> raw_text node found in
// an HTML document, along with the 0-based line it starts on so
// delegated JS extraction results can be shifted back into the HTML
// file's coordinate space.
type scriptBlock struct {
	content    []byte
	startLine  int // 0-based line of the raw_text node
}

func htmlFindScriptBlocks(source []byte, root *sitter.Node) []scriptBlock {
	var out []scriptBlock
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "script_element" {
			return true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child.Type() != "raw_text" {
				continue
			}
			text := source[child.StartByte():child.EndByte()]
			out = append(out, scriptBlock{content: text, startLine: int(child.StartPoint().Row)})
		}
		return false
	})
	return out
}

// forEachScript reparses every inline script block and invokes fn with
// the block's source, its parsed root, and the line offset to shift
// results by (per html_parser.go's sym.StartLine += row pattern).
func (h HTMLExtractor) forEachScript(source []byte, root *sitter.Node, fn func(content []byte, scriptRoot *sitter.Node, lineOffset int)) {
	grammar := h.registry.Grammar(model.LangJavaScript, false)
	if grammar == nil {
		return
	}
	for _, block := range htmlFindScriptBlocks(source, root) {
		tree, err := parse.Parse(context.Background(), grammar, block.content, nil)
		if err != nil {
			continue
		}
		fn(block.content, tree.RootNode(), block.startLine)
		tree.Close()
	}
}

func shiftFunction(fn model.Function, lineOffset int) model.Function {
	fn.StartLine += lineOffset
	fn.EndLine += lineOffset
	if fn.NameLine != 0 {
		fn.NameLine += lineOffset
	}
	return fn
}

func (h HTMLExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	var out []model.Function
	js := jsFamily{}
	h.forEachScript(source, root, func(content []byte, scriptRoot *sitter.Node, offset int) {
		for _, fn := range js.findFunctions(content, scriptRoot) {
			out = append(out, shiftFunction(fn, offset))
		}
	})
	return out
}

func (h HTMLExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	var out []model.TypeDecl
	js := jsFamily{}
	h.forEachScript(source, root, func(content []byte, scriptRoot *sitter.Node, offset int) {
		for _, td := range js.findClasses(content, scriptRoot) {
			td.StartLine += offset
			td.EndLine += offset
			for i := range td.Members {
				td.Members[i] = shiftFunction(td.Members[i], offset)
			}
			out = append(out, td)
		}
	})
	return out
}

func (h HTMLExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	var out []model.StateConstant
	js := jsFamily{}
	h.forEachScript(source, root, func(content []byte, scriptRoot *sitter.Node, offset int) {
		for _, sc := range js.findStateObjects(content, scriptRoot) {
			sc.StartLine += offset
			sc.EndLine += offset
			out = append(out, sc)
		}
	})
	return out
}

func shiftCall(c model.Call, offset int) model.Call {
	c.Line += offset
	if c.Enclosing != nil {
		shifted := *c.Enclosing
		shifted.StartLine += offset
		shifted.EndLine += offset
		c.Enclosing = &shifted
	}
	return c
}

func (h HTMLExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	var out []model.Call
	js := jsFamily{}
	h.forEachScript(source, root, func(content []byte, scriptRoot *sitter.Node, offset int) {
		for _, call := range js.findCalls(content, scriptRoot) {
			out = append(out, shiftCall(call, offset))
		}
	})
	out = append(out, htmlInlineEventHandlerCalls(source, root)...)
	return out
}

// htmlInlineEventHandlerCalls scans onclick="foo()"-style attribute
// values for a bare call expression and reports the callee as an
// event-handler call, since those live outside any <script> block and
// tree-sitter-html treats the whole attribute value as opaque text.
func htmlInlineEventHandlerCalls(source []byte, root *sitter.Node) []model.Call {
	var out []model.Call
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "attribute" {
			return true
		}
		nameNode := htmlFindChild(n, "attribute_name")
		if nameNode == nil || !isInlineEventAttribute(nameNode.Content(source)) {
			return true
		}
		valueNode := htmlAttributeValueNode(n)
		if valueNode == nil {
			return true
		}
		text := valueNode.Content(source)
		callee := htmlLeadingIdentifier(text)
		if callee == "" {
			return true
		}
		if rest := strings.TrimSpace(text[strings.Index(text, callee)+len(callee):]); !strings.HasPrefix(rest, "(") {
			return true
		}
		line, _ := lineCol(valueNode.StartPoint())
		out = append(out, model.Call{Callee: callee, Line: line, IsEventHandler: true})
		return true
	})
	return out
}

func isInlineEventAttribute(name string) bool {
	switch name {
	case "onclick", "onchange", "onsubmit", "onload", "onmouseover", "onmouseout", "onkeydown", "onkeyup", "oninput", "onfocus", "onblur":
		return true
	}
	return false
}

func htmlFindChild(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == typ {
			return n.Child(i)
		}
	}
	return nil
}

func htmlAttributeValueNode(attr *sitter.Node) *sitter.Node {
	for i := 0; i < int(attr.ChildCount()); i++ {
		child := attr.Child(i)
		switch child.Type() {
		case "attribute_value":
			return child
		case "quoted_attribute_value":
			if v := htmlFindChild(child, "attribute_value"); v != nil {
				return v
			}
		}
	}
	return nil
}

func htmlLeadingIdentifier(text string) string {
	start := -1
	for i, r := range text {
		isIdent := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if isIdent && start == -1 {
			start = i
		}
		if !isIdent && start != -1 {
			return text[start:i]
		}
	}
	if start != -1 {
		return text[start:]
	}
	return ""
}

func (h HTMLExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	var out []model.Import
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "element" {
			return true
		}
		tag := htmlStartTag(n)
		if tag == nil {
			return true
		}
		tagName, attrs := htmlTagInfo(tag, source)
		line, _ := lineCol(n.StartPoint())
		switch tagName {
		case "script":
			if src, ok := attrs["src"]; ok && src != "" {
				kind := model.ImportSideEffect
				if attrs["type"] == "module" {
					kind = model.ImportNamespace
				}
				out = append(out, model.Import{Source: src, Kind: kind, Line: line})
			}
		case "link":
			if attrs["rel"] == "stylesheet" && attrs["href"] != "" {
				out = append(out, model.Import{Source: attrs["href"], Kind: model.ImportSideEffect, Line: line})
			}
		}
		return true
	})
	return out
}

func htmlStartTag(element *sitter.Node) *sitter.Node {
	for i := 0; i < int(element.ChildCount()); i++ {
		child := element.Child(i)
		if child.Type() == "start_tag" || child.Type() == "self_closing_tag" {
			return child
		}
	}
	return nil
}

func htmlTagInfo(tag *sitter.Node, source []byte) (tagName string, attrs map[string]string) {
	attrs = make(map[string]string)
	for i := 0; i < int(tag.ChildCount()); i++ {
		child := tag.Child(i)
		switch child.Type() {
		case "tag_name":
			tagName = child.Content(source)
		case "attribute":
			nameNode := htmlFindChild(child, "attribute_name")
			if nameNode == nil {
				continue
			}
			valueNode := htmlAttributeValueNode(child)
			value := ""
			if valueNode != nil {
				value = valueNode.Content(source)
			}
			attrs[nameNode.Content(source)] = value
		}
	}
	return
}

// FindExports always returns nil: an HTML document has no export
// surface of its own (§6) — embedded script exports would require
// module-scoped <script type="module"> handling, out of scope here.
func (HTMLExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	return nil
}

func (h HTMLExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	var out []model.Usage
	js := jsFamily{}
	h.forEachScript(source, root, func(content []byte, scriptRoot *sitter.Node, offset int) {
		for _, u := range js.findUsages(content, scriptRoot, name) {
			u.Line += offset
			out = append(out, u)
		}
	})
	walk(root, func(n *sitter.Node) bool {
		if n.Type() == "attribute_value" || n.Type() == "raw_text" {
			for _, u := range scanTextOccurrences(source, n, name) {
				u.Kind = model.UsageReference
				out = append(out, u)
			}
			return false
		}
		return true
	})
	return out
}
