package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// RustExtractor implements Extractor for Rust, grounded in the
// node/field shapes jabafett-quill's internal/utils/context/
// treesitter.go uses in its own tree-sitter query set for Rust:
// function_item(name), struct_item(name: type_identifier),
// trait_item(name), impl_item(trait, type, body: declaration_list),
// use_declaration(tree: use_tree).
type RustExtractor struct{}

func (RustExtractor) Language() model.Language { return model.LangRust }

func (RustExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	var out []model.Function
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "function_item" {
			return true
		}
		if rustEnclosingImpl(n) != nil {
			return true // surfaced as an impl member instead
		}
		if p := n.Parent(); p != nil && p.Type() == "declaration_list" && p.Parent() != nil && p.Parent().Type() == "trait_item" {
			return true // surfaced as a trait member instead
		}
		out = append(out, rustParseFn(n, source, false, ""))
		return false
	})
	return out
}

func rustEnclosingImpl(n *sitter.Node) *sitter.Node {
	p := n.Parent()
	if p == nil || p.Type() != "declaration_list" {
		return nil
	}
	impl := p.Parent()
	if impl == nil || impl.Type() != "impl_item" {
		return nil
	}
	return impl
}

func rustParseFn(n *sitter.Node, source []byte, isMethod bool, receiver string) model.Function {
	startLine, _ := lineCol(n.StartPoint())
	endLine, _ := lineCol(n.EndPoint())
	fn := model.Function{StartLine: startLine, EndLine: endLine, IsMethod: isMethod, Receiver: receiver}
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		fn.Name = nameNode.Content(source)
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = rustParams(params, source)
		for _, p := range fn.Params {
			if p.Name == "self" || strings.HasPrefix(p.Raw, "&self") || strings.HasPrefix(p.Raw, "&mut self") {
				fn.IsMethod = true
			}
		}
	}
	if ret := n.ChildByFieldName("return_type"); ret != nil {
		fn.ReturnType = ret.Content(source)
	}
	if typeParams := n.ChildByFieldName("type_parameters"); typeParams != nil {
		for i := 0; i < int(typeParams.NamedChildCount()); i++ {
			fn.Generics = append(fn.Generics, typeParams.NamedChild(i).Content(source))
		}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "visibility_modifier" {
			fn.Modifiers = append(fn.Modifiers, n.Child(i).Content(source))
		}
		if n.Child(i).Type() == "async" {
			fn.Modifiers = append(fn.Modifiers, "async")
		}
	}
	if c := precedingComment(n); c != nil {
		fn.Docstring = docstringBefore(source, startLine, c)
	}
	return fn
}

func rustParams(paramList *sitter.Node, source []byte) []model.Param {
	var out []model.Param
	for i := 0; i < int(paramList.NamedChildCount()); i++ {
		p := paramList.NamedChild(i)
		switch p.Type() {
		case "self_parameter":
			out = append(out, model.Param{Name: "self", Raw: p.Content(source)})
		case "parameter":
			name := ""
			if pat := p.ChildByFieldName("pattern"); pat != nil {
				name = pat.Content(source)
			}
			typ := ""
			if t := p.ChildByFieldName("type"); t != nil {
				typ = t.Content(source)
			}
			out = append(out, model.Param{Name: name, Type: typ, Raw: p.Content(source)})
		}
	}
	return out
}

func (RustExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	var out []model.TypeDecl
	impls := make(map[string]*model.TypeDecl) // keyed by type name, merges multiple impl blocks

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "struct_item":
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			startLine, _ := lineCol(n.StartPoint())
			endLine, _ := lineCol(n.EndPoint())
			out = append(out, model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindStruct, StartLine: startLine, EndLine: endLine})
		case "enum_item":
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			startLine, _ := lineCol(n.StartPoint())
			endLine, _ := lineCol(n.EndPoint())
			out = append(out, model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindEnum, StartLine: startLine, EndLine: endLine})
		case "trait_item":
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			startLine, _ := lineCol(n.StartPoint())
			endLine, _ := lineCol(n.EndPoint())
			td := model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindTrait, StartLine: startLine, EndLine: endLine}
			if body := n.ChildByFieldName("body"); body != nil {
				for i := 0; i < int(body.NamedChildCount()); i++ {
					if fn := body.NamedChild(i); fn.Type() == "function_item" || fn.Type() == "function_signature_item" {
						if fn.Type() == "function_signature_item" {
							td.Members = append(td.Members, rustParseSignature(fn, source, td.Name))
						} else {
							td.Members = append(td.Members, rustParseFn(fn, source, true, td.Name))
						}
					}
				}
			}
			out = append(out, td)
		case "impl_item":
			rustMergeImpl(n, source, impls)
		}
		return true
	})
	for _, td := range impls {
		out = append(out, *td)
	}
	return out
}

func rustParseSignature(n *sitter.Node, source []byte, receiver string) model.Function {
	fn := rustParseFn(n, source, true, receiver)
	return fn
}

func rustMergeImpl(n *sitter.Node, source []byte, impls map[string]*model.TypeDecl) {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return
	}
	typeName := typeNode.Content(source)
	td, ok := impls[typeName]
	if !ok {
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(n.EndPoint())
		td = &model.TypeDecl{Name: typeName, Kind: model.KindImpl, StartLine: startLine, EndLine: endLine}
		impls[typeName] = td
	}
	if traitNode := n.ChildByFieldName("trait"); traitNode != nil {
		td.Implements = append(td.Implements, traitNode.Content(source))
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		if fn := body.NamedChild(i); fn.Type() == "function_item" {
			td.Members = append(td.Members, rustParseFn(fn, source, true, typeName))
		}
	}
}

func (RustExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	var out []model.StateConstant
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "const_item" && n.Type() != "static_item" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		name := nameNode.Content(source)
		if n.Type() == "static_item" && !stateConstantPattern(name) {
			return true
		}
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(n.EndPoint())
		out = append(out, model.StateConstant{Name: name, StartLine: startLine, EndLine: endLine})
		return true
	})
	return out
}

func (RustExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	stack := &enclosingStack{}
	aliases := newAliasTable()
	var out []model.Call

	var walkBody func(n *sitter.Node)
	walkBody = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "function_item", "closure_expression":
			name := "closure"
			if nameNode := n.ChildByFieldName("name"); nameNode != nil {
				name = nameNode.Content(source)
			}
			start, _ := lineCol(n.StartPoint())
			end, _ := lineCol(n.EndPoint())
			stack.push(model.EnclosingFunction{Name: name, StartLine: start, EndLine: end})
			for i := 0; i < int(n.ChildCount()); i++ {
				walkBody(n.Child(i))
			}
			stack.pop()
			return
		case "let_declaration":
			rustRecordAlias(n, source, aliases)
		case "call_expression":
			out = append(out, rustEmitCall(n, source, stack, aliases)...)
		case "macro_invocation":
			out = append(out, rustEmitMacro(n, source, stack))
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walkBody(n.Child(i))
		}
	}
	walkBody(root)
	return out
}

func rustRecordAlias(n *sitter.Node, source []byte, aliases *aliasTable) {
	pattern := n.ChildByFieldName("pattern")
	value := n.ChildByFieldName("value")
	if pattern == nil || value == nil || pattern.Type() != "identifier" {
		return
	}
	name := pattern.Content(source)
	switch value.Type() {
	case "identifier":
		aliases.bind(name, value.Content(source))
	case "integer_literal", "float_literal", "string_literal", "boolean_literal", "array_expression", "struct_expression":
		aliases.markNonCallable(name)
	}
}

func rustEmitCall(n *sitter.Node, source []byte, stack *enclosingStack, aliases *aliasTable) []model.Call {
	fnNode := n.ChildByFieldName("function")
	if fnNode == nil {
		return nil
	}
	line, _ := lineCol(n.StartPoint())
	enclosing := stack.top()
	args := rustArguments(n.ChildByFieldName("arguments"), source)

	var calls []model.Call
	switch fnNode.Type() {
	case "identifier":
		callee := fnNode.Content(source)
		if aliases.isNonCallable(callee) {
			return nil
		}
		calls = append(calls, model.Call{Callee: callee, Line: line, Enclosing: enclosing, Arguments: args, ResolvedNames: aliases.resolve(callee)})
		if len(callee) > 0 && strings.ToUpper(callee[:1]) == callee[:1] {
			calls[0].IsConstructor = true
		}
	case "scoped_identifier":
		name := fnNode.ChildByFieldName("name")
		path := fnNode.ChildByFieldName("path")
		if name == nil {
			return nil
		}
		callee := name.Content(source)
		call := model.Call{Callee: callee, Line: line, Enclosing: enclosing, Arguments: args}
		if path != nil {
			call.Receiver = path.Content(source)
			if callee == "new" {
				call.IsConstructor = true
			}
		}
		calls = append(calls, call)
	case "field_expression":
		value := fnNode.ChildByFieldName("value")
		field := fnNode.ChildByFieldName("field")
		if field == nil {
			return nil
		}
		call := model.Call{Callee: field.Content(source), Line: line, IsMethod: true, Enclosing: enclosing, Arguments: args}
		if value != nil {
			call.Receiver = value.Content(source)
		}
		calls = append(calls, call)
	}
	return calls
}

func rustEmitMacro(n *sitter.Node, source []byte, stack *enclosingStack) model.Call {
	line, _ := lineCol(n.StartPoint())
	macroNode := n.ChildByFieldName("macro")
	callee := n.Content(source)
	if macroNode != nil {
		callee = macroNode.Content(source)
	}
	return model.Call{Callee: callee, Line: line, IsMacro: true, Enclosing: stack.top()}
}

func rustArguments(argsNode *sitter.Node, source []byte) []model.Argument {
	if argsNode == nil {
		return nil
	}
	var out []model.Argument
	pos := 0
	for i := 0; i < int(argsNode.NamedChildCount()); i++ {
		child := argsNode.NamedChild(i)
		out = append(out, model.Argument{Text: child.Content(source), Position: pos})
		pos++
	}
	return out
}

func (RustExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	var out []model.Import
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "use_declaration":
			line, _ := lineCol(n.StartPoint())
			tree := n.ChildByFieldName("argument")
			if tree == nil {
				return true
			}
			out = append(out, rustFlattenUseTree(tree, "", line, source)...)
			return false
		case "mod_item":
			// A mod_item with no body is a declaration (`mod x;`) that
			// names a file the resolver must locate; one with a body
			// (`mod x { ... }`) is inline and resolves nowhere on disk.
			if n.ChildByFieldName("body") != nil {
				return true
			}
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			line, _ := lineCol(n.StartPoint())
			out = append(out, model.Import{Source: nameNode.Content(source), Kind: model.ImportStatic, Line: line, Names: []string{nameNode.Content(source)}})
		}
		return true
	})
	return out
}

func rustFlattenUseTree(n *sitter.Node, prefix string, line int, source []byte) []model.Import {
	switch n.Type() {
	case "scoped_identifier":
		path := n.Content(source)
		return []model.Import{{Source: path, Kind: model.ImportNamed, Line: line, Names: []string{rustLastSegment(path)}}}
	case "identifier":
		path := joinPath(prefix, n.Content(source))
		return []model.Import{{Source: path, Kind: model.ImportNamed, Line: line, Names: []string{n.Content(source)}}}
	case "use_as_clause":
		pathNode := n.ChildByFieldName("path")
		aliasNode := n.ChildByFieldName("alias")
		if pathNode == nil || aliasNode == nil {
			return nil
		}
		path := pathNode.Content(source)
		return []model.Import{{Source: path, Kind: model.ImportNamed, Line: line, Names: []string{rustLastSegment(path)}, Aliases: map[string]string{rustLastSegment(path): aliasNode.Content(source)}}}
	case "use_list":
		var out []model.Import
		for i := 0; i < int(n.NamedChildCount()); i++ {
			out = append(out, rustFlattenUseTree(n.NamedChild(i), prefix, line, source)...)
		}
		return out
	case "scoped_use_list":
		pathNode := n.ChildByFieldName("path")
		listNode := n.ChildByFieldName("list")
		base := ""
		if pathNode != nil {
			base = pathNode.Content(source)
		}
		if listNode == nil {
			return nil
		}
		var out []model.Import
		for i := 0; i < int(listNode.NamedChildCount()); i++ {
			imps := rustFlattenUseTree(listNode.NamedChild(i), "", line, source)
			for _, imp := range imps {
				imp.Source = joinPath(base, imp.Source)
				out = append(out, imp)
			}
		}
		return out
	case "use_wildcard":
		pathNode := n.ChildByFieldName("path")
		path := ""
		if pathNode != nil {
			path = pathNode.Content(source)
		}
		return []model.Import{{Source: path, Kind: model.ImportNamespace, Line: line, Names: []string{"*"}}}
	default:
		return nil
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "::" + name
}

func rustLastSegment(path string) string {
	segs := strings.Split(path, "::")
	return segs[len(segs)-1]
}

func (RustExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	var out []model.Export
	walk(root, func(n *sitter.Node) bool {
		vis := javaFindChild(n, "visibility_modifier")
		if vis == nil {
			return true
		}
		var nameNode *sitter.Node
		switch n.Type() {
		case "function_item", "struct_item", "enum_item", "trait_item", "mod_item", "const_item", "static_item", "type_item":
			nameNode = n.ChildByFieldName("name")
		default:
			return true
		}
		if nameNode == nil {
			return true
		}
		line, _ := lineCol(n.StartPoint())
		out = append(out, model.Export{Name: nameNode.Content(source), Kind: model.ExportConvention, Line: line})
		return true
	})
	return out
}

var rustDefTypes = map[string]bool{
	"function_item": true, "struct_item": true, "enum_item": true,
	"trait_item": true, "const_item": true, "static_item": true, "type_item": true,
	"let_declaration": true,
}
var rustImportTypes = map[string]bool{"use_declaration": true}

func rustIsCall(n *sitter.Node) bool {
	return n.Type() == "call_expression" || n.Type() == "macro_invocation"
}

func (RustExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return genericFindUsages(source, root, name, rustDefTypes, rustImportTypes, rustIsCall)
}
