package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// PythonExtractor implements Extractor for Python, grounded in the
// grammar's function_definition/class_definition/decorated_definition
// shapes: fields "name", "parameters", "return_type", "superclasses",
// and call nodes with fields "function"/"arguments", attribute nodes
// with fields "object"/"attribute".
type PythonExtractor struct{}

func (PythonExtractor) Language() model.Language { return model.LangPython }

func (PythonExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	var out []model.Function
	walk(root, func(n *sitter.Node) bool {
		target, decorators := pyUnwrapDecorated(n, source)
		if target == nil || target.Type() != "function_definition" {
			return true
		}
		if pyIsClassMember(target) {
			return true // emitted only as a TypeDecl member
		}
		out = append(out, pyParseFunc(n, target, decorators, source, false, ""))
		return false
	})
	return out
}

// pyUnwrapDecorated returns (definitionNode, decoratorTexts) for a node
// that may be wrapped in a decorated_definition; for a bare
// function_definition/class_definition it returns (n, nil).
func pyUnwrapDecorated(n *sitter.Node, source []byte) (*sitter.Node, []string) {
	switch n.Type() {
	case "function_definition", "class_definition":
		return n, nil
	case "decorated_definition":
		var decorators []string
		var def *sitter.Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "decorator" {
				decorators = append(decorators, strings.TrimPrefix(child.Content(source), "@"))
			} else {
				def = child
			}
		}
		return def, decorators
	}
	return nil, nil
}

func pyIsClassMember(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == "class_definition" {
			return true
		}
		if p.Type() == "function_definition" {
			return false // nested function, not a class member
		}
	}
	return false
}

func pyParseFunc(outer, def *sitter.Node, decorators []string, source []byte, isMethod bool, receiver string) model.Function {
	nameNode := def.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(source)
	}
	startLine, _ := lineCol(outer.StartPoint())
	endLine, _ := lineCol(def.EndPoint())
	nameLine, _ := lineCol(def.StartPoint())

	fn := model.Function{
		Name: name, StartLine: startLine, EndLine: endLine, IsMethod: isMethod, Receiver: receiver,
		Decorators: decorators,
	}
	if nameLine != startLine {
		fn.NameLine = nameLine
	}
	if params := def.ChildByFieldName("parameters"); params != nil {
		fn.Params = pyParams(params, source)
	}
	if ret := def.ChildByFieldName("return_type"); ret != nil {
		fn.ReturnType = ret.Content(source)
	}
	for _, p := range fn.Params {
		if p.Name == "self" || p.Name == "cls" {
			fn.IsMethod = true
		}
	}
	if strings.HasPrefix(name, "async") {
		fn.Modifiers = append(fn.Modifiers, "async")
	}
	if body := def.ChildByFieldName("body"); body != nil && body.NamedChildCount() > 0 {
		first := body.NamedChild(0)
		if first.Type() == "expression_statement" && first.NamedChildCount() > 0 && first.NamedChild(0).Type() == "string" {
			fn.Docstring = docstringBefore(source, startLine, first.NamedChild(0))
		}
	}
	return fn
}

func pyParams(paramList *sitter.Node, source []byte) []model.Param {
	var out []model.Param
	count := int(paramList.NamedChildCount())
	for i := 0; i < count; i++ {
		p := paramList.NamedChild(i)
		switch p.Type() {
		case "identifier":
			out = append(out, model.Param{Name: p.Content(source), Raw: p.Content(source)})
		case "typed_parameter":
			name := ""
			if p.NamedChildCount() > 0 {
				name = p.NamedChild(0).Content(source)
			}
			typ := ""
			if t := p.ChildByFieldName("type"); t != nil {
				typ = t.Content(source)
			}
			out = append(out, model.Param{Name: name, Type: typ, Raw: p.Content(source)})
		case "default_parameter", "typed_default_parameter":
			name := ""
			if lhs := p.ChildByFieldName("name"); lhs != nil {
				name = lhs.Content(source)
			}
			def := ""
			if rhs := p.ChildByFieldName("value"); rhs != nil {
				def = rhs.Content(source)
			}
			typ := ""
			if t := p.ChildByFieldName("type"); t != nil {
				typ = t.Content(source)
			}
			out = append(out, model.Param{Name: name, Type: typ, Raw: p.Content(source), HasDefault: true, Default: def, Optional: true})
		case "list_splat_pattern", "dictionary_splat_pattern":
			out = append(out, model.Param{Name: strings.TrimLeft(p.Content(source), "*"), Raw: p.Content(source), IsRest: true})
		}
	}
	return out
}

func (PythonExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	var out []model.TypeDecl
	walk(root, func(n *sitter.Node) bool {
		target, decorators := pyUnwrapDecorated(n, source)
		if target == nil || target.Type() != "class_definition" {
			return true
		}
		nameNode := target.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(target.EndPoint())
		td := model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindClass, StartLine: startLine, EndLine: endLine}
		_ = decorators
		if super := target.ChildByFieldName("superclasses"); super != nil && super.NamedChildCount() > 0 {
			td.Extends = super.NamedChild(0).Content(source)
			for i := 1; i < int(super.NamedChildCount()); i++ {
				td.Implements = append(td.Implements, super.NamedChild(i).Content(source))
			}
		}
		if body := target.ChildByFieldName("body"); body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				child := body.NamedChild(i)
				methodNode, methodDecorators := pyUnwrapDecorated(child, source)
				if methodNode == nil || methodNode.Type() != "function_definition" {
					continue
				}
				td.Members = append(td.Members, pyParseFunc(child, methodNode, methodDecorators, source, true, td.Name))
			}
		}
		out = append(out, td)
		return false
	})
	return out
}

func (PythonExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	var out []model.StateConstant
	if root == nil {
		return out
	}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		if n.Type() != "expression_statement" || n.NamedChildCount() == 0 {
			continue
		}
		assign := n.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}
		left := assign.ChildByFieldName("left")
		if left == nil || left.Type() != "identifier" {
			continue
		}
		name := left.Content(source)
		if !stateConstantPattern(name) {
			continue
		}
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(n.EndPoint())
		out = append(out, model.StateConstant{Name: name, StartLine: startLine, EndLine: endLine})
	}
	return out
}

// FindInstanceAttributeTypes implements the optional §4.3 operation:
// `self.attr = SomeType(...)` anywhere in the class body (in __init__ or
// any other method) types attr as SomeType so later
// `self.attr.method()` calls can resolve against SomeType.
func (PythonExtractor) FindInstanceAttributeTypes(source []byte, root *sitter.Node) map[string]map[string]string {
	result := make(map[string]map[string]string)
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "class_definition" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		className := nameNode.Content(source)
		attrs := make(map[string]string)
		walk(n, func(m *sitter.Node) bool {
			if m.Type() == "class_definition" && m != n {
				return false
			}
			if m.Type() != "assignment" {
				return true
			}
			left := m.ChildByFieldName("left")
			right := m.ChildByFieldName("right")
			if left == nil || right == nil || left.Type() != "attribute" {
				return true
			}
			obj := left.ChildByFieldName("object")
			attr := left.ChildByFieldName("attribute")
			if obj == nil || attr == nil || obj.Content(source) != "self" {
				return true
			}
			if right.Type() == "call" {
				if fn := right.ChildByFieldName("function"); fn != nil && fn.Type() == "identifier" {
					attrs[attr.Content(source)] = fn.Content(source)
				}
			}
			return true
		})
		if len(attrs) > 0 {
			result[className] = attrs
		}
		return true
	})
	return result
}

func (PythonExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	stack := &enclosingStack{}
	aliases := newAliasTable()
	var out []model.Call

	var walkBody func(n *sitter.Node)
	walkBody = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "function_definition", "lambda":
			name := "lambda"
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
		case "assignment":
			pyRecordAlias(n, source, aliases)
		case "call":
			out = append(out, pyEmitCall(n, source, stack, aliases)...)
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walkBody(n.Child(i))
		}
	}
	walkBody(root)
	return out
}

func pyRecordAlias(n *sitter.Node, source []byte, aliases *aliasTable) {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil || left.Type() != "identifier" {
		return
	}
	name := left.Content(source)
	switch right.Type() {
	case "identifier":
		aliases.bind(name, right.Content(source))
	case "conditional_expression":
		if cons := right.ChildByFieldName("consequence"); cons != nil && cons.Type() == "identifier" {
			aliases.bind(name, cons.Content(source))
		}
		if alt := right.ChildByFieldName("alternative"); alt != nil && alt.Type() == "identifier" {
			aliases.bind(name, alt.Content(source))
		}
	case "string", "integer", "float", "list", "dictionary", "set", "true", "false", "none":
		aliases.markNonCallable(name)
	case "call":
		if fn := right.ChildByFieldName("function"); fn != nil {
			fnText := fn.Content(source)
			if fnText == "functools.partial" || fnText == "partial" {
				if args := right.ChildByFieldName("arguments"); args != nil && args.NamedChildCount() > 0 {
					aliases.bind(name, args.NamedChild(0).Content(source))
				}
			} else if len(fnText) > 0 && strings.ToUpper(fnText[:1]) == fnText[:1] {
				aliases.markNonCallable(name) // looks like a constructor call, e.g. `svc = UserService()`
			}
		}
	}
}

func pyEmitCall(n *sitter.Node, source []byte, stack *enclosingStack, aliases *aliasTable) []model.Call {
	fnNode := n.ChildByFieldName("function")
	if fnNode == nil {
		return nil
	}
	line, _ := lineCol(n.StartPoint())
	enclosing := stack.top()
	args := pyArguments(n.ChildByFieldName("arguments"), source)

	var calls []model.Call
	switch fnNode.Type() {
	case "identifier":
		callee := fnNode.Content(source)
		if aliases.isNonCallable(callee) {
			return nil
		}
		call := model.Call{Callee: callee, Line: line, Enclosing: enclosing, Arguments: args, ResolvedNames: aliases.resolve(callee)}
		if len(callee) > 0 && strings.ToUpper(callee[:1]) == callee[:1] {
			call.IsConstructor = true
		}
		calls = append(calls, call)
	case "attribute":
		obj := fnNode.ChildByFieldName("object")
		attr := fnNode.ChildByFieldName("attribute")
		if attr == nil {
			return nil
		}
		callee := attr.Content(source)
		call := model.Call{Callee: callee, Line: line, IsMethod: true, Enclosing: enclosing, Arguments: args}
		if obj != nil {
			switch obj.Type() {
			case "identifier":
				call.Receiver = obj.Content(source)
			case "attribute":
				if base := obj.ChildByFieldName("object"); base != nil && base.Content(source) == "self" {
					if sa := obj.ChildByFieldName("attribute"); sa != nil {
						call.Receiver = "self"
						call.SelfAttribute = sa.Content(source)
					}
				}
			}
			if callee == "call" && obj.Content(source) == "fn" {
				// No rewrite is applied: fn.call(...) stays a method
				// call named "call".
			}
		}
		calls = append(calls, call)
	}

	calleeName := ""
	if len(calls) > 0 {
		calleeName = calls[0].Callee
	}
	if argsNode := n.ChildByFieldName("arguments"); argsNode != nil {
		for i := 0; i < int(argsNode.NamedChildCount()); i++ {
			arg := argsNode.NamedChild(i)
			if arg.Type() != "identifier" {
				continue
			}
			argName := arg.Content(source)
			if aliases.isNonCallable(argName) {
				continue
			}
			refCall := model.Call{Callee: argName, Line: line, Enclosing: enclosing, IsFunctionReference: true}
			if !confirmedCallbackPositions(calleeName, i) {
				refCall.IsPotentialCallback = true
			}
			calls = append(calls, refCall)
		}
	}
	return calls
}

func pyArguments(argsNode *sitter.Node, source []byte) []model.Argument {
	if argsNode == nil {
		return nil
	}
	var out []model.Argument
	pos := 0
	for i := 0; i < int(argsNode.NamedChildCount()); i++ {
		child := argsNode.NamedChild(i)
		if child.Type() == "keyword_argument" {
			name := ""
			if n := child.ChildByFieldName("name"); n != nil {
				name = n.Content(source)
			}
			val := ""
			if v := child.ChildByFieldName("value"); v != nil {
				val = v.Content(source)
			}
			out = append(out, model.Argument{Text: val, Position: pos, IsNamed: true, Name: name})
		} else {
			out = append(out, model.Argument{Text: child.Content(source), Position: pos})
		}
		pos++
	}
	return out
}

func (PythonExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	var out []model.Import
	if root == nil {
		return out
	}
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			line, _ := lineCol(n.StartPoint())
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				switch child.Type() {
				case "dotted_name":
					out = append(out, model.Import{Source: child.Content(source), Kind: model.ImportNamespace, Line: line})
				case "aliased_import":
					name := child.ChildByFieldName("name")
					alias := child.ChildByFieldName("alias")
					if name != nil && alias != nil {
						out = append(out, model.Import{
							Source: name.Content(source), Kind: model.ImportNamespace, Line: line,
							Aliases: map[string]string{name.Content(source): alias.Content(source)},
						})
					}
				}
			}
		case "import_from_statement":
			line, _ := lineCol(n.StartPoint())
			moduleNode := n.ChildByFieldName("module_name")
			module := ""
			if moduleNode != nil {
				module = moduleNode.Content(source)
			}
			imp := model.Import{Source: module, Kind: model.ImportNamed, Line: line}
			if strings.HasPrefix(module, ".") {
				imp.Kind = model.ImportRelative
			}
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				switch child.Type() {
				case "wildcard_import":
					imp.Names = []string{"*"}
					imp.Kind = model.ImportNamespace
				case "dotted_name", "identifier":
					if child != moduleNode {
						imp.Names = append(imp.Names, child.Content(source))
					}
				case "aliased_import":
					name := child.ChildByFieldName("name")
					alias := child.ChildByFieldName("alias")
					if name != nil {
						imp.Names = append(imp.Names, name.Content(source))
						if alias != nil {
							if imp.Aliases == nil {
								imp.Aliases = make(map[string]string)
							}
							imp.Aliases[name.Content(source)] = alias.Content(source)
						}
					}
				}
			}
			out = append(out, imp)
		}
		return true
	})
	return out
}

func (PythonExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	// Python's export rule is `__all__` (§6); absent __all__, nothing is
	// reported and consumers fall back to a naming convention.
	var out []model.Export
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "assignment" {
			return true
		}
		left := n.ChildByFieldName("left")
		right := n.ChildByFieldName("right")
		if left == nil || right == nil || left.Content(source) != "__all__" {
			return true
		}
		line, _ := lineCol(n.StartPoint())
		if right.Type() != "list" && right.Type() != "tuple" {
			return true
		}
		for i := 0; i < int(right.NamedChildCount()); i++ {
			item := right.NamedChild(i)
			name := strings.Trim(item.Content(source), `"'`)
			out = append(out, model.Export{Name: name, Kind: model.ExportNamed, Line: line})
		}
		return false
	})
	return out
}

func (PythonExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return genericFindUsages(source, root, name, pyDefTypes, pyImportTypes, pyIsCall)
}

var pyDefTypes = map[string]bool{"function_definition": true, "class_definition": true}
var pyImportTypes = map[string]bool{"import_statement": true, "import_from_statement": true}

func pyIsCall(n *sitter.Node) bool { return n.Type() == "call" }
