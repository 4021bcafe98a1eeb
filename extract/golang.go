package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// GoExtractor implements Extractor for Go source, grounded in the
// grammar's function_declaration/method_declaration/type_declaration
// node shapes: fields "name", "parameters", "result", "receiver",
// "function"/"arguments" on call_expression, and "operand"/"field" on
// selector_expression.
type GoExtractor struct{}

func (GoExtractor) Language() model.Language { return model.LangGo }

func goVisibility(name string) bool {
	return name != "" && strings.ToUpper(name[:1]) == name[:1]
}

func (GoExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	var out []model.Function
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration":
			out = append(out, goParseFunc(n, source, false, ""))
			return false
		case "method_declaration":
			// Methods are emitted only as TypeDecl members (§4.3); skip
			// here so they aren't double-counted at the file level.
			return false
		}
		return true
	})
	return out
}

func goParseFunc(n *sitter.Node, source []byte, isMethod bool, receiver string) model.Function {
	nameNode := n.ChildByFieldName("name")
	name := ""
	if nameNode != nil {
		name = nameNode.Content(source)
	}
	startLine, _ := lineCol(n.StartPoint())
	endLine, _ := lineCol(n.EndPoint())

	fn := model.Function{
		Name:      name,
		StartLine: startLine,
		EndLine:   endLine,
		IsMethod:  isMethod,
		Receiver:  receiver,
	}
	if goVisibility(name) {
		fn.Modifiers = append(fn.Modifiers, "exported")
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = goParams(params, source)
	}
	if result := n.ChildByFieldName("result"); result != nil {
		fn.ReturnType = strings.TrimSpace(result.Content(source))
	}
	if c := precedingComment(n); c != nil {
		fn.Docstring = docstringBefore(source, startLine, c)
	}
	return fn
}

func goParams(paramList *sitter.Node, source []byte) []model.Param {
	var out []model.Param
	count := int(paramList.NamedChildCount())
	for i := 0; i < count; i++ {
		decl := paramList.NamedChild(i)
		if decl.Type() != "parameter_declaration" && decl.Type() != "variadic_parameter_declaration" {
			continue
		}
		typeNode := decl.ChildByFieldName("type")
		typ := ""
		if typeNode != nil {
			typ = typeNode.Content(source)
		}
		isRest := decl.Type() == "variadic_parameter_declaration"
		nameCount := 0
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			child := decl.NamedChild(j)
			if child.Type() == "identifier" {
				out = append(out, model.Param{Name: child.Content(source), Type: typ, Raw: decl.Content(source), IsRest: isRest})
				nameCount++
			}
		}
		if nameCount == 0 {
			out = append(out, model.Param{Type: typ, Raw: decl.Content(source), IsRest: isRest})
		}
	}
	return out
}

func (GoExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	types := make(map[string]*model.TypeDecl)
	var order []string

	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "type_spec" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		name := nameNode.Content(source)
		typeNode := n.ChildByFieldName("type")
		kind := model.KindTypeAlias
		var implements []string
		if typeNode != nil {
			switch typeNode.Type() {
			case "struct_type":
				kind = model.KindStruct
			case "interface_type":
				kind = model.KindInterface
				implements = goInterfaceMethodNames(typeNode, source)
			}
		}
		parent := n.Parent() // type_spec's parent is type_declaration (or type_spec_list)
		decl := parent
		if decl != nil && decl.Type() == "type_spec_list" {
			decl = decl.Parent()
		}
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(n.EndPoint())
		if decl != nil {
			_ = decl // grouped `type ( ... )` blocks still report per-spec spans
		}
		td := &model.TypeDecl{Name: name, Kind: kind, StartLine: startLine, EndLine: endLine, Implements: implements}
		if goVisibility(name) {
			td.Modifiers = append(td.Modifiers, "exported")
		}
		types[name] = td
		order = append(order, name)
		return true
	})

	// Attach methods to their receiver type.
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "method_declaration" {
			return true
		}
		receiverNode := n.ChildByFieldName("receiver")
		recvType := goReceiverTypeName(receiverNode, source)
		fn := goParseFunc(n, source, true, recvType)
		if td, ok := types[recvType]; ok {
			td.Members = append(td.Members, fn)
			if fn.EndLine > td.EndLine {
				td.EndLine = fn.EndLine
			}
		}
		return true
	})

	out := make([]model.TypeDecl, 0, len(order))
	for _, name := range order {
		out = append(out, *types[name])
	}
	return out
}

func goReceiverTypeName(receiver *sitter.Node, source []byte) string {
	if receiver == nil || receiver.NamedChildCount() == 0 {
		return ""
	}
	param := receiver.NamedChild(0)
	typeNode := param.ChildByFieldName("type")
	if typeNode == nil {
		return ""
	}
	name := typeNode.Content(source)
	return strings.TrimPrefix(name, "*")
}

func goInterfaceMethodNames(iface *sitter.Node, source []byte) []string {
	var out []string
	count := int(iface.NamedChildCount())
	for i := 0; i < count; i++ {
		child := iface.NamedChild(i)
		if child.Type() == "method_elem" {
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				out = append(out, nameNode.Content(source))
			}
		}
	}
	return out
}

func (GoExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	var out []model.StateConstant
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "const_spec" && n.Type() != "var_spec" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		name := nameNode.Content(source)
		if !stateConstantPattern(name) {
			return true
		}
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(n.EndPoint())
		out = append(out, model.StateConstant{Name: name, StartLine: startLine, EndLine: endLine})
		return true
	})
	return out
}

func (GoExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	stack := &enclosingStack{}
	aliases := newAliasTable()
	var out []model.Call

	var walkBody func(n *sitter.Node)
	walkBody = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "function_declaration", "method_declaration", "func_literal":
			nameNode := n.ChildByFieldName("name")
			name := "func"
			if nameNode != nil {
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
		case "short_var_declaration":
			goRecordAlias(n, source, aliases)
		case "call_expression":
			out = append(out, goEmitCall(n, source, stack, aliases)...)
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walkBody(n.Child(i))
		}
	}
	walkBody(root)
	return out
}

func goRecordAlias(n *sitter.Node, source []byte, aliases *aliasTable) {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil {
		return
	}
	if left.NamedChildCount() != 1 || right.NamedChildCount() != 1 {
		return
	}
	lhs := left.NamedChild(0)
	rhs := right.NamedChild(0)
	if lhs.Type() != "identifier" {
		return
	}
	name := lhs.Content(source)
	switch rhs.Type() {
	case "identifier":
		aliases.bind(name, rhs.Content(source))
	case "composite_literal", "interpreted_string_literal", "raw_string_literal", "int_literal", "float_literal":
		aliases.markNonCallable(name)
	case "call_expression":
		if fn := rhs.ChildByFieldName("function"); fn != nil && goLooksLikeConstructor(fn.Content(source)) {
			aliases.markNonCallable(name)
		}
	}
}

func goLooksLikeConstructor(name string) bool {
	return strings.HasPrefix(name, "New") || strings.HasPrefix(name, "new")
}

func goEmitCall(n *sitter.Node, source []byte, stack *enclosingStack, aliases *aliasTable) []model.Call {
	fnNode := n.ChildByFieldName("function")
	if fnNode == nil {
		return nil
	}
	line, _ := lineCol(n.StartPoint())
	enclosing := stack.top()
	args := goArguments(n.ChildByFieldName("arguments"), source)

	var calls []model.Call
	switch fnNode.Type() {
	case "identifier":
		callee := fnNode.Content(source)
		if aliases.isNonCallable(callee) {
			return nil
		}
		call := model.Call{Callee: callee, Line: line, Enclosing: enclosing, Arguments: args, ResolvedNames: aliases.resolve(callee)}
		if goLooksLikeConstructor(callee) {
			call.IsConstructor = true
		}
		calls = append(calls, call)
	case "selector_expression":
		operand := fnNode.ChildByFieldName("operand")
		field := fnNode.ChildByFieldName("field")
		if field == nil {
			return nil
		}
		receiver := ""
		if operand != nil {
			receiver = operand.Content(source)
		}
		calls = append(calls, model.Call{
			Callee: field.Content(source), Line: line, IsMethod: true, Receiver: receiver,
			Enclosing: enclosing, Arguments: args,
		})
	}

	// Function-reference arguments: identifiers/selector-expressions
	// passed positionally are potential callbacks unless the callee is
	// in the confirmed higher-order catalogue.
	calleeName := ""
	if len(calls) > 0 {
		calleeName = calls[0].Callee
	}
	if argsNode := n.ChildByFieldName("arguments"); argsNode != nil {
		for i := 0; i < int(argsNode.NamedChildCount()); i++ {
			arg := argsNode.NamedChild(i)
			if arg.Type() != "identifier" && arg.Type() != "selector_expression" {
				continue
			}
			argName := arg.Content(source)
			if aliases.isNonCallable(argName) {
				continue
			}
			refCall := model.Call{Callee: argName, Line: line, Enclosing: enclosing, IsFunctionReference: true}
			if confirmedCallbackPositions(calleeName, i) {
				// confirmed: leave IsPotentialCallback false
			} else {
				refCall.IsPotentialCallback = true
			}
			calls = append(calls, refCall)
		}
	}
	return calls
}

func goArguments(argsNode *sitter.Node, source []byte) []model.Argument {
	if argsNode == nil {
		return nil
	}
	var out []model.Argument
	for i := 0; i < int(argsNode.NamedChildCount()); i++ {
		child := argsNode.NamedChild(i)
		out = append(out, model.Argument{Text: child.Content(source), Position: i})
	}
	return out
}

func (GoExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	var out []model.Import
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "import_spec" {
			return true
		}
		pathNode := n.ChildByFieldName("path")
		if pathNode == nil {
			return true
		}
		line, _ := lineCol(n.StartPoint())
		spec := strings.Trim(pathNode.Content(source), `"`)
		imp := model.Import{Source: spec, Kind: model.ImportNamed, Line: line}
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			alias := nameNode.Content(source)
			switch alias {
			case "_":
				imp.Kind = model.ImportSideEffect
			case ".":
				imp.Kind = model.ImportNamespace
				imp.Names = []string{"*"}
			default:
				imp.Aliases = map[string]string{spec: alias}
			}
		}
		out = append(out, imp)
		return true
	})
	return out
}

func (GoExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	// Go's export rule is purely syntactic (§6): every identifier whose
	// first letter is uppercase, at package level.
	var out []model.Export
	seen := make(map[string]bool)
	emit := func(name string, line int) {
		if !goVisibility(name) || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, model.Export{Name: name, Kind: model.ExportConvention, Line: line})
	}
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration", "type_spec", "const_spec", "var_spec":
			if nameNode := n.ChildByFieldName("name"); nameNode != nil {
				line, _ := lineCol(n.StartPoint())
				emit(nameNode.Content(source), line)
			}
		case "block":
			// Function bodies hold only local declarations.
			return false
		}
		return true
	})
	return out
}

func (GoExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return genericFindUsages(source, root, name, goDefinitionNodeTypes, goImportNodeTypes, goCallFieldName)
}

var goDefinitionNodeTypes = map[string]bool{
	"function_declaration": true, "method_declaration": true, "type_spec": true,
	"const_spec": true, "var_spec": true,
}
var goImportNodeTypes = map[string]bool{"import_spec": true}

func goCallFieldName(n *sitter.Node) bool {
	return n.Type() == "call_expression"
}
