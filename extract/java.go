package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// JavaExtractor implements Extractor for Java, grounded in the
// teacher's graph/parser_java.go: method_declaration/
// constructor_declaration with fields "type"/"name"/"parameters"/
// "throws", class_declaration with fields "name"/"superclass"/
// "interfaces"/"body", formal_parameter with fields "type"/"name",
// method_invocation with fields "object"/"name"/"arguments", and the
// modifiers child node scanned for marker_annotation/public/private/
// static the way parseJavaMethodDeclaration and
// parseJavaClassDeclaration do.
type JavaExtractor struct{}

func (JavaExtractor) Language() model.Language { return model.LangJava }

func (JavaExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	var out []model.Function
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "method_declaration" && n.Type() != "constructor_declaration" {
			return true
		}
		if javaIsInterfaceBody(n) {
			// abstract interface methods still count as declarations.
		}
		out = append(out, javaParseMethod(n, source))
		return false
	})
	return out
}

func javaIsInterfaceBody(n *sitter.Node) bool {
	p := n.Parent()
	return p != nil && p.Parent() != nil && p.Parent().Type() == "interface_declaration"
}

func javaParseMethod(n *sitter.Node, source []byte) model.Function {
	startLine, _ := lineCol(n.StartPoint())
	endLine, _ := lineCol(n.EndPoint())
	fn := model.Function{StartLine: startLine, EndLine: endLine, IsMethod: true}
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		fn.Name = nameNode.Content(source)
	}
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		fn.ReturnType = typeNode.Content(source)
	} else if n.Type() == "constructor_declaration" {
		fn.ReturnType = ""
	}
	if typeParams := n.ChildByFieldName("type_parameters"); typeParams != nil {
		for i := 0; i < int(typeParams.NamedChildCount()); i++ {
			fn.Generics = append(fn.Generics, typeParams.NamedChild(i).Content(source))
		}
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = javaParams(params, source)
	}
	if throws := javaFindChild(n, "throws"); throws != nil {
		mod := "throws " + strings.Join(javaTypeIdentifiers(throws, source), ", ")
		fn.Modifiers = append(fn.Modifiers, mod)
	}
	if modifiers := javaFindChild(n, "modifiers"); modifiers != nil {
		fn.Modifiers = append(fn.Modifiers, javaModifierWords(modifiers, source)...)
	}
	if c := n.PrevSibling(); c != nil && c.Type() == "block_comment" {
		fn.Docstring = docstringBefore(source, startLine, c)
	}
	return fn
}

func javaFindChild(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == typ {
			return n.Child(i)
		}
	}
	return nil
}

func javaTypeIdentifiers(n *sitter.Node, source []byte) []string {
	var out []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "type_identifier" {
			out = append(out, n.NamedChild(i).Content(source))
		}
	}
	return out
}

func javaModifierWords(n *sitter.Node, source []byte) []string {
	var out []string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "public", "private", "protected", "static", "final", "abstract", "synchronized":
			out = append(out, child.Type())
		case "marker_annotation", "annotation":
			out = append(out, child.Content(source))
		}
	}
	return out
}

func javaParams(paramList *sitter.Node, source []byte) []model.Param {
	var out []model.Param
	for i := 0; i < int(paramList.NamedChildCount()); i++ {
		p := paramList.NamedChild(i)
		if p.Type() != "formal_parameter" && p.Type() != "spread_parameter" {
			continue
		}
		param := model.Param{Raw: p.Content(source)}
		if t := p.ChildByFieldName("type"); t != nil {
			param.Type = t.Content(source)
		}
		if nm := p.ChildByFieldName("name"); nm != nil {
			param.Name = nm.Content(source)
		}
		if p.Type() == "spread_parameter" {
			param.IsRest = true
		}
		out = append(out, param)
	}
	return out
}

func (JavaExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	var out []model.TypeDecl
	walk(root, func(n *sitter.Node) bool {
		var kind model.TypeKind
		switch n.Type() {
		case "class_declaration":
			kind = model.KindClass
		case "interface_declaration":
			kind = model.KindInterface
		case "enum_declaration":
			kind = model.KindEnum
		case "record_declaration":
			kind = model.KindRecord
		default:
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil {
			return true
		}
		startLine, _ := lineCol(n.StartPoint())
		endLine, _ := lineCol(n.EndPoint())
		td := model.TypeDecl{Name: nameNode.Content(source), Kind: kind, StartLine: startLine, EndLine: endLine}
		if modifiers := javaFindChild(n, "modifiers"); modifiers != nil {
			td.Modifiers = javaModifierWords(modifiers, source)
		}
		if super := javaFindChild(n, "superclass"); super != nil {
			for i := 0; i < int(super.ChildCount()); i++ {
				if super.Child(i).Type() == "type_identifier" || super.Child(i).Type() == "generic_type" {
					td.Extends = super.Child(i).Content(source)
				}
			}
		}
		if interfaces := javaFindChild(n, "super_interfaces"); interfaces != nil {
			for i := 0; i < int(interfaces.ChildCount()); i++ {
				typeList := interfaces.Child(i)
				for j := 0; j < int(typeList.ChildCount()); j++ {
					if strings.Contains(typeList.Child(j).Type(), "type") {
						td.Implements = append(td.Implements, typeList.Child(j).Content(source))
					}
				}
			}
		}
		body := n.ChildByFieldName("body")
		if body != nil {
			for i := 0; i < int(body.NamedChildCount()); i++ {
				member := body.NamedChild(i)
				if member.Type() == "method_declaration" || member.Type() == "constructor_declaration" {
					method := javaParseMethod(member, source)
					method.Receiver = td.Name
					td.Members = append(td.Members, method)
				}
			}
		}
		out = append(out, td)
		return false
	})
	return out
}

func (JavaExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	var out []model.StateConstant
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "field_declaration" {
			return true
		}
		modifiers := javaFindChild(n, "modifiers")
		isStaticFinal := false
		if modifiers != nil {
			words := javaModifierWords(modifiers, source)
			hasStatic, hasFinal := false, false
			for _, w := range words {
				if w == "static" {
					hasStatic = true
				}
				if w == "final" {
					hasFinal = true
				}
			}
			isStaticFinal = hasStatic && hasFinal
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			declr := n.NamedChild(i)
			if declr.Type() != "variable_declarator" {
				continue
			}
			nameNode := declr.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			name := nameNode.Content(source)
			if isStaticFinal && isAllCapsIdentifier(name) || stateConstantPattern(name) {
				startLine, _ := lineCol(n.StartPoint())
				endLine, _ := lineCol(n.EndPoint())
				out = append(out, model.StateConstant{Name: name, StartLine: startLine, EndLine: endLine})
			}
		}
		return true
	})
	return out
}

func (JavaExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	stack := &enclosingStack{}
	var out []model.Call

	var walkBody func(n *sitter.Node)
	walkBody = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "method_declaration", "constructor_declaration", "lambda_expression":
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
		case "method_invocation":
			out = append(out, javaEmitInvocation(n, source, stack))
		case "object_creation_expression":
			out = append(out, javaEmitConstruction(n, source, stack))
		case "method_reference":
			out = append(out, javaEmitMethodReference(n, source, stack))
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walkBody(n.Child(i))
		}
	}
	walkBody(root)
	return out
}

func javaEmitInvocation(n *sitter.Node, source []byte, stack *enclosingStack) model.Call {
	line, _ := lineCol(n.StartPoint())
	nameNode := n.ChildByFieldName("name")
	callee := ""
	if nameNode != nil {
		callee = nameNode.Content(source)
	}
	call := model.Call{Callee: callee, Line: line, IsMethod: true, Enclosing: stack.top(), Arguments: javaArguments(n.ChildByFieldName("arguments"), source)}
	if obj := n.ChildByFieldName("object"); obj != nil {
		call.Receiver = obj.Content(source)
		if call.Receiver == "this" {
			call.Receiver = "this"
		}
	}
	return call
}

func javaEmitConstruction(n *sitter.Node, source []byte, stack *enclosingStack) model.Call {
	line, _ := lineCol(n.StartPoint())
	typeNode := n.ChildByFieldName("type")
	callee := ""
	if typeNode != nil {
		callee = typeNode.Content(source)
	}
	return model.Call{Callee: callee, Line: line, IsConstructor: true, Enclosing: stack.top(), Arguments: javaArguments(n.ChildByFieldName("arguments"), source)}
}

func javaEmitMethodReference(n *sitter.Node, source []byte, stack *enclosingStack) model.Call {
	line, _ := lineCol(n.StartPoint())
	text := n.Content(source)
	parts := strings.SplitN(text, "::", 2)
	callee := text
	receiver := ""
	if len(parts) == 2 {
		receiver = strings.TrimSpace(parts[0])
		callee = strings.TrimSpace(parts[1])
	}
	return model.Call{Callee: callee, Receiver: receiver, Line: line, IsFunctionReference: true, IsPotentialCallback: true, Enclosing: stack.top()}
}

func javaArguments(argsNode *sitter.Node, source []byte) []model.Argument {
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

func (JavaExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	var out []model.Import
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "import_declaration" {
			return true
		}
		line, _ := lineCol(n.StartPoint())
		isStatic := false
		isWildcard := false
		var pathNode *sitter.Node
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			switch child.Type() {
			case "static":
				isStatic = true
			case "asterisk":
				isWildcard = true
			case "scoped_identifier", "identifier":
				pathNode = child
			}
		}
		if pathNode == nil {
			return true
		}
		path := pathNode.Content(source)
		imp := model.Import{Source: path, Line: line, Kind: model.ImportNamed}
		if isWildcard {
			imp.Kind = model.ImportNamespace
			imp.Names = []string{"*"}
		} else {
			segs := strings.Split(path, ".")
			imp.Names = []string{segs[len(segs)-1]}
		}
		if isStatic {
			imp.Kind = model.ImportStatic
		}
		out = append(out, imp)
		return false
	})
	return out
}

func (JavaExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	// Java's visibility is its export rule (§6): every class, interface,
	// enum or record declaration (nested ones included) whose modifiers
	// contain public. Methods and fields are not reported.
	var out []model.Export
	walk(root, func(n *sitter.Node) bool {
		var nameNode *sitter.Node
		switch n.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			nameNode = n.ChildByFieldName("name")
		default:
			return true
		}
		if nameNode == nil {
			return true
		}
		modifiers := javaFindChild(n, "modifiers")
		if modifiers == nil || !strings.Contains(modifiers.Content(source), "public") {
			return true
		}
		line, _ := lineCol(n.StartPoint())
		out = append(out, model.Export{Name: nameNode.Content(source), Kind: model.ExportConvention, Line: line})
		return true
	})
	return out
}

var javaDefTypes = map[string]bool{
	"method_declaration": true, "constructor_declaration": true,
	"class_declaration": true, "interface_declaration": true,
	"enum_declaration": true, "record_declaration": true, "variable_declarator": true,
}
var javaImportTypes = map[string]bool{"import_declaration": true}

func javaIsCall(n *sitter.Node) bool {
	return n.Type() == "method_invocation" || n.Type() == "object_creation_expression"
}

func (JavaExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return genericFindUsages(source, root, name, javaDefTypes, javaImportTypes, javaIsCall)
}
