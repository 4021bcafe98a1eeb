package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// jsFamily holds the logic shared between JavaScript and TypeScript,
// grounded in gnana997-uispec's pkg/parser/queries/{symbols,imports,
// types}/{javascript,typescript}.go tree-sitter query patterns, which
// name the real node/field shapes this file walks directly instead of
// through the query engine: function_declaration(name),
// variable_declarator(name,value), class_declaration(name,body),
// method_definition(name,parameters), import_statement(source),
// import_clause/import_specifier(name,alias)/namespace_import,
// export_statement(declaration,value,source), assignment_expression
// over a member_expression(object,property) left-hand side for the
// CommonJS module.exports/exports.foo forms.
type jsFamily struct {
	typescript bool
}

func (f jsFamily) findFunctions(source []byte, root *sitter.Node) []model.Function {
	var out []model.Function
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "function_declaration", "generator_function_declaration":
			if jsIsClassBody(n) {
				return true
			}
			out = append(out, f.parseFunctionLike(n, n, source, false, ""))
			return false
		case "variable_declarator":
			val := n.ChildByFieldName("value")
			if val == nil {
				return true
			}
			if val.Type() == "function_expression" || val.Type() == "arrow_function" {
				nameNode := n.ChildByFieldName("name")
				if nameNode == nil || nameNode.Type() != "identifier" {
					return true
				}
				fn := f.parseFunctionLike(n, val, source, false, "")
				fn.Name = nameNode.Content(source)
				out = append(out, fn)
			}
			return true
		case "pair":
			val := n.ChildByFieldName("value")
			key := n.ChildByFieldName("key")
			if val == nil || key == nil {
				return true
			}
			if val.Type() == "function_expression" || val.Type() == "arrow_function" {
				fn := f.parseFunctionLike(n, val, source, false, "")
				fn.Name = key.Content(source)
				out = append(out, fn)
			}
			return true
		}
		return true
	})
	return out
}

func jsIsClassBody(n *sitter.Node) bool {
	p := n.Parent()
	return p != nil && p.Type() == "class_body"
}

func (f jsFamily) parseFunctionLike(outer, def *sitter.Node, source []byte, isMethod bool, receiver string) model.Function {
	startLine, _ := lineCol(outer.StartPoint())
	endLine, _ := lineCol(def.EndPoint())

	fn := model.Function{StartLine: startLine, EndLine: endLine, IsMethod: isMethod, Receiver: receiver}
	if nameNode := def.ChildByFieldName("name"); nameNode != nil {
		fn.Name = nameNode.Content(source)
		nameLine, _ := lineCol(nameNode.StartPoint())
		if nameLine != startLine {
			fn.NameLine = nameLine
		}
	}
	if params := def.ChildByFieldName("parameters"); params != nil {
		fn.Params = f.params(params, source)
	}
	if ret := def.ChildByFieldName("return_type"); ret != nil {
		fn.ReturnType = strings.TrimPrefix(ret.Content(source), ":")
	}
	if typeParams := def.ChildByFieldName("type_parameters"); typeParams != nil {
		fn.Generics = jsTypeParamNames(typeParams, source)
	}
	if def.Type() == "generator_function_declaration" || def.Type() == "generator_function" {
		fn.Modifiers = append(fn.Modifiers, "generator")
	}
	if strings.Contains(def.Content(source)[:min(5, len(def.Content(source)))], "async") {
		fn.Modifiers = append(fn.Modifiers, "async")
	}
	if c := precedingComment(outer); c != nil {
		fn.Docstring = docstringBefore(source, startLine, c)
	}
	return fn
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func jsTypeParamNames(n *sitter.Node, source []byte) []string {
	var out []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		out = append(out, n.NamedChild(i).Content(source))
	}
	return out
}

func (f jsFamily) params(paramList *sitter.Node, source []byte) []model.Param {
	var out []model.Param
	for i := 0; i < int(paramList.NamedChildCount()); i++ {
		p := paramList.NamedChild(i)
		out = append(out, f.param(p, source))
	}
	return out
}

func (f jsFamily) param(p *sitter.Node, source []byte) model.Param {
	switch p.Type() {
	case "identifier":
		return model.Param{Name: p.Content(source), Raw: p.Content(source)}
	case "required_parameter", "optional_parameter":
		name := ""
		if pattern := p.ChildByFieldName("pattern"); pattern != nil {
			name = pattern.Content(source)
		}
		typ := ""
		if t := p.ChildByFieldName("type"); t != nil {
			typ = jsUnwrapTypeAnnotation(t, source)
		}
		param := model.Param{Name: name, Type: typ, Raw: p.Content(source), Optional: p.Type() == "optional_parameter"}
		if val := p.ChildByFieldName("value"); val != nil {
			param.HasDefault = true
			param.Default = val.Content(source)
			param.Optional = true
		}
		return param
	case "assignment_pattern":
		name := ""
		if left := p.ChildByFieldName("left"); left != nil {
			name = left.Content(source)
		}
		def := ""
		if right := p.ChildByFieldName("right"); right != nil {
			def = right.Content(source)
		}
		return model.Param{Name: name, Raw: p.Content(source), HasDefault: true, Default: def, Optional: true}
	case "rest_pattern":
		name := strings.TrimPrefix(p.Content(source), "...")
		return model.Param{Name: name, Raw: p.Content(source), IsRest: true}
	case "object_pattern", "array_pattern":
		return model.Param{Name: p.Content(source), Raw: p.Content(source)}
	default:
		return model.Param{Raw: p.Content(source)}
	}
}

func jsUnwrapTypeAnnotation(t *sitter.Node, source []byte) string {
	text := t.Content(source)
	return strings.TrimSpace(strings.TrimPrefix(text, ":"))
}

func (f jsFamily) findClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	var out []model.TypeDecl
	walk(root, func(n *sitter.Node) bool {
		var nameNode *sitter.Node
		switch n.Type() {
		case "class_declaration":
			nameNode = n.ChildByFieldName("name")
		case "variable_declarator":
			val := n.ChildByFieldName("value")
			if val == nil || val.Type() != "class" {
				return true
			}
			nameNode = n.ChildByFieldName("name")
		case "interface_declaration":
			if !f.typescript {
				return true
			}
			nameNode = n.ChildByFieldName("name")
			out = append(out, f.parseInterface(n, nameNode, source))
			return false
		case "type_alias_declaration":
			if !f.typescript {
				return true
			}
			nameNode = n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			startLine, _ := lineCol(n.StartPoint())
			endLine, _ := lineCol(n.EndPoint())
			out = append(out, model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindTypeAlias, StartLine: startLine, EndLine: endLine})
			return false
		case "enum_declaration":
			if !f.typescript {
				return true
			}
			nameNode = n.ChildByFieldName("name")
			if nameNode == nil {
				return true
			}
			startLine, _ := lineCol(n.StartPoint())
			endLine, _ := lineCol(n.EndPoint())
			out = append(out, model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindEnum, StartLine: startLine, EndLine: endLine})
			return false
		default:
			return true
		}
		if nameNode == nil {
			return true
		}
		td := f.parseClass(n, nameNode, source)
		out = append(out, td)
		return false
	})
	return out
}

func (f jsFamily) parseInterface(n, nameNode *sitter.Node, source []byte) model.TypeDecl {
	startLine, _ := lineCol(n.StartPoint())
	endLine, _ := lineCol(n.EndPoint())
	td := model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindInterface, StartLine: startLine, EndLine: endLine}
	if ext := n.ChildByFieldName("extends"); ext != nil {
		for i := 0; i < int(ext.NamedChildCount()); i++ {
			td.Implements = append(td.Implements, ext.NamedChild(i).Content(source))
		}
	}
	return td
}

func (f jsFamily) parseClass(n, nameNode *sitter.Node, source []byte) model.TypeDecl {
	startLine, _ := lineCol(n.StartPoint())
	endLine, _ := lineCol(n.EndPoint())
	td := model.TypeDecl{Name: nameNode.Content(source), Kind: model.KindClass, StartLine: startLine, EndLine: endLine}
	if heritage := findChildOfType(n, "class_heritage"); heritage != nil {
		for i := 0; i < int(heritage.NamedChildCount()); i++ {
			clause := heritage.NamedChild(i)
			switch clause.Type() {
			case "extends_clause":
				if clause.NamedChildCount() > 0 {
					td.Extends = clause.NamedChild(0).Content(source)
				}
			case "implements_clause":
				for j := 0; j < int(clause.NamedChildCount()); j++ {
					td.Implements = append(td.Implements, clause.NamedChild(j).Content(source))
				}
			}
		}
	}
	if typeParams := n.ChildByFieldName("type_parameters"); typeParams != nil {
		td.Generics = jsTypeParamNames(typeParams, source)
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return td
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "method_definition" {
			continue
		}
		method := f.parseFunctionLike(member, member, source, true, td.Name)
		for j := 0; j < int(member.ChildCount()); j++ {
			if member.Child(j).Type() == "static" {
				method.Modifiers = append(method.Modifiers, "static")
			}
		}
		td.Members = append(td.Members, method)
	}
	return td
}

func findChildOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == typ {
			return n.Child(i)
		}
	}
	return nil
}

func (f jsFamily) findStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	var out []model.StateConstant
	if root == nil {
		return out
	}
	walk(root, func(n *sitter.Node) bool {
		if n.Type() != "variable_declarator" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		if nameNode == nil || nameNode.Type() != "identifier" {
			return true
		}
		val := n.ChildByFieldName("value")
		if val != nil && (val.Type() == "function_expression" || val.Type() == "arrow_function" || val.Type() == "class") {
			return true
		}
		decl := n.Parent()
		if decl == nil || decl.Type() != "variable_declaration" && decl.Type() != "lexical_declaration" {
			return true
		}
		name := nameNode.Content(source)
		if !stateConstantPattern(name) {
			return true
		}
		startLine, _ := lineCol(decl.StartPoint())
		endLine, _ := lineCol(decl.EndPoint())
		out = append(out, model.StateConstant{Name: name, StartLine: startLine, EndLine: endLine})
		return true
	})
	return out
}

func (f jsFamily) findImports(source []byte, root *sitter.Node) []model.Import {
	var out []model.Import
	if root == nil {
		return out
	}
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			out = append(out, f.parseImportStatement(n, source)...)
			return false
		case "lexical_declaration", "variable_declaration":
			if req := jsFindRequireCall(n, source); req != nil {
				out = append(out, *req)
			}
			return true
		}
		return true
	})
	return out
}

func (f jsFamily) parseImportStatement(n *sitter.Node, source []byte) []model.Import {
	line, _ := lineCol(n.StartPoint())
	sourceNode := n.ChildByFieldName("source")
	src := ""
	if sourceNode != nil {
		src = strings.Trim(sourceNode.Content(source), `"'`)
	}
	clause := findChildOfType(n, "import_clause")
	if clause == nil {
		return []model.Import{{Source: src, Kind: model.ImportSideEffect, Line: line}}
	}
	imp := model.Import{Source: src, Line: line, Kind: model.ImportNamed, Aliases: map[string]string{}}
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		switch child.Type() {
		case "identifier":
			imp.Names = append(imp.Names, child.Content(source))
			imp.Kind = model.ImportDefault
		case "namespace_import":
			if id := findChildOfType(child, "identifier"); id != nil {
				imp.Names = append(imp.Names, id.Content(source))
			}
			imp.Kind = model.ImportNamespace
		case "named_imports":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				nameNode := spec.ChildByFieldName("name")
				aliasNode := spec.ChildByFieldName("alias")
				if nameNode == nil {
					continue
				}
				imp.Names = append(imp.Names, nameNode.Content(source))
				if aliasNode != nil {
					imp.Aliases[nameNode.Content(source)] = aliasNode.Content(source)
				}
			}
		}
	}
	if len(imp.Aliases) == 0 {
		imp.Aliases = nil
	}
	return []model.Import{imp}
}

// jsFindRequireCall matches CommonJS `const foo = require('./mod')` and its
// destructured variants, per gnana997-uispec's imports/javascript.go query set.
func jsFindRequireCall(decl *sitter.Node, source []byte) *model.Import {
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		declr := decl.NamedChild(i)
		if declr.Type() != "variable_declarator" {
			continue
		}
		nameNode := declr.ChildByFieldName("name")
		val := declr.ChildByFieldName("value")
		if nameNode == nil || val == nil {
			continue
		}
		call := val
		property := ""
		if val.Type() == "member_expression" {
			obj := val.ChildByFieldName("object")
			prop := val.ChildByFieldName("property")
			if obj == nil || prop == nil {
				continue
			}
			call = obj
			property = prop.Content(source)
		}
		if call.Type() != "call_expression" {
			continue
		}
		fn := call.ChildByFieldName("function")
		if fn == nil || fn.Content(source) != "require" {
			continue
		}
		args := call.ChildByFieldName("arguments")
		if args == nil || args.NamedChildCount() == 0 {
			continue
		}
		src := strings.Trim(args.NamedChild(0).Content(source), `"'`)
		line, _ := lineCol(decl.StartPoint())
		imp := model.Import{Source: src, Line: line, Kind: model.ImportRequire}
		switch nameNode.Type() {
		case "identifier":
			if property != "" {
				imp.Names = []string{property}
				imp.Kind = model.ImportNamed
			} else {
				imp.Names = []string{nameNode.Content(source)}
				imp.Kind = model.ImportNamespace
			}
		case "object_pattern":
			imp.Aliases = map[string]string{}
			for j := 0; j < int(nameNode.NamedChildCount()); j++ {
				p := nameNode.NamedChild(j)
				switch p.Type() {
				case "shorthand_property_identifier_pattern":
					imp.Names = append(imp.Names, p.Content(source))
				case "pair_pattern":
					key := p.ChildByFieldName("key")
					value := p.ChildByFieldName("value")
					if key != nil && value != nil {
						imp.Names = append(imp.Names, key.Content(source))
						imp.Aliases[key.Content(source)] = value.Content(source)
					}
				}
			}
		}
		return &imp
	}
	return nil
}

func (f jsFamily) findExports(source []byte, root *sitter.Node) []model.Export {
	var out []model.Export
	if root == nil {
		return out
	}
	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "export_statement":
			out = append(out, f.parseExportStatement(n, source)...)
			return false
		case "assignment_expression":
			if exp := jsParseCommonJSExport(n, source); len(exp) > 0 {
				out = append(out, exp...)
			}
		}
		return true
	})
	return out
}

func (f jsFamily) parseExportStatement(n *sitter.Node, source []byte) []model.Export {
	line, _ := lineCol(n.StartPoint())
	isTypeOnly := false
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "type" {
			isTypeOnly = true
		}
	}
	if decl := n.ChildByFieldName("declaration"); decl != nil {
		var names []string
		switch decl.Type() {
		case "function_declaration", "class_declaration", "generator_function_declaration", "interface_declaration", "type_alias_declaration", "enum_declaration":
			if nameNode := decl.ChildByFieldName("name"); nameNode != nil {
				names = append(names, nameNode.Content(source))
			}
		case "lexical_declaration", "variable_declaration":
			for i := 0; i < int(decl.NamedChildCount()); i++ {
				declr := decl.NamedChild(i)
				if declr.Type() == "variable_declarator" {
					if nameNode := declr.ChildByFieldName("name"); nameNode != nil {
						names = append(names, nameNode.Content(source))
					}
				}
			}
		}
		out := make([]model.Export, 0, len(names))
		for _, name := range names {
			out = append(out, model.Export{Name: name, Kind: model.ExportNamed, Line: line, IsTypeOnly: isTypeOnly})
		}
		return out
	}
	if val := n.ChildByFieldName("value"); val != nil {
		name := "default"
		if val.Type() == "identifier" {
			name = val.Content(source)
		}
		return []model.Export{{Name: name, Kind: model.ExportDefault, Line: line}}
	}
	sourceNode := n.ChildByFieldName("source")
	clause := findChildOfType(n, "export_clause")
	if clause != nil {
		reexportSource := ""
		if sourceNode != nil {
			reexportSource = strings.Trim(sourceNode.Content(source), `"'`)
		}
		var out []model.Export
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			spec := clause.NamedChild(i)
			if spec.Type() != "export_specifier" {
				continue
			}
			nameNode := spec.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			kind := model.ExportNamed
			if reexportSource != "" {
				kind = model.ExportReExport
			}
			out = append(out, model.Export{Name: nameNode.Content(source), Kind: kind, Line: line, Source: reexportSource, IsTypeOnly: isTypeOnly})
		}
		return out
	}
	if sourceNode != nil {
		// export * from './other' — no declared names, only the re-export edge.
		src := strings.Trim(sourceNode.Content(source), `"'`)
		return []model.Export{{Name: "*", Kind: model.ExportReExport, Line: line, Source: src}}
	}
	return nil
}

func jsParseCommonJSExport(n *sitter.Node, source []byte) []model.Export {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || left.Type() != "member_expression" {
		return nil
	}
	obj := left.ChildByFieldName("object")
	prop := left.ChildByFieldName("property")
	if obj == nil || prop == nil {
		return nil
	}
	line, _ := lineCol(n.StartPoint())

	if obj.Content(source) == "module" && prop.Content(source) == "exports" {
		if right == nil {
			return nil
		}
		if right.Type() == "object" {
			var out []model.Export
			for i := 0; i < int(right.NamedChildCount()); i++ {
				pair := right.NamedChild(i)
				switch pair.Type() {
				case "shorthand_property_identifier":
					out = append(out, model.Export{Name: pair.Content(source), Kind: model.ExportCommonJS, Line: line})
				case "pair":
					key := pair.ChildByFieldName("key")
					if key != nil {
						out = append(out, model.Export{Name: key.Content(source), Kind: model.ExportCommonJS, Line: line})
					}
				}
			}
			return out
		}
		return []model.Export{{Name: "default", Kind: model.ExportCommonJS, Line: line}}
	}
	if obj.Content(source) == "exports" {
		return []model.Export{{Name: prop.Content(source), Kind: model.ExportCommonJS, Line: line}}
	}
	if obj.Type() == "member_expression" {
		innerObj := obj.ChildByFieldName("object")
		innerProp := obj.ChildByFieldName("property")
		if innerObj != nil && innerProp != nil && innerObj.Content(source) == "module" && innerProp.Content(source) == "exports" {
			return []model.Export{{Name: prop.Content(source), Kind: model.ExportCommonJS, Line: line}}
		}
	}
	return nil
}

var jsDefTypes = map[string]bool{
	"function_declaration": true, "generator_function_declaration": true,
	"class_declaration": true, "interface_declaration": true,
	"type_alias_declaration": true, "enum_declaration": true,
	"variable_declarator": true, "method_definition": true,
}
var jsImportTypes = map[string]bool{"import_statement": true}

func jsIsCall(n *sitter.Node) bool {
	return n.Type() == "call_expression" || n.Type() == "new_expression"
}

func (f jsFamily) findUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return genericFindUsages(source, root, name, jsDefTypes, jsImportTypes, jsIsCall)
}

func (f jsFamily) findCalls(source []byte, root *sitter.Node) []model.Call {
	stack := &enclosingStack{}
	aliases := newAliasTable()
	var out []model.Call

	var walkBody func(n *sitter.Node)
	walkBody = func(n *sitter.Node) {
		if n == nil {
			return
		}
		switch n.Type() {
		case "function_declaration", "function_expression", "arrow_function", "generator_function_declaration", "method_definition":
			name := "anonymous"
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
		case "variable_declarator":
			jsRecordAlias(n, source, aliases)
		case "call_expression":
			out = append(out, f.emitCall(n, source, stack, aliases)...)
		case "new_expression":
			out = append(out, f.emitConstructorCall(n, source, stack)...)
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walkBody(n.Child(i))
		}
	}
	walkBody(root)
	return out
}

func jsRecordAlias(n *sitter.Node, source []byte, aliases *aliasTable) {
	nameNode := n.ChildByFieldName("name")
	val := n.ChildByFieldName("value")
	if nameNode == nil || val == nil || nameNode.Type() != "identifier" {
		return
	}
	name := nameNode.Content(source)
	switch val.Type() {
	case "identifier":
		aliases.bind(name, val.Content(source))
	case "ternary_expression":
		if cons := val.ChildByFieldName("consequence"); cons != nil && cons.Type() == "identifier" {
			aliases.bind(name, cons.Content(source))
		}
		if alt := val.ChildByFieldName("alternative"); alt != nil && alt.Type() == "identifier" {
			aliases.bind(name, alt.Content(source))
		}
	case "string", "number", "true", "false", "null", "undefined", "array", "object", "template_string":
		aliases.markNonCallable(name)
	case "new_expression":
		aliases.markNonCallable(name)
	case "call_expression":
		if fn := val.ChildByFieldName("function"); fn != nil {
			fnText := fn.Content(source)
			if fnText == "bind" { // bare bind(...), no receiver
				return
			}
			if strings.HasSuffix(fnText, ".bind") {
				aliases.bind(name, strings.TrimSuffix(fnText, ".bind"))
			}
		}
	}
}

func (f jsFamily) emitConstructorCall(n *sitter.Node, source []byte, stack *enclosingStack) []model.Call {
	ctor := n.ChildByFieldName("constructor")
	if ctor == nil {
		return nil
	}
	line, _ := lineCol(n.StartPoint())
	return []model.Call{{Callee: ctor.Content(source), Line: line, IsConstructor: true, Enclosing: stack.top(), Arguments: jsArguments(n.ChildByFieldName("arguments"), source)}}
}

func (f jsFamily) emitCall(n *sitter.Node, source []byte, stack *enclosingStack, aliases *aliasTable) []model.Call {
	fnNode := n.ChildByFieldName("function")
	if fnNode == nil {
		return nil
	}
	line, _ := lineCol(n.StartPoint())
	enclosing := stack.top()
	args := jsArguments(n.ChildByFieldName("arguments"), source)

	var calls []model.Call
	calleeName := ""
	switch fnNode.Type() {
	case "identifier":
		callee := fnNode.Content(source)
		if aliases.isNonCallable(callee) {
			return nil
		}
		calleeName = callee
		calls = append(calls, model.Call{Callee: callee, Line: line, Enclosing: enclosing, Arguments: args, ResolvedNames: aliases.resolve(callee)})
	case "member_expression":
		obj := fnNode.ChildByFieldName("object")
		prop := fnNode.ChildByFieldName("property")
		if prop == nil {
			return nil
		}
		callee := prop.Content(source)
		calleeName = callee
		call := model.Call{Callee: callee, Line: line, IsMethod: true, Enclosing: enclosing, Arguments: args}
		if obj != nil {
			switch obj.Type() {
			case "identifier":
				call.Receiver = obj.Content(source)
			case "this":
				call.Receiver = "this"
			case "member_expression":
				if base := obj.ChildByFieldName("object"); base != nil && base.Type() == "this" {
					if sa := obj.ChildByFieldName("property"); sa != nil {
						call.Receiver = "this"
						call.SelfAttribute = sa.Content(source)
					}
				}
			}
		}
		calls = append(calls, call)
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
			} else if calleeName == "addEventListener" || calleeName == "on" || calleeName == "once" {
				refCall.IsEventHandler = true
			}
			calls = append(calls, refCall)
		}
	}
	return calls
}

func jsArguments(argsNode *sitter.Node, source []byte) []model.Argument {
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
