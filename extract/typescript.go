package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// TypeScriptExtractor implements Extractor for TypeScript (and TSX,
// which the registry hands a different grammar table for but the same
// extractor). See jscommon.go for the shared JS/TS implementation;
// this file only pins the language tag and the TypeScript-only
// declaration forms (interface, type alias, enum) that jsFamily gates
// on its typescript flag.
type TypeScriptExtractor struct{}

func (TypeScriptExtractor) Language() model.Language { return model.LangTypeScript }

func (TypeScriptExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	return jsFamily{typescript: true}.findFunctions(source, root)
}

func (TypeScriptExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	return jsFamily{typescript: true}.findClasses(source, root)
}

func (TypeScriptExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	return jsFamily{typescript: true}.findStateObjects(source, root)
}

func (TypeScriptExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	return jsFamily{typescript: true}.findCalls(source, root)
}

func (TypeScriptExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	return jsFamily{typescript: true}.findImports(source, root)
}

func (TypeScriptExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	return jsFamily{typescript: true}.findExports(source, root)
}

func (TypeScriptExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return jsFamily{typescript: true}.findUsages(source, root, name)
}
