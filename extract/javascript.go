package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/model"
)

// JavaScriptExtractor implements Extractor for plain JavaScript (and
// JSX, which shares the same grammar). See jscommon.go for the shared
// JS/TS implementation; this file only pins the language tag.
type JavaScriptExtractor struct{}

func (JavaScriptExtractor) Language() model.Language { return model.LangJavaScript }

func (JavaScriptExtractor) FindFunctions(source []byte, root *sitter.Node) []model.Function {
	return jsFamily{}.findFunctions(source, root)
}

func (JavaScriptExtractor) FindClasses(source []byte, root *sitter.Node) []model.TypeDecl {
	return jsFamily{}.findClasses(source, root)
}

func (JavaScriptExtractor) FindStateObjects(source []byte, root *sitter.Node) []model.StateConstant {
	return jsFamily{}.findStateObjects(source, root)
}

func (JavaScriptExtractor) FindCalls(source []byte, root *sitter.Node) []model.Call {
	return jsFamily{}.findCalls(source, root)
}

func (JavaScriptExtractor) FindImports(source []byte, root *sitter.Node) []model.Import {
	return jsFamily{}.findImports(source, root)
}

func (JavaScriptExtractor) FindExports(source []byte, root *sitter.Node) []model.Export {
	return jsFamily{}.findExports(source, root)
}

func (JavaScriptExtractor) FindUsages(source []byte, root *sitter.Node, name string) []model.Usage {
	return jsFamily{}.findUsages(source, root, name)
}
