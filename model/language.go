// Package model holds the small, tagged data types the rest of ucn is
// built on: per-file syntactic records (Function, TypeDecl, Call, ...)
// and the lightweight cross-file records the symbol index keeps
// (SymbolRecord, Edge, InheritanceEdge). None of these types carry
// behavior beyond simple accessors — construction and mutation belong
// to the extract/index packages.
package model

// Language identifies one of the grammars ucn understands. The zero
// value, LangUnsupported, is returned by the registry for any
// extension it doesn't recognize; callers skip the file rather than
// fail.
type Language int

const (
	LangUnsupported Language = iota
	LangGo
	LangPython
	LangJavaScript
	LangTypeScript
	LangRust
	LangJava
	LangHTML
)

// String renders the language identifier for logs and cache keys.
func (l Language) String() string {
	switch l {
	case LangGo:
		return "go"
	case LangPython:
		return "python"
	case LangJavaScript:
		return "javascript"
	case LangTypeScript:
		return "typescript"
	case LangRust:
		return "rust"
	case LangJava:
		return "java"
	case LangHTML:
		return "html"
	default:
		return "unsupported"
	}
}
