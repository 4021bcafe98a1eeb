// Package languages maps file extensions to a model.Language and lazily
// hands out the tree-sitter grammar for it (spec §4.1). Grammars are
// loaded on first use and cached by language; parser instances are not
// created or cached here, and the matching extractor comes from
// extract.ForLanguage.
package languages

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/mleoca/ucn/model"
)

// extensions maps a lowercased file extension (including the leading
// dot) to a language identifier. ".tsx"/".jsx" both resolve to
// LangTypeScript/LangJavaScript respectively; callers decide whether to
// use the TSX grammar variant by passing IsTSX(path) to Grammar.
var extensions = map[string]model.Language{
	".go":    model.LangGo,
	".py":    model.LangPython,
	".pyi":   model.LangPython,
	".js":    model.LangJavaScript,
	".jsx":   model.LangJavaScript,
	".mjs":   model.LangJavaScript,
	".cjs":   model.LangJavaScript,
	".ts":    model.LangTypeScript,
	".tsx":   model.LangTypeScript,
	".rs":    model.LangRust,
	".java":  model.LangJava,
	".html":  model.LangHTML,
	".htm":   model.LangHTML,
}

// Registry resolves extensions to languages and hands out cached
// tree-sitter grammar handles. The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	cache   map[model.Language]*sitter.Language
}

// NewRegistry constructs an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[model.Language]*sitter.Language)}
}

// Detect resolves a file path to a language, consulting only the
// extension (lowercased). Files the registry doesn't recognize return
// model.LangUnsupported; callers skip these rather than fail.
func (r *Registry) Detect(path string) model.Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensions[ext]; ok {
		return lang
	}
	return model.LangUnsupported
}

// IsTSX reports whether a path with the given (TypeScript) extension
// should use the TSX grammar variant rather than plain TypeScript.
func IsTSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tsx")
}

// Grammar returns the tree-sitter language handle for lang, loading and
// caching it on first use. isTSX only matters for model.LangTypeScript.
func (r *Registry) Grammar(lang model.Language, isTSX bool) *sitter.Language {
	if lang == model.LangTypeScript && isTSX {
		// TSX has its own grammar table distinct from plain TypeScript;
		// cache it under a synthetic key so both variants can coexist.
		return r.grammarFor(-1, func() *sitter.Language { return tsx.GetLanguage() })
	}
	return r.grammarFor(lang, func() *sitter.Language { return r.load(lang) })
}

func (r *Registry) grammarFor(key model.Language, load func() *sitter.Language) *sitter.Language {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.cache[key]; ok {
		return g
	}
	if r.cache == nil {
		r.cache = make(map[model.Language]*sitter.Language)
	}
	g := load()
	r.cache[key] = g
	return g
}

func (r *Registry) load(lang model.Language) *sitter.Language {
	switch lang {
	case model.LangGo:
		return golang.GetLanguage()
	case model.LangPython:
		return python.GetLanguage()
	case model.LangJavaScript:
		return javascript.GetLanguage()
	case model.LangTypeScript:
		return typescript.GetLanguage()
	case model.LangRust:
		return rust.GetLanguage()
	case model.LangJava:
		return java.GetLanguage()
	case model.LangHTML:
		return html.GetLanguage()
	default:
		return nil
	}
}

// SupportedExtensions lists every extension the registry recognizes,
// used by file discovery to prune the walk before even stat-ing a
// file's contents.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	return exts
}
