package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func TestDetectRecognizesKnownExtensions(t *testing.T) {
	r := NewRegistry()
	cases := map[string]model.Language{
		"main.go":         model.LangGo,
		"script.py":       model.LangPython,
		"stub.pyi":        model.LangPython,
		"app.js":          model.LangJavaScript,
		"component.jsx":   model.LangJavaScript,
		"module.mjs":      model.LangJavaScript,
		"legacy.cjs":      model.LangJavaScript,
		"types.ts":        model.LangTypeScript,
		"widget.tsx":      model.LangTypeScript,
		"lib.rs":          model.LangRust,
		"Main.java":       model.LangJava,
		"index.html":      model.LangHTML,
		"fragment.htm":    model.LangHTML,
		"README.MD":       model.LangUnsupported,
		"noextension":     model.LangUnsupported,
		"archive.tar.gz":  model.LangUnsupported,
	}
	for path, want := range cases {
		assert.Equal(t, want, r.Detect(path), path)
	}
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, model.LangGo, r.Detect("main.GO"))
}

func TestIsTSXMatchesOnlyTSXExtension(t *testing.T) {
	assert.True(t, IsTSX("widget.tsx"))
	assert.True(t, IsTSX("Widget.TSX"))
	assert.False(t, IsTSX("widget.ts"))
	assert.False(t, IsTSX("widget.js"))
}

func TestSupportedExtensionsIncludesAllKnownExtensions(t *testing.T) {
	exts := SupportedExtensions()
	for _, ext := range []string{".go", ".py", ".js", ".ts", ".tsx", ".rs", ".java", ".html"} {
		assert.Contains(t, exts, ext)
	}
}

func TestGrammarReturnsCachedInstanceForSameLanguage(t *testing.T) {
	r := NewRegistry()
	first := r.Grammar(model.LangGo, false)
	require.NotNil(t, first)
	second := r.Grammar(model.LangGo, false)
	assert.Same(t, first, second)
}

func TestGrammarDistinguishesTSXFromPlainTypeScript(t *testing.T) {
	r := NewRegistry()
	plain := r.Grammar(model.LangTypeScript, false)
	tsxGrammar := r.Grammar(model.LangTypeScript, true)
	require.NotNil(t, plain)
	require.NotNil(t, tsxGrammar)
	assert.NotSame(t, plain, tsxGrammar)
}

func TestGrammarReturnsNilForUnsupportedLanguage(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Grammar(model.LangUnsupported, false))
}
