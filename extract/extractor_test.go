package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mleoca/ucn/model"
)

func TestCountLinesHandlesTrailingNewline(t *testing.T) {
	assert.Equal(t, 0, countLines(nil))
	assert.Equal(t, 1, countLines([]byte("one line, no newline")))
	assert.Equal(t, 2, countLines([]byte("line one\nline two\n")))
	assert.Equal(t, 3, countLines([]byte("line one\nline two\nline three")))
}

func TestStateConstantPatternMatchesAllCaps(t *testing.T) {
	assert.True(t, stateConstantPattern("MAX_RETRIES"))
	assert.True(t, stateConstantPattern("API_KEY_2"))
	assert.False(t, stateConstantPattern(""))
	assert.False(t, stateConstantPattern("helper"))
}

func TestStateConstantPatternMatchesKnownSuffixes(t *testing.T) {
	assert.True(t, stateConstantPattern("AppConfig"))
	assert.True(t, stateConstantPattern("UserSettings"))
	assert.True(t, stateConstantPattern("RetryOptions"))
	assert.True(t, stateConstantPattern("AuthState"))
	assert.True(t, stateConstantPattern("DataStore"))
	assert.True(t, stateConstantPattern("RequestContext"))
	assert.False(t, stateConstantPattern("Config")) // bare suffix, no prefix
}

func TestIsAllCapsIdentifierRejectsLowercase(t *testing.T) {
	assert.True(t, isAllCapsIdentifier("FOO_BAR_9"))
	assert.False(t, isAllCapsIdentifier("FooBar"))
	assert.False(t, isAllCapsIdentifier("123"))
	assert.False(t, isAllCapsIdentifier(""))
}

func TestAliasTableBindAndResolve(t *testing.T) {
	tbl := newAliasTable()
	tbl.bind("a", "b", "c")
	assert.Equal(t, []string{"b", "c"}, tbl.resolve("a"))
	assert.Nil(t, tbl.resolve("unbound"))
}

func TestAliasTableMarksNonCallable(t *testing.T) {
	tbl := newAliasTable()
	assert.False(t, tbl.isNonCallable("x"))
	tbl.markNonCallable("x")
	assert.True(t, tbl.isNonCallable("x"))
}

func TestEnclosingStackPushPopTop(t *testing.T) {
	var s enclosingStack
	assert.Nil(t, s.top())

	s.push(model.EnclosingFunction{Name: "Outer"})
	s.push(model.EnclosingFunction{Name: "Inner"})
	top := s.top()
	assert.Equal(t, "Inner", top.Name)

	s.pop()
	assert.Equal(t, "Outer", s.top().Name)

	s.pop()
	assert.Nil(t, s.top())
}

func TestConfirmedCallbackPositionsKnownCallees(t *testing.T) {
	assert.True(t, confirmedCallbackPositions("map", 0))
	assert.False(t, confirmedCallbackPositions("map", 1))
	assert.True(t, confirmedCallbackPositions("then", 0))
	assert.True(t, confirmedCallbackPositions("then", 3)) // -1 means every position
	assert.True(t, confirmedCallbackPositions("use", 1))
	assert.False(t, confirmedCallbackPositions("unknownCallee", 0))
}

func TestForLanguageReturnsExtractorPerLanguage(t *testing.T) {
	cases := map[model.Language]model.Language{
		model.LangGo:         model.LangGo,
		model.LangPython:     model.LangPython,
		model.LangJavaScript: model.LangJavaScript,
		model.LangTypeScript: model.LangTypeScript,
		model.LangJava:       model.LangJava,
		model.LangRust:       model.LangRust,
		model.LangHTML:       model.LangHTML,
	}
	for lang, want := range cases {
		ext := ForLanguage(lang)
		if assert.NotNil(t, ext, lang.String()) {
			assert.Equal(t, want, ext.Language())
		}
	}
}

func TestForLanguageReturnsNilForUnsupported(t *testing.T) {
	assert.Nil(t, ForLanguage(model.LangUnsupported))
}
