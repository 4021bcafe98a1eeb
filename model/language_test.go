package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageStringNames(t *testing.T) {
	cases := map[Language]string{
		LangGo:          "go",
		LangPython:      "python",
		LangJavaScript:  "javascript",
		LangTypeScript:  "typescript",
		LangRust:        "rust",
		LangJava:        "java",
		LangHTML:        "html",
		LangUnsupported: "unsupported",
	}
	for lang, want := range cases {
		assert.Equal(t, want, lang.String())
	}
}
