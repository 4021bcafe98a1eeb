package extract

import "github.com/mleoca/ucn/model"

// ForLanguage returns the Extractor for lang, or nil for languages the
// registry doesn't recognize (callers skip those files, per §4.1).
func ForLanguage(lang model.Language) Extractor {
	switch lang {
	case model.LangGo:
		return GoExtractor{}
	case model.LangPython:
		return PythonExtractor{}
	case model.LangJavaScript:
		return JavaScriptExtractor{}
	case model.LangTypeScript:
		return TypeScriptExtractor{}
	case model.LangJava:
		return JavaExtractor{}
	case model.LangRust:
		return RustExtractor{}
	case model.LangHTML:
		return NewHTMLExtractor()
	default:
		return nil
	}
}
