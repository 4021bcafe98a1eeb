package query

// Stats is the project-wide summary the stats query returns (§4.9):
// file/line/symbol counts, grouped by language and symbol kind.
type Stats struct {
	TotalFiles   int
	TotalLines   int
	FilesByLang  map[string]int
	LinesByLang  map[string]int
	SymbolsByKind map[string]int
}

// Stats computes file/line/symbol counts grouped by language and kind.
func (e *Engine) Stats() Stats {
	s := Stats{
		FilesByLang:   map[string]int{},
		LinesByLang:   map[string]int{},
		SymbolsByKind: map[string]int{},
	}
	for _, relPath := range e.Idx.SortedFilePaths() {
		fr, _ := e.Idx.File(relPath)
		s.TotalFiles++
		s.TotalLines += fr.TotalLines
		lang := fr.Language.String()
		s.FilesByLang[lang]++
		s.LinesByLang[lang] += fr.TotalLines

		for _, fn := range fr.Functions {
			kind := "function"
			if fn.IsMethod {
				kind = "method"
			}
			s.SymbolsByKind[kind]++
		}
		for _, td := range fr.Types {
			s.SymbolsByKind[string(td.Kind)]++
			s.SymbolsByKind["method"] += len(td.Members)
		}
	}
	return s
}
