package query

import "github.com/mleoca/ucn/model"

// Imports returns file's Import records (§4.9 `imports`).
func (e *Engine) Imports(file string) ([]model.Import, bool) {
	fr, ok := e.Idx.File(file)
	if !ok {
		return nil, false
	}
	return fr.Imports, true
}

// Exporters returns every file holding an import edge into file
// (§4.9 `exporters`).
func (e *Engine) Exporters(file string) []string {
	var out []string
	for _, edge := range e.Idx.ImportEdges() {
		if edge.To == file {
			out = append(out, edge.From)
		}
	}
	return out
}

// FileExports returns file's Export records (§4.9 `fileExports`).
func (e *Engine) FileExports(file string) ([]model.Export, bool) {
	fr, ok := e.Idx.File(file)
	if !ok {
		return nil, false
	}
	return fr.Exports, true
}

// Api returns every Export across the project, or of a single file
// when file is non-empty (§4.9 `api`).
func (e *Engine) Api(file string) map[string][]model.Export {
	out := map[string][]model.Export{}
	if file != "" {
		if fr, ok := e.Idx.File(file); ok {
			out[file] = fr.Exports
		}
		return out
	}
	for _, relPath := range e.Idx.SortedFilePaths() {
		fr, _ := e.Idx.File(relPath)
		if len(fr.Exports) > 0 {
			out[relPath] = fr.Exports
		}
	}
	return out
}
