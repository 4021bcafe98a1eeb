package query

import "github.com/mleoca/ucn/model"

var typeLikeKinds = map[model.TypeKind]bool{
	model.KindClass: true, model.KindInterface: true, model.KindTypeAlias: true,
	model.KindEnum: true, model.KindStruct: true, model.KindTrait: true, model.KindRecord: true,
}

// Typedef returns every TypeDecl whose kind is a type-like kind
// matching name (§4.9).
func (e *Engine) Typedef(name string) []model.SymbolRecord {
	var out []model.SymbolRecord
	for _, r := range e.Idx.FindExact(name) {
		if td, ok := e.typeDeclFor(r); ok && typeLikeKinds[td.Kind] {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) typeDeclFor(r model.SymbolRecord) (model.TypeDecl, bool) {
	for _, sym := range e.Idx.Entries(r.Name) {
		if sym.Type != nil && sym.Record.File == r.File && sym.Record.StartLine == r.StartLine {
			return *sym.Type, true
		}
	}
	return model.TypeDecl{}, false
}
