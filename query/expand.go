package query

import "github.com/mleoca/ucn/cachestore"

// ExpandedItem is the source text behind one cachestore.ExpandableItem,
// the `expand N` follow-up's answer (§4.9, GLOSSARY "Expandable item").
type ExpandedItem struct {
	Label     string
	File      string
	StartLine int
	EndLine   int
	Source    string
}

// Expand resolves an ExpandableItem produced by Context (directly, or
// replayed out of a cachestore.ExpandableCache by a long-lived caller)
// to its source text.
func (e *Engine) Expand(item cachestore.ExpandableItem) (ExpandedItem, bool) {
	fr, ok := e.Idx.File(item.File)
	if !ok {
		return ExpandedItem{}, false
	}
	return ExpandedItem{
		Label:     item.Label,
		File:      item.File,
		StartLine: item.StartLine,
		EndLine:   item.EndLine,
		Source:    snippet(fr.AbsPath, item.StartLine, item.EndLine),
	}, true
}
