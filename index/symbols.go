package index

import (
	"strings"

	"github.com/mleoca/ucn/model"
)

// typeLikeKinds score +1000 in the disambiguator (§4.6): a type beats
// a function of the same name.
var typeLikeKinds = map[model.TypeKind]bool{
	model.KindClass:     true,
	model.KindStruct:    true,
	model.KindInterface: true,
	model.KindTypeAlias: true,
	model.KindImpl:      true,
}

var penalizedPathSubstrings = []string{"examples/", "docs/", "vendor/", "third-party/", "third_party/", "benchmarks/", "samples/"}
var favoredPathSubstrings = []string{"lib/", "src/", "core/", "internal/", "pkg/", "crates/"}

func (idx *Index) buildNameIndex() {
	for relPath, fr := range idx.files {
		for i := range fr.Functions {
			fn := &fr.Functions[i]
			kind := "function"
			if fn.IsMethod {
				kind = "method"
			}
			idx.addSymbol(relPath, fr, kind, fn.Name, fn.StartLine, fn.EndLine, fn, nil)
		}
		for i := range fr.Types {
			td := &fr.Types[i]
			idx.addSymbol(relPath, fr, string(td.Kind), td.Name, td.StartLine, td.EndLine, nil, td)
			for j := range td.Members {
				m := &td.Members[j]
				idx.addSymbol(relPath, fr, "method", m.Name, m.StartLine, m.EndLine, m, nil)
			}
		}
	}
	// Usage counts depend on the whole name index existing first, so a
	// second pass over Calls/Imports fills them in.
	idx.tallyUsageCounts()
}

func (idx *Index) addSymbol(relPath string, fr *model.FileRecord, kind, name string, start, end int, fn *model.Function, td *model.TypeDecl) {
	if name == "" {
		return
	}
	rec := model.SymbolRecord{
		Name:       name,
		File:       relPath,
		Kind:       kind,
		StartLine:  start,
		EndLine:    end,
		IsExported: isExportedSymbol(fr, name),
		IsTestFile: fr.IsTestFile,
	}
	rec.Confidence = confidenceFor(fn, td, fr)
	entry := &Symbol{Record: rec, Fn: fn, Type: td}
	// Dedup on (name, file, startLine), per §3's invariant.
	for _, existing := range idx.names[name] {
		if existing.Record.File == relPath && existing.Record.StartLine == start {
			return
		}
	}
	idx.names[name] = append(idx.names[name], entry)
}

func isExportedSymbol(fr *model.FileRecord, name string) bool {
	for _, exp := range fr.Exports {
		if exp.Name == name {
			return true
		}
	}
	switch fr.Language {
	case model.LangGo:
		return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
	case model.LangJava:
		return false // Java export-ness is carried on the TypeDecl's modifiers, checked by callers directly
	}
	return false
}

// tallyUsageCounts computes the cheap aggregate counts §3 calls
// "cached usage counts": definitions (one per symbol occurrence),
// calls (Call.Callee matches across the project), and imports (name
// appears in an Import's Names list). References — free-standing
// identifier occurrences that are neither a call nor an import — would
// require re-scanning every file's source text, which §5's memory
// discipline says isn't retained after parsing; those are left at zero
// here and computed on demand by the `usages` query instead.
func (idx *Index) tallyUsageCounts() {
	calls := make(map[string]int)
	imports := make(map[string]int)
	for _, fr := range idx.files {
		for _, c := range fr.Calls {
			calls[c.Callee]++
			for _, alias := range c.ResolvedNames {
				calls[alias]++
			}
		}
		for _, imp := range fr.Imports {
			for _, n := range imp.Names {
				imports[n]++
			}
		}
	}
	for name, entries := range idx.names {
		for _, e := range entries {
			e.Record.Usages.Definitions = 1
			e.Record.Usages.Calls = calls[name]
			e.Record.Usages.Imports = imports[name]
		}
	}
}

// score implements §4.6's disambiguation formula.
func (idx *Index) score(e *Symbol) int {
	s := 0
	if e.Type != nil && typeLikeKinds[e.Type.Kind] {
		s += 1000
	}
	lowerPath := strings.ToLower(e.Record.File)
	for _, sub := range penalizedPathSubstrings {
		if strings.Contains(lowerPath, sub) {
			s -= 300
			break
		}
	}
	for _, sub := range favoredPathSubstrings {
		if strings.Contains(lowerPath, sub) {
			s += 200
			break
		}
	}
	if e.Record.IsTestFile {
		s -= 500
	}
	span := e.Record.EndLine - e.Record.StartLine
	if span > 100 {
		span = 100
	}
	if span > 0 {
		s += span
	}
	return s
}

// FindExact returns every SymbolRecord whose name equals name exactly,
// sorted by total usage count descending then by disambiguation score
// descending — the order find(name, {exact:true}) and the
// disambiguator's "top score wins" rule both rely on.
func (idx *Index) FindExact(name string) []model.SymbolRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	entries := append([]*Symbol(nil), idx.names[name]...)
	return idx.sortedRecords(entries)
}

// FindSubstring returns every SymbolRecord whose name contains the
// lowercased substring query.
func (idx *Index) FindSubstring(query string) []model.SymbolRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	q := strings.ToLower(query)
	var entries []*Symbol
	for name, es := range idx.names {
		if strings.Contains(strings.ToLower(name), q) {
			entries = append(entries, es...)
		}
	}
	return idx.sortedRecords(entries)
}

type scoredRecord struct {
	rec   model.SymbolRecord
	usage int
	score int
}

func (idx *Index) sortedRecords(entries []*Symbol) []model.SymbolRecord {
	scoredList := make([]scoredRecord, 0, len(entries))
	for _, e := range entries {
		scoredList = append(scoredList, scoredRecord{rec: e.Record, usage: e.Record.Usages.Total(), score: idx.score(e)})
	}
	// Insertion sort: N is small per query and stability matters more
	// than asymptotic performance (identical candidate lists must
	// produce identical winners, §8).
	for i := 1; i < len(scoredList); i++ {
		j := i
		for j > 0 && scoredLess(scoredList[j], scoredList[j-1]) {
			scoredList[j], scoredList[j-1] = scoredList[j-1], scoredList[j]
			j--
		}
	}
	out := make([]model.SymbolRecord, len(scoredList))
	for i, s := range scoredList {
		out[i] = s.rec
	}
	return out
}

func scoredLess(a, b scoredRecord) bool {
	if a.usage != b.usage {
		return a.usage > b.usage
	}
	if a.score != b.score {
		return a.score > b.score
	}
	if a.rec.File != b.rec.File {
		return a.rec.File < b.rec.File
	}
	return a.rec.StartLine < b.rec.StartLine
}

// Entries returns the raw *Symbol list for an exact name, sorted by
// the same usage/score/file/line order as FindExact — for query-engine
// callers that need the richer Symbol (Fn/Type pointers), not just the
// bare SymbolRecord.
func (idx *Index) Entries(name string) []*Symbol {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	entries := append([]*Symbol(nil), idx.names[name]...)
	return idx.sortedEntries(entries)
}

// Best returns the single highest-ranked Symbol for an exact name, the
// same winner FindExact would place first.
func (idx *Index) Best(name string) (*Symbol, bool) {
	entries := idx.Entries(name)
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0], true
}

// sortedEntries applies the same ordering as sortedRecords but keeps
// the *Symbol wrapper instead of projecting to SymbolRecord.
func (idx *Index) sortedEntries(entries []*Symbol) []*Symbol {
	scoredList := make([]struct {
		e     *Symbol
		usage int
		score int
	}, 0, len(entries))
	for _, e := range entries {
		scoredList = append(scoredList, struct {
			e     *Symbol
			usage int
			score int
		}{e: e, usage: e.Record.Usages.Total(), score: idx.score(e)})
	}
	for i := 1; i < len(scoredList); i++ {
		j := i
		for j > 0 {
			a, b := scoredList[j], scoredList[j-1]
			less := false
			if a.usage != b.usage {
				less = a.usage > b.usage
			} else if a.score != b.score {
				less = a.score > b.score
			} else if a.e.Record.File != b.e.Record.File {
				less = a.e.Record.File < b.e.Record.File
			} else {
				less = a.e.Record.StartLine < b.e.Record.StartLine
			}
			if !less {
				break
			}
			scoredList[j], scoredList[j-1] = scoredList[j-1], scoredList[j]
			j--
		}
	}
	out := make([]*Symbol, len(scoredList))
	for i, s := range scoredList {
		out[i] = s.e
	}
	return out
}

// entriesFor exposes the raw Symbol list for a name, used by
// callgraph.go's method resolution (which needs Fn/Type, not just the
// public SymbolRecord). Private: every caller already holds idx.mu via
// its own public entry point, so this does not lock again.
func (idx *Index) entriesFor(name string) []*Symbol {
	return idx.names[name]
}
