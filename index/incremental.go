package index

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mleoca/ucn/model"
	"github.com/mleoca/ucn/output"
)

// Update applies §4.6's incremental-update recipe for a set of
// changed project-relative paths: remove their FileRecords and every
// SymbolRecord they contributed, re-parse and re-insert, then rebuild
// only the import/inheritance edges touching those files. The call
// graph needs no invalidation since it resolves lazily at query time.
func (idx *Index) Update(ctx context.Context, changedRelPaths []string, logger *output.Logger) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if logger == nil {
		logger = output.NewLogger(output.VerbosityNormal)
	}

	changed := make(map[string]bool, len(changedRelPaths))
	for _, p := range changedRelPaths {
		changed[p] = true
	}

	idx.removeContributions(changed)

	for _, rel := range changedRelPaths {
		abs := filepath.Join(idx.Root, filepath.FromSlash(rel))
		if _, err := os.Stat(abs); err != nil {
			delete(idx.files, rel)
			delete(idx.byAbs, abs)
			continue // file vanished; its contributions were already removed above
		}
		rec := idx.parseFile(ctx, parseJob{relPath: rel, absPath: abs})
		idx.files[rel] = rec
		idx.byAbs[rec.AbsPath] = rec
	}

	idx.insertContributions(changed)
	idx.rebuildEdgesFor(changed, logger)

	logger.Debug("incremental update: reprocessed %d files", len(changedRelPaths))
	return nil
}

// removeContributions strips every Symbol, import edge, and
// inheritance edge that came from a changed file.
func (idx *Index) removeContributions(changed map[string]bool) {
	for name, entries := range idx.names {
		kept := entries[:0]
		for _, e := range entries {
			if !changed[e.Record.File] {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(idx.names, name)
		} else {
			idx.names[name] = kept
		}
	}
	idx.importEdges = removeEdgesTouching(idx.importEdges, changed)
	idx.inheritEdges = removeInheritEdgesTouching(idx.inheritEdges, changed)
}

func removeEdgesTouching(edges []model.Edge, changed map[string]bool) []model.Edge {
	out := edges[:0]
	for _, e := range edges {
		if !changed[e.From] && !changed[e.To] {
			out = append(out, e)
		}
	}
	return out
}

func removeInheritEdgesTouching(edges []model.InheritanceEdge, changed map[string]bool) []model.InheritanceEdge {
	out := edges[:0]
	for _, e := range edges {
		if !changed[e.ChildFile] {
			out = append(out, e)
		}
	}
	return out
}

// insertContributions re-adds Symbols for the freshly (re)parsed
// changed files, then retallies usage counts project-wide (cheap
// relative to a full reparse, and correctness requires seeing the
// updated Call lists of every file, not just the changed ones).
func (idx *Index) insertContributions(changed map[string]bool) {
	for rel := range changed {
		fr, ok := idx.files[rel]
		if !ok {
			continue
		}
		for i := range fr.Functions {
			fn := &fr.Functions[i]
			kind := "function"
			if fn.IsMethod {
				kind = "method"
			}
			idx.addSymbol(rel, fr, kind, fn.Name, fn.StartLine, fn.EndLine, fn, nil)
		}
		for i := range fr.Types {
			td := &fr.Types[i]
			idx.addSymbol(rel, fr, string(td.Kind), td.Name, td.StartLine, td.EndLine, nil, td)
			for j := range td.Members {
				m := &td.Members[j]
				idx.addSymbol(rel, fr, "method", m.Name, m.StartLine, m.EndLine, m, nil)
			}
		}
	}
	idx.tallyUsageCounts()
}

// rebuildEdgesFor reconstructs import/inheritance edges touching any
// changed file, both as source and as target (§4.6 step 3: "invalidate
// import-graph edges involving those files, both incoming and
// outgoing").
func (idx *Index) rebuildEdgesFor(changed map[string]bool, logger *output.Logger) {
	for rel := range changed {
		fr, ok := idx.files[rel]
		if !ok {
			continue
		}
		idx.addImportEdgesFor(rel, fr)
	}
	// Other files importing a changed file must also regain their edge,
	// even though their own FileRecord didn't change.
	for otherRel, fr := range idx.files {
		if changed[otherRel] {
			continue
		}
		idx.addImportEdgesFor(otherRel, fr)
	}

	for rel := range changed {
		fr, ok := idx.files[rel]
		if !ok {
			continue
		}
		aliasToSource := aliasMap(fr)
		for _, td := range fr.Types {
			if td.Extends != "" {
				idx.inheritEdges = append(idx.inheritEdges, model.InheritanceEdge{
					Child: td.Name, Parent: resolveAlias(td.Extends, aliasToSource), ChildFile: rel, Kind: "extends",
				})
			}
			for _, parent := range td.Implements {
				idx.inheritEdges = append(idx.inheritEdges, model.InheritanceEdge{
					Child: td.Name, Parent: resolveAlias(parent, aliasToSource), ChildFile: rel, Kind: "implements",
				})
			}
		}
	}

	logger.Debug("rebuilt edges for %d changed files", len(changed))
}

func (idx *Index) addImportEdgesFor(rel string, fr *model.FileRecord) {
	if idx.resolver == nil {
		return
	}
	for _, imp := range fr.Imports {
		target, resolved := idx.resolver.Resolve(fr.AbsPath, imp, fr.Language)
		if !resolved {
			continue
		}
		targetFR, known := idx.byAbs[target]
		if !known {
			continue
		}
		// Only add the edge if it doesn't already exist: every unchanged
		// file is re-resolved here, and its edges to unchanged targets
		// survived removeContributions (removeEdgesTouching strips only
		// edges whose From or To is in `changed`).
		exists := false
		for _, e := range idx.importEdges {
			if e.From == rel && e.To == targetFR.RelPath {
				exists = true
				break
			}
		}
		if !exists {
			idx.importEdges = append(idx.importEdges, model.Edge{From: rel, To: targetFR.RelPath, Names: imp.Names, Dynamic: imp.Dynamic})
		}
	}
}

// RelPathsUnder resolves a set of absolute paths (e.g. from an
// fsnotify event batch) to project-relative paths.
func (idx *Index) RelPathsUnder(absPaths []string) []string {
	var out []string
	for _, abs := range absPaths {
		rel, err := filepath.Rel(idx.Root, abs)
		if err != nil {
			continue
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}
