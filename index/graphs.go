package index

import (
	"strings"

	"github.com/mleoca/ucn/model"
	"github.com/mleoca/ucn/output"
)

// buildImportGraph resolves every FileRecord's imports (§4.5) and
// records either an Edge or an unresolved specifier on the FileRecord,
// never both (§3's invariant on unresolved imports).
func (idx *Index) buildImportGraph(logger *output.Logger) {
	for relPath, fr := range idx.files {
		if idx.resolver == nil {
			continue
		}
		for _, imp := range fr.Imports {
			target, ok := idx.resolver.Resolve(fr.AbsPath, imp, fr.Language)
			if !ok {
				fr.UnresolvedImports = append(fr.UnresolvedImports, imp.Source)
				continue
			}
			targetFR, known := idx.byAbs[target]
			if !known {
				fr.UnresolvedImports = append(fr.UnresolvedImports, imp.Source)
				continue
			}
			idx.importEdges = append(idx.importEdges, model.Edge{
				From:    relPath,
				To:      targetFR.RelPath,
				Names:   imp.Names,
				Dynamic: imp.Dynamic,
			})
		}
	}
	logger.Debug("import graph: %d edges", len(idx.importEdges))
}

// buildInheritanceGraph walks every TypeDecl's Extends/Implements,
// resolving parent names through the importing file's local import
// aliases (§4.6 step 5) before falling back to the bare name.
func (idx *Index) buildInheritanceGraph() {
	for relPath, fr := range idx.files {
		aliasToSource := aliasMap(fr)
		for _, td := range fr.Types {
			if td.Extends != "" {
				idx.inheritEdges = append(idx.inheritEdges, model.InheritanceEdge{
					Child: td.Name, Parent: resolveAlias(td.Extends, aliasToSource),
					ChildFile: relPath, Kind: "extends",
				})
			}
			for _, parent := range td.Implements {
				idx.inheritEdges = append(idx.inheritEdges, model.InheritanceEdge{
					Child: td.Name, Parent: resolveAlias(parent, aliasToSource),
					ChildFile: relPath, Kind: "implements",
				})
			}
		}
	}
}

// aliasMap flattens every Import's Aliases map (local name -> a
// best-effort fully-qualified hint) for one file, so a class that
// `extends Base` where `Base` was imported under an alias still
// resolves to the original exported name.
func aliasMap(fr *model.FileRecord) map[string]string {
	out := make(map[string]string)
	for _, imp := range fr.Imports {
		for original, local := range imp.Aliases {
			out[local] = original
		}
	}
	return out
}

func resolveAlias(name string, aliasToSource map[string]string) string {
	// Parent names can carry a generic suffix (e.g. "Base<T>") or a
	// qualifying prefix (e.g. "pkg.Base"); strip to the bare last
	// segment before alias lookup, matching how §4.6 compares type
	// names across files.
	bare := name
	if i := strings.IndexAny(bare, "<["); i >= 0 {
		bare = bare[:i]
	}
	if i := strings.LastIndex(bare, "."); i >= 0 {
		bare = bare[i+1:]
	}
	if i := strings.LastIndex(bare, "::"); i >= 0 {
		bare = bare[i+2:]
	}
	if original, ok := aliasToSource[bare]; ok {
		return original
	}
	return bare
}
