package index

import (
	"github.com/mleoca/ucn/model"
)

// ResolveOptions controls method-resolution behavior shared by every
// query that walks the call graph (§4.9 context/impact/trace/...).
type ResolveOptions struct {
	IncludeMethods   bool
	IncludeUncertain bool
}

// ResolvedCall pairs a Call with the Symbol it resolves to (nil if the
// call is uncertain or unresolved) and the file it was found in.
type ResolvedCall struct {
	Call       model.Call
	CallerFile string
	Target     *Symbol
}

// ResolveCall applies §4.6's method resolution order to one Call found
// in callerFile, returning the Symbol it binds to. The second return
// value is false when the call is uncertain/unresolved and the caller
// should treat it per ResolveOptions.IncludeUncertain. Safe to call
// concurrently with other reads; the index is immutable after Build.
func (idx *Index) ResolveCall(callerFile *model.FileRecord, enclosing *model.EnclosingFunction, call model.Call) (*Symbol, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if call.Receiver == "" {
		return idx.resolvePlainCall(call)
	}

	enclosingType := idx.enclosingTypeOf(callerFile, enclosing)

	switch call.Receiver {
	case "super":
		if enclosingType == nil {
			return nil, false
		}
		parent := idx.parentOf(enclosingType.Name)
		if parent == nil {
			return nil, false
		}
		return idx.methodOnType(parent, call.Callee)

	case "self", "this", "cls":
		if enclosingType == nil {
			return nil, false
		}
		if sym, ok := idx.methodOnType(enclosingType, call.Callee); ok {
			return sym, true
		}
		return idx.methodViaParentChain(enclosingType.Name, call.Callee)

	default:
		if call.SelfAttribute != "" && enclosingType != nil && callerFile != nil {
			if attrTypes, ok := callerFile.InstanceAttributeTypes[enclosingType.Name]; ok {
				if typeName, ok := attrTypes[call.SelfAttribute]; ok {
					if typeSym := idx.typeByName(typeName); typeSym != nil {
						return idx.methodOnType(typeSym, call.Callee)
					}
				}
			}
		}
		// A bare identifier receiver bound by a local assignment
		// (`x = Foo(...)`) is resolved by the extractor into
		// call.ResolvedNames; look those up as constructed types.
		for _, alias := range call.ResolvedNames {
			if typeSym := idx.typeByName(alias); typeSym != nil {
				if sym, ok := idx.methodOnType(typeSym, call.Callee); ok {
					return sym, true
				}
			}
		}
		return nil, false
	}
}

func (idx *Index) resolvePlainCall(call model.Call) (*Symbol, bool) {
	candidates := idx.entriesFor(call.Callee)
	for _, alias := range call.ResolvedNames {
		candidates = append(candidates, idx.entriesFor(alias)...)
	}
	best := idx.bestNonMethod(candidates)
	if best == nil {
		return nil, false
	}
	return best, true
}

func (idx *Index) bestNonMethod(candidates []*Symbol) *Symbol {
	var best *Symbol
	bestScore := -1 << 30
	for _, c := range candidates {
		s := idx.score(c)
		if s > bestScore {
			bestScore = s
			best = c
		}
	}
	return best
}

// enclosingTypeOf finds the TypeDecl owning the function the call was
// found in, by matching enclosing's name/span against the file's
// Types' Members.
func (idx *Index) enclosingTypeOf(fr *model.FileRecord, enclosing *model.EnclosingFunction) *model.TypeDecl {
	if fr == nil || enclosing == nil {
		return nil
	}
	for i := range fr.Types {
		td := &fr.Types[i]
		for _, m := range td.Members {
			if m.Name == enclosing.Name && m.StartLine == enclosing.StartLine {
				return td
			}
		}
	}
	return nil
}

// parentOf returns the TypeDecl for typeName's single Extends parent,
// searching the whole project since inheritance can cross files.
func (idx *Index) parentOf(typeName string) *model.TypeDecl {
	for _, edge := range idx.inheritEdges {
		if edge.Child == typeName && edge.Kind == "extends" {
			if t := idx.typeByName(edge.Parent); t != nil {
				return t
			}
		}
	}
	return nil
}

// methodViaParentChain walks the Extends chain from typeName looking
// for methodName, stopping at the first match or a cycle.
func (idx *Index) methodViaParentChain(typeName, methodName string) (*Symbol, bool) {
	seen := map[string]bool{typeName: true}
	current := typeName
	for {
		var parentName string
		found := false
		for _, edge := range idx.inheritEdges {
			if edge.Child == current && edge.Kind == "extends" {
				parentName = edge.Parent
				found = true
				break
			}
		}
		if !found || seen[parentName] {
			return nil, false
		}
		seen[parentName] = true
		parentType := idx.typeByName(parentName)
		if parentType == nil {
			return nil, false
		}
		if sym, ok := idx.methodOnType(parentType, methodName); ok {
			return sym, true
		}
		current = parentName
	}
}

// methodOnType finds methodName among td's members, returning it as
// a Symbol (re-looked-up through the name index so usage counts and
// disambiguation context travel with it).
func (idx *Index) methodOnType(td *model.TypeDecl, methodName string) (*Symbol, bool) {
	for _, m := range td.Members {
		if m.Name == methodName {
			for _, candidate := range idx.entriesFor(methodName) {
				if candidate.Fn != nil && candidate.Fn.StartLine == m.StartLine && candidate.Fn.Name == methodName {
					return candidate, true
				}
			}
		}
	}
	return nil, false
}

// typeByName returns the highest-scoring TypeDecl-backed Symbol whose
// name is typeName, across the whole project.
func (idx *Index) typeByName(typeName string) *model.TypeDecl {
	var best *Symbol
	bestScore := -1 << 30
	for _, c := range idx.entriesFor(typeName) {
		if c.Type == nil {
			continue
		}
		if s := idx.score(c); s > bestScore {
			bestScore = s
			best = c
		}
	}
	if best == nil {
		return nil
	}
	return best.Type
}

// Callers returns every ResolvedCall across the project whose Target
// is the given Symbol (§4.9 context/impact's "immediate callers").
func (idx *Index) Callers(target *Symbol, opts ResolveOptions) []ResolvedCall {
	var out []ResolvedCall
	for _, relPath := range idx.SortedFilePaths() {
		fr, _ := idx.File(relPath)
		for _, call := range fr.Calls {
			if call.IsMethod && !opts.IncludeMethods {
				continue
			}
			sym, ok := idx.ResolveCall(fr, call.Enclosing, call)
			if !ok {
				if opts.IncludeUncertain && call.Callee == target.Record.Name {
					out = append(out, ResolvedCall{Call: call, CallerFile: relPath})
				}
				continue
			}
			if sym.Record.Name == target.Record.Name && sym.Record.File == target.Record.File && sym.Record.StartLine == target.Record.StartLine {
				out = append(out, ResolvedCall{Call: call, CallerFile: relPath, Target: sym})
			}
		}
	}
	return out
}

// Callees returns every Call originating inside target's own body
// (Fn must be non-nil), each resolved once.
func (idx *Index) Callees(target *Symbol, opts ResolveOptions) []ResolvedCall {
	if target.Fn == nil {
		return nil
	}
	fr, ok := idx.File(target.Record.File)
	if !ok {
		return nil
	}
	var out []ResolvedCall
	for _, call := range fr.Calls {
		if call.Enclosing == nil || call.Enclosing.Name != target.Fn.Name || call.Enclosing.StartLine != target.Fn.StartLine {
			continue
		}
		if call.IsMethod && !opts.IncludeMethods {
			continue
		}
		sym, ok := idx.ResolveCall(fr, call.Enclosing, call)
		if !ok && !opts.IncludeUncertain {
			continue
		}
		out = append(out, ResolvedCall{Call: call, CallerFile: target.Record.File, Target: sym})
	}
	return out
}
