package query

import (
	"strings"

	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/model"
)

// DeadcodeOptions configures the deadcode query (§4.9).
type DeadcodeOptions struct {
	IncludeExported  bool
	IncludeDecorated bool
	IncludeTests     bool
	Exclude          []string
	In               []string
}

// frameworkDecoratorPrefixes is the §6 denylist: a decorator/attribute/
// annotation whose spelling starts with one of these marks a symbol as
// framework-registered, so an apparently-uncalled handler isn't
// flagged as dead by default.
var frameworkDecoratorPrefixes = []string{
	"route", "app.", "blueprint.", "task", "celery.", "click", "fixture", "api", "register",
}

var rustTestAttributes = map[string]bool{
	"test": true, "tokio::main": true, "bench": true, "cfg(test)": true,
}

var javaFrameworkAnnotations = map[string]bool{
	"Test": true, "Override": true, "PostConstruct": true, "PreDestroy": true,
	"GetMapping": true, "PostMapping": true, "RequestMapping": true,
}

func isFrameworkDecorated(fn *model.Function, lang model.Language) bool {
	for _, d := range fn.Decorators {
		trimmed := strings.TrimPrefix(strings.TrimSpace(d), "@")
		trimmed = strings.TrimPrefix(trimmed, "#[")
		trimmed = strings.TrimSuffix(trimmed, "]")
		switch lang {
		case model.LangPython:
			for _, prefix := range frameworkDecoratorPrefixes {
				if strings.HasPrefix(strings.ToLower(trimmed), prefix) {
					return true
				}
			}
		case model.LangRust:
			if rustTestAttributes[trimmed] {
				return true
			}
		case model.LangJava:
			if javaFrameworkAnnotations[trimmed] {
				return true
			}
		}
	}
	return false
}

// Deadcode returns every top-level function and every type member
// whose in-project caller set is empty, excluding (by default) exported
// symbols, framework-decorated symbols, and test-file symbols. Type
// declarations themselves (classes, structs, interfaces, ...) are not
// reported.
func (e *Engine) Deadcode(opts DeadcodeOptions) []model.SymbolRecord {
	var out []model.SymbolRecord
	for _, relPath := range e.Idx.SortedFilePaths() {
		if !pathMatches(relPath, opts.In, opts.Exclude) {
			continue
		}
		fr, ok := e.Idx.File(relPath)
		if !ok || fr.Stale || fr.ParseError {
			continue
		}
		if fr.IsTestFile && !opts.IncludeTests {
			continue
		}
		for i := range fr.Functions {
			fn := &fr.Functions[i]
			if fn.IsMethod {
				continue // methods are reported via their owning type's member scan below
			}
			e.considerDead(&out, relPath, fr, fn, opts)
		}
		for ti := range fr.Types {
			td := &fr.Types[ti]
			for mi := range td.Members {
				e.considerDead(&out, relPath, fr, &td.Members[mi], opts)
			}
		}
	}
	sortSymbolRecords(out)
	return out
}

func (e *Engine) considerDead(out *[]model.SymbolRecord, relPath string, fr *model.FileRecord, fn *model.Function, opts DeadcodeOptions) {
	if !opts.IncludeExported && isExportedFn(fr, fn) {
		return
	}
	if !opts.IncludeDecorated && isFrameworkDecorated(fn, fr.Language) {
		return
	}
	sym, ok := e.Idx.Best(fn.Name)
	if !ok {
		return
	}
	if sym.Fn == nil || sym.Fn.StartLine != fn.StartLine || sym.Record.File != relPath {
		// Another symbol of the same name won disambiguation; look this
		// one up among every candidate instead of assuming Best() is it.
		for _, cand := range e.Idx.Entries(fn.Name) {
			if cand.Record.File == relPath && cand.Record.StartLine == fn.StartLine {
				sym = cand
				break
			}
		}
	}
	if len(e.Idx.Callers(sym, index.ResolveOptions{IncludeMethods: true, IncludeUncertain: true})) > 0 {
		return
	}
	*out = append(*out, sym.Record)
}

func isExportedFn(fr *model.FileRecord, fn *model.Function) bool {
	for _, exp := range fr.Exports {
		if exp.Name == fn.Name {
			return true
		}
	}
	if fr.Language == model.LangGo {
		return len(fn.Name) > 0 && fn.Name[0] >= 'A' && fn.Name[0] <= 'Z'
	}
	for _, mod := range fn.Modifiers {
		if mod == "public" || mod == "export" {
			return true
		}
	}
	return false
}
