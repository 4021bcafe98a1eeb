// Package index owns the Symbol Index & Graphs (§4.6): parsed
// FileRecords, the name->SymbolRecord map, the import graph, the
// inheritance graph, and on-demand call-graph resolution. A builder
// constructs an immutable Index; queries only ever read from it,
// matching the single-writer/multi-reader discipline §9 calls for.
package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mleoca/ucn/discovery"
	"github.com/mleoca/ucn/extract"
	"github.com/mleoca/ucn/languages"
	"github.com/mleoca/ucn/model"
	"github.com/mleoca/ucn/output"
	"github.com/mleoca/ucn/parse"
	"github.com/mleoca/ucn/resolve"
)

// Symbol augments a model.SymbolRecord with the parsed node it
// came from, so query-time operations (source snippets, parameter
// lists, method resolution) don't need to re-walk FileRecords.
type Symbol struct {
	Record model.SymbolRecord
	Fn     *model.Function // non-nil for function/method symbols
	Type   *model.TypeDecl // non-nil for type symbols
}

// Index is the immutable, queryable result of a build. Build it once
// per project; Update produces files in place but callers otherwise
// treat it as read-only.
type Index struct {
	Root string

	mu sync.RWMutex

	files map[string]*model.FileRecord // keyed by project-relative path
	byAbs map[string]*model.FileRecord

	names map[string][]*Symbol // name -> every candidate symbol

	importEdges  []model.Edge
	inheritEdges []model.InheritanceEdge

	registry *languages.Registry
	resolver *resolve.Resolver
	fileSet  *resolve.FileSet

	maxFileSize int64
}

// Files returns every indexed FileRecord, keyed by project-relative
// path. Callers must not mutate the returned map or its values.
func (idx *Index) Files() map[string]*model.FileRecord {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.files
}

// File looks up a FileRecord by project-relative or absolute path.
func (idx *Index) File(path string) (*model.FileRecord, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if fr, ok := idx.files[path]; ok {
		return fr, true
	}
	fr, ok := idx.byAbs[path]
	return fr, ok
}

// ImportEdges returns the whole import graph.
func (idx *Index) ImportEdges() []model.Edge {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.importEdges
}

// InheritanceEdges returns the whole inheritance graph.
func (idx *Index) InheritanceEdges() []model.InheritanceEdge {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.inheritEdges
}

// Grammar returns the compiled tree-sitter grammar for a language, the
// same registry the build phase used — for query-time re-parses
// (usages, verify) that need the syntax tree again rather than just
// the lightweight FileRecord.
func (idx *Index) Grammar(lang model.Language, isTSX bool) *sitter.Language {
	return idx.registry.Grammar(lang, isTSX)
}

// SortedFilePaths returns every indexed file's project-relative path
// in lexicographic order, the iteration order §5 requires for
// deterministic query output.
func (idx *Index) SortedFilePaths() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	paths := make([]string, 0, len(idx.files))
	for p := range idx.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// defaultMaxFileSize mirrors parse's own 64 MiB ceiling; files larger
// than this are skipped before ever reaching the parser (§5).
const defaultMaxFileSize = 64 << 20

// BuildOptions configures a bulk build.
type BuildOptions struct {
	Logger    *output.Logger
	Workers   int // parser goroutines; <=0 defaults to 4
	Ignore    []string
	FollowSymlinks bool
	FollowSymlinksSet bool
	MaxFileSize int64 // <=0 defaults to 64 MiB, overridable via .ucn.yml's maxFileSize
}

type parseJob struct {
	relPath string
	absPath string
}

type parseOutcome struct {
	relPath string
	record  *model.FileRecord
}

// Build walks root, parses every supported file with a worker pool
// (§5's "embarrassingly parallel" bulk-build phase — N parser
// goroutines feed a single writer goroutine that owns FileRecord
// insertion), then builds the import and inheritance graphs.
func Build(ctx context.Context, root string, opts BuildOptions) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = output.NewLogger(output.VerbosityNormal)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("index: resolve root %q: %w", root, err)
	}

	relPaths, err := discovery.Walk(absRoot, discovery.Options{
		ExtraIgnore:       opts.Ignore,
		FollowSymlinks:    opts.FollowSymlinks,
		FollowSymlinksSet: opts.FollowSymlinksSet,
	})
	if err != nil {
		return nil, fmt.Errorf("index: walk %q: %w", absRoot, err)
	}

	maxFileSize := opts.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}

	idx := &Index{
		Root:        absRoot,
		files:       make(map[string]*model.FileRecord, len(relPaths)),
		byAbs:       make(map[string]*model.FileRecord, len(relPaths)),
		names:       make(map[string][]*Symbol),
		registry:    languages.NewRegistry(),
		maxFileSize: maxFileSize,
	}
	idx.fileSet = resolve.NewFileSet(absRoot, relPaths)
	idx.resolver = resolve.New(absRoot, idx.fileSet)

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	logger.StartProgress("Indexing project", len(relPaths))

	jobs := make(chan parseJob)
	results := make(chan parseOutcome)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				record := idx.parseFile(ctx, job)
				results <- parseOutcome{relPath: job.relPath, record: record}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		defer close(jobs)
		for _, rel := range relPaths {
			select {
			case jobs <- parseJob{relPath: rel, absPath: filepath.Join(absRoot, filepath.FromSlash(rel))}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for outcome := range results {
		idx.files[outcome.relPath] = outcome.record
		idx.byAbs[outcome.record.AbsPath] = outcome.record
		logger.UpdateProgress(1)
	}
	logger.FinishProgress()

	idx.buildNameIndex()
	idx.buildImportGraph(logger)
	idx.buildInheritanceGraph()

	logger.Statistic("Indexed %d files, %d symbol names", len(idx.files), len(idx.names))
	return idx, nil
}

// parseFile reads, parses, and extracts one file's FileRecord. Parse
// and extraction failures are recorded on the FileRecord rather than
// propagated (§7's "parse failure" taxonomy entry).
func (idx *Index) parseFile(ctx context.Context, job parseJob) *model.FileRecord {
	lang := idx.registry.Detect(job.absPath)
	rec := &model.FileRecord{AbsPath: job.absPath, RelPath: job.relPath, Language: lang}
	rec.IsTestFile = discovery.IsTestFile(job.relPath)

	info, err := os.Stat(job.absPath)
	if err != nil {
		rec.Stale = true
		return rec
	}
	rec.ModTime = info.ModTime()
	rec.Size = info.Size()

	maxSize := idx.maxFileSize
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}
	if rec.Size > maxSize {
		rec.ParseError = true
		return rec
	}

	source, err := os.ReadFile(job.absPath)
	if err != nil {
		rec.Stale = true
		return rec
	}
	rec.TotalLines = countSourceLines(source)

	ext := extract.ForLanguage(lang)
	if ext == nil {
		return rec // unsupported input (§7 item 1): kept with empty artifacts
	}

	grammar := idx.registry.Grammar(lang, languages.IsTSX(job.absPath))
	if grammar == nil {
		rec.ParseError = true
		return rec
	}
	tree, err := parse.Parse(ctx, grammar, source, nil)
	if err != nil {
		rec.ParseError = true
		return rec
	}
	defer tree.Close()
	root := tree.RootNode()

	rec.Functions = ext.FindFunctions(source, root)
	rec.Types = ext.FindClasses(source, root)
	rec.StateConstants = ext.FindStateObjects(source, root)
	rec.Calls = ext.FindCalls(source, root)
	rec.Imports = ext.FindImports(source, root)
	rec.Exports = ext.FindExports(source, root)
	if typer, ok := ext.(extract.InstanceAttributeTyper); ok {
		rec.InstanceAttributeTypes = typer.FindInstanceAttributeTypes(source, root)
	}
	return rec
}

func countSourceLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	n := 1
	for _, b := range source {
		if b == '\n' {
			n++
		}
	}
	if source[len(source)-1] == '\n' {
		n--
	}
	return n
}
