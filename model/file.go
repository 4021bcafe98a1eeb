package model

import "time"

// FileRecord is everything the index knows about one source file. It is
// created when discovery presents a new file, mutated only by
// (re)parse, and destroyed when the file disappears or the index is
// discarded (§3 lifecycles).
type FileRecord struct {
	AbsPath     string
	RelPath     string // project-relative, forward-slash separated
	Language    Language
	TotalLines  int

	ModTime time.Time
	Size    int64

	Functions      []Function
	Types          []TypeDecl
	StateConstants []StateConstant
	Imports        []Import
	Exports        []Export
	Calls          []Call

	// UnresolvedImports holds import specifiers the resolver could not
	// place inside the project (external packages, missing files).
	// These never produce Import Graph edges.
	UnresolvedImports []string

	// InstanceAttributeTypes is populated only for Python, mapping
	// class name -> (attribute name -> inferred type name), used to
	// resolve `self.attr.method()` call sites.
	InstanceAttributeTypes map[string]map[string]string

	IsTestFile bool
	ParseError bool // over the size limit, no grammar, or grammar failed even after buffer escalation
	Stale      bool // file vanished or became unreadable after indexing
}

// Edge is a file-to-file import-graph edge.
type Edge struct {
	From    string
	To      string
	Names   []string
	Dynamic bool
}

// InheritanceEdge is a child-type -> parent-type relationship. Name
// collisions across files are tolerated; disambiguation happens at
// query time using the importing file's alias context.
type InheritanceEdge struct {
	Child      string
	Parent     string
	ChildFile  string
	Kind       string // "extends" or "implements"
}

// SymbolRecord is the lightweight, index-owned record the name->records
// map and the query engine operate on. Instances with identical
// (Name, File, StartLine) are deduplicated (§3 invariants).
type SymbolRecord struct {
	Name      string
	File      string // project-relative path
	Kind      string // "function", "method", "class", "struct", "interface", ...
	StartLine int
	EndLine   int

	Usages UsageCounts

	Confidence Confidence
	IsExported bool
	IsTestFile bool
}

// UsageCounts is the cached per-symbol usage tally the find query sorts
// by.
type UsageCounts struct {
	Calls       int
	Definitions int
	Imports     int
	References  int
}

// Total sums the four usage buckets.
func (u UsageCounts) Total() int {
	return u.Calls + u.Definitions + u.Imports + u.References
}
