package model

// Param is a single entry in a Function's parameter list, kept both as
// structured fields (for the verify/plan queries, §4.9) and as the raw
// source text (for display).
type Param struct {
	Name       string
	Type       string // best-effort type annotation text, empty if untyped
	Raw        string // the parameter exactly as written
	Optional   bool
	HasDefault bool
	Default    string
	IsRest     bool // *args / ...rest / variadic
}

// Function is a top-level (or type-member) function/method declaration.
// A Function belongs to exactly one FileRecord and, when IsMethod is
// true and it was parsed as a type member, also to exactly one
// TypeDecl's Members — it is never parsed twice (§3 invariants).
type Function struct {
	Name       string
	Params     []Param
	ReturnType string
	StartLine  int
	EndLine    int
	// NameLine is set only when the declaration's start line (including
	// leading decorators/annotations) differs from the line the
	// identifier itself sits on.
	NameLine    int
	Indent      int
	Modifiers   []string // export, async, public, static, ...
	Docstring   string
	Decorators  []string
	Generics    []string
	IsMethod    bool
	Receiver    string // statically known receiver type, when known (Rust impl, Python/Java class body)
	Confidence  Confidence
}

// Confidence is an advisory quality tag (§4.6); it never affects
// resolution correctness, only how results are ordered/flagged.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// TypeKind enumerates the type-like declarations a TypeDecl can stand
// for across languages.
type TypeKind string

const (
	KindClass     TypeKind = "class"
	KindStruct    TypeKind = "struct"
	KindInterface TypeKind = "interface"
	KindEnum      TypeKind = "enum"
	KindTrait     TypeKind = "trait"
	KindTypeAlias TypeKind = "type-alias"
	KindRecord    TypeKind = "record"
	KindModule    TypeKind = "module"
	KindMacro     TypeKind = "macro"
	KindImpl      TypeKind = "impl"
)

// TypeDecl is a class/struct/interface/enum/trait/impl/... declaration.
// Members are fully populated at parse time; a Function that lives
// inside a TypeDecl never appears a second time as a bare top-level
// Function in the same FileRecord.
type TypeDecl struct {
	Name       string
	Kind       TypeKind
	StartLine  int
	EndLine    int
	Members    []Function
	Modifiers  []string
	Extends    string   // single parent, when the language has single inheritance
	Implements []string // interface/trait list
	Generics   []string
}

// StateConstant is a top-level constant/literal binding whose name
// matches an ALL-CAPS or *Config/*Settings/*Options/*State/*Store/
// *Context pattern (§4.3).
type StateConstant struct {
	Name      string
	StartLine int
	EndLine   int
}

// ImportKind classifies the syntactic form of an Import.
type ImportKind string

const (
	ImportNamed     ImportKind = "named"
	ImportDefault   ImportKind = "default"
	ImportNamespace ImportKind = "namespace"
	ImportSideEffect ImportKind = "side-effect"
	ImportRequire   ImportKind = "require"
	ImportDynamic   ImportKind = "dynamic"
	ImportReExport  ImportKind = "re-export"
	ImportRelative  ImportKind = "relative"
	ImportStatic    ImportKind = "static"
)

// Import is one import/use/require statement.
type Import struct {
	Source    string // module specifier, verbatim
	Names     []string // imported names; "*" for namespace imports; best-effort, may be empty
	Kind      ImportKind
	Line      int // 1-based
	Aliases   map[string]string // original -> local, when the language supports renaming
	Dynamic   bool
}

// ExportKind classifies the syntactic form of an Export.
type ExportKind string

const (
	ExportNamed      ExportKind = "named"
	ExportDefault    ExportKind = "default"
	ExportReExport   ExportKind = "re-export"
	ExportCommonJS   ExportKind = "commonjs"
	ExportConvention ExportKind = "convention" // e.g. Go uppercase, Java public
)

// Export is one exported name.
type Export struct {
	Name       string
	Kind       ExportKind
	Line       int
	Source     string // for re-exports: the module re-exported from
	IsTypeOnly bool   // TypeScript `export type`
}

// UsageKind classifies an identifier occurrence found by
// Extractor.FindUsages (package extract).
type UsageKind string

const (
	UsageDefinition UsageKind = "definition"
	UsageCall       UsageKind = "call"
	UsageImport     UsageKind = "import"
	UsageReference  UsageKind = "reference"
)

// Usage is a single syntactic occurrence of a name, computed on demand
// (it is never stored in the index — see §5 memory discipline).
type Usage struct {
	Line    int
	Column  int
	Kind    UsageKind
	IsInCodeOnlyToken bool // false when inside a comment/string literal
}

// EnclosingFunction is the lightweight {name, startLine, endLine}
// reference a Call carries to the function it was found in; nil for
// module-level calls.
type EnclosingFunction struct {
	Name      string
	StartLine int
	EndLine   int
}

// Call is one call expression (§4.4). The optional flags describe its
// syntactic shape; they are independent, so any number of them (none
// included) can be set on one call.
type Call struct {
	Callee   string
	Line     int
	IsMethod bool
	Receiver string // identifier, this/self/super/cls, or empty
	SelfAttribute string // set when receiver is `self.attr`

	IsConstructor      bool
	IsMacro            bool
	IsJsxComponent     bool
	IsFunctionReference bool
	IsPotentialCallback bool
	IsEventHandler     bool
	Uncertain          bool

	Enclosing *EnclosingFunction

	// ResolvedNames carries alias retargeting computed during
	// extraction (const a = b; destructuring renames; ternary
	// branches; functools.partial) so resolution can look past the
	// local name.
	ResolvedNames []string

	Arguments []Argument
}

// Argument is one argument at a call site, kept verbatim for the
// impact/verify/plan queries.
type Argument struct {
	Text       string
	Position   int
	IsNamed    bool
	Name       string // named/keyword argument name, if any
}
