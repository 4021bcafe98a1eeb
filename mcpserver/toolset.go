package mcp

import (
	gomcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registeredTools returns the full §4.9 query surface as MCP tools,
// one per operation, each taking a `project` root plus that
// operation's own arguments.
func registeredTools(s *Server) []server.ServerTool {
	return []server.ServerTool{
		{Tool: projectTool("find", "Find symbols by exact or substring name match",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithBoolean("exact"),
			gomcp.WithString("file")),
			Handler: s.handleFind},
		{Tool: projectTool("usages", "List every syntactic occurrence of a name",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithBoolean("codeOnly"),
			gomcp.WithNumber("context")),
			Handler: s.handleUsages},
		{Tool: projectTool("context", "Show a symbol's immediate callers, callees, and methods",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithBoolean("includeMethods"),
			gomcp.WithBoolean("includeUncertain")),
			Handler: s.handleContext},
		{Tool: projectTool("expand", "Expand a numbered item from a prior context result into source text",
			gomcp.WithNumber("n", gomcp.Required()),
			gomcp.WithString("name")),
			Handler: s.handleExpand},
		{Tool: projectTool("impact", "Group every call site resolving to a symbol by caller file",
			gomcp.WithString("name", gomcp.Required())),
			Handler: s.handleImpact},
		{Tool: projectTool("trace", "Walk a symbol's callee tree to a bounded depth",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithNumber("depth")),
			Handler: s.handleTrace},
		{Tool: projectTool("smart", "Gather a symbol's own source plus its first-hop callee and type source",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithBoolean("withTypes")),
			Handler: s.handleSmart},
		{Tool: projectTool("about", "Summarize a symbol: callers, callees, tests, reference count",
			gomcp.WithString("name", gomcp.Required())),
			Handler: s.handleAbout},
		{Tool: projectTool("related", "Find symbols related to a name by file, name root, or shared caller/callee",
			gomcp.WithString("name", gomcp.Required())),
			Handler: s.handleRelated},
		{Tool: projectTool("deadcode", "List symbols with zero resolved callers",
			gomcp.WithBoolean("includeExported"),
			gomcp.WithBoolean("includeDecorated"),
			gomcp.WithBoolean("includeTests")),
			Handler: s.handleDeadcode},
		{Tool: projectTool("graph", "Walk the import graph from a file to a bounded depth",
			gomcp.WithString("file", gomcp.Required()),
			gomcp.WithString("direction"),
			gomcp.WithNumber("maxDepth")),
			Handler: s.handleGraph},
		{Tool: projectTool("typedef", "Find type declarations (class/interface/struct/enum/...) by name",
			gomcp.WithString("name", gomcp.Required())),
			Handler: s.handleTypedef},
		{Tool: projectTool("tests", "Find test references to a name",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithBoolean("callsOnly")),
			Handler: s.handleTests},
		{Tool: projectTool("example", "Show a handful of real call sites illustrating how a symbol is used",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithNumber("maxExamples"),
			gomcp.WithBoolean("includeTests")),
			Handler: s.handleExample},
		{Tool: projectTool("verify", "Classify every call site against a function's current signature",
			gomcp.WithString("name", gomcp.Required())),
			Handler: s.handleVerify},
		{Tool: projectTool("plan", "Plan a signature refactor and list affected call sites",
			gomcp.WithString("name", gomcp.Required()),
			gomcp.WithString("kind", gomcp.Required()),
			gomcp.WithString("param"),
			gomcp.WithString("defaultValue"),
			gomcp.WithString("renameTo")),
			Handler: s.handlePlan},
		{Tool: projectTool("diffImpact", "Map changed hunks to the symbols they overlap and their callers",
			gomcp.WithString("base"),
			gomcp.WithBoolean("staged"),
			gomcp.WithString("file")),
			Handler: s.handleDiffImpact},
		{Tool: projectTool("api", "List exported symbols project-wide or for one file",
			gomcp.WithString("file")),
			Handler: s.handleApi},
		{Tool: projectTool("stats", "Project-wide file/line/symbol counts by language and kind"),
			Handler: s.handleStats},
		{Tool: projectTool("stacktrace", "Resolve each frame of a stack trace to a source snippet",
			gomcp.WithString("text", gomcp.Required())),
			Handler: s.handleStacktrace},
		{Tool: projectTool("fileExports", "List a single file's exports",
			gomcp.WithString("file", gomcp.Required())),
			Handler: s.handleFileExports},
	}
}

// projectTool builds a tool definition with the `project` root
// argument every handler needs, plus the operation-specific options
// passed in opts.
func projectTool(name, description string, opts ...gomcp.ToolOption) gomcp.Tool {
	base := []gomcp.ToolOption{
		gomcp.WithDescription(description),
		gomcp.WithString("project", gomcp.Required(), gomcp.Description("absolute or relative path to the indexed project root")),
	}
	return gomcp.NewTool(name, append(base, opts...)...)
}
