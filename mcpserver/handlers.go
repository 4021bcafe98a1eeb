package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/mleoca/ucn/cachestore"
	"github.com/mleoca/ucn/query"
)

// engineForRequest resolves the `project` argument to a cached Engine,
// the first step every handler shares.
func (s *Server) engineForRequest(ctx context.Context, req gomcp.CallToolRequest) (*query.Engine, error) {
	root := argString(req, "project", ".")
	return s.projects.engineFor(ctx, root)
}

func (s *Server) handleFind(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	records := eng.Find(name, query.FindOptions{
		File:  argString(req, "file", ""),
		Exact: argBool(req, "exact", false),
	})
	if len(records) == 0 {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(records), nil
}

func (s *Server) handleUsages(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	occurrences := eng.Usages(name, query.UsagesOptions{
		CodeOnly: argBool(req, "codeOnly", false),
		Context:  argInt(req, "context", 0),
	})
	if len(occurrences) == 0 {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(occurrences), nil
}

func (s *Server) handleContext(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Context(name, query.ContextOptions{
		IncludeMethods:   argBool(req, "includeMethods", false),
		IncludeUncertain: argBool(req, "includeUncertain", false),
	})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	if s.expandable != nil {
		s.expandable.Put(argString(req, "project", "."), name, "", result.Expandable)
	}
	return textResult(result), nil
}

// handleExpand resolves one numbered item from a prior `context` call's
// Expandable list to source text (§4.9's `expand N` follow-up). With no
// `name` given it expands against the project's most recently cached
// context result.
func (s *Server) handleExpand(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	if s.expandable == nil {
		return gomcp.NewToolResultError("expand: no cached context results available"), nil
	}

	root := argString(req, "project", ".")
	name := argString(req, "name", "")
	n := argInt(req, "n", 0)

	var item cachestore.ExpandableItem
	var ok bool
	if name != "" {
		item, ok = s.expandable.Get(root, name, "", n)
	} else {
		item, ok = s.expandable.Latest(root, n)
	}
	if !ok {
		return gomcp.NewToolResultError(fmt.Sprintf("expand: no cached item %d for this project", n)), nil
	}

	result, ok := eng.Expand(item)
	if !ok {
		return gomcp.NewToolResultError(fmt.Sprintf("expand: could not read source for item %d", n)), nil
	}
	return textResult(result), nil
}

func (s *Server) handleImpact(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Impact(name, query.ImpactOptions{})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleTrace(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Trace(name, query.TraceOptions{Depth: argInt(req, "depth", 0)})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleSmart(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Smart(name, query.SmartOptions{WithTypes: argBool(req, "withTypes", false)})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleAbout(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.About(name, query.AboutOptions{})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleRelated(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Related(name)
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleDeadcode(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	result := eng.Deadcode(query.DeadcodeOptions{
		IncludeExported:  argBool(req, "includeExported", false),
		IncludeDecorated: argBool(req, "includeDecorated", false),
		IncludeTests:     argBool(req, "includeTests", false),
	})
	return textResult(result), nil
}

func (s *Server) handleGraph(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	file := argString(req, "file", "")
	result := eng.Graph(file, query.GraphOptions{
		Direction: query.GraphDirection(argString(req, "direction", "imports")),
		MaxDepth:  argInt(req, "maxDepth", 0),
	})
	return textResult(result), nil
}

func (s *Server) handleTypedef(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result := eng.Typedef(name)
	if len(result) == 0 {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleTests(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result := eng.Tests(name, query.TestsOptions{CallsOnly: argBool(req, "callsOnly", false)})
	return textResult(result), nil
}

func (s *Server) handleExample(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Example(name, query.ExampleOptions{
		MaxExamples:  argInt(req, "maxExamples", 0),
		IncludeTests: argBool(req, "includeTests", false),
	})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleVerify(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Verify(name, query.VerifyOptions{})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handlePlan(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	name := argString(req, "name", "")
	result, ok := eng.Plan(name, query.PlanOptions{
		Kind:         query.RefactorKind(argString(req, "kind", "")),
		Param:        argString(req, "param", ""),
		DefaultValue: argString(req, "defaultValue", ""),
		RenameTo:     argString(req, "renameTo", ""),
	})
	if !ok {
		return notFoundResult(name, eng.NotFoundFor(name).DidYouMean), nil
	}
	return textResult(result), nil
}

func (s *Server) handleDiffImpact(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	result, err := eng.DiffImpact(ctx, query.DiffImpactOptions{
		Base:   argString(req, "base", ""),
		Staged: argBool(req, "staged", false),
		File:   argString(req, "file", ""),
	})
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	return textResult(result), nil
}

func (s *Server) handleApi(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	result := eng.Api(argString(req, "file", ""))
	return textResult(result), nil
}

func (s *Server) handleStats(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	return textResult(eng.Stats()), nil
}

func (s *Server) handleStacktrace(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	result := eng.Stacktrace(argString(req, "text", ""))
	return textResult(result), nil
}

func (s *Server) handleFileExports(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	eng, err := s.engineForRequest(ctx, req)
	if err != nil {
		return gomcp.NewToolResultError(err.Error()), nil
	}
	file := argString(req, "file", "")
	result, ok := eng.FileExports(file)
	if !ok {
		return gomcp.NewToolResultError("file not indexed: " + file), nil
	}
	return textResult(result), nil
}
