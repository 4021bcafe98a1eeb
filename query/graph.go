package query

// GraphDirection selects which edges a graph() BFS follows (§4.9).
type GraphDirection string

const (
	GraphImports   GraphDirection = "imports"
	GraphImporters GraphDirection = "importers"
	GraphBoth      GraphDirection = "both"
)

// GraphOptions configures the graph query.
type GraphOptions struct {
	Direction GraphDirection
	MaxDepth  int
}

// GraphNode is one file reached during the BFS, with the depth it was
// first reached at and whether reaching it closed a cycle.
type GraphNode struct {
	File     string
	Depth    int
	Circular bool
}

// Graph performs a depth-limited BFS over the import graph starting at
// file, following imports/importers/both edges. Edges to an
// already-visited file are recorded as circular rather than
// re-traversed (§8 boundary: "Self-cycle ... recorded as an edge,
// graph(A) reports it as circular, depth-limited BFS terminates").
func (e *Engine) Graph(file string, opts GraphOptions) []GraphNode {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 5
	}
	dir := opts.Direction
	if dir == "" {
		dir = GraphImports
	}

	edges := e.Idx.ImportEdges()
	visited := map[string]int{file: 0}
	out := []GraphNode{{File: file, Depth: 0}}

	type queued struct {
		file  string
		depth int
	}
	queue := []queued{{file, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= maxDepth {
			continue
		}
		var neighbors []string
		for _, edge := range edges {
			if (dir == GraphImports || dir == GraphBoth) && edge.From == cur.file {
				neighbors = append(neighbors, edge.To)
			}
			if (dir == GraphImporters || dir == GraphBoth) && edge.To == cur.file {
				neighbors = append(neighbors, edge.From)
			}
		}
		for _, n := range neighbors {
			if depth, seen := visited[n]; seen {
				out = append(out, GraphNode{File: n, Depth: depth, Circular: true})
				continue
			}
			visited[n] = cur.depth + 1
			out = append(out, GraphNode{File: n, Depth: cur.depth + 1})
			queue = append(queue, queued{n, cur.depth + 1})
		}
	}
	return out
}
