package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mleoca/ucn/cachestore"
	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/output"
	"github.com/mleoca/ucn/query"
)

// projectCache holds one built Engine per project root, evicting the
// least recently used entry once capacity is exceeded (§4.9's remote
// callers are expected to touch a handful of repos across a session,
// not stream through thousands).
type projectCache struct {
	mu      sync.Mutex
	engines *lru.Cache[string, *query.Engine]
	logger  *output.Logger
}

func newProjectCache(capacity int, logger *output.Logger) *projectCache {
	if capacity <= 0 {
		capacity = 8
	}
	c, _ := lru.New[string, *query.Engine](capacity)
	return &projectCache{engines: c, logger: logger}
}

// engineFor returns the Engine for root, building it on first access
// with a full tree-sitter pass and then writing the result to the
// persistent cache (cachestore). A cache already on disk is not read.
func (p *projectCache) engineFor(ctx context.Context, root string) (*query.Engine, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("mcpserver: resolve project root %q: %w", root, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if eng, ok := p.engines.Get(absRoot); ok {
		return eng, nil
	}

	idx, err := buildIndex(ctx, absRoot, p.logger)
	if err != nil {
		return nil, err
	}
	eng := query.New(idx)
	p.engines.Add(absRoot, eng)
	return eng, nil
}

// invalidate drops a cached Engine, forcing the next request for root
// to rebuild it. No tool handler calls it.
func (p *projectCache) invalidate(root string) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.engines.Remove(absRoot)
}

func buildIndex(ctx context.Context, absRoot string, logger *output.Logger) (*index.Index, error) {
	idx, err := index.Build(ctx, absRoot, index.BuildOptions{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("mcpserver: build index for %q: %w", absRoot, err)
	}

	store, err := cachestore.Open(absRoot)
	if err == nil {
		for _, relPath := range idx.SortedFilePaths() {
			if fr, ok := idx.File(relPath); ok {
				_ = store.SaveFile(fr)
			}
		}
		_ = store.SaveManifest(idx.SortedFilePaths())
		_ = store.Close()
	}

	return idx, nil
}
