package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mleoca/ucn/config"
	"github.com/mleoca/ucn/discovery"
	"github.com/mleoca/ucn/index"
	"github.com/mleoca/ucn/query"
)

// buildEngine resolves the project root, loads its .ucn.yml (if any),
// builds a fresh Index, and wraps it in a query.Engine — the one step
// every subcommand shares before dispatching to its own operation.
func buildEngine(ctx context.Context, root string) (*query.Engine, error) {
	projectRoot := discovery.FindProjectRoot(root)

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return nil, err
	}

	idx, err := index.Build(ctx, projectRoot, index.BuildOptions{
		Logger:      logger(),
		Ignore:      cfg.Ignore,
		MaxFileSize: cfg.MaxFileSize,
	})
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	return query.New(idx), nil
}

// printJSON writes v to stdout as indented JSON, the only output
// format this thin CLI layer commits to — formatting beyond that is
// explicitly out of scope.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printNotFound reports a resolution failure per §7 item 3: an empty
// result plus a did-you-mean list.
func printNotFound(eng *query.Engine, name string) error {
	return printJSON(eng.NotFoundFor(name))
}
