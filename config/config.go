// Package config loads the project-local `.ucn.yml` configuration
// SPEC_FULL's ambient stack describes: optional ignore patterns,
// per-language source roots, and a maximum file size to parse. Absence
// of the file is not an error — every field has a documented default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = ".ucn.yml"

// DefaultMaxFileSize is the parse ceiling §5 names: files larger than
// this are reported as unparseable and skipped.
const DefaultMaxFileSize = 64 << 20

// Config is the parsed shape of `.ucn.yml`.
type Config struct {
	Ignore      []string          `yaml:"ignore"`
	SourceRoots map[string]string `yaml:"sourceRoots"` // language name -> root path, for Python/Java import resolution
	MaxFileSize int64             `yaml:"maxFileSize"`
}

// Load reads `.ucn.yml` from root. A missing file returns the zero
// Config (MaxFileSize defaulted) and a nil error; a present-but-
// malformed file returns an error, since that's a configuration
// mistake worth surfacing rather than silently ignoring.
func Load(root string) (Config, error) {
	cfg := Config{MaxFileSize: DefaultMaxFileSize}

	path := filepath.Join(root, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	return cfg, nil
}
