package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Nil(t, cfg.Ignore)
	assert.Nil(t, cfg.SourceRoots)
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `
ignore:
  - "**/testdata/**"
  - "**/*.gen.go"
sourceRoots:
  python: src
maxFileSize: 1048576
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"**/testdata/**", "**/*.gen.go"}, cfg.Ignore)
	assert.Equal(t, "src", cfg.SourceRoots["python"])
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
}

func TestLoadZeroMaxFileSizeFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("maxFileSize: 0\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("ignore: [this is not valid yaml"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
