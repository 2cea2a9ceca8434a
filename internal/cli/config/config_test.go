package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "schemas", cfg.SchemaDir)
	assert.Equal(t, "localhost:4000", cfg.Server.Address())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("schema_dir: definitions\nserver:\n  host: 0.0.0.0\n  port: 8080\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fieldwork.yml"), yml, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "definitions", cfg.SchemaDir)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("server:\n  port: 70000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fieldwork.yml"), yml, 0o644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}
