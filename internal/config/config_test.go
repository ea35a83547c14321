package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("root", "", "")
	flags.Bool("unchecked", false, "")
	flags.Bool("dry-run", false, "")
	flags.Bool("no-color", false, "")
	flags.Bool("verbose", false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load(newFlags(), "")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, cwd, cfg.Root)
	assert.False(t, cfg.Unchecked)
	assert.False(t, cfg.DryRun)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := "input: site.yaml\nunchecked: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitegen.yaml"), []byte(content), 0644))

	cfg, err := Load(newFlags(), "")
	require.NoError(t, err)

	assert.Equal(t, "site.yaml", cfg.Input)
	assert.True(t, cfg.Unchecked)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitegen.yaml"), []byte("input: site.yaml\n"), 0644))
	t.Setenv("SITEGEN_INPUT", "env.json")
	t.Setenv("SITEGEN_DRYRUN", "true")

	cfg, err := Load(newFlags(), "")
	require.NoError(t, err)

	assert.Equal(t, "env.json", cfg.Input)
	assert.True(t, cfg.DryRun)
}

func TestLoad_FlagOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SITEGEN_ROOT", "/from/env")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--root", "/from/flag", "--unchecked"}))

	cfg, err := Load(flags, "")
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.Root)
	assert.True(t, cfg.Unchecked)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := Load(newFlags(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_InputPath(t *testing.T) {
	cfg := Config{Input: DefaultInput}

	assert.Equal(t, DefaultInput, cfg.InputPath(nil))
	assert.Equal(t, "site.json", cfg.InputPath([]string{"site.json"}))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	require.NoError(t, os.Chdir(abs))
	t.Setenv("PWD", abs)
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
