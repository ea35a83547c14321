package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/sitegen/internal/adapters/fs"
	"github.com/3-lines-studio/sitegen/internal/core"
)

func TestInitProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "landing")

	res := NewInitService(fs.NewOSFileSystem(), newTestOutput(t)).InitProject(InitInput{Dir: dir})
	require.NoError(t, res.Error)
	require.True(t, res.Success)

	path := filepath.Join(dir, "mapping.json")
	assert.Equal(t, []string{path}, res.Created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	site, err := core.DecodeSite(path, data)
	require.NoError(t, err)
	assert.Equal(t, "landing", site.ProjectName)
	assert.NoError(t, core.Validate(site))
}

func TestInitProject_ExplicitName(t *testing.T) {
	mem := fs.NewMemFileSystem()

	res := NewInitService(mem, newTestOutput(t)).InitProject(InitInput{Dir: "/work", ProjectName: "shop"})
	require.NoError(t, res.Error)

	data, err := mem.ReadFile("/work/mapping.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projectName": "shop"`)
	assert.Contains(t, string(data), `"© shop"`)
}

func TestInitProject_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.json")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0644))

	res := NewInitService(fs.NewOSFileSystem(), newTestOutput(t)).InitProject(InitInput{Dir: dir, ProjectName: "x"})

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Error, ErrDescriptionExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}
