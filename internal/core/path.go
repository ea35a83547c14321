package core

import (
	"path/filepath"
)

const (
	SourceDirName    = "src"
	AppDirName       = "app"
	GeneratedDirName = "generated"
	ComponentExt     = ".ts"
)

type ProjectLayout struct {
	ProjectDir   string
	AppDir       string
	GeneratedDir string
	RoutesPath   string
	ShellPath    string
	StylesPath   string
}

func NewProjectLayout(root string, projectName string) ProjectLayout {
	projectDir := filepath.Join(root, projectName)
	appDir := filepath.Join(projectDir, SourceDirName, AppDirName)

	return ProjectLayout{
		ProjectDir:   projectDir,
		AppDir:       appDir,
		GeneratedDir: filepath.Join(appDir, GeneratedDirName),
		RoutesPath:   filepath.Join(appDir, "app.routes"+ComponentExt),
		ShellPath:    filepath.Join(appDir, "app.component"+ComponentExt),
		StylesPath:   filepath.Join(projectDir, SourceDirName, "styles.css"),
	}
}

func (l ProjectLayout) ComponentPath(name string) string {
	return filepath.Join(l.GeneratedDir, ComponentFileBase(name)+ComponentExt)
}

func (l ProjectLayout) PagePath(route string) string {
	return filepath.Join(l.GeneratedDir, PageFileBase(route)+ComponentExt)
}

func (l ProjectLayout) Rel(path string) string {
	rel, err := filepath.Rel(l.ProjectDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
