package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/3-lines-studio/sitegen/internal/templates"
)

var ErrDescriptionExists = errors.New("site description already exists")

type InitInput struct {
	Dir         string
	ProjectName string
}

type InitOutput struct {
	Success bool
	Created []string
	Error   error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject writes a starter site description into input.Dir. Existing
// files are never overwritten.
func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Sitegen Init")

	starterFS, err := templates.GetTemplate("starter")
	if err != nil {
		return InitOutput{Success: false, Error: err}
	}

	projectName := input.ProjectName
	if projectName == "" {
		absDir, err := filepath.Abs(input.Dir)
		if err != nil {
			return InitOutput{Success: false, Error: fmt.Errorf("failed to resolve directory: %w", err)}
		}
		projectName = templates.DeriveProjectName(absDir)
	}
	data := templates.TemplateData{Project: projectName}

	var created []string
	err = fs.WalkDir(starterFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		targetPath, isTemplate := templates.ProcessFilename(path, data)
		targetPath = filepath.Join(input.Dir, targetPath)

		if s.fs.FileExists(targetPath) {
			return fmt.Errorf("%w: %s", ErrDescriptionExists, targetPath)
		}

		content, err := fs.ReadFile(starterFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		processed, err := templates.ProcessContent(content, isTemplate, data)
		if err != nil {
			return fmt.Errorf("failed to process template file %s: %w", path, err)
		}

		if err := s.fs.MkdirAll(filepath.Dir(targetPath), dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(targetPath), err)
		}
		if err := s.fs.WriteFile(targetPath, processed, filePerm); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		s.cli.PrintFile(targetPath)
		created = append(created, targetPath)
		return nil
	})
	if err != nil {
		return InitOutput{Success: false, Error: err}
	}

	s.cli.PrintSuccess("Created %d file(s) for project %q", len(created), projectName)
	return InitOutput{Success: true, Created: created}
}
