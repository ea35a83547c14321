package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/3-lines-studio/sitegen/internal/adapters/cli"
	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/generate"
	"github.com/3-lines-studio/sitegen/internal/preset"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

type GenerateInput struct {
	InputPath string
	Data      []byte
	Root      string
	// Unchecked skips reference validation and generates whatever the
	// description says, dangling imports included.
	Unchecked bool
}

type GenerateOutput struct {
	Success   bool
	Layout    core.ProjectLayout
	Artifacts []core.Artifact
	Report    *cli.Report
	Error     error
}

type GenerateService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewGenerateService(fs FileSystem, cli CLIOutput) *GenerateService {
	return &GenerateService{
		fs:  fs,
		cli: cli,
	}
}

// Generate turns one site description into the project's source files:
// components, then pages, then the route table, the shell and the global
// stylesheet. The first error aborts the run.
func (s *GenerateService) Generate(input GenerateInput) GenerateOutput {
	s.cli.PrintHeader("Sitegen Generate")

	site, err := core.DecodeSite(input.InputPath, input.Data)
	if err != nil {
		return GenerateOutput{Success: false, Error: err}
	}

	layout := core.NewProjectLayout(input.Root, site.ProjectName)
	report := cli.NewReport(s.cli, layout.ProjectDir)
	out := GenerateOutput{Layout: layout, Report: report}

	fail := func(err error) GenerateOutput {
		report.Render()
		out.Success = false
		out.Error = err
		return out
	}

	if !input.Unchecked {
		step := report.StartStep("Validating site description")
		err := core.Validate(site)
		report.EndStep(step, err)
		if err != nil {
			reportProblems(report, err)
			return fail(err)
		}
	}

	catalog := preset.NewCatalog(site.Components)
	for _, c := range catalog.Unrecognised() {
		report.AddWarning(c.Name, fmt.Sprintf("unknown preset %q, using the fallback template", c.Preset), nil)
	}

	step := report.StartStep("Creating output directories")
	err = s.fs.MkdirAll(layout.GeneratedDir, dirPerm)
	report.EndStep(step, err)
	if err != nil {
		return fail(fmt.Errorf("failed to create output directories: %w", err))
	}

	steps := []struct {
		name string
		run  func() ([]core.Artifact, error)
	}{
		{"Emitting components", func() ([]core.Artifact, error) {
			artifacts := make([]core.Artifact, 0, len(site.Components))
			for _, c := range site.Components {
				a, err := generate.Component(layout, c)
				if err != nil {
					return nil, err
				}
				artifacts = append(artifacts, a)
			}
			return artifacts, nil
		}},
		{"Assembling pages", func() ([]core.Artifact, error) {
			artifacts := make([]core.Artifact, 0, len(site.Pages))
			for _, p := range site.Pages {
				a, err := generate.Page(layout, p, catalog)
				if err != nil {
					return nil, err
				}
				artifacts = append(artifacts, a)
			}
			return artifacts, nil
		}},
		{"Building route table", single(func() (core.Artifact, error) {
			return generate.Routes(layout, site.Pages)
		})},
		{"Building navigation shell", single(func() (core.Artifact, error) {
			return generate.Shell(layout, site.Pages)
		})},
		{"Writing global stylesheet", single(func() (core.Artifact, error) {
			return generate.Stylesheet(layout)
		})},
	}

	for _, st := range steps {
		idx := report.StartStep(st.name)
		artifacts, err := st.run()
		if err == nil {
			err = s.writeAll(layout, artifacts)
		}
		report.EndStep(idx, err)
		if err != nil {
			return fail(err)
		}
		report.AddArtifacts(len(artifacts))
		out.Artifacts = append(out.Artifacts, artifacts...)
	}

	report.Render()
	out.Success = true
	return out
}

func (s *GenerateService) writeAll(layout core.ProjectLayout, artifacts []core.Artifact) error {
	for _, a := range artifacts {
		if err := s.fs.MkdirAll(filepath.Dir(a.Path), dirPerm); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", a.Path, err)
		}
		if err := s.fs.WriteFile(a.Path, []byte(a.Content), filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.Path, err)
		}
		slog.Debug("wrote artifact", "path", a.Path, "bytes", len(a.Content))
		s.cli.PrintFile(layout.Rel(a.Path))
	}
	return nil
}

func single(fn func() (core.Artifact, error)) func() ([]core.Artifact, error) {
	return func() ([]core.Artifact, error) {
		a, err := fn()
		if err != nil {
			return nil, err
		}
		return []core.Artifact{a}, nil
	}
}

func reportProblems(report *cli.Report, err error) {
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		report.AddError("site", err.Error(), nil)
		return
	}
	for _, p := range verr.Problems {
		report.AddError(p.Where, p.Msg, []string{string(p.Kind)})
	}
}
