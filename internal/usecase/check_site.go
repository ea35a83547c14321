package usecase

import (
	"errors"
	"fmt"

	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/preset"
)

type CheckInput struct {
	InputPath string
	Data      []byte
}

type CheckOutput struct {
	Success      bool
	Site         *core.Site
	Problems     []core.Problem
	Unrecognised []core.Component
	Error        error
}

type CheckService struct {
	cli CLIOutput
}

func NewCheckService(cli CLIOutput) *CheckService {
	return &CheckService{cli: cli}
}

// Check decodes and validates a site description without writing anything.
func (s *CheckService) Check(input CheckInput) CheckOutput {
	s.cli.PrintHeader("Sitegen Check")

	site, err := core.DecodeSite(input.InputPath, input.Data)
	if err != nil {
		return CheckOutput{Success: false, Error: err}
	}

	out := CheckOutput{
		Site:         site,
		Unrecognised: preset.NewCatalog(site.Components).Unrecognised(),
	}

	s.cli.PrintSuccess("Found %d component(s) and %d page(s)", len(site.Components), len(site.Pages))
	for _, c := range out.Unrecognised {
		s.cli.PrintWarning("%s: unknown preset %q, the fallback template will be used", c.Name, c.Preset)
	}

	if err := core.Validate(site); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			out.Problems = verr.Problems
			for _, p := range verr.Problems {
				s.cli.PrintError("%s", p.String())
			}
		}
		out.Error = err
		return out
	}

	s.cli.PrintSuccess("No problems found")
	out.Success = true
	return out
}

func (o CheckOutput) Summary() string {
	if o.Success {
		return "site description is valid"
	}
	return fmt.Sprintf("%d problem(s) found", len(o.Problems))
}
