package generate

import (
	"fmt"

	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/templates"
)

func Stylesheet(layout core.ProjectLayout) (core.Artifact, error) {
	css, err := templates.Stylesheet()
	if err != nil {
		return core.Artifact{}, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return core.Artifact{Path: layout.StylesPath, Content: string(css)}, nil
}
