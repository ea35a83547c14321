package generate

import (
	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/preset"
)

// Component renders the file for one component descriptor, falling back to
// the generic template when the preset tag is unknown.
func Component(layout core.ProjectLayout, c core.Component) (core.Artifact, error) {
	kind, _ := preset.Lookup(c.Preset)

	src, err := kind.Render(c.Name)
	if err != nil {
		return core.Artifact{}, err
	}

	return core.Artifact{
		Path:    layout.ComponentPath(c.Name),
		Content: src,
	}, nil
}
