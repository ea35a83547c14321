package generate

import (
	"fmt"

	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/templates"
)

const BrandLabel = "Logo"

type NavLink struct {
	Label string
	Href  string
}

func NavLinks(pages []core.Page) []NavLink {
	links := make([]NavLink, 0, len(pages))
	for _, p := range pages {
		links = append(links, NavLink{
			Label: core.NavLabel(p),
			Href:  p.Route,
		})
	}
	return links
}

// Shell renders the root component: brand link, one link per page and the
// router outlet the active page renders into.
func Shell(layout core.ProjectLayout, pages []core.Page) (core.Artifact, error) {
	src, err := templates.Render("app.component.ts", struct {
		Brand string
		Links []NavLink
	}{BrandLabel, NavLinks(pages)})
	if err != nil {
		return core.Artifact{}, fmt.Errorf("failed to render shell: %w", err)
	}
	return core.Artifact{Path: layout.ShellPath, Content: src}, nil
}
