package generate

import (
	"fmt"

	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/templates"
)

type Route struct {
	Path       string
	ImportPath string
	Class      string
}

// RouteTable lists one lazily loaded route per page, in page order.
func RouteTable(pages []core.Page) []Route {
	routes := make([]Route, 0, len(pages))
	for _, p := range pages {
		routes = append(routes, Route{
			Path:       p.Route,
			ImportPath: core.PageImportPath(p.Route),
			Class:      core.PageClass(p.Route),
		})
	}
	return routes
}

func Routes(layout core.ProjectLayout, pages []core.Page) (core.Artifact, error) {
	src, err := templates.Render("app.routes.ts", struct{ Routes []Route }{RouteTable(pages)})
	if err != nil {
		return core.Artifact{}, fmt.Errorf("failed to render routes: %w", err)
	}
	return core.Artifact{Path: layout.RoutesPath, Content: src}, nil
}
