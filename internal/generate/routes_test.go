package generate

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/sitegen/internal/core"
)

func TestRouteTable_PreservesOrderAndCount(t *testing.T) {
	pages := []core.Page{{Route: "zeta"}, {Route: ""}, {Route: "alpha"}}

	routes := RouteTable(pages)

	assert.Equal(t, []Route{
		{Path: "zeta", ImportPath: "./generated/page-zeta.component", Class: "PageZetaComponent"},
		{Path: "", ImportPath: "./generated/page-home.component", Class: "PageHomeComponent"},
		{Path: "alpha", ImportPath: "./generated/page-alpha.component", Class: "PageAlphaComponent"},
	}, routes)
}

func TestRoutes(t *testing.T) {
	pages := []core.Page{{Route: ""}, {Route: "about"}}

	a, err := Routes(testLayout, pages)
	require.NoError(t, err)

	want := "import { Routes } from '@angular/router';\n" +
		"\n" +
		"export const routes: Routes = [\n" +
		"  { path: '', loadComponent: () => import('./generated/page-home.component').then(m => m.PageHomeComponent) },\n" +
		"  { path: 'about', loadComponent: () => import('./generated/page-about.component').then(m => m.PageAboutComponent) }\n" +
		"];\n"

	assert.Equal(t, testLayout.RoutesPath, a.Path)
	assert.Equal(t, want, a.Content)
}

func TestRoutes_NoPages(t *testing.T) {
	a, err := Routes(testLayout, nil)
	require.NoError(t, err)
	assert.Contains(t, a.Content, "export const routes: Routes = [\n];\n")
}

func TestRoutes_Snapshot(t *testing.T) {
	a, err := Routes(testLayout, testPages())
	require.NoError(t, err)
	snaps.MatchSnapshot(t, a.Content)
}
