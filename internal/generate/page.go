package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/preset"
	"github.com/3-lines-studio/sitegen/internal/templates"
)

type Import struct {
	Class string
	Path  string
}

// Binding ties one field of the page class to one component instance in the
// page markup. A plan's bindings follow the order of the page's sections with
// the footer last.
type Binding struct {
	Field     string
	Component string
	Props     json.RawMessage
}

type PagePlan struct {
	Route    string
	Title    string
	Imports  []Import
	Bindings []Binding
}

// PlanPage resolves the imports and field bindings of a page. Imports are
// deduplicated in first-use order; bindings are never deduplicated.
func PlanPage(page core.Page, catalog *preset.Catalog) (PagePlan, error) {
	plan := PagePlan{
		Route: page.Route,
		Title: page.Title,
	}

	seen := make(map[string]bool)
	use := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		plan.Imports = append(plan.Imports, Import{
			Class: core.ComponentClass(name),
			Path:  core.ComponentImportPath(name),
		})
	}

	sections := page.Sections
	if page.Footer != nil && page.Footer.Component != "" {
		sections = append(sections[:len(sections):len(sections)], *page.Footer)
	}

	for i, s := range sections {
		use(s.Component)

		props := s.Props
		if kind, ok := catalog.Kind(s.Component); ok && kind == preset.KindRichText {
			rendered, err := renderMarkdownProps(props)
			if err != nil {
				return PagePlan{}, fmt.Errorf("page %q section %d: %w", page.Route, i+1, err)
			}
			props = rendered
		}

		plan.Bindings = append(plan.Bindings, Binding{
			Field:     fmt.Sprintf("S%d", i+1),
			Component: s.Component,
			Props:     props,
		})
	}

	return plan, nil
}

func (p PagePlan) Markup() string {
	var lines []string
	if p.Title != "" {
		lines = append(lines, fmt.Sprintf(`<h1 style="margin:24px 0">%s</h1>`, p.Title))
	}
	for _, b := range p.Bindings {
		selector := core.ComponentSelector(b.Component)
		lines = append(lines, fmt.Sprintf(`<%s [props]="%s"></%s>`, selector, b.Field, selector))
	}
	return strings.Join(lines, "\n")
}

type pageField struct {
	Name    string
	Literal string
}

type pageData struct {
	Selector   string
	Class      string
	Imports    []Import
	ImportList string
	Markup     string
	Fields     []pageField
}

// Page assembles the file for one page descriptor.
func Page(layout core.ProjectLayout, page core.Page, catalog *preset.Catalog) (core.Artifact, error) {
	plan, err := PlanPage(page, catalog)
	if err != nil {
		return core.Artifact{}, err
	}

	importList := []string{"CommonModule"}
	for _, imp := range plan.Imports {
		importList = append(importList, imp.Class)
	}

	fields := make([]pageField, 0, len(plan.Bindings))
	for _, b := range plan.Bindings {
		fields = append(fields, pageField{
			Name:    b.Field,
			Literal: strings.ReplaceAll(core.PropsLiteral(b.Props), "\n", "\n  "),
		})
	}

	src, err := templates.Render("page.component.ts", pageData{
		Selector:   core.PageSelector(page.Route),
		Class:      core.PageClass(page.Route),
		Imports:    plan.Imports,
		ImportList: strings.Join(importList, ", "),
		Markup:     plan.Markup(),
		Fields:     fields,
	})
	if err != nil {
		return core.Artifact{}, fmt.Errorf("failed to render page %q: %w", page.Route, err)
	}

	return core.Artifact{
		Path:    layout.PagePath(page.Route),
		Content: src,
	}, nil
}
