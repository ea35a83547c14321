// Package preset maps preset tags from a site description to the component
// templates that implement them.
package preset

import (
	"fmt"

	"github.com/3-lines-studio/sitegen/internal/core"
	"github.com/3-lines-studio/sitegen/internal/templates"
)

type Kind int

const (
	KindFallback Kind = iota
	KindHero
	KindFeatureGrid
	// KindRichText injects props.html as trusted markup. The generated
	// component bypasses Angular sanitization, so whoever writes the site
	// description is responsible for the HTML being safe.
	KindRichText
	KindFooter
)

var tags = map[string]Kind{
	"hero":         KindHero,
	"feature-grid": KindFeatureGrid,
	"rich-text":    KindRichText,
	"footer":       KindFooter,
}

// Lookup resolves a preset tag. Unknown or empty tags resolve to
// KindFallback; Known reports whether the tag was recognised.
func Lookup(tag string) (kind Kind, known bool) {
	kind, known = tags[tag]
	return kind, known
}

func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindFeatureGrid:
		return "feature-grid"
	case KindRichText:
		return "rich-text"
	case KindFooter:
		return "footer"
	default:
		return "fallback"
	}
}

type componentData struct {
	Name     string
	Selector string
	Class    string
}

// Render produces the full source of one standalone component named name.
func (k Kind) Render(name string) (string, error) {
	data := componentData{
		Name:     name,
		Selector: core.ComponentSelector(name),
		Class:    core.ComponentClass(name),
	}

	src, err := templates.Render(k.String()+".component.ts", data)
	if err != nil {
		return "", fmt.Errorf("failed to render %s preset for %q: %w", k, name, err)
	}
	return src, nil
}

// Catalog resolves component names to preset kinds for one site.
type Catalog struct {
	kinds   map[string]Kind
	unknown []core.Component
}

func NewCatalog(components []core.Component) *Catalog {
	c := &Catalog{kinds: make(map[string]Kind, len(components))}
	for _, comp := range components {
		kind, known := Lookup(comp.Preset)
		if !known {
			c.unknown = append(c.unknown, comp)
		}
		// a repeated name overwrites the earlier component file, so the last
		// declaration is the one pages end up importing
		c.kinds[comp.Name] = kind
	}
	return c
}

// Kind returns the preset of the named component. Undeclared names report
// KindFallback and false.
func (c *Catalog) Kind(name string) (Kind, bool) {
	kind, ok := c.kinds[name]
	return kind, ok
}

// Unrecognised lists components whose preset tag fell back.
func (c *Catalog) Unrecognised() []core.Component {
	return c.unknown
}
