package core

import (
	"regexp"
	"strings"
)

const HomeSlug = "home"

var (
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRun       = regexp.MustCompile(`[\s_]+`)
	wordStart          = regexp.MustCompile(`(^\w|[-_\s]\w)`)
	separator          = regexp.MustCompile(`[-_\s]`)
)

// Hyphenated returns the slug used for file names and element selectors.
// "HeroBanner", "Hero Banner" and "hero_banner" all map to "hero-banner".
func Hyphenated(name string) string {
	s := lowerUpperBoundary.ReplaceAllString(name, "$1-$2")
	s = separatorRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// Capitalized returns the type-name fragment for name: the first character and
// every character following a separator are uppercased and the separator is
// dropped.
func Capitalized(name string) string {
	return wordStart.ReplaceAllStringFunc(name, func(m string) string {
		if loc := separator.FindStringIndex(m); loc != nil {
			m = m[:loc[0]] + m[loc[1]:]
		}
		return strings.ToUpper(m)
	})
}

func ComponentSelector(name string) string {
	return "app-" + Hyphenated(name)
}

func ComponentClass(name string) string {
	return Capitalized(name) + "Component"
}

func ComponentFileBase(name string) string {
	return Hyphenated(name) + ".component"
}

// ComponentImportPath addresses a component file from a sibling page file.
func ComponentImportPath(name string) string {
	return "./" + ComponentFileBase(name)
}

func PageSlug(route string) string {
	if route == "" {
		return HomeSlug
	}
	return route
}

func PageFileBase(route string) string {
	return "page-" + Hyphenated(PageSlug(route)) + ".component"
}

func PageClass(route string) string {
	return "Page" + Capitalized(PageSlug(route)) + "Component"
}

func PageSelector(route string) string {
	return ComponentSelector("page-" + PageSlug(route))
}

// PageImportPath addresses a page file from the route table.
func PageImportPath(route string) string {
	return "./" + GeneratedDirName + "/" + PageFileBase(route)
}

func NavLabel(page Page) string {
	switch {
	case page.MenuLabel != "":
		return page.MenuLabel
	case page.Title != "":
		return page.Title
	case page.Route != "":
		return page.Route
	default:
		return "Home"
	}
}
