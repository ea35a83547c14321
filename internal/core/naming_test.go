package core

import "testing"

func TestHyphenated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "words with space", input: "Hero Banner", want: "hero-banner"},
		{name: "camel case", input: "HeroBanner", want: "hero-banner"},
		{name: "lower camel case", input: "heroBanner", want: "hero-banner"},
		{name: "underscore", input: "hero_banner", want: "hero-banner"},
		{name: "whitespace run", input: "feature \t grid", want: "feature-grid"},
		{name: "digit before upper", input: "page2Title", want: "page2-title"},
		{name: "acronym", input: "XMLParser", want: "xmlparser"},
		{name: "already hyphenated", input: "about-us", want: "about-us"},
		{name: "empty", input: "", want: ""},
		{name: "punctuation only", input: "!!!", want: "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hyphenated(tt.input)
			if got != tt.want {
				t.Errorf("Hyphenated(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHyphenated_Idempotent(t *testing.T) {
	inputs := []string{"Hero Banner", "HeroBanner", "hero_banner", "Page2Title", "a  b", "", "Über Uns"}

	for _, input := range inputs {
		once := Hyphenated(input)
		twice := Hyphenated(once)
		if once != twice {
			t.Errorf("Hyphenated(Hyphenated(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestCapitalized(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "words with space", input: "Hero Banner", want: "HeroBanner"},
		{name: "hyphenated", input: "hero-banner", want: "HeroBanner"},
		{name: "underscore", input: "hero_banner", want: "HeroBanner"},
		{name: "lower camel case", input: "heroBanner", want: "HeroBanner"},
		{name: "single word", input: "home", want: "Home"},
		{name: "three words", input: "about us team", want: "AboutUsTeam"},
		{name: "leading digit", input: "2col", want: "2col"},
		{name: "empty", input: "", want: ""},
		{name: "punctuation only", input: "!!!", want: "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Capitalized(tt.input)
			if got != tt.want {
				t.Errorf("Capitalized(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestComponentNames(t *testing.T) {
	name := "Hero Banner"

	if got, want := ComponentSelector(name), "app-hero-banner"; got != want {
		t.Errorf("ComponentSelector(%q) = %q, want %q", name, got, want)
	}
	if got, want := ComponentClass(name), "HeroBannerComponent"; got != want {
		t.Errorf("ComponentClass(%q) = %q, want %q", name, got, want)
	}
	if got, want := ComponentImportPath(name), "./hero-banner.component"; got != want {
		t.Errorf("ComponentImportPath(%q) = %q, want %q", name, got, want)
	}
}

func TestPageNames(t *testing.T) {
	tests := []struct {
		route        string
		wantFile     string
		wantClass    string
		wantSelector string
		wantImport   string
	}{
		{
			route:        "",
			wantFile:     "page-home.component",
			wantClass:    "PageHomeComponent",
			wantSelector: "app-page-home",
			wantImport:   "./generated/page-home.component",
		},
		{
			route:        "about",
			wantFile:     "page-about.component",
			wantClass:    "PageAboutComponent",
			wantSelector: "app-page-about",
			wantImport:   "./generated/page-about.component",
		},
		{
			route:        "about-us",
			wantFile:     "page-about-us.component",
			wantClass:    "PageAboutUsComponent",
			wantSelector: "app-page-about-us",
			wantImport:   "./generated/page-about-us.component",
		},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if got := PageFileBase(tt.route); got != tt.wantFile {
				t.Errorf("PageFileBase(%q) = %q, want %q", tt.route, got, tt.wantFile)
			}
			if got := PageClass(tt.route); got != tt.wantClass {
				t.Errorf("PageClass(%q) = %q, want %q", tt.route, got, tt.wantClass)
			}
			if got := PageSelector(tt.route); got != tt.wantSelector {
				t.Errorf("PageSelector(%q) = %q, want %q", tt.route, got, tt.wantSelector)
			}
			if got := PageImportPath(tt.route); got != tt.wantImport {
				t.Errorf("PageImportPath(%q) = %q, want %q", tt.route, got, tt.wantImport)
			}
		})
	}
}

func TestNavLabel(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want string
	}{
		{name: "menu label wins", page: Page{Route: "about", Title: "About", MenuLabel: "Who we are"}, want: "Who we are"},
		{name: "title", page: Page{Route: "about", Title: "About"}, want: "About"},
		{name: "route", page: Page{Route: "contact"}, want: "contact"},
		{name: "home default", page: Page{}, want: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NavLabel(tt.page); got != tt.want {
				t.Errorf("NavLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
