package templates

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:angular
var angularFS embed.FS

//go:embed all:starter
var starterFS embed.FS

// Angular templates keep their own {{ }} interpolation, so generator actions
// use <% %>.
const (
	leftDelim  = "<%"
	rightDelim = "%>"
)

var ErrInvalidTemplate = errors.New("invalid template name")

var angular = template.Must(template.New("angular").Delims(leftDelim, rightDelim).ParseFS(angularFS, "angular/*.tmpl"))

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "angular":
		return fs.Sub(angularFS, "angular")
	case "starter":
		return fs.Sub(starterFS, "starter")
	default:
		return nil, ErrInvalidTemplate
	}
}

// Render executes the angular template registered under name, for example
// "hero.component.ts".
func Render(name string, data any) (string, error) {
	t := angular.Lookup(name + ".tmpl")
	if t == nil {
		return "", ErrInvalidTemplate
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func Stylesheet() ([]byte, error) {
	return angularFS.ReadFile("angular/styles.css")
}

type TemplateData struct {
	Project string
}

func ProcessFilename(filename string, data TemplateData) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) ([]byte, error) {
	if !isTemplate {
		return content, nil
	}

	t, err := template.New("starter").Delims(leftDelim, rightDelim).Parse(string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DeriveProjectName(dir string) string {
	base := filepath.Base(dir)
	if base == "." || base == "/" || base == "" {
		return "my-site"
	}
	return base
}
