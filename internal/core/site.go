package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

var ErrInvalidInput = errors.New("invalid site description")

type Site struct {
	ProjectName string      `json:"projectName"`
	Components  []Component `json:"components"`
	Pages       []Page      `json:"pages"`
}

type Component struct {
	Name   string `json:"name"`
	Preset string `json:"preset"`
}

type Page struct {
	Route     string    `json:"route"`
	Title     string    `json:"title,omitempty"`
	MenuLabel string    `json:"menuLabel,omitempty"`
	Sections  []Section `json:"sections"`
	Footer    *Section  `json:"footer,omitempty"`
}

// Section places one component on a page. Props stays raw so that key order
// survives into the generated literal.
type Section struct {
	Component string          `json:"component"`
	Props     json.RawMessage `json:"props,omitempty"`
}

// Artifact is one generated file. Writing an artifact always replaces the
// file at Path.
type Artifact struct {
	Path    string
	Content string
}

// DecodeSite parses a site description. Files named *.yaml or *.yml are
// converted to JSON first; everything else is read as JSON.
func DecodeSite(path string, data []byte) (*Site, error) {
	if isYAML(path) {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
		}
		data = converted
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var site Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
	}

	if strings.TrimSpace(site.ProjectName) == "" {
		return nil, fmt.Errorf("%w: %s: missing projectName", ErrInvalidInput, path)
	}

	return &site, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
