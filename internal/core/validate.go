package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrValidation = errors.New("site validation failed")

type ProblemKind string

const (
	ProblemDuplicateComponent ProblemKind = "duplicate-component"
	ProblemComponentCollision ProblemKind = "component-name-collision"
	ProblemDanglingComponent  ProblemKind = "dangling-component"
	ProblemDuplicateRoute     ProblemKind = "duplicate-route"
	ProblemPageCollision      ProblemKind = "page-name-collision"
	ProblemInvalidProps       ProblemKind = "invalid-props"
)

type Problem struct {
	Kind  ProblemKind
	Where string
	Msg   string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.Where, p.Msg, p.Kind)
}

type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, p.String())
	}
	return fmt.Sprintf("%s: %d problem(s): %s", ErrValidation, len(e.Problems), strings.Join(lines, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate checks the reference graph of a site: every section names a
// declared component, names and routes stay distinct after derivation, and
// props are objects. It returns nil or a *ValidationError listing every
// problem found.
func Validate(site *Site) error {
	var problems []Problem
	add := func(kind ProblemKind, where string, format string, args ...any) {
		problems = append(problems, Problem{Kind: kind, Where: where, Msg: fmt.Sprintf(format, args...)})
	}

	declared := make(map[string]bool, len(site.Components))
	slugOwner := make(map[string]string)
	classOwner := make(map[string]string)

	for i, c := range site.Components {
		where := fmt.Sprintf("components[%d]", i)
		if declared[c.Name] {
			add(ProblemDuplicateComponent, where, "component %q is declared more than once", c.Name)
			continue
		}
		declared[c.Name] = true

		if owner, ok := slugOwner[Hyphenated(c.Name)]; ok {
			add(ProblemComponentCollision, where, "component %q and %q both derive file name %q", owner, c.Name, ComponentFileBase(c.Name))
		} else {
			slugOwner[Hyphenated(c.Name)] = c.Name
		}

		if owner, ok := classOwner[ComponentClass(c.Name)]; ok {
			add(ProblemComponentCollision, where, "component %q and %q both derive class %q", owner, c.Name, ComponentClass(c.Name))
		} else {
			classOwner[ComponentClass(c.Name)] = c.Name
		}
	}

	routes := make(map[string]bool, len(site.Pages))
	pageFileOwner := make(map[string]string)
	pageClassOwner := make(map[string]string)

	checkSection := func(where string, s Section) {
		if !declared[s.Component] {
			add(ProblemDanglingComponent, where, "component %q is not declared", s.Component)
		}
		if !validProps(s) {
			add(ProblemInvalidProps, where, "props must be an object or null")
		}
	}

	for i, p := range site.Pages {
		where := fmt.Sprintf("pages[%d]", i)

		if routes[p.Route] {
			add(ProblemDuplicateRoute, where, "route %q is used by more than one page", p.Route)
		} else {
			routes[p.Route] = true

			if owner, ok := pageFileOwner[PageFileBase(p.Route)]; ok {
				add(ProblemPageCollision, where, "routes %q and %q both derive file name %q", owner, p.Route, PageFileBase(p.Route))
			} else {
				pageFileOwner[PageFileBase(p.Route)] = p.Route
			}

			if owner, ok := pageClassOwner[PageClass(p.Route)]; ok {
				add(ProblemPageCollision, where, "routes %q and %q both derive class %q", owner, p.Route, PageClass(p.Route))
			} else {
				pageClassOwner[PageClass(p.Route)] = p.Route
			}
		}

		for j, s := range p.Sections {
			checkSection(fmt.Sprintf("%s.sections[%d]", where, j), s)
		}
		if p.Footer != nil && p.Footer.Component != "" {
			checkSection(where+".footer", *p.Footer)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func validProps(s Section) bool {
	if IsEmptyProps(s.Props) {
		return true
	}
	if !gjson.ValidBytes(s.Props) {
		return false
	}
	return gjson.ParseBytes(s.Props).IsObject()
}
