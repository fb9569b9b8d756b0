// Package pattern defines extraction patterns for weight-insertion lines.
// A pattern pairs a fixed marker substring with a documented regular
// expression capturing the two integer arguments that follow it.
package pattern

import (
	"regexp"
	"strings"

	"code-entropy/internal/errors"
)

// argsExpr captures the two comma-separated integer arguments after the
// marker. Underscore digit separators are accepted because Rust (and some
// other languages) allow them in integer literals.
const argsExpr = `^\s*\(\s*(-?[0-9][0-9_]*)\s*,\s*(-?[0-9][0-9_]*)\s*\)`

var argsRe = regexp.MustCompile(argsExpr)

// Pattern identifies weight-insertion lines in source text
type Pattern struct {
	// Name is the pattern identifier
	Name string `json:"name"`

	// Marker is the fixed substring that identifies a weight-insertion line
	Marker string `json:"marker"`

	// Description explains what the pattern matches
	Description string `json:"description,omitempty"`
}

// New creates a pattern, validating the marker
func New(name, marker, description string) (*Pattern, error) {
	if name == "" {
		return nil, errors.Input("pattern name must not be empty")
	}
	if strings.TrimSpace(marker) == "" {
		return nil, errors.Newf(errors.TypeConfig, "pattern %q has an empty marker", name)
	}
	return &Pattern{
		Name:        name,
		Marker:      marker,
		Description: description,
	}, nil
}

// Matches reports whether a line contains the marker
func (p *Pattern) Matches(line string) bool {
	return strings.Contains(line, p.Marker)
}

// Capture extracts the two integer argument strings following the marker.
// It must only be called on lines for which Matches is true; ok is false
// when the arguments after the marker are not two parenthesized integers.
func (p *Pattern) Capture(line string) (symbol, count string, ok bool) {
	idx := strings.Index(line, p.Marker)
	if idx < 0 {
		return "", "", false
	}
	rest := line[idx+len(p.Marker):]
	m := argsRe.FindStringSubmatch(rest)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Builtin returns the built-in patterns, in priority order
func Builtin() []*Pattern {
	return []*Pattern{
		{
			Name:        "rust-insert",
			Marker:      "weights.insert",
			Description: "Rust HashMap weight tables: weights.insert(symbol, count)",
		},
		{
			Name:        "map-insert",
			Marker:      ".insert",
			Description: "any <ident>.insert(symbol, count) call",
		},
	}
}

// Set is a named collection of patterns with lookup by name.
// Built-in patterns come first; loaded patterns may shadow them.
type Set struct {
	patterns []*Pattern
	byName   map[string]*Pattern
}

// NewSet creates a set seeded with the built-in patterns
func NewSet() *Set {
	s := &Set{byName: make(map[string]*Pattern)}
	for _, p := range Builtin() {
		s.Add(p)
	}
	return s
}

// Add adds a pattern, replacing any existing pattern with the same name
func (s *Set) Add(p *Pattern) {
	if existing, ok := s.byName[p.Name]; ok {
		for i, q := range s.patterns {
			if q == existing {
				s.patterns[i] = p
				break
			}
		}
	} else {
		s.patterns = append(s.patterns, p)
	}
	s.byName[p.Name] = p
}

// Get returns a pattern by name
func (s *Set) Get(name string) (*Pattern, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// All returns all patterns in priority order
func (s *Set) All() []*Pattern {
	out := make([]*Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}
