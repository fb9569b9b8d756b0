package pattern

import (
	"testing"

	"code-entropy/internal/errors"
)

// TestNew tests pattern construction validation
func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		pname     string
		marker    string
		expectErr errors.Type
	}{
		{
			name:   "valid pattern",
			pname:  "rust-insert",
			marker: "weights.insert",
		},
		{
			name:      "empty name rejected",
			pname:     "",
			marker:    "weights.insert",
			expectErr: errors.TypeInput,
		},
		{
			name:      "blank marker rejected",
			pname:     "blank",
			marker:    "   ",
			expectErr: errors.TypeConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.pname, tt.marker, "")
			if tt.expectErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.IsType(err, tt.expectErr) {
					t.Errorf("expected %s, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name != tt.pname || p.Marker != tt.marker {
				t.Errorf("unexpected pattern: %+v", p)
			}
		})
	}
}

// TestCapture tests argument capture on marker lines
func TestCapture(t *testing.T) {
	p, err := New("rust-insert", "weights.insert", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		line   string
		symbol string
		count  string
		ok     bool
	}{
		{
			name:   "plain arguments",
			line:   "    weights.insert(3, 42);",
			symbol: "3",
			count:  "42",
			ok:     true,
		},
		{
			name:   "underscore separators",
			line:   "weights.insert(0, 225_883_932);",
			symbol: "0",
			count:  "225_883_932",
			ok:     true,
		},
		{
			name: "malformed arguments",
			line: "weights.insert(a, b);",
			ok:   false,
		},
		{
			name: "marker absent",
			line: "let x = 1;",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbol, count, ok := p.Capture(tt.line)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if symbol != tt.symbol || count != tt.count {
				t.Errorf("expected (%s, %s), got (%s, %s)", tt.symbol, tt.count, symbol, count)
			}
		})
	}
}

// TestParseHCL tests loading patterns from HCL source
func TestParseHCL(t *testing.T) {
	src := []byte(`
pattern "cpp-emplace" {
  marker      = "weights.emplace"
  description = "C++ emplace-style weight insertion"
}

pattern "py-setitem" {
  marker = "weights["
}
`)

	patterns, err := Parse(src, "patterns.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(patterns))
	}

	if patterns[0].Name != "cpp-emplace" || patterns[0].Marker != "weights.emplace" {
		t.Errorf("unexpected first pattern: %+v", patterns[0])
	}
	if patterns[0].Description == "" {
		t.Error("expected description to be preserved")
	}
	if patterns[1].Name != "py-setitem" || patterns[1].Marker != "weights[" {
		t.Errorf("unexpected second pattern: %+v", patterns[1])
	}
}

// TestParseHCLInvalid tests that bad pattern files are config errors
func TestParseHCLInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "syntax error",
			src:  `pattern "broken" {`,
		},
		{
			name: "missing marker attribute",
			src:  `pattern "no-marker" {}`,
		},
		{
			name: "empty marker",
			src: `pattern "blank" {
  marker = ""
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "patterns.hcl")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected %s, got %v", errors.TypeConfig, err)
			}
		})
	}
}

// TestSet tests pattern set lookup and shadowing
func TestSet(t *testing.T) {
	s := NewSet()

	if _, ok := s.Get("rust-insert"); !ok {
		t.Fatal("expected built-in rust-insert pattern")
	}

	custom, err := New("rust-insert", "table.insert", "override")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Add(custom)

	p, ok := s.Get("rust-insert")
	if !ok {
		t.Fatal("expected rust-insert after override")
	}
	if p.Marker != "table.insert" {
		t.Errorf("expected override marker, got %q", p.Marker)
	}

	all := s.All()
	if len(all) != len(Builtin()) {
		t.Errorf("override should not grow the set: got %d patterns", len(all))
	}
}
