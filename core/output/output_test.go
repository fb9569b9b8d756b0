package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"code-entropy/core/analyze"
	"code-entropy/core/types"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	a, err := analyze.Pairs([]types.WeightPair{
		{Symbol: 0, Count: 10},
		{Symbol: 1, Count: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &Report{
		Pattern: "rust-insert",
		Files: []FileAnalysis{
			{File: "src/huffman_codes.rs", Analysis: a},
		},
		Metadata: Metadata{
			Timestamp: "2026-08-23T00:00:00Z",
			Duration:  "1ms",
			Version:   "0.1.0",
		},
	}
}

// TestNew tests formatter selection
func TestNew(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON, FormatPlain} {
		f, err := New(format)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", format, err)
		}
		if f.Format() != format {
			t.Errorf("expected format %s, got %s", format, f.Format())
		}
	}

	if _, err := New(Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

// TestPlainFormatter tests the bare-number output
func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&PlainFormatter{}).Render(&buf, sampleReport(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "1" {
		t.Errorf("expected bare entropy value 1, got %q", got)
	}
}

// TestJSONFormatter tests that JSON output round-trips
func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, sampleReport(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["pattern"] != "rust-insert" {
		t.Errorf("expected pattern in JSON output, got %v", decoded["pattern"])
	}
	if _, ok := decoded["files"]; !ok {
		t.Error("expected files in JSON output")
	}
}

// TestCLIFormatter tests the terminal report
func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: true}
	if err := f.Render(&buf, sampleReport(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "src/huffman_codes.rs") {
		t.Error("expected file path in report")
	}
	if !strings.Contains(out, "1.000000 bits") {
		t.Error("expected entropy value in report")
	}
	if !strings.Contains(out, "p=0.500000") {
		t.Error("expected per-symbol probabilities with details enabled")
	}
	if !strings.Contains(out, "Pattern: rust-insert") {
		t.Error("expected pattern name in report footer")
	}
}
