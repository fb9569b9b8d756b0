// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"

	"code-entropy/core/analyze"
	"code-entropy/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatPlain prints only the entropy value per analyzed file
	FormatPlain Format = "plain"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report contains the complete analysis output
type Report struct {
	// Pattern is the name of the extraction pattern used
	Pattern string `json:"pattern"`

	// Files are the per-file analyses, in scan order
	Files []FileAnalysis `json:"files"`

	// Skipped are scanned files that contained no marker lines
	Skipped []string `json:"skipped,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// FileAnalysis is the analysis of one file's weight table
type FileAnalysis struct {
	// File is the path the table was extracted from
	File string `json:"file"`

	// Analysis is the pipeline result for the table
	Analysis *analyze.Analysis `json:"analysis"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the analysis was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the analysis took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{ShowDetails: true}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatPlain:
		return &PlainFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}
