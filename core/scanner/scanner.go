// Package scanner defines the interface for source scanners.
// Scanners locate source files and extract weight tables from them.
// NO probability or entropy logic belongs here.
package scanner

import (
	"context"

	"code-entropy/core/pattern"
	"code-entropy/core/types"
)

// SourceInput describes what to scan
type SourceInput struct {
	// Path is the file or directory to scan
	Path string `json:"path"`

	// Pattern is the extraction pattern to apply
	Pattern *pattern.Pattern `json:"pattern"`

	// Suffixes restricts directory scans to matching filenames.
	// Empty means every regular file is scanned.
	Suffixes []string `json:"suffixes,omitempty"`
}

// Scanner extracts weight tables from a source input
type Scanner interface {
	// Name returns the scanner identifier
	Name() string

	// CanScan determines if this scanner can handle the input
	CanScan(ctx context.Context, input *SourceInput) (bool, error)

	// Scan extracts weight tables from the input
	Scan(ctx context.Context, input *SourceInput) (*ScanResult, error)
}

// ScanResult contains the output of a scan operation
type ScanResult struct {
	// Tables are the extracted weight tables, one per file with matches
	Tables []FileTable `json:"tables"`

	// Skipped are files that were scanned but contained no marker lines
	Skipped []string `json:"skipped,omitempty"`
}

// FileTable is the weight table extracted from one file
type FileTable struct {
	// File is the path the table was extracted from
	File string `json:"file"`

	// Pairs is the extracted weight table, in order of appearance
	Pairs []types.WeightPair `json:"pairs"`
}
