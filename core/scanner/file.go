// Package scanner - file and directory scanner implementations
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"code-entropy/core/extract"
	"code-entropy/internal/errors"
	"code-entropy/internal/logging"

	"go.uber.org/zap"
)

// FileScanner extracts a single weight table from one regular file
type FileScanner struct{}

// NewFileScanner creates a file scanner
func NewFileScanner() *FileScanner {
	return &FileScanner{}
}

// Name returns the scanner name
func (s *FileScanner) Name() string {
	return "file"
}

// CanScan determines if the input is a regular file
func (s *FileScanner) CanScan(ctx context.Context, input *SourceInput) (bool, error) {
	info, err := os.Stat(input.Path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Scan reads the file and extracts its weight table
func (s *FileScanner) Scan(ctx context.Context, input *SourceInput) (*ScanResult, error) {
	result := &ScanResult{}
	table, err := scanFile(input.Path, input)
	if err != nil {
		return nil, err
	}
	if table == nil {
		result.Skipped = append(result.Skipped, input.Path)
		return result, nil
	}
	result.Tables = append(result.Tables, *table)
	return result, nil
}

// DirScanner walks a directory tree and extracts a weight table per file
type DirScanner struct{}

// NewDirScanner creates a directory scanner
func NewDirScanner() *DirScanner {
	return &DirScanner{}
}

// Name returns the scanner name
func (s *DirScanner) Name() string {
	return "dir"
}

// CanScan determines if the input is a directory
func (s *DirScanner) CanScan(ctx context.Context, input *SourceInput) (bool, error) {
	info, err := os.Stat(input.Path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Scan walks the tree and extracts a table from every matching file
func (s *DirScanner) Scan(ctx context.Context, input *SourceInput) (*ScanResult, error) {
	result := &ScanResult{}

	err := filepath.Walk(input.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if info.IsDir() || !matchesSuffix(path, input.Suffixes) {
			return nil
		}

		table, err := scanFile(path, input)
		if err != nil {
			return err
		}
		if table == nil {
			result.Skipped = append(result.Skipped, path)
			return nil
		}
		result.Tables = append(result.Tables, *table)
		return nil
	})
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e
		}
		return nil, errors.Wrap(errors.TypeInternal, "directory walk failed", err)
	}

	return result, nil
}

// scanFile reads one file and extracts its weight table.
// Returns nil (no error) when the file contains no marker lines.
func scanFile(path string, input *SourceInput) (*FileTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "cannot read %s", path)
	}

	pairs, err := extract.Pairs(string(data), input.Pattern)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithContext("file", path)
		}
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, nil
	}

	logging.Debug("extracted weight table",
		zap.String("file", path),
		zap.Int("pairs", len(pairs)))

	return &FileTable{File: path, Pairs: pairs}, nil
}

// matchesSuffix reports whether path ends in one of the suffixes.
// An empty suffix list matches everything.
func matchesSuffix(path string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
