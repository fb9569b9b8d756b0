// Package pattern - HCL pattern definition files
package pattern

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"code-entropy/internal/errors"
)

// patternsFile is the HCL schema for a pattern definitions file:
//
//	pattern "cpp-emplace" {
//	  marker      = "weights.emplace"
//	  description = "C++ emplace-style weight insertion"
//	}
type patternsFile struct {
	Patterns []patternBlock `hcl:"pattern,block"`
}

// patternBlock is a single pattern block
type patternBlock struct {
	Name        string `hcl:"name,label"`
	Marker      string `hcl:"marker"`
	Description string `hcl:"description,optional"`
}

// Parse parses pattern definitions from HCL source
func Parse(src []byte, filename string) ([]*Pattern, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Config("invalid pattern file", diags)
	}

	var pf patternsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &pf); diags.HasErrors() {
		return nil, errors.Config("invalid pattern definitions", diags)
	}

	patterns := make([]*Pattern, 0, len(pf.Patterns))
	for _, block := range pf.Patterns {
		p, err := New(block.Name, block.Marker, block.Description)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// LoadFile parses pattern definitions from an HCL file on disk
func LoadFile(path string) ([]*Pattern, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("pattern file", path)
		}
		return nil, errors.Config("cannot read pattern file", err)
	}
	return Parse(src, path)
}
