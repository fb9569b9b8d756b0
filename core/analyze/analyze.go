// Package analyze runs the extraction pipeline as pure functions.
// No I/O happens here; callers read files and print results.
package analyze

import (
	"code-entropy/core/dist"
	"code-entropy/core/entropy"
	"code-entropy/core/extract"
	"code-entropy/core/pattern"
	"code-entropy/core/types"
)

// Analysis is the result of running the pipeline over one weight table
type Analysis struct {
	// Pairs is the extracted weight table
	Pairs []types.WeightPair `json:"pairs"`

	// Distribution is the normalized probability distribution
	Distribution types.Distribution `json:"distribution"`

	// Metrics are the entropy metrics of the distribution
	Metrics entropy.Metrics `json:"metrics"`
}

// Text extracts a weight table from source text and analyzes it.
// extract -> normalize -> entropy; any stage error propagates unchanged.
func Text(text string, p *pattern.Pattern) (*Analysis, error) {
	pairs, err := extract.Pairs(text, p)
	if err != nil {
		return nil, err
	}
	return Pairs(pairs)
}

// Pairs analyzes an already-extracted weight table
func Pairs(pairs []types.WeightPair) (*Analysis, error) {
	d, err := dist.Normalize(pairs)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Pairs:        pairs,
		Distribution: d,
		Metrics:      entropy.Compute(d),
	}, nil
}
