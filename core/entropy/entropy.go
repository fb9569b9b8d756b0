// Package entropy computes Shannon entropy and related metrics of a
// probability distribution.
package entropy

import (
	"math"

	"code-entropy/core/types"
)

// Metrics summarizes the information content of a distribution
type Metrics struct {
	// Entropy is the Shannon entropy in bits
	Entropy float64 `json:"entropy_bits"`

	// MaxEntropy is log2(n) over the n symbols with positive probability,
	// the entropy of a uniform distribution of the same support
	MaxEntropy float64 `json:"max_entropy_bits"`

	// Redundancy is MaxEntropy - Entropy
	Redundancy float64 `json:"redundancy_bits"`

	// Perplexity is 2^Entropy, the effective symbol count
	Perplexity float64 `json:"perplexity"`

	// Symbols is the number of symbols with positive probability
	Symbols int `json:"symbols"`
}

// Shannon returns the Shannon entropy in bits: -sum(p * log2(p)) over
// entries with positive probability. The sum over an empty set is 0, so
// an empty or all-zero distribution has entropy 0.
func Shannon(d types.Distribution) float64 {
	h := 0.0
	for _, e := range d {
		p := e.P()
		if p <= 0 {
			continue
		}
		h -= p * math.Log2(p)
	}
	return h
}

// Compute returns the full metric set for a distribution
func Compute(d types.Distribution) Metrics {
	symbols := 0
	for _, e := range d {
		if e.P() > 0 {
			symbols++
		}
	}

	h := Shannon(d)
	m := Metrics{
		Entropy:    h,
		Perplexity: math.Exp2(h),
		Symbols:    symbols,
	}
	if symbols > 0 {
		m.MaxEntropy = math.Log2(float64(symbols))
		m.Redundancy = m.MaxEntropy - h
	}
	return m
}
