// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
//
// A weight table is the ordered list of (symbol, count) pairs extracted
// from marker lines in a source file; a distribution is the same list
// with counts normalized to probabilities.
package types

import (
	"github.com/shopspring/decimal"
)

// WeightPair is a single (symbol, count) pair extracted from a marker line.
// Symbols are not required to be unique; order is order of appearance.
type WeightPair struct {
	// Symbol is the symbol index
	Symbol int `json:"symbol"`

	// Count is the observed frequency of the symbol
	Count int64 `json:"count"`
}

// ProbabilityEntry is one symbol of a normalized distribution
type ProbabilityEntry struct {
	// Symbol is the symbol index
	Symbol int `json:"symbol"`

	// Count is the original frequency
	Count int64 `json:"count"`

	// Probability is Count divided by the table total
	Probability decimal.Decimal `json:"probability"`
}

// P returns the probability as a float64
func (e ProbabilityEntry) P() float64 {
	return e.Probability.InexactFloat64()
}

// Distribution is an ordered probability distribution over symbols.
// Order matches the weight table it was derived from.
type Distribution []ProbabilityEntry

// Sum returns the sum of all probabilities
func (d Distribution) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range d {
		sum = sum.Add(e.Probability)
	}
	return sum
}

// Total returns the sum of counts in a weight table
func Total(pairs []WeightPair) int64 {
	var total int64
	for _, p := range pairs {
		total += p.Count
	}
	return total
}
