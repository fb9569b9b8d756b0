// Package dist normalizes weight tables into probability distributions.
package dist

import (
	"github.com/shopspring/decimal"

	"code-entropy/core/types"
	"code-entropy/internal/errors"
)

// Normalize converts a weight table into a probability distribution of the
// same length and order, dividing each count by the table total.
// A zero total (empty table or all-zero counts) is fatal: there is no
// distribution to normalize to.
func Normalize(pairs []types.WeightPair) (types.Distribution, error) {
	total := types.Total(pairs)
	if total == 0 {
		return nil, errors.ZeroTotal("total frequency is zero, cannot normalize").
			WithContext("pairs", len(pairs))
	}

	totalDec := decimal.NewFromInt(total)
	d := make(types.Distribution, 0, len(pairs))
	for _, p := range pairs {
		d = append(d, types.ProbabilityEntry{
			Symbol:      p.Symbol,
			Count:       p.Count,
			Probability: decimal.NewFromInt(p.Count).Div(totalDec),
		})
	}
	return d, nil
}
