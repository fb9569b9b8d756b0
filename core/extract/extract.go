// Package extract turns source text into weight tables.
// It scans line-oriented text for marker lines and extracts one
// (symbol, count) pair per match, preserving order of appearance.
package extract

import (
	"strconv"
	"strings"

	"code-entropy/core/pattern"
	"code-entropy/core/types"
	"code-entropy/internal/errors"
)

// Pairs extracts all weight pairs from text using the given pattern.
// Lines without the marker are ignored. A line containing the marker
// whose arguments cannot be parsed as two integers is fatal; extraction
// has no recovery path.
func Pairs(text string, p *pattern.Pattern) ([]types.WeightPair, error) {
	pairs := make([]types.WeightPair, 0)

	for i, line := range strings.Split(text, "\n") {
		if !p.Matches(line) {
			continue
		}

		symStr, countStr, ok := p.Capture(line)
		if !ok {
			return nil, errors.Parse("marker line has malformed arguments", nil).
				WithContext("line", i+1).
				WithContext("pattern", p.Name)
		}

		symbol, err := parseInt(symStr)
		if err != nil {
			return nil, errors.Parse("invalid symbol index", err).WithContext("line", i+1)
		}
		count, err := parseInt(countStr)
		if err != nil {
			return nil, errors.Parse("invalid count", err).WithContext("line", i+1)
		}

		pairs = append(pairs, types.WeightPair{Symbol: int(symbol), Count: count})
	}

	return pairs, nil
}

// parseInt converts an integer literal, accepting underscore digit
// separators as written in Rust source (e.g. 225_883_932).
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 64)
}
