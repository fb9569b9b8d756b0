package extract

import (
	"reflect"
	"testing"

	"code-entropy/core/pattern"
	"code-entropy/core/types"
	"code-entropy/internal/errors"
)

func rustInsert(t *testing.T) *pattern.Pattern {
	t.Helper()
	p, err := pattern.New("rust-insert", "weights.insert", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

// TestPairs tests marker-line extraction behavior
func TestPairs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []types.WeightPair
	}{
		{
			name:     "empty input produces empty table",
			text:     "",
			expected: []types.WeightPair{},
		},
		{
			name:     "no marker lines produces empty table",
			text:     "fn main() {\n    let x = 1;\n}\n",
			expected: []types.WeightPair{},
		},
		{
			name: "single marker line",
			text: "    weights.insert(3, 42);\n",
			expected: []types.WeightPair{
				{Symbol: 3, Count: 42},
			},
		},
		{
			name: "marker lines keep order of appearance",
			text: "weights.insert(0, 10);\nlet y = 2;\nweights.insert(1, 10);\n",
			expected: []types.WeightPair{
				{Symbol: 0, Count: 10},
				{Symbol: 1, Count: 10},
			},
		},
		{
			name: "duplicate symbols are preserved",
			text: "weights.insert(7, 1);\nweights.insert(7, 2);\n",
			expected: []types.WeightPair{
				{Symbol: 7, Count: 1},
				{Symbol: 7, Count: 2},
			},
		},
		{
			name: "underscore digit separators",
			text: "    weights.insert(0, 225_883_932);\n",
			expected: []types.WeightPair{
				{Symbol: 0, Count: 225883932},
			},
		},
		{
			name: "whitespace inside the argument list",
			text: "weights.insert( 5 , 9 );\n",
			expected: []types.WeightPair{
				{Symbol: 5, Count: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Pairs(tt.text, rustInsert(t))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(pairs, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, pairs)
			}
		})
	}
}

// TestPairsMalformed tests that malformed marker lines are fatal
func TestPairsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "non-integer arguments",
			text: "weights.insert(a, b);\n",
		},
		{
			name: "missing second argument",
			text: "weights.insert(3);\n",
		},
		{
			name: "no argument list",
			text: "weights.insert;\n",
		},
		{
			name: "count overflows int64",
			text: "weights.insert(0, 99999999999999999999999999);\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pairs(tt.text, rustInsert(t))
			if err == nil {
				t.Fatal("expected parse error, got nil")
			}
			if !errors.IsType(err, errors.TypeParse) {
				t.Errorf("expected %s, got %v", errors.TypeParse, err)
			}
		})
	}
}

// TestPairsIdempotent tests that extraction is deterministic
func TestPairsIdempotent(t *testing.T) {
	text := "weights.insert(0, 10);\nweights.insert(1, 20);\nweights.insert(2, 5);\n"
	p := rustInsert(t)

	first, err := Pairs(text, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Pairs(text, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent: %v vs %v", first, second)
	}
}
