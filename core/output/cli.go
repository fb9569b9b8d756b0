// Package output - human-readable terminal report
package output

import (
	"fmt"
	"io"
)

const reportWidth = 73

// CLIFormatter renders a boxed terminal report
type CLIFormatter struct {
	// ShowDetails includes the per-symbol probability breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces the terminal report
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	line("┌%s┐", rule())
	line("│ %-71s │", "ENTROPY ANALYSIS")
	line("├%s┤", rule())

	for _, fa := range report.Files {
		m := fa.Analysis.Metrics
		line("│ %-50s %20s │",
			truncate(fa.File, 50),
			fmt.Sprintf("%.6f bits", m.Entropy))

		if f.ShowDetails {
			for _, e := range fa.Analysis.Distribution {
				line("│   └─ %-46s %20s │",
					fmt.Sprintf("symbol %d (count %d)", e.Symbol, e.Count),
					fmt.Sprintf("p=%.6f", e.P()))
			}
			line("│   %-48s %20s │",
				fmt.Sprintf("symbols=%d  max=%.4f", m.Symbols, m.MaxEntropy),
				fmt.Sprintf("perplexity=%.3f", m.Perplexity))
		}
	}

	if len(report.Skipped) > 0 {
		line("├%s┤", rule())
		line("│ %-71s │", fmt.Sprintf("%d file(s) contained no marker lines", len(report.Skipped)))
	}

	line("└%s┘", rule())
	line("")
	line("Pattern: %s", report.Pattern)
	line("Analysis completed in %s", report.Metadata.Duration)
	return nil
}

func rule() string {
	s := make([]rune, reportWidth)
	for i := range s {
		s[i] = '─'
	}
	return string(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
