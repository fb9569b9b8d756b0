// Package output - bare entropy values
package output

import (
	"fmt"
	"io"
)

// PlainFormatter prints only the entropy value, one line per file.
// Useful for piping the number into other tools.
type PlainFormatter struct{}

// Format returns the format type
func (f *PlainFormatter) Format() Format {
	return FormatPlain
}

// Render writes one entropy value per analyzed file
func (f *PlainFormatter) Render(w io.Writer, report *Report) error {
	for _, fa := range report.Files {
		if _, err := fmt.Fprintf(w, "%v\n", fa.Analysis.Metrics.Entropy); err != nil {
			return err
		}
	}
	return nil
}
