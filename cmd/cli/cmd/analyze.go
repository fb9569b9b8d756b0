// Package cmd - analyze command
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code-entropy/core/analyze"
	"code-entropy/core/output"
	"code-entropy/core/pattern"
	"code-entropy/core/scanner"
	"code-entropy/internal/config"
	"code-entropy/internal/errors"
	"code-entropy/internal/logging"
)

var (
	outputFormat string
	patternName  string
	patternsFile string
	suffixes     []string
	showDetails  bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze weight tables in a file or directory",
	Long: `Scan a source file (or every matching file in a directory) for
weight-insertion lines, normalize the extracted frequencies, and report
the Shannon entropy of the resulting distribution.

Examples:
  code-entropy analyze src/huffman_codes.rs
  code-entropy analyze --format plain src/huffman_codes.rs
  code-entropy analyze --format json --suffix .rs ./src
  code-entropy analyze --pattern map-insert ./lib`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, plain)")
	analyzeCmd.Flags().StringVarP(&patternName, "pattern", "p", "", "extraction pattern name")
	analyzeCmd.Flags().StringVar(&patternsFile, "patterns-file", "", "HCL file defining additional patterns")
	analyzeCmd.Flags().StringSliceVarP(&suffixes, "suffix", "s", nil, "filename suffix filter for directory scans (repeatable)")
	analyzeCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show the per-symbol probability breakdown")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	startTime := time.Now()
	cfg := config.Get()

	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NotFound("path", path)
	}

	p, err := resolvePattern(cfg)
	if err != nil {
		return err
	}

	scanSuffixes := suffixes
	if len(scanSuffixes) == 0 {
		scanSuffixes = cfg.Scan.Suffixes
	}

	logging.Info("starting analysis",
		zap.String("path", path),
		zap.String("pattern", p.Name))

	input := &scanner.SourceInput{
		Path:     path,
		Pattern:  p,
		Suffixes: scanSuffixes,
	}

	scanResult, err := scanner.GetDefault().DetectAndScan(ctx, input)
	if err != nil {
		return err
	}
	if len(scanResult.Tables) == 0 {
		return errors.ZeroTotal("no marker lines found").
			WithContext("path", path).
			WithContext("pattern", p.Name)
	}

	report := &output.Report{
		Pattern: p.Name,
		Skipped: scanResult.Skipped,
	}
	for _, table := range scanResult.Tables {
		a, err := analyze.Pairs(table.Pairs)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				return e.WithContext("file", table.File)
			}
			return err
		}
		report.Files = append(report.Files, output.FileAnalysis{
			File:     table.File,
			Analysis: a,
		})
	}
	report.Metadata = output.Metadata{
		Timestamp: startTime.Format(time.RFC3339),
		Duration:  time.Since(startTime).String(),
		Version:   Version,
	}

	return renderReport(cmd, cfg, report)
}

// resolvePattern picks the extraction pattern from flags and config
func resolvePattern(cfg *config.Config) (*pattern.Pattern, error) {
	set := pattern.NewSet()

	file := patternsFile
	if file == "" {
		file = cfg.Patterns.File
	}
	if file != "" {
		loaded, err := pattern.LoadFile(file)
		if err != nil {
			return nil, err
		}
		for _, p := range loaded {
			set.Add(p)
		}
	}

	name := patternName
	if name == "" {
		name = cfg.Patterns.Default
	}
	p, ok := set.Get(name)
	if !ok {
		return nil, errors.NotFound("pattern", name)
	}
	return p, nil
}

// renderReport writes the report in the selected format
func renderReport(cmd *cobra.Command, cfg *config.Config, report *output.Report) error {
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	formatter, err := output.New(output.Format(format))
	if err != nil {
		return err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.ShowDetails = showDetails || cfg.Output.ShowDetails
	}

	return formatter.Render(cmd.OutOrStdout(), report)
}
