// Package cmd - patterns command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"code-entropy/core/pattern"
	"code-entropy/internal/config"
)

// patternsCmd lists the available extraction patterns
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List available extraction patterns",
	Long: `List the built-in extraction patterns plus any patterns defined in
the configured HCL pattern file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		set := pattern.NewSet()
		file := patternsFile
		if file == "" {
			file = cfg.Patterns.File
		}
		if file != "" {
			loaded, err := pattern.LoadFile(file)
			if err != nil {
				return err
			}
			for _, p := range loaded {
				set.Add(p)
			}
		}

		out := cmd.OutOrStdout()
		for _, p := range set.All() {
			marker := fmt.Sprintf("marker %q", p.Marker)
			if p.Description != "" {
				fmt.Fprintf(out, "%-16s %-28s %s\n", p.Name, marker, p.Description)
			} else {
				fmt.Fprintf(out, "%-16s %s\n", p.Name, marker)
			}
		}
		return nil
	},
}

func init() {
	patternsCmd.Flags().StringVar(&patternsFile, "patterns-file", "", "HCL file defining additional patterns")
}
