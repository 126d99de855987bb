package main

import (
	"fmt"
	"log/slog"

	"github.com/orayew2002/rast-a1/config"
	"github.com/orayew2002/rast-a1/processor"
	"github.com/spf13/cobra"
)

var (
	applyInput  string
	applyOutput string
	applyConfig string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply range directives embedded in a workbook",
	Long: `Apply the range directives found in the cells of a workbook.

  {{merge B2:D2}}     merge the range
  {{border A1:F9}}    border every cell of the range (also bold, center, left)
  {{sum B2:B9}}       write =SUM(B2:B9) into the cell (count, counta,
                      average, min, max, sumnum, countnum)
  Total[1:2]          merge the cell with 1 row below and 2 columns right

Extra formulas and literal replacements can be configured in a YAML file
given with --config.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyInput, "input", "i", "table.xlsx", "Path to the input workbook")
	applyCmd.Flags().StringVarP(&applyOutput, "output", "o", "result.xlsx", "Path to the output workbook")
	applyCmd.Flags().StringVarP(&applyConfig, "config", "c", "", "Path to a YAML directive configuration")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runApply(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(applyConfig)
	if err != nil {
		return err
	}

	p := processor.New(cfg.Registry(), processor.WithLogger(slog.Default()))
	if _, err := p.ProcessFile(applyInput, applyOutput); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "done:", applyOutput)
	}
	return nil
}
