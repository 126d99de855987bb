package main

import (
	"fmt"

	"github.com/orayew2002/rast-a1/a1"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address <ref>...",
	Short: "Parse cell references",
	Long: `Parse each argument as a single A1 cell reference (C7, $C$7, c$7) and
print its row, column, anchors and canonical upper case form.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAddress,
}

type addressResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical,omitempty"`
	Row       int    `json:"row,omitempty"`
	Col       int    `json:"col,omitempty"`
	RowAbs    bool   `json:"row_absolute,omitempty"`
	ColAbs    bool   `json:"col_absolute,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newAddressResult(input string, a a1.Address) addressResult {
	return addressResult{
		Input:     input,
		Canonical: a.String(),
		Row:       a.Row(),
		Col:       a.Col(),
		RowAbs:    a.IsRowAbs(),
		ColAbs:    a.IsColAbs(),
	}
}

func anchors(a a1.Address) string {
	switch {
	case a.IsRowAbs() && a.IsColAbs():
		return "absolute"
	case a.IsRowAbs():
		return "row absolute"
	case a.IsColAbs():
		return "column absolute"
	default:
		return "relative"
	}
}

func runAddress(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	results := make([]addressResult, 0, len(args))
	failed := 0

	for _, arg := range args {
		a, err := a1.ParseAddress(arg)
		if err != nil {
			failed++
			results = append(results, addressResult{Input: arg, Error: err.Error()})
			if !jsonOutput {
				printFailure(cmd, arg, err)
			}
			continue
		}

		results = append(results, newAddressResult(arg, a))
		if !jsonOutput {
			fmt.Fprintf(out, "%s\t%s row %d, column %d (%s), %s\n",
				labelStyle.Sprint(a), arg, a.Row(), a.Col(), a1.MustColumnName(a.Col()), anchors(a))
		}
	}

	if jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	}
	return summarize(failed, len(args), "address")
}
