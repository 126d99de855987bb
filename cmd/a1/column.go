package main

import (
	"fmt"
	"strconv"

	"github.com/orayew2002/rast-a1/a1"
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column <number|letters>...",
	Short: "Convert column numbers to letters and back",
	Long: `Convert each argument between a 1-based column number and its letters.

Numbers are converted to letters (28 → AB) and letters to numbers
(ab → 28). Columns run from 1 (A) to 16384 (XFD).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runColumn,
}

type columnResult struct {
	Input   string `json:"input"`
	Number  int    `json:"number,omitempty"`
	Letters string `json:"letters,omitempty"`
	Error   string `json:"error,omitempty"`
}

func convertColumn(arg string) (columnResult, error) {
	res := columnResult{Input: arg}
	if n, err := strconv.Atoi(arg); err == nil {
		letters, err := a1.ColumnName(n)
		if err != nil {
			return res, err
		}
		res.Number, res.Letters = n, letters
		return res, nil
	}

	n, err := a1.ColumnNumber(arg)
	if err != nil {
		return res, err
	}
	letters, err := a1.ColumnName(n)
	if err != nil {
		return res, err
	}
	res.Number, res.Letters = n, letters
	return res, nil
}

func runColumn(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	results := make([]columnResult, 0, len(args))
	failed := 0

	for _, arg := range args {
		res, err := convertColumn(arg)
		if err != nil {
			failed++
			res = columnResult{Input: arg, Error: err.Error()}
			if !jsonOutput {
				printFailure(cmd, arg, err)
			}
		} else if !jsonOutput {
			fmt.Fprintf(out, "%s\t%d\t%s\n", arg, res.Number, res.Letters)
		}
		results = append(results, res)
	}

	if jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	}
	return summarize(failed, len(args), "column")
}
