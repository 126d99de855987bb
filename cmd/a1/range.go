package main

import (
	"fmt"

	"github.com/orayew2002/rast-a1/a1"
	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:   "range <ref>...",
	Short: "Parse cell ranges",
	Long: `Parse each argument as an A1 range (B2:D9) or a single cell reference,
and print both ends and the size of the area it covers.

Reversed ranges such as C5:A1 are kept as written. When a range is
malformed the position where parsing stopped is marked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRange,
}

type rangeResult struct {
	Input    string         `json:"input"`
	From     *addressResult `json:"from,omitempty"`
	To       *addressResult `json:"to,omitempty"`
	Height   int            `json:"height,omitempty"`
	Width    int            `json:"width,omitempty"`
	Error    string         `json:"error,omitempty"`
	Kind     string         `json:"error_kind,omitempty"`
	Position int            `json:"error_position,omitempty"`
}

func newRangeResult(input string, r a1.Range) rangeResult {
	from := newAddressResult(r.From.String(), r.From)
	to := newAddressResult(r.To.String(), r.To)
	size := r.Size()
	return rangeResult{Input: input, From: &from, To: &to, Height: size.Height, Width: size.Width}
}

func runRange(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	results := make([]rangeResult, 0, len(args))
	failed := 0

	for _, arg := range args {
		r, err := a1.ParseRange(arg)
		if err != nil {
			failed++
			res := rangeResult{Input: arg, Error: err.Error()}
			if rerr, ok := err.(*a1.RangeError); ok {
				res.Kind, res.Position = rerr.Kind.String(), rerr.Pos
			}
			results = append(results, res)
			if !jsonOutput {
				printFailure(cmd, arg, err)
			}
			continue
		}

		results = append(results, newRangeResult(arg, r))
		if !jsonOutput {
			size := r.Size()
			fmt.Fprintf(out, "%s\tfrom %s to %s, %d row(s) x %d column(s)\n",
				labelStyle.Sprint(r), r.From, r.To, size.Height, size.Width)
		}
	}

	if jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	}
	return summarize(failed, len(args), "range")
}
