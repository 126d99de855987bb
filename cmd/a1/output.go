package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/orayew2002/rast-a1/a1"
	"github.com/spf13/cobra"
)

var (
	failStyle  = color.New(color.FgRed, color.Bold)
	caretStyle = color.New(color.FgYellow, color.Bold)
	labelStyle = color.New(color.FgHiBlue)
)

// printFailure reports one rejected argument on stderr. Range errors get the
// input echoed with a caret under the position where parsing stopped.
func printFailure(cmd *cobra.Command, input string, err error) {
	w := cmd.ErrOrStderr()
	failStyle.Fprint(w, "invalid: ")
	fmt.Fprintln(w, err)

	var rerr *a1.RangeError
	if errors.As(err, &rerr) {
		fmt.Fprintf(w, "  %s\n", input)
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", rerr.Pos-1), caretStyle.Sprint("^"))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func summarize(failed, total int, noun string) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d %s argument(s) invalid", failed, total, noun)
}
