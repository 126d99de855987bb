package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbose    bool
	quiet      bool
	colorMode  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "a1",
	Short: "a1 - spreadsheet A1 reference toolkit",
	Long: `a1 converts between spreadsheet A1 references and row/column coordinates.

It converts column numbers to letters and back, parses cell references
such as $C$7 and ranges such as B2:D9, and applies range directives
embedded in workbook cells.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := configureColor(colorMode, os.Stdout); err != nil {
		return err
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose, quiet))
	return nil
}

func configureColor(mode string, out *os.File) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !term.IsTerminal(int(out.Fd())) || os.Getenv("NO_COLOR") != ""
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
	return nil
}

func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
