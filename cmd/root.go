package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitpet/bitpet/internal/errtrack"
	"github.com/bitpet/bitpet/internal/logging"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "bitpet",
	Short:         "A virtual pet fed by your git commits",
	Long:          "Bitpet is a command-line virtual pet. Register your git repositories and your commits become pet food.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(os.Stderr, verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetVersion stores the build metadata injected via ldflags.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute runs the CLI. It is the final handler: a failed command gets its
// root cause and accumulated call stack printed once, then the process
// reports failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErrorReport(err)
		os.Exit(1)
	}
}

// printErrorReport writes the two-part error report to stderr: the root
// cause in red, the call stack dimmed cyan.
func printErrorReport(err error) {
	w := GetErrorWriter()
	writeErrorReport(w, err)
	_ = w.Err()
}

// writeErrorReport splits the rendered report at the call-stack header, so a
// multi-line root cause stays in the root-cause color.
func writeErrorReport(w *Writer, err error) {
	report := errtrack.Render(err)

	rootCause, stack, hasStack := strings.Cut(report, "\nCall stack:")
	w.Writeln(Message{Text: rootCause, Color: ColorRed})
	if hasStack {
		w.Writeln(Message{Text: "Call stack:" + stack, Color: ColorCyanDim})
	}
}
