// Package cli implements the cobra-based CLI commands for genup.
//
// Each subcommand (setup, check, run, clean) lives in its own file.
// This file holds the root command, the global flags, and the
// error-to-exit-code translation that every subcommand relies on.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/genup/internal/model"
)

// Flag variables bound to persistent flags on the root command, so
// every subcommand sees them without re-declaration.
var (
	// jsonOutput switches stdout from human-readable text to
	// structured JSON. Errors go to stderr in both modes.
	jsonOutput bool

	// verbose turns on [verbose] trace lines on stderr.
	verbose bool
)

// Version, Commit, and Date identify the binary. main.go injects the
// ldflags values here so this package never depends on the build
// system directly.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand builds the root command with all subcommands
// registered. The root itself only carries help text, the version
// string, and the global flags; the bootstrap work happens in the
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "genup",
		Short: "Bootstrap the data-generator development environment",
		Long: `genup brings a freshly cloned data-generator checkout to a ready-to-run
state: it locates a Python interpreter, creates the virtual environment,
installs dependencies, and materializes configuration files from their
checked-in samples.

The setup steps are fail-fast (the first failure aborts the run with a
diagnostic) and idempotent where it matters: existing configuration
files are never overwritten.`,

		// Usage text on every failed step would bury the diagnostic,
		// and cobra's own error printing would duplicate ours — both
		// are silenced; Execute formats errors itself.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewSetupCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewCleanCommand())

	return rootCmd
}

// Execute runs the root command and exits the process with the
// appropriate status: CLIError values carry their own code (0/1 for
// the bootstrap contract, the child's status for `run`), anything
// else exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// A single-level type assertion is enough here: the
		// subcommands return *model.CLIError directly, never wrapped
		// inside another error.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Error(), nil)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitFailure))
	}
}

// printError writes an error to stderr, as `Error: <message>` text or
// as a JSON object when --json is set. stderr is used in both modes:
// stdout is reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a trace line to stderr when --verbose is set.
// The bootstrap steps use it to show which paths and interpreters
// were resolved.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput reports whether the --json flag is set. Subcommands
// use it to pick their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
