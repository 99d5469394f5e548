// Package cli — clean.go implements the "genup clean" command.
//
// Clean removes the virtual environment directory so the next setup
// builds it from scratch. Configuration files (.env, Firebase
// credentials) are deliberately never touched — they hold user secrets
// that setup cannot regenerate.
//
// By default, the command prompts for confirmation before proceeding.
// The --force flag skips the confirmation prompt.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/genup/internal/model"
	"github.com/okabe-dev/genup/internal/project"
	"github.com/okabe-dev/genup/internal/python"
)

// cleanFlags holds the flag values for the clean command.
type cleanFlags struct {
	force bool // --force: skip the confirmation prompt
}

// NewCleanCommand creates the "clean" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCleanCommand() *cobra.Command {
	flags := &cleanFlags{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the virtual environment",
		Long: `Remove the virtual environment directory.

Configuration files (.env, firebase-credentials.json) are never removed.
Run "genup setup" afterwards to rebuild the environment.

Examples:
  genup clean
  genup clean --force`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

// runClean removes the environment directory after confirmation.
func runClean(flags *cleanFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to get current directory", err)
	}

	cfg, err := project.Load(cwd)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to load project configuration", err)
	}

	venv := python.NewVenv(cfg.VenvDir)
	if !venv.Exists() {
		if !IsJSONOutput() {
			fmt.Printf("No virtual environment at %s/ — nothing to clean.\n", cfg.VenvDir)
		}
		return nil
	}

	if !flags.force {
		if !confirm(fmt.Sprintf("Remove virtual environment %s/?", cfg.VenvDir)) {
			if !IsJSONOutput() {
				fmt.Println("Aborted.")
			}
			return nil
		}
	}

	if err := venv.Remove(); err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to remove virtual environment", err)
	}

	if !IsJSONOutput() {
		fmt.Printf("Removed %s/. Run `genup setup` to rebuild it.\n", cfg.VenvDir)
	}
	return nil
}

// confirm prompts the user with a yes/no question on stdin and returns
// true only for an explicit "y"/"yes" answer. Any other input (or a
// read error, e.g. when stdin is not a terminal) counts as "no", which
// is the safe default for a destructive operation.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
