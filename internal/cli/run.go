// Package cli — run.go implements the "genup run" command.
//
// Run launches the generator entry point with the virtual environment's
// own interpreter, so the user never has to activate the environment in
// their shell. The child process inherits stdin/stdout/stderr and its
// exit status is mirrored by genup.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/genup/internal/model"
	"github.com/okabe-dev/genup/internal/project"
	"github.com/okabe-dev/genup/internal/python"
)

// NewRunCommand creates the "run" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run the generator with the virtual environment's interpreter",
		Long: `Run a generator script using the isolated interpreter from the virtual
environment, without requiring shell activation.

With no argument, the configured entry point (default: generator.py) is
run. The command's exit status mirrors the script's.

Examples:
  genup run
  genup run data_uploader.py`,

		// At most one positional argument: the script to run instead
		// of the configured entry point.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			script := ""
			if len(args) == 1 {
				script = args[0]
			}
			return runRun(script)
		},
	}
}

// runRun resolves the venv interpreter and hands the terminal over to
// the generator script.
func runRun(script string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to get current directory", err)
	}

	cfg, err := project.Load(cwd)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to load project configuration", err)
	}

	if script == "" {
		script = cfg.Entrypoint
	}

	venv := python.NewVenv(cfg.VenvDir)
	if !venv.Exists() {
		return model.NewCLIError(model.ExitFailure,
			fmt.Sprintf("virtual environment %s/ not found — run `genup setup` first", cfg.VenvDir))
	}

	isolated, err := venv.Activate()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "virtual environment is not usable", err)
	}
	VerboseLog("Running %s with %s", script, isolated.Path)

	if err := isolated.RunAttached(cwd, script); err != nil {
		// Mirror the child's exit status instead of flattening every
		// failure to 1, so callers can distinguish script outcomes.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return model.WrapCLIError(model.ExitCode(exitErr.ExitCode()),
				fmt.Sprintf("%s exited with status %d", script, exitErr.ExitCode()), nil)
		}
		return model.WrapCLIError(model.ExitFailure,
			fmt.Sprintf("failed to run %s", script), err)
	}

	return nil
}
