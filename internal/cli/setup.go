// Package cli — setup.go implements the "genup setup" command.
//
// Setup is the bootstrap sequence: it brings a freshly cloned checkout
// from "cloned" to "ready to run the generator". The steps run strictly
// in order and the first failure aborts the rest with exit status 1:
//
//  1. Probe for a Python interpreter on PATH
//  2. Create the virtual environment (skipped if one already exists,
//     unless --recreate is given)
//  3. Activate: resolve the venv's own interpreter and verify pip runs
//  4. Install dependencies from the manifest
//  5. Materialize .env from .env.sample if absent
//  6. Materialize firebase-credentials.json from its sample if absent
//  7. Print the success banner and next-steps checklist
//
// Steps 5–6 never overwrite an existing file, so re-running setup is
// safe: already-satisfied preconditions are left untouched.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/genup/internal/configfile"
	"github.com/okabe-dev/genup/internal/model"
	"github.com/okabe-dev/genup/internal/project"
	"github.com/okabe-dev/genup/internal/python"
)

// setupFlags holds the flag values for the setup command.
// These are bound to cobra flags in NewSetupCommand.
type setupFlags struct {
	python   string // --python: preferred interpreter command
	recreate bool   // --recreate: delete and rebuild an existing venv
}

// NewSetupCommand creates the "setup" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSetupCommand() *cobra.Command {
	flags := &setupFlags{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Prepare the development environment",
		Long: `Prepare the data-generator development environment in the current directory.

The command locates a Python interpreter, creates the virtual environment,
installs the dependency manifest into it, and copies the sample
configuration files (.env.sample, firebase-credentials.json.sample) to
their live names when those are absent. Existing configuration files are
never overwritten.

An existing virtual environment is treated as satisfied and the creation
step is skipped; pass --recreate to delete and rebuild it.

Examples:
  genup setup
  genup setup --python python3.12
  genup setup --recreate`,

		// Setup takes no positional arguments; everything is fixed
		// paths relative to the invocation directory, plus flags.
		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(flags)
		},
	}

	cmd.Flags().StringVar(&flags.python, "python", "", "Preferred Python interpreter (default: probe python3, python, py)")
	cmd.Flags().BoolVar(&flags.recreate, "recreate", false, "Delete and rebuild an existing virtual environment")

	return cmd
}

// setupResult records what each step of a successful run did, for the
// final report in text or JSON form.
type setupResult struct {
	Python        string           `json:"python"`
	PythonVersion string           `json:"pythonVersion"`
	VenvDir       string           `json:"venvDir"`
	VenvAction    string           `json:"venvAction"` // created, reused, recreated
	EnvFile       string           `json:"envFile"`
	EnvAction     model.FileAction `json:"envAction"`
	CredsFile     string           `json:"credentialsFile"`
	CredsAction   model.FileAction `json:"credentialsAction"`
	Entrypoint    string           `json:"entrypoint"`
}

// runSetup is the main orchestration function for the setup command.
// Every step either succeeds and hands off to the next or returns a
// CLIError carrying the step's failure kind; there are no retries.
func runSetup(flags *setupFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to get current directory", err)
	}

	cfg, err := project.Load(cwd)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to load project configuration", err)
	}

	// Flag beats file beats probing.
	preferred := flags.python
	if preferred == "" {
		preferred = cfg.Python
	}

	// Step 1: Probe the interpreter.
	stepNotice(1, "Checking for a Python interpreter...")
	base, err := python.Find(preferred)
	if err != nil {
		return model.WrapStepError(model.StepProbeInterpreter, "no usable Python interpreter", err)
	}
	VerboseLog("Interpreter: %s (%s)", base.Path, base.Version)

	result := &setupResult{
		Python:        base.Path,
		PythonVersion: base.Version,
		VenvDir:       cfg.VenvDir,
		EnvFile:       cfg.EnvTarget(),
		CredsFile:     cfg.CredentialsTarget(),
		Entrypoint:    cfg.Entrypoint,
	}

	// Step 2: Create the virtual environment. An existing environment
	// is satisfied unless --recreate forces a rebuild.
	venv := python.NewVenv(cfg.VenvDir)
	switch {
	case venv.Exists() && !flags.recreate:
		stepNotice(2, fmt.Sprintf("Virtual environment %s/ already exists, skipping creation", cfg.VenvDir))
		result.VenvAction = "reused"
	case venv.Exists() && flags.recreate:
		stepNotice(2, fmt.Sprintf("Recreating virtual environment %s/...", cfg.VenvDir))
		if err := venv.Remove(); err != nil {
			return model.WrapStepError(model.StepCreateEnv, "failed to remove existing virtual environment", err)
		}
		if err := venv.Create(base); err != nil {
			return model.WrapStepError(model.StepCreateEnv, "failed to create virtual environment", err)
		}
		result.VenvAction = "recreated"
	default:
		stepNotice(2, fmt.Sprintf("Creating virtual environment %s/...", cfg.VenvDir))
		if err := venv.Create(base); err != nil {
			return model.WrapStepError(model.StepCreateEnv, "failed to create virtual environment", err)
		}
		result.VenvAction = "created"
	}

	// Step 3: Activate — resolve the isolated interpreter and verify
	// pip runs through it. Everything after this point uses the venv's
	// interpreter, never the system one.
	stepNotice(3, "Activating virtual environment...")
	isolated, err := venv.Activate()
	if err != nil {
		return model.WrapStepError(model.StepActivateEnv, "failed to activate virtual environment", err)
	}
	VerboseLog("Isolated interpreter: %s (%s)", isolated.Path, isolated.Version)

	// Step 4: Install the dependency manifest.
	stepNotice(4, fmt.Sprintf("Installing dependencies from %s...", cfg.Requirements))
	if err := venv.InstallRequirements(isolated, cfg.Requirements); err != nil {
		return model.WrapStepError(model.StepInstallDeps, "failed to install dependencies", err)
	}

	// Step 5: Materialize .env. Its sample is part of the repository,
	// so a missing sample is a checked failure.
	stepNotice(5, fmt.Sprintf("Checking %s...", cfg.EnvTarget()))
	envAction, err := configfile.Materialize(cfg.EnvSample, cfg.EnvTarget(), true)
	if err != nil {
		return model.WrapStepError(model.StepMaterializeConfig, "failed to materialize "+cfg.EnvTarget(), err)
	}
	result.EnvAction = envAction
	printFileNotice(cfg.EnvTarget(), cfg.EnvSample, envAction)

	// Step 6: Materialize the Firebase credentials. The sample itself
	// is optional; when neither sample nor live file exists we warn
	// rather than fail, so Firebase-less checkouts still bootstrap.
	stepNotice(6, fmt.Sprintf("Checking %s...", cfg.CredentialsTarget()))
	credsAction, err := configfile.Materialize(cfg.CredentialsSample, cfg.CredentialsTarget(), false)
	if err != nil {
		return model.WrapStepError(model.StepMaterializeConfig, "failed to materialize "+cfg.CredentialsTarget(), err)
	}
	result.CredsAction = credsAction
	printFileNotice(cfg.CredentialsTarget(), cfg.CredentialsSample, credsAction)

	// Step 7: Success banner and next steps.
	printSetupResult(result)
	return nil
}

// stepNotice prints a numbered progress line for one bootstrap step.
// Suppressed in JSON mode, where stdout carries only the final result.
func stepNotice(n int, message string) {
	if !IsJSONOutput() {
		fmt.Printf("[%d/6] %s\n", n, message)
	}
}

// printFileNotice reports what the materialization of one configuration
// file did, including the edit reminder for freshly copied files.
func printFileNotice(target, sample string, action model.FileAction) {
	if IsJSONOutput() {
		return
	}
	switch action {
	case model.ActionCopied:
		fmt.Printf("      %s created from %s — edit it with your real values\n", target, sample)
	case model.ActionKept:
		fmt.Printf("      %s already exists, leaving it untouched\n", target)
	case model.ActionSkipped:
		fmt.Printf("      Warning: neither %s nor %s found — Firebase upload will not work until the credentials file is provided\n", target, sample)
	}
}

// printSetupResult outputs the final report in text or JSON format.
func printSetupResult(result *setupResult) {
	if IsJSONOutput() {
		printSetupResultJSON(result)
	} else {
		printSetupResultText(result)
	}
}

// printSetupResultJSON outputs the setup result as structured JSON.
func printSetupResultJSON(result *setupResult) {
	// MarshalIndent produces human-readable JSON with 2-space indentation.
	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printSetupResultText outputs the success banner and the two-item
// checklist of what the user does next.
func printSetupResultText(result *setupResult) {
	fmt.Println()
	fmt.Println("Setup complete!")
	fmt.Printf("  Interpreter: %s (%s)\n", result.Python, result.PythonVersion)
	fmt.Printf("  Environment: %s/ (%s)\n", result.VenvDir, result.VenvAction)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Edit %s (and %s, if used) with your real values\n", result.EnvFile, result.CredsFile)
	fmt.Printf("  2. Run the generator: genup run  (or: %s)\n", result.Entrypoint)
}
