// Package cli — check.go implements the "genup check" command.
//
// Check is the configuration doctor: it verifies each prerequisite the
// generator needs without mutating anything, and reports a per-probe
// ok/failed line (or a JSON report with --json). Probes:
//
//   - interpreter: a Python executable is reachable on PATH
//   - venv: the virtual environment exists and its interpreter runs pip
//   - dependencies: the manifest's import roots (firebase_admin, faker,
//     openai, dotenv) are importable from the venv interpreter
//   - env-file: .env is present, parseable, and its required keys are
//     set to real values (not the sample placeholders)
//   - credentials: firebase-credentials.json is present, valid JSON,
//     and carries all required service-account fields
//
// The command exits 1 when any probe fails, so it can gate CI or
// pre-run hooks.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okabe-dev/genup/internal/configfile"
	"github.com/okabe-dev/genup/internal/model"
	"github.com/okabe-dev/genup/internal/project"
	"github.com/okabe-dev/genup/internal/python"
)

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the development environment is fully configured",
		Long: `Verify the data-generator environment without changing anything.

Each prerequisite — interpreter, virtual environment, .env values,
Firebase credentials — is probed and reported individually. The command
exits with status 1 if any probe fails.

Examples:
  genup check
  genup check --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

// runCheck executes all probes and renders the report. A report with
// failures is itself a command failure (exit 1).
func runCheck() error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to get current directory", err)
	}

	cfg, err := project.Load(cwd)
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to load project configuration", err)
	}

	// The venv probe yields the isolated interpreter on success; the
	// dependencies probe reuses it rather than activating twice.
	venvProbe, isolated := probeVenv(cfg)

	probes := []model.Probe{
		probeInterpreter(cfg),
		venvProbe,
		probeDependencies(isolated),
		probeEnvFile(cwd, cfg),
		probeCredentials(cwd, cfg),
	}

	printCheckReport(probes)

	if failed := model.FailedProbes(probes); failed > 0 {
		return model.NewCLIError(model.ExitFailure,
			fmt.Sprintf("%d of %d checks failed", failed, len(probes)))
	}
	return nil
}

// probeInterpreter verifies a Python interpreter is reachable.
func probeInterpreter(cfg *project.Config) model.Probe {
	interp, err := python.Find(cfg.Python)
	if err != nil {
		return model.Probe{Name: "interpreter", OK: false, Detail: err.Error()}
	}
	return model.Probe{
		Name:   "interpreter",
		OK:     true,
		Detail: fmt.Sprintf("%s (%s)", interp.Path, interp.Version),
	}
}

// probeVenv verifies the virtual environment exists and activates.
// On success it also returns the isolated interpreter for the
// dependencies probe; on failure the interpreter is nil.
func probeVenv(cfg *project.Config) (model.Probe, *python.Interpreter) {
	venv := python.NewVenv(cfg.VenvDir)
	if !venv.Exists() {
		return model.Probe{
			Name:   "venv",
			OK:     false,
			Detail: fmt.Sprintf("%s/ not found — run `genup setup`", cfg.VenvDir),
		}, nil
	}

	isolated, err := venv.Activate()
	if err != nil {
		return model.Probe{Name: "venv", OK: false, Detail: err.Error()}, nil
	}
	return model.Probe{
		Name:   "venv",
		OK:     true,
		Detail: fmt.Sprintf("%s/ (%s)", cfg.VenvDir, isolated.Version),
	}, isolated
}

// requirementRoots are the import roots the dependency manifest
// provides. The generator imports these at startup, so a venv where any
// of them is missing has not had `pip install -r requirements.txt` run
// to completion. python-dotenv installs under the module name "dotenv".
var requirementRoots = []string{"firebase_admin", "faker", "openai", "dotenv"}

// probeDependencies verifies the manifest's packages are actually
// installed, by importing their roots with the venv interpreter.
// A nil interpreter means the venv probe already failed; the probe
// reports that instead of re-diagnosing the environment.
func probeDependencies(isolated *python.Interpreter) model.Probe {
	if isolated == nil {
		return model.Probe{
			Name:   "dependencies",
			OK:     false,
			Detail: "virtual environment not usable — run `genup setup`",
		}
	}

	if err := isolated.ImportCheck(requirementRoots...); err != nil {
		return model.Probe{
			Name:   "dependencies",
			OK:     false,
			Detail: fmt.Sprintf("%v — run `genup setup` to install the manifest", err),
		}
	}
	return model.Probe{
		Name:   "dependencies",
		OK:     true,
		Detail: strings.Join(requirementRoots, ", "),
	}
}

// probeEnvFile verifies .env exists (in the project root or inside the
// environment directories, matching where the generator looks for it)
// and that its required keys carry real values.
func probeEnvFile(root string, cfg *project.Config) model.Probe {
	path, found := configfile.FindFile(root, cfg.VenvDir, cfg.EnvTarget())
	if !found {
		return model.Probe{
			Name:   "env-file",
			OK:     false,
			Detail: fmt.Sprintf("%s not found — create it from %s", cfg.EnvTarget(), cfg.EnvSample),
		}
	}

	if err := configfile.ValidateEnv(path); err != nil {
		return model.Probe{Name: "env-file", OK: false, Detail: err.Error()}
	}
	return model.Probe{Name: "env-file", OK: true, Detail: path}
}

// probeCredentials verifies the Firebase credentials file exists and
// contains all required service-account fields.
func probeCredentials(root string, cfg *project.Config) model.Probe {
	path, found := configfile.FindFile(root, cfg.VenvDir, cfg.CredentialsTarget())
	if !found {
		return model.Probe{
			Name:   "credentials",
			OK:     false,
			Detail: fmt.Sprintf("%s not found — create it from %s", cfg.CredentialsTarget(), cfg.CredentialsSample),
		}
	}

	if err := configfile.ValidateCredentials(path); err != nil {
		return model.Probe{Name: "credentials", OK: false, Detail: err.Error()}
	}
	return model.Probe{Name: "credentials", OK: true, Detail: path}
}

// printCheckReport outputs the probe report in text or JSON format,
// depending on the global --json flag.
func printCheckReport(probes []model.Probe) {
	if IsJSONOutput() {
		printCheckReportJSON(probes)
	} else {
		printCheckReportText(probes)
	}
}

// printCheckReportJSON outputs the report as structured JSON. The
// top-level keys are "checks" and an aggregate "ok".
func printCheckReportJSON(probes []model.Probe) {
	type reportJSON struct {
		OK     bool          `json:"ok"`
		Checks []model.Probe `json:"checks"`
	}

	report := reportJSON{
		OK:     model.FailedProbes(probes) == 0,
		Checks: probes,
	}

	data, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(data))
}

// printCheckReportText outputs the report as aligned text rows:
//
//	interpreter   ok      /usr/bin/python3 (Python 3.12.1)
//	venv          ok      venv/ (pip 24.0 ...)
//	env-file      failed  .env not found — create it from .env.sample
func printCheckReportText(probes []model.Probe) {
	for _, p := range probes {
		fmt.Printf("%-13s %-7s %s\n", p.Name, FormatProbeStatus(p.OK), p.Detail)
	}
}

// FormatProbeStatus renders a probe outcome as a fixed status word.
//
// This function is exported for testing purposes (tested in check_test.go).
func FormatProbeStatus(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
