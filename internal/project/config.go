package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file looked up in the
// invocation directory.
const FileName = "genup.yaml"

// Config holds the bootstrapper's tunable paths and names. Every field
// has a default matching the data-generator repository layout, so the
// zero configuration file (or no file at all) works out of the box.
type Config struct {
	// Python is the preferred interpreter command. Empty means probe
	// the well-known names (python3, python, py) in order.
	Python string `yaml:"python"`

	// VenvDir is the virtual environment directory name.
	VenvDir string `yaml:"venv"`

	// Requirements is the dependency manifest path.
	Requirements string `yaml:"requirements"`

	// Entrypoint is the generator script that `genup run` launches.
	Entrypoint string `yaml:"entrypoint"`

	// EnvSample is the sample file copied to produce the live .env.
	EnvSample string `yaml:"env_sample"`

	// CredentialsSample is the sample file copied to produce the live
	// Firebase credentials. The sample itself is optional.
	CredentialsSample string `yaml:"credentials_sample"`
}

// Default returns the built-in configuration matching the fixed paths
// of the data-generator checkout.
func Default() *Config {
	return &Config{
		VenvDir:           "venv",
		Requirements:      "requirements.txt",
		Entrypoint:        "generator.py",
		EnvSample:         ".env.sample",
		CredentialsSample: "firebase-credentials.json.sample",
	}
}

// Load reads genup.yaml from dir if it exists and merges it over the
// defaults. A missing file is not an error; a malformed one is.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// Unmarshal over the defaults: keys absent from the file keep
	// their default values, keys present override them.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// An explicitly empty value in the file would break the fixed-path
	// contract, so re-fill any field the user blanked out.
	defaults := Default()
	if cfg.VenvDir == "" {
		cfg.VenvDir = defaults.VenvDir
	}
	if cfg.Requirements == "" {
		cfg.Requirements = defaults.Requirements
	}
	if cfg.Entrypoint == "" {
		cfg.Entrypoint = defaults.Entrypoint
	}
	if cfg.EnvSample == "" {
		cfg.EnvSample = defaults.EnvSample
	}
	if cfg.CredentialsSample == "" {
		cfg.CredentialsSample = defaults.CredentialsSample
	}

	return cfg, nil
}

// EnvTarget returns the live file name produced from EnvSample
// (".env.sample" → ".env").
func (c *Config) EnvTarget() string {
	return liveName(c.EnvSample)
}

// CredentialsTarget returns the live file name produced from
// CredentialsSample ("firebase-credentials.json.sample" →
// "firebase-credentials.json").
func (c *Config) CredentialsTarget() string {
	return liveName(c.CredentialsSample)
}

// liveName derives a live configuration file name from its sample name
// by stripping the ".sample" suffix. A sample name without the suffix
// is returned unchanged — the copy would be a no-op alias otherwise.
func liveName(sample string) string {
	return strings.TrimSuffix(sample, ".sample")
}
