// Package project loads the optional genup.yaml file that overrides
// the bootstrapper's built-in defaults (interpreter name, venv
// directory, dependency manifest, sample file names, generator entry
// point). A checkout without genup.yaml uses the defaults unchanged.
package project
