package configfile

import (
	"fmt"
	"os"

	"github.com/okabe-dev/genup/internal/model"
)

// Materialize copies sample → target iff the target is absent.
//
// The decision table:
//
//	target exists                → ActionKept, target untouched
//	target absent, sample exists → ActionCopied, target created
//	target absent, sample absent → error if required, else ActionSkipped
//
// The required flag distinguishes .env (its sample is part of the
// repository, so a missing sample is a broken checkout) from the
// Firebase credentials (whose sample is itself optional).
func Materialize(sample, target string, required bool) (model.FileAction, error) {
	// An existing live file is never touched, whatever the sample says.
	// Stat errors other than "not exist" are surfaced: a target we
	// cannot even stat is not a state we should write into.
	if _, err := os.Stat(target); err == nil {
		return model.ActionKept, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", target, err)
	}

	if _, err := os.Stat(sample); err != nil {
		if os.IsNotExist(err) {
			if required {
				return "", fmt.Errorf("sample file %s not found", sample)
			}
			return model.ActionSkipped, nil
		}
		return "", fmt.Errorf("checking %s: %w", sample, err)
	}

	if err := copyFile(sample, target); err != nil {
		return "", err
	}
	return model.ActionCopied, nil
}

// copyFile copies src to dst byte-for-byte. The destination is written
// with mode 0600 because both managed files carry secrets (API keys,
// Firebase service-account credentials).
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading sample %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
