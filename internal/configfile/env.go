package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// envRequiredKeys lists each key the generator needs together with the
// placeholder value its sample ships with. A key that is missing,
// empty, or still set to the placeholder counts as not configured.
// Order matters only for diagnostics.
var envRequiredKeys = []struct {
	key         string
	placeholder string
}{
	{"aiTonnelKey", "your_aitunnel_key_here"},
	{"FIREBASE_DATABASE_URL", "your_firebase_database_url_here"},
}

// fallbackDirs are the fixed directories the generator has
// historically read its config from, after the project root.
var fallbackDirs = []string{"venv", ".venv"}

// FindFile locates filename under root, returning the first match.
// The project root is searched first, then the configured environment
// directory, then the historical fixed fallbacks — so a genup.yaml
// that renames the venv still finds configs stored inside it. The
// boolean reports whether a match was found.
func FindFile(root, venvDir, filename string) (string, bool) {
	for _, dir := range searchDirs(venvDir) {
		path := filepath.Join(root, dir, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// searchDirs builds the probe order for FindFile, deduplicating the
// configured environment directory against the fixed fallbacks.
func searchDirs(venvDir string) []string {
	dirs := []string{"."}
	if venvDir != "" && venvDir != fallbackDirs[0] && venvDir != fallbackDirs[1] {
		dirs = append(dirs, venvDir)
	}
	return append(dirs, fallbackDirs...)
}

// ValidateEnv parses the .env file at path and verifies every required
// key is present, non-empty, and no longer set to its sample
// placeholder. Returns nil if the file is fully configured.
func ValidateEnv(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	var missing []string
	for _, req := range envRequiredKeys {
		value, ok := values[req.key]
		if !ok || value == "" || value == req.placeholder {
			missing = append(missing, req.key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s: not configured: %s", path, strings.Join(missing, ", "))
	}

	return nil
}
