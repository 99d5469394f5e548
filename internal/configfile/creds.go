package configfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// credentialFields are the Firebase service-account fields the
// generator's Firebase SDK requires to be present and non-empty.
var credentialFields = []string{
	"type",
	"project_id",
	"private_key_id",
	"private_key",
	"client_email",
}

// ValidateCredentials reads the Firebase credentials file at path and
// verifies it is valid JSON containing all required service-account
// fields with non-empty values.
//
// Comments and trailing commas are tolerated: credentials files copied
// from a sample are frequently annotated by hand, so the bytes are run
// through jsonc.ToJSON before parsing with encoding/json.
func ValidateCredentials(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var creds map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &creds); err != nil {
		return fmt.Errorf("%s is not valid JSON: %w", path, err)
	}

	var missing []string
	for _, field := range credentialFields {
		value, ok := creds[field]
		if !ok {
			missing = append(missing, field)
			continue
		}
		// Service-account fields are all strings; a present field of
		// another type (or an empty string) is equally unusable.
		s, isString := value.(string)
		if !isString || s == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s: missing or empty fields: %s", path, strings.Join(missing, ", "))
	}

	return nil
}
