// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the config file before unmarshaling so a typo'd
// metric or negative dimension fails with a field-level message instead of
// surfacing later as a registry miss.
const configSchema = `{
  "type": "object",
  "properties": {
    "dataset": {"type": "string"},
    "dimension": {"type": "integer", "minimum": 1},
    "cacheDir": {"type": "string"},
    "topN": {"type": "integer", "minimum": 1},
    "metric": {"type": "string", "enum": ["euclidean", "cosine"]},
    "filterGiven": {"type": "boolean"},
    "timeout": {"type": "integer", "minimum": 1},
    "logFile": {"type": "string"},
    "debug": {"type": "boolean"}
  },
  "additionalProperties": false
}`

// validate checks raw config JSON against the embedded schema.
func validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("configuration failed validation: %s", strings.Join(details, "; "))
}
