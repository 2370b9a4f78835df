package hints

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the contract the guidance payload must satisfy: an object
// mapping field ids to guidance entries with at least micro and long text.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["micro", "long"],
    "properties": {
      "micro": {"type": "string"},
      "long": {"type": "string"},
      "demo": {"type": "string"}
    }
  }
}`

// validateResponse checks a raw LLM payload against the guidance schema.
// A payload that fails here is discarded wholesale rather than partially
// trusted.
func validateResponse(raw string) error {
	schemaLoader := gojsonschema.NewStringLoader(responseSchema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("payload does not match guidance schema:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
