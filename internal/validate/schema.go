// Package validate implements theme document structure validation:
// a JSON Schema pass for required fields and types, followed by detail
// checks the schema cannot express (color syntax, font shapes, size
// ranges).
package validate

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// themeSchema is the structural contract for theme documents.
// Detail rules (color-value syntax, essential color names) are
// enforced separately so their messages can be precise.
const themeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "version", "colors", "fonts"],
  "properties": {
    "name":     {"type": "string"},
    "version":  {"type": "string"},
    "colors":   {"type": "object"},
    "fonts":    {"type": "object"},
    "sizes":    {"type": "object"},
    "metadata": {"type": "object"}
  }
}`

var compiledSchema = gojsonschema.NewStringLoader(themeSchema)

// schemaErrors runs the JSON Schema pass and converts findings into
// plain error strings in the schema's field order.
func schemaErrors(doc map[string]any) ([]string, error) {
	result, err := gojsonschema.Validate(compiledSchema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return errs, nil
}
