package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// rosterSchema describes the durable document: a list of employee objects.
// It checks shape only; uniqueness and salary rules are checked by ops.Validate.
const rosterSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "position", "salary", "skills"],
    "properties": {
      "id":       {"type": "integer"},
      "name":     {"type": "string"},
      "position": {"type": "string"},
      "salary":   {"type": "number"},
      "skills":   {"type": "array", "items": {"type": "string"}}
    }
  }
}`

var rosterSchemaLoader = gojsonschema.NewStringLoader(rosterSchema)

// CheckDocument validates a raw roster document against the roster schema.
// It returns one message per schema violation, or nil if the document conforms.
// A document that cannot be parsed at all is reported as an error.
func CheckDocument(data []byte, format Format) ([]string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var doc gojsonschema.JSONLoader
	switch format {
	case FormatJSON:
		doc = gojsonschema.NewBytesLoader(data)
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		if v == nil {
			v = []any{}
		}
		doc = gojsonschema.NewGoLoader(v)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	result, err := gojsonschema.Validate(rosterSchemaLoader, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	var problems []string
	for _, e := range result.Errors() {
		problems = append(problems, strings.TrimPrefix(e.String(), "(root)."))
	}
	return problems, nil
}
