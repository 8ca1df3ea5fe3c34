package convert

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	commonerrors "ethics-workflow/internal/common/errors"
)

// templateEnvelopeSchema is the structural contract of the raw template
// envelope. Components are validated per type by their converters; the
// schema only guards the outer shape so converters can assume it.
const templateEnvelopeSchema = `{
	"type": "object",
	"required": ["id", "name", "components"],
	"properties": {
		"databaseId": {"type": ["integer", "null"]},
		"id": {"type": "string", "minLength": 1},
		"name": {"type": "string"},
		"description": {"type": "string"},
		"version": {"type": "string"},
		"components": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type"]
			}
		}
	}
}`

var envelopeSchema = gojsonschema.NewStringLoader(templateEnvelopeSchema)

// validateEnvelope checks the raw template against the envelope schema.
func validateEnvelope(raw map[string]interface{}) error {
	result, err := gojsonschema.Validate(envelopeSchema, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return commonerrors.NewTemplateParseError("template", err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return commonerrors.NewTemplateParseError("template", strings.Join(details, "; "))
	}
	return nil
}
