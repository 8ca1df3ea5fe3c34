package convert

import (
	"sort"
	"strings"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/template"
)

// requireKeys checks the declarative required-key list for one type. The
// error names the type and every missing key at once.
func requireKeys(raw map[string]interface{}, t template.ComponentType, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return commonerrors.NewMissingKeysError(string(t), missing)
	}
	return nil
}

func stringOf(raw map[string]interface{}, key string) string {
	s, _ := raw[key].(string)
	return s
}

func boolOf(raw map[string]interface{}, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

// boolOr reads an optional bool, falling back when the key is absent.
func boolOr(raw map[string]interface{}, key string, fallback bool) bool {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	b, _ := v.(bool)
	return b
}

func arrayOf(raw map[string]interface{}, key string, t template.ComponentType) ([]interface{}, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, commonerrors.NewComponentShapeError(string(t), key+" must be an array")
	}
	return arr, nil
}

func objectOf(raw map[string]interface{}, key string, t template.ComponentType) (map[string]interface{}, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, commonerrors.NewComponentShapeError(string(t), key+" must be an object")
	}
	return obj, nil
}

func shapeError(t template.ComponentType, details string) error {
	return commonerrors.NewComponentShapeError(string(t), details)
}

// optionalDatabaseID reads the nullable server identity. JSON numbers
// arrive as float64.
func optionalDatabaseID(raw map[string]interface{}) *int64 {
	if f, ok := raw["databaseId"].(float64); ok {
		id := int64(f)
		return &id
	}
	return nil
}

// normalizeNewlines folds escaped and carriage-return line breaks embedded
// in authored descriptions into plain newlines.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	return s
}

// baseOf fills the shared component attributes from the raw node.
func baseOf(raw map[string]interface{}, t template.ComponentType, composite bool) template.ComponentBase {
	return template.ComponentBase{
		DatabaseID:  optionalDatabaseID(raw),
		Type:        t,
		Title:       stringOf(raw, "title"),
		ComponentID: stringOf(raw, "componentId"),
		Composite:   composite,
	}
}
