// Package convert turns raw template JSON into the typed component tree.
// One converter per component type is registered up front; composite
// converters resolve their children's converters through the same registry,
// which is how an arbitrarily deep tree is parsed in one pass. Any
// structural violation anywhere in the tree aborts the whole parse.
package convert

import (
	"fmt"
	"sort"
	"strings"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/common/metrics"
	"ethics-workflow/internal/template"
)

// Converter validates and converts the raw JSON of one component type.
// Convert must call Validate first and fail fast on the first violation.
type Converter interface {
	Validate(raw map[string]interface{}) error
	Convert(raw map[string]interface{}) (template.ApplicationComponent, error)
}

// Registry maps component types to their converters. Registration must be
// complete before the first parse; an unregistered type is a loud failure,
// never a nil dereference.
type Registry struct {
	converters map[template.ComponentType]Converter
}

func NewRegistry() *Registry {
	return &Registry{converters: make(map[template.ComponentType]Converter)}
}

func (r *Registry) Register(t template.ComponentType, c Converter) {
	r.converters[t] = c
}

// Converter returns the converter for t, or a registry error.
func (r *Registry) Converter(t template.ComponentType) (Converter, error) {
	c, ok := r.converters[t]
	if !ok {
		return nil, commonerrors.NewNoConverterError(string(t))
	}
	return c, nil
}

// EnsureComplete verifies every member of the closed component-type set has
// a converter. Called once at bootstrap, before first use.
func (r *Registry) EnsureComplete() error {
	var missing []string
	for _, t := range template.AllComponentTypes {
		if _, ok := r.converters[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("converter registry incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ConvertComponent resolves the raw node's type discriminant and dispatches
// to the registered converter.
func (r *Registry) ConvertComponent(raw map[string]interface{}) (template.ApplicationComponent, error) {
	typeStr, ok := raw["type"].(string)
	if !ok || typeStr == "" {
		return nil, commonerrors.NewComponentShapeError("unknown", "component has no type discriminant")
	}
	conv, err := r.Converter(template.ComponentType(typeStr))
	if err != nil {
		return nil, err
	}
	return conv.Convert(raw)
}

// ConvertComponents converts an ordered child list, aborting on the first
// invalid child.
func (r *Registry) ConvertComponents(rawList []interface{}, owner template.ComponentType) ([]template.ApplicationComponent, error) {
	out := make([]template.ApplicationComponent, 0, len(rawList))
	for i, item := range rawList {
		childRaw, ok := item.(map[string]interface{})
		if !ok {
			return nil, commonerrors.NewComponentShapeError(string(owner),
				fmt.Sprintf("child %d is not an object", i))
		}
		child, err := r.ConvertComponent(childRaw)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

// ParseTemplate validates the raw template envelope and converts every
// top-level component. No partial trees: the first failure aborts.
func (r *Registry) ParseTemplate(raw map[string]interface{}) (*template.ApplicationTemplate, error) {
	id := stringOf(raw, "id")
	if id == "" {
		id = "unknown"
	}

	if err := validateEnvelope(raw); err != nil {
		metrics.TemplateParseFailures.WithLabelValues(id).Inc()
		return nil, err
	}

	tpl := &template.ApplicationTemplate{
		DatabaseID:  optionalDatabaseID(raw),
		ID:          stringOf(raw, "id"),
		Name:        stringOf(raw, "name"),
		Description: stringOf(raw, "description"),
		Version:     stringOf(raw, "version"),
	}

	rawComponents, _ := raw["components"].([]interface{})
	components, err := r.ConvertComponents(rawComponents, "template")
	if err != nil {
		metrics.TemplateParseFailures.WithLabelValues(id).Inc()
		return nil, err
	}
	tpl.Components = components
	metrics.TemplatesParsed.WithLabelValues(tpl.ID).Inc()
	return tpl, nil
}
