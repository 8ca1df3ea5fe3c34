package convert

import (
	"ethics-workflow/internal/template"
)

// textConverter parses static content components.
type textConverter struct{}

func (textConverter) Validate(raw map[string]interface{}) error {
	return requireKeys(raw, template.TypeText, "title", "componentId", "content")
}

func (c textConverter) Convert(raw map[string]interface{}) (template.ApplicationComponent, error) {
	if err := c.Validate(raw); err != nil {
		return nil, err
	}
	return &template.TextComponent{
		ComponentBase: baseOf(raw, template.TypeText, false),
		Content:       normalizeNewlines(stringOf(raw, "content")),
	}, nil
}

// containerConverter parses the invisible, swappable structural node.
// Containers carry a container id for branch targeting and no title.
type containerConverter struct {
	registry *Registry
}

func (containerConverter) Validate(raw map[string]interface{}) error {
	if err := requireKeys(raw, template.TypeContainer, "id", "componentId", "components"); err != nil {
		return err
	}
	if _, ok := raw["components"].([]interface{}); !ok {
		return shapeError(template.TypeContainer, "components must be an array")
	}
	return nil
}

func (c containerConverter) Convert(raw map[string]interface{}) (template.ApplicationComponent, error) {
	if err := c.Validate(raw); err != nil {
		return nil, err
	}
	children, err := c.registry.ConvertComponents(raw["components"].([]interface{}), template.TypeContainer)
	if err != nil {
		return nil, err
	}
	return &template.ContainerComponent{
		ComponentBase: baseOf(raw, template.TypeContainer, true),
		ID:            stringOf(raw, "id"),
		Components:    children,
	}, nil
}

// sectionConverter parses titled visual groupings.
type sectionConverter struct {
	registry *Registry
}

func (sectionConverter) Validate(raw map[string]interface{}) error {
	if err := requireKeys(raw, template.TypeSection, "title", "componentId", "components"); err != nil {
		return err
	}
	if _, ok := raw["components"].([]interface{}); !ok {
		return shapeError(template.TypeSection, "components must be an array")
	}
	return nil
}

func (c sectionConverter) Convert(raw map[string]interface{}) (template.ApplicationComponent, error) {
	if err := c.Validate(raw); err != nil {
		return nil, err
	}
	children, err := c.registry.ConvertComponents(raw["components"].([]interface{}), template.TypeSection)
	if err != nil {
		return nil, err
	}
	return &template.SectionComponent{
		ComponentBase: baseOf(raw, template.TypeSection, true),
		Description:   normalizeNewlines(stringOf(raw, "description")),
		AutoSave:      boolOf(raw, "autoSave"),
		Components:    children,
	}, nil
}
