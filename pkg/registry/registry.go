// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadCatalog reads the template catalog from path.
func LoadCatalog(path string) (*TemplateCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat TemplateCatalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}

// Descriptor returns the catalog entry for a template id.
func (c *TemplateCatalog) Descriptor(id string) (*TemplateDescriptor, error) {
	for i := range c.Templates {
		if c.Templates[i].ID == id {
			return &c.Templates[i], nil
		}
	}
	return nil, fmt.Errorf("template %q not in catalog", id)
}

// DefaultTemplate returns the catalog's default entry, or the first entry
// when none is marked.
func (c *TemplateCatalog) DefaultTemplate() (*TemplateDescriptor, error) {
	for i := range c.Templates {
		if c.Templates[i].Default {
			return &c.Templates[i], nil
		}
	}
	if len(c.Templates) > 0 {
		return &c.Templates[0], nil
	}
	return nil, fmt.Errorf("catalog is empty")
}

// ReadTemplateJSON loads a descriptor's template definition, resolving the
// file relative to dir.
func (c *TemplateCatalog) ReadTemplateJSON(dir string, d *TemplateDescriptor) (map[string]interface{}, error) {
	data, err := os.ReadFile(filepath.Join(dir, d.File))
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("template file %s: %w", d.File, err)
	}
	return raw, nil
}
