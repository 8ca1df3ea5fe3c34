// pkg/registry/schema.go
package registry

// TemplateCatalog lists the application templates deployable by the engine.
type TemplateCatalog struct {
	Version     string               `json:"version"`
	LastUpdated string               `json:"lastUpdated"`
	Templates   []TemplateDescriptor `json:"templates"`
}

// TemplateDescriptor points at one template definition on disk.
type TemplateDescriptor struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Version     int      `json:"version"`
	File        string   `json:"file"`
	Default     bool     `json:"default,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
