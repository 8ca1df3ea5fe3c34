// Package template defines the typed component tree an ethics application
// is authored against: sections, containers, questions and branches, plus
// the versioned ApplicationTemplate that owns them.
package template

// ComponentType is the closed set of node kinds a template tree may contain.
type ComponentType string

const (
	TypeText          ComponentType = "text"
	TypeTextQuestion  ComponentType = "text-question"
	TypeSelect        ComponentType = "select-question"
	TypeCheckbox      ComponentType = "checkbox-question"
	TypeRadio         ComponentType = "radio-question"
	TypeSignature     ComponentType = "signature"
	TypeMultipart     ComponentType = "multipart-question"
	TypeCheckboxGroup ComponentType = "checkbox-group"
	TypeQuestionTable ComponentType = "question-table"
	TypeContainer     ComponentType = "container"
	TypeSection       ComponentType = "section"
)

// AllComponentTypes enumerates every type the engine must have a converter
// and a renderer for. Bootstrap validates both registries against this list.
var AllComponentTypes = []ComponentType{
	TypeText, TypeTextQuestion, TypeSelect, TypeCheckbox, TypeRadio,
	TypeSignature, TypeMultipart, TypeCheckboxGroup, TypeQuestionTable,
	TypeContainer, TypeSection,
}

// ComponentBase carries the attributes shared by every component variant.
// ComponentID is assigned once at authoring time and never regenerated;
// answers, comments, attached files and branch targets all join on it.
type ComponentBase struct {
	DatabaseID  *int64        `json:"databaseId,omitempty"`
	Type        ComponentType `json:"type"`
	Title       string        `json:"title"`
	ComponentID string        `json:"componentId"`
	Composite   bool          `json:"isComposite,omitempty"`
}

// ApplicationComponent is one node of the template tree.
type ApplicationComponent interface {
	// Base returns the shared attributes of the component.
	Base() *ComponentBase
	// Clone deep-copies the component subtree.
	Clone() ApplicationComponent
}

// Composite is implemented by components that own child components.
type Composite interface {
	ApplicationComponent
	ChildComponents() []ApplicationComponent
}

func (b *ComponentBase) Base() *ComponentBase { return b }

func (b *ComponentBase) cloneBase() ComponentBase {
	out := *b
	if b.DatabaseID != nil {
		id := *b.DatabaseID
		out.DatabaseID = &id
	}
	return out
}

// TextComponent is static display content, never answered.
type TextComponent struct {
	ComponentBase
	Content string `json:"content"`
}

func (t *TextComponent) Clone() ApplicationComponent {
	out := &TextComponent{ComponentBase: t.cloneBase(), Content: t.Content}
	return out
}

// ContainerComponent is an invisible structural node. Its only purpose is
// to be swappable as a whole by branching, so it carries a container id in
// addition to its componentId.
type ContainerComponent struct {
	ComponentBase
	ID         string                 `json:"id"`
	Components []ApplicationComponent `json:"components"`
}

func (c *ContainerComponent) ChildComponents() []ApplicationComponent { return c.Components }

func (c *ContainerComponent) Clone() ApplicationComponent {
	out := &ContainerComponent{ComponentBase: c.cloneBase(), ID: c.ID}
	out.Components = cloneComponents(c.Components)
	return out
}

// SectionComponent is a titled visual grouping of components, optionally
// auto-saving its questions.
type SectionComponent struct {
	ComponentBase
	Description string                 `json:"description,omitempty"`
	AutoSave    bool                   `json:"autoSave,omitempty"`
	Components  []ApplicationComponent `json:"components"`
}

func (s *SectionComponent) ChildComponents() []ApplicationComponent { return s.Components }

func (s *SectionComponent) Clone() ApplicationComponent {
	out := &SectionComponent{
		ComponentBase: s.cloneBase(),
		Description:   s.Description,
		AutoSave:      s.AutoSave,
	}
	out.Components = cloneComponents(s.Components)
	return out
}

func cloneComponents(in []ApplicationComponent) []ApplicationComponent {
	if in == nil {
		return nil
	}
	out := make([]ApplicationComponent, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
