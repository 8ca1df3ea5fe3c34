// Package templatectx stores the parsed templates for one application
// editing session. The context is an explicitly constructed object rather
// than a process-global so that clearing at the display-lifecycle boundary
// is enforced per session and templates cannot bleed across applications.
package templatectx

import (
	"sort"

	"ethics-workflow/internal/template"
)

// Context holds parsed templates keyed by template id plus a "current
// template" pointer used as the implicit default in replacement refs.
type Context struct {
	templates map[string]*template.ApplicationTemplate
	currentID string
}

func New() *Context {
	return &Context{templates: make(map[string]*template.ApplicationTemplate)}
}

// AddTemplate stores tpl under its id.
func (c *Context) AddTemplate(tpl *template.ApplicationTemplate) {
	c.templates[tpl.ID] = tpl
}

// RemoveTemplate deletes and returns the template under id, nil if absent.
// Removing the current template clears the current pointer.
func (c *Context) RemoveTemplate(id string) *template.ApplicationTemplate {
	tpl, ok := c.templates[id]
	if !ok {
		return nil
	}
	delete(c.templates, id)
	if c.currentID == id {
		c.currentID = ""
	}
	return tpl
}

// Template returns the template under id, nil if absent.
func (c *Context) Template(id string) *template.ApplicationTemplate {
	return c.templates[id]
}

// Templates returns every stored template in id order.
func (c *Context) Templates() []*template.ApplicationTemplate {
	ids := make([]string, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*template.ApplicationTemplate, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.templates[id])
	}
	return out
}

// SetCurrent switches the current template. A known id switches; an
// unknown non-empty id is a no-op; the empty id clears current.
func (c *Context) SetCurrent(id string) {
	if id == "" {
		c.currentID = ""
		return
	}
	if _, ok := c.templates[id]; ok {
		c.currentID = id
	}
}

// Current returns the current template, nil when unset.
func (c *Context) Current() *template.ApplicationTemplate {
	if c.currentID == "" {
		return nil
	}
	return c.templates[c.currentID]
}

// Clear empties the store and unsets current. Must be called at the
// boundary of an application-display lifecycle.
func (c *Context) Clear() {
	c.templates = make(map[string]*template.ApplicationTemplate)
	c.currentID = ""
}

// Match is the result of a SubComponent search with index tracking:
// everything a caller needs to mutate the found node in place.
type Match struct {
	// Parent owns the array the component was found in; nil at template
	// top level or when the component is not array-addressable (e.g. a
	// multipart part question).
	Parent template.ApplicationComponent
	// Siblings is the owning array itself, nil when not array-addressable.
	Siblings []template.ApplicationComponent
	// Component is the matched node.
	Component template.ApplicationComponent
	// Index is Component's position in Siblings, -1 when not addressable.
	Index int
}

// SubComponent searches the template's component tree depth-first. When
// asContainer is true the match is on container id instead of componentId.
func (c *Context) SubComponent(templateID, id string, asContainer bool) template.ApplicationComponent {
	m := c.SubComponentMatch(templateID, id, asContainer)
	if m == nil {
		return nil
	}
	return m.Component
}

// SubComponentMatch is SubComponent with the owning array and index
// included so the caller can splice in place.
func (c *Context) SubComponentMatch(templateID, id string, asContainer bool) *Match {
	tpl := c.templates[templateID]
	if tpl == nil {
		return nil
	}
	return searchComponents(nil, tpl.Components, id, asContainer)
}

func matches(comp template.ApplicationComponent, id string, asContainer bool) bool {
	if asContainer {
		container, ok := comp.(*template.ContainerComponent)
		return ok && container.ID == id
	}
	return comp.Base().ComponentID == id
}

func searchComponents(parent template.ApplicationComponent, components []template.ApplicationComponent, id string, asContainer bool) *Match {
	for i, comp := range components {
		if matches(comp, id, asContainer) {
			return &Match{Parent: parent, Siblings: components, Component: comp, Index: i}
		}
		if m := searchChildren(comp, id, asContainer); m != nil {
			return m
		}
	}
	return nil
}

// searchChildren recurses into the owned arrays of each composite variant.
func searchChildren(comp template.ApplicationComponent, id string, asContainer bool) *Match {
	switch v := comp.(type) {
	case *template.ContainerComponent:
		return searchComponents(v, v.Components, id, asContainer)
	case *template.SectionComponent:
		return searchComponents(v, v.Components, id, asContainer)
	case *template.QuestionTableComponent:
		for _, col := range v.Columns {
			if m := searchComponents(v, col.Cells, id, asContainer); m != nil {
				return m
			}
		}
	case *template.MultipartQuestion:
		// Part questions are not array-addressable; they match without
		// splice information.
		for _, part := range v.Parts {
			q := part.Question
			if matches(q, id, asContainer) {
				return &Match{Parent: v, Component: q, Index: -1}
			}
			if m := searchChildren(q, id, asContainer); m != nil {
				return m
			}
		}
	}
	return nil
}
