package templatectx

import (
	"strings"

	"ethics-workflow/internal/common/metrics"
	"ethics-workflow/internal/template"
)

// ReplacementResult is the audit record of one container replacement.
type ReplacementResult struct {
	// Parent owns the array the container was replaced in; nil at template
	// top level.
	Parent template.ApplicationComponent
	// Container is the replacement component now in the tree.
	Container template.ApplicationComponent
	// Replaced is a deep copy of the original subtree taken before the
	// splice, unaffected by the mutation.
	Replaced template.ApplicationComponent
}

// containerRef is a resolved [templateId.]containerId reference.
type containerRef struct {
	tpl         *template.ApplicationTemplate
	containerID string
}

// resolveRef accepts either a literal container component or a string of
// the form "[templateId.]containerId"; an omitted templateId means the
// current template.
func (c *Context) resolveRef(ref interface{}) (containerRef, bool) {
	switch v := ref.(type) {
	case *template.ContainerComponent:
		tpl := c.Current()
		if tpl == nil {
			return containerRef{}, false
		}
		return containerRef{tpl: tpl, containerID: v.ID}, true
	case string:
		if v == "" {
			return containerRef{}, false
		}
		if idx := strings.Index(v, "."); idx >= 0 {
			tpl := c.templates[v[:idx]]
			if tpl == nil {
				return containerRef{}, false
			}
			return containerRef{tpl: tpl, containerID: v[idx+1:]}, true
		}
		tpl := c.Current()
		if tpl == nil {
			return containerRef{}, false
		}
		return containerRef{tpl: tpl, containerID: v}, true
	default:
		return containerRef{}, false
	}
}

// ExecuteContainerReplacement swaps the container named by toReplace for
// the container named by replacement, splicing the replacement into the
// owning array in place. When either reference fails to resolve, nil is
// returned and the tree is untouched. When the replacement comes from a
// different template, that template's identity (id, name, description,
// version) is merged into the mutated template and the context is re-keyed
// so the current template is addressable under the replacement's id, with
// object references preserved.
func (c *Context) ExecuteContainerReplacement(toReplace, replacement interface{}) *ReplacementResult {
	target, ok := c.resolveRef(toReplace)
	if !ok {
		return nil
	}
	source, ok := c.resolveRef(replacement)
	if !ok {
		return nil
	}

	targetMatch := c.SubComponentMatch(target.tpl.ID, target.containerID, true)
	if targetMatch == nil || targetMatch.Index < 0 {
		return nil
	}
	sourceMatch := c.SubComponentMatch(source.tpl.ID, source.containerID, true)
	if sourceMatch == nil {
		return nil
	}

	replaced := targetMatch.Component.Clone()
	targetMatch.Siblings[targetMatch.Index] = sourceMatch.Component

	if source.tpl != target.tpl {
		oldID := target.tpl.ID
		target.tpl.ID = source.tpl.ID
		target.tpl.Name = source.tpl.Name
		target.tpl.Description = source.tpl.Description
		target.tpl.Version = source.tpl.Version

		delete(c.templates, oldID)
		c.templates[target.tpl.ID] = target.tpl
		if c.currentID == oldID {
			c.currentID = target.tpl.ID
		}
	}

	metrics.ContainerReplacements.WithLabelValues(target.tpl.ID).Inc()

	return &ReplacementResult{
		Parent:    targetMatch.Parent,
		Container: sourceMatch.Component,
		Replaced:  replaced,
	}
}
