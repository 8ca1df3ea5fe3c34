package view

import (
	"ethics-workflow/internal/template"
)

// TextView renders a static text block. It participates in the renderer
// lifecycle but carries no control and no answer.
type TextView struct {
	baseView
	text *template.TextComponent
}

func (v *TextView) Init(shape *ViewShape) error {
	v.shape = shape
	v.text = shape.Component.(*template.TextComponent)
	return nil
}

func (v *TextView) ViewReady() error { return nil }

func (v *TextView) Content() string { return v.text.Content }

// hostView is the shared rendering loop of the two composite hosts.
// Children render into the host's own componentId slot, in template order,
// each receiving this host for branch-driven reloads.
type hostView struct {
	baseView
}

func (h *hostView) renderChildren(host Host, children []template.ApplicationComponent) error {
	for _, child := range children {
		if _, err := h.shape.Loader.Load(host.HostID(), h.shape.childShape(child, h.shape.Parent, host)); err != nil {
			return err
		}
	}
	return nil
}

// ContainerView hosts the children of a replaceable container.
type ContainerView struct {
	hostView
	container *template.ContainerComponent
}

func (v *ContainerView) Init(shape *ViewShape) error {
	v.shape = shape
	v.container = shape.Component.(*template.ContainerComponent)
	return nil
}

func (v *ContainerView) ViewReady() error { return v.renderChildren(v, v.container.Components) }

func (v *ContainerView) HostID() string { return v.ComponentID() }

// Reload clears the slot and re-renders from the container's current
// component list.
func (v *ContainerView) Reload() error {
	v.shape.Loader.Destroy(v.HostID())
	return v.renderChildren(v, v.container.Components)
}

func (v *ContainerView) Destroy() {
	v.shape.Loader.Destroy(v.HostID())
}

// SectionView hosts one section of the template. Sections are where
// container replacements become visible: the splice mutates the section's
// component list in place, so Reload re-renders the post-replacement tree.
type SectionView struct {
	hostView
	section *template.SectionComponent
}

func (v *SectionView) Init(shape *ViewShape) error {
	v.shape = shape
	v.section = shape.Component.(*template.SectionComponent)
	return nil
}

func (v *SectionView) ViewReady() error { return v.renderChildren(v, v.section.Components) }

func (v *SectionView) HostID() string { return v.ComponentID() }

func (v *SectionView) Reload() error {
	v.shape.Loader.Destroy(v.HostID())
	return v.renderChildren(v, v.section.Components)
}

func (v *SectionView) Destroy() {
	v.shape.Loader.Destroy(v.HostID())
}

// AutoSave reports whether this section participates in autosave
// coordination.
func (v *SectionView) AutoSave() bool { return v.section.AutoSave }
