package view

import (
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
)

// CheckboxGroupView renders a checkbox group: one control per checkbox
// identifier, a single OPTIONS answer under the group's componentId, and
// branch execution on check. A declined branch confirmation reverts the
// check without emitting.
type CheckboxGroupView struct {
	baseQuestionView
	group    *template.CheckboxGroupComponent
	controls map[string]*Control
}

func (v *CheckboxGroupView) Init(shape *ViewShape) error {
	g := shape.Component.(*template.CheckboxGroupComponent)
	v.group = g
	v.initQuestion(v, shape, &g.QuestionBase, model.ValueTypeOptions)
	v.controls = make(map[string]*Control, len(g.Checkboxes))
	for _, cb := range g.Checkboxes {
		c := NewControl(v.controlKey()+"-"+cb.Identifier, false)
		if cb.Checked {
			c.SetValue(checkedValue, true)
		}
		v.controls[cb.Identifier] = c
	}
	return nil
}

func (v *CheckboxGroupView) ViewReady() error { return v.questionViewReady() }
func (v *CheckboxGroupView) Destroy()         { v.destroyQuestion() }

// Toggle checks or unchecks one checkbox. Checking runs the checkbox's
// effective branch first; the check only lands if the branch is not
// declined. With multi-select off, a landing check silently clears every
// other checkbox.
func (v *CheckboxGroupView) Toggle(identifier string, checked bool) {
	cb := v.checkbox(identifier)
	if cb == nil {
		return
	}
	c := v.controls[identifier]

	if !checked {
		c.SetValue("", true)
		v.Emit(true, true)
		return
	}

	if !executeBranch(cb.EffectiveBranch(v.group.DefaultBranch), v.shape, v.ComponentID()) {
		c.SetValue("", true)
		return
	}

	if !v.group.Multiple {
		for id, other := range v.controls {
			if id != identifier && other.Value() == checkedValue {
				other.SetValue("", true)
			}
		}
	}
	c.SetValue(checkedValue, true)
	v.Emit(true, true)
}

func (v *CheckboxGroupView) checkbox(identifier string) *template.Checkbox {
	for _, cb := range v.group.Checkboxes {
		if cb.Identifier == identifier {
			return cb
		}
	}
	return nil
}

func (v *CheckboxGroupView) AddToForm() {
	if v.inForm {
		return
	}
	if !v.Edit() {
		return
	}
	force := v.shape.Context != nil && v.shape.Context.ForceEdit
	for id, c := range v.controls {
		attached := v.shape.Form.Attach(c)
		if force {
			attached.Disable()
		}
		v.controls[id] = attached
	}
	v.inForm = true
}

func (v *CheckboxGroupView) RemoveFromForm() {
	if !v.inForm {
		return
	}
	for _, c := range v.controls {
		v.shape.Form.Detach(c.Name())
	}
	v.inForm = false
}

// Value encodes the checked identifiers as identifier=title tokens.
func (v *CheckboxGroupView) Value() []*model.Answer {
	var tokens []string
	for _, cb := range v.group.Checkboxes {
		if c := v.controls[cb.Identifier]; c != nil && c.Value() == checkedValue {
			tokens = append(tokens, cb.Identifier+"="+cb.Title)
		}
	}
	return []*model.Answer{
		model.NewAnswer(0, v.ComponentID(), model.EncodeOptions(tokens), model.ValueTypeOptions),
	}
}

// SetFromAnswer replays the stored checked set silently and without
// branch execution: branches already ran when the user checked the box.
func (v *CheckboxGroupView) SetFromAnswer(a *model.Answer) {
	if a == nil {
		return
	}
	for id, c := range v.controls {
		value := ""
		if a.HasOptionKey(id) {
			value = checkedValue
		}
		c.SetValue(value, true)
	}
}
