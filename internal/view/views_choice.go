package view

import (
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
)

const checkedValue = "true"

// choiceQuestionView renders a select-family question as one control per
// option. The group still produces a single OPTIONS answer under the
// question's componentId.
type choiceQuestionView struct {
	baseQuestionView
	question *template.SelectQuestion
	controls map[string]*Control
	multiple bool
}

func (v *choiceQuestionView) initChoice(self QuestionView, shape *ViewShape, q *template.SelectQuestion, multiple bool) {
	v.initQuestion(self, shape, &q.QuestionBase, model.ValueTypeOptions)
	v.question = q
	v.multiple = multiple
	v.controls = make(map[string]*Control, len(q.Options))
	for _, opt := range q.Options {
		key := opt.Key
		c := NewControl(v.controlKey()+"-"+key, false)
		c.Subscribe(func(string) {
			v.optionChanged(key)
		})
		v.controls[key] = c
	}
}

// optionChanged enforces single-select semantics before emitting: every
// sibling is cleared silently so only the changed option's event fires.
func (v *choiceQuestionView) optionChanged(key string) {
	if !v.multiple && v.controls[key].Value() == checkedValue {
		for k, c := range v.controls {
			if k != key && c.Value() == checkedValue {
				c.SetValue("", true)
			}
		}
	}
	v.self.Emit(true, true)
}

// Toggle checks or unchecks one option by key, firing change handling.
func (v *choiceQuestionView) Toggle(key string, checked bool) {
	c, ok := v.controls[key]
	if !ok {
		return
	}
	value := ""
	if checked {
		value = checkedValue
	}
	c.SetValue(value, false)
}

func (v *choiceQuestionView) AddToForm() {
	if v.inForm {
		return
	}
	if !v.Edit() {
		return
	}
	force := v.shape.Context != nil && v.shape.Context.ForceEdit
	for key, c := range v.controls {
		attached := v.shape.Form.Attach(c)
		if force {
			attached.Disable()
		}
		v.controls[key] = attached
	}
	v.inForm = true
}

func (v *choiceQuestionView) RemoveFromForm() {
	if !v.inForm {
		return
	}
	for _, c := range v.controls {
		v.shape.Form.Detach(c.Name())
	}
	v.inForm = false
}

func (v *choiceQuestionView) Value() []*model.Answer {
	var tokens []string
	for _, opt := range v.question.Options {
		if c := v.controls[opt.Key]; c != nil && c.Value() == checkedValue {
			tokens = append(tokens, encodeOptionToken(opt))
		}
	}
	return []*model.Answer{
		model.NewAnswer(0, v.ComponentID(), model.EncodeOptions(tokens), model.ValueTypeOptions),
	}
}

func (v *choiceQuestionView) SetFromAnswer(a *model.Answer) {
	if a == nil {
		return
	}
	for key, c := range v.controls {
		value := ""
		if a.HasOptionKey(key) {
			value = checkedValue
		}
		c.SetValue(value, true)
	}
}

// CheckboxQuestionView renders inline checkboxes, multi-select unless the
// template turns it off.
type CheckboxQuestionView struct {
	choiceQuestionView
}

func (v *CheckboxQuestionView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.CheckboxQuestion)
	v.initChoice(v, shape, &q.SelectQuestion, q.Multiple)
	return nil
}

func (v *CheckboxQuestionView) ViewReady() error { return v.questionViewReady() }
func (v *CheckboxQuestionView) Destroy()         { v.destroyQuestion() }

// RadioQuestionView renders inline radios, always single-select.
type RadioQuestionView struct {
	choiceQuestionView
}

func (v *RadioQuestionView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.RadioQuestion)
	v.initChoice(v, shape, &q.SelectQuestion, false)
	return nil
}

func (v *RadioQuestionView) ViewReady() error { return v.questionViewReady() }
func (v *RadioQuestionView) Destroy()         { v.destroyQuestion() }

// Select checks one radio, clearing the others silently first.
func (v *RadioQuestionView) Select(key string) {
	v.Toggle(key, true)
}
