package view

import (
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
)

// baseView carries the shape every renderer receives.
type baseView struct {
	shape *ViewShape
}

func (b *baseView) Init(shape *ViewShape) error {
	b.shape = shape
	return nil
}

func (b *baseView) ComponentID() string {
	return b.shape.Component.Base().ComponentID
}

func (b *baseView) Destroy() {}

// baseQuestionView implements the question-view contract for single-control
// questions. Views with several controls (choice groups, composites)
// override the relevant methods. The self field points at the outermost
// view so overridden Value/SetFromAnswer are used in shared paths.
type baseQuestionView struct {
	baseView
	self      QuestionView
	q         *template.QuestionBase
	valueType model.ValueType
	control   *Control
	inForm    bool
}

func (v *baseQuestionView) initQuestion(self QuestionView, shape *ViewShape, q *template.QuestionBase, valueType model.ValueType) {
	v.shape = shape
	v.self = self
	v.q = q
	v.valueType = valueType
	v.control = NewControl(v.controlKey(), q.Required)
	v.control.Subscribe(func(string) {
		v.self.Emit(true, true)
	})
}

// controlKey is the form-control key: the authored name when present.
func (v *baseQuestionView) controlKey() string {
	if v.q.Name != "" {
		return v.q.Name
	}
	return v.q.ComponentID
}

func (v *baseQuestionView) Question() *template.QuestionBase { return v.q }

func (v *baseQuestionView) Display() bool { return displayAllowed(v.q, v.shape) }
func (v *baseQuestionView) Edit() bool    { return editAllowed(v.q, v.shape) }

func (v *baseQuestionView) AddToForm() {
	if v.inForm {
		return
	}
	if !v.Edit() {
		return
	}
	v.control = v.shape.Form.Attach(v.control)
	if v.shape.Context != nil && v.shape.Context.ForceEdit {
		v.control.Disable()
	}
	v.inForm = true
}

func (v *baseQuestionView) RemoveFromForm() {
	if !v.inForm {
		return
	}
	v.shape.Form.Detach(v.control.Name())
	v.inForm = false
}

func (v *baseQuestionView) Value() []*model.Answer {
	return []*model.Answer{
		model.NewAnswer(0, v.ComponentID(), v.control.Value(), v.valueType),
	}
}

func (v *baseQuestionView) SetFromAnswer(a *model.Answer) {
	if a == nil {
		return
	}
	v.control.SetValue(a.Value, true)
}

func (v *baseQuestionView) Emit(autosave, emitChange bool) {
	ev := QuestionChange{
		ComponentID: v.ComponentID(),
		Answers:     v.self.Value(),
		Autosave:    autosave,
	}
	if v.shape.Autosave != nil {
		v.shape.Autosave.QuestionChanged(ev)
	}
	if emitChange && v.shape.OnQuestionChange != nil {
		v.shape.OnQuestionChange(ev)
	}
}

func (v *baseQuestionView) DisableAutosave() bool { return false }

// questionViewReady runs the shared mount lifecycle: form binding, stored
// answer re-hydration, autosave registration and autofill resolution.
func (v *baseQuestionView) questionViewReady() error {
	v.self.AddToForm()

	if ans := v.shape.Application.AnswerFor(v.ComponentID()); ans != nil {
		v.self.SetFromAnswer(ans)
	}

	if v.shape.Autosave != nil {
		v.shape.Autosave.Register(v.self)
	}
	v.resolveAutofill()
	return nil
}

// resolveAutofill attaches to the notifier, resolves the external value
// and reports in. Attach refuses questions that already hold an answer.
func (v *baseQuestionView) resolveAutofill() {
	if v.shape.Autofill == nil || v.q.Autofill == "" {
		return
	}
	if !v.shape.Autofill.Attach(v.self, v.shape.Application) {
		return
	}
	if ctx := v.shape.Context; ctx != nil && ctx.ResolveAutofill != nil {
		if value, ok := ctx.ResolveAutofill(v.q.Autofill); ok {
			v.control.SetValue(value, true)
		}
	}
	v.shape.Autofill.Notify(v.ComponentID())
}

func (v *baseQuestionView) destroyQuestion() {
	v.self.RemoveFromForm()
	if v.shape.Autosave != nil {
		v.shape.Autosave.Unregister(v.ComponentID())
	}
	if v.shape.Autofill != nil {
		v.shape.Autofill.Detach(v.ComponentID())
	}
}

// --- text question ---

type TextQuestionView struct {
	baseQuestionView
}

func (v *TextQuestionView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.TextQuestion)
	v.initQuestion(v, shape, &q.QuestionBase, model.ValueTypeText)
	return nil
}

func (v *TextQuestionView) ViewReady() error { return v.questionViewReady() }
func (v *TextQuestionView) Destroy()         { v.destroyQuestion() }

// SetText is the user-input entry point.
func (v *TextQuestionView) SetText(text string) {
	v.control.SetValue(text, false)
}

// --- select question (dropdown) ---

type SelectQuestionView struct {
	baseQuestionView
	question *template.SelectQuestion
}

func (v *SelectQuestionView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.SelectQuestion)
	v.question = q
	v.initQuestion(v, shape, &q.QuestionBase, model.ValueTypeOptions)
	return nil
}

func (v *SelectQuestionView) ViewReady() error { return v.questionViewReady() }
func (v *SelectQuestionView) Destroy()         { v.destroyQuestion() }

// Select sets the chosen option keys, respecting single-select semantics.
func (v *SelectQuestionView) Select(keys ...string) {
	if !v.question.Multiple && len(keys) > 1 {
		keys = keys[:1]
	}
	tokens := make([]string, 0, len(keys))
	for _, key := range keys {
		for _, opt := range v.question.Options {
			if opt.Key == key {
				tokens = append(tokens, encodeOptionToken(opt))
				break
			}
		}
	}
	v.control.SetValue(model.EncodeOptions(tokens), false)
}

// --- signature question ---

type SignatureQuestionView struct {
	baseQuestionView
}

func (v *SignatureQuestionView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.SignatureQuestion)
	v.initQuestion(v, shape, &q.QuestionBase, model.ValueTypeImage)
	return nil
}

func (v *SignatureQuestionView) ViewReady() error { return v.questionViewReady() }
func (v *SignatureQuestionView) Destroy()         { v.destroyQuestion() }

// Sign stores the captured signature image reference.
func (v *SignatureQuestionView) Sign(imageRef string) {
	v.control.SetValue(imageRef, false)
}

// encodeOptionToken encodes one selected option as key=label, or the bare
// key when no label exists.
func encodeOptionToken(opt template.Option) string {
	if opt.Label == "" {
		return opt.Key
	}
	return opt.Key + "=" + opt.Label
}
