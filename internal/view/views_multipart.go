package view

import (
	"sort"

	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
)

// MultipartQuestionView renders the named parts of a multipart question,
// revealing further parts as earlier answers match their branches. Parts
// that are the target of some branch start hidden; everything else is
// visible from the start.
type MultipartQuestionView struct {
	baseQuestionView
	question *template.MultipartQuestion
	parts    map[string]QuestionView
}

func (v *MultipartQuestionView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.MultipartQuestion)
	v.question = q
	v.initQuestion(v, shape, &q.QuestionBase, model.ValueTypeText)
	v.parts = make(map[string]QuestionView)
	return nil
}

func (v *MultipartQuestionView) ViewReady() error {
	if err := v.reconcileParts(); err != nil {
		return err
	}
	// Stored answers may satisfy branch conditions, so visibility is
	// re-derived once after the initial parts hydrated themselves.
	if err := v.reconcileParts(); err != nil {
		return err
	}
	return v.questionViewReady()
}

func (v *MultipartQuestionView) Destroy() {
	for name := range v.parts {
		v.shape.Loader.Destroy(v.partHostID(name))
	}
	v.parts = nil
	v.destroyQuestion()
}

// AddToForm is carried by the part views; the multipart itself owns no
// control.
func (v *MultipartQuestionView) AddToForm()      {}
func (v *MultipartQuestionView) RemoveFromForm() {}

// Value fans out to one answer per visible part, in part-name order.
func (v *MultipartQuestionView) Value() []*model.Answer {
	names := make([]string, 0, len(v.parts))
	for name := range v.parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []*model.Answer
	for _, name := range names {
		out = append(out, v.parts[name].Value()...)
	}
	return out
}

// SetFromAnswer is a no-op: each part hydrates from its own stored answer.
func (v *MultipartQuestionView) SetFromAnswer(*model.Answer) {}

func (v *MultipartQuestionView) partHostID(name string) string {
	return v.ComponentID() + ":" + name
}

// visibleParts computes the fixed point of part visibility: the base set
// is every part no branch targets, then any branch of a visible part whose
// condition its current answer satisfies adds its target.
func (v *MultipartQuestionView) visibleParts() map[string]bool {
	targeted := make(map[string]bool)
	for _, part := range v.question.Parts {
		for _, b := range part.Branches {
			targeted[b.Part] = true
		}
	}

	visible := make(map[string]bool)
	for name := range v.question.Parts {
		if !targeted[name] {
			visible[name] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for name := range visible {
			part := v.question.Parts[name]
			if part == nil {
				continue
			}
			answers := v.partAnswers(name, part)
			for _, b := range part.Branches {
				if visible[b.Part] {
					continue
				}
				if answersMatch(answers, b.Value) {
					visible[b.Part] = true
					changed = true
				}
			}
		}
	}
	return visible
}

// partAnswers returns the part's live answers when its view is mounted,
// falling back to the stored answer.
func (v *MultipartQuestionView) partAnswers(name string, part *template.QuestionPart) []*model.Answer {
	if pv, ok := v.parts[name]; ok {
		return pv.Value()
	}
	if v.shape.Application == nil {
		return nil
	}
	ans := v.shape.Application.AnswerFor(part.Question.Base().ComponentID)
	if ans == nil {
		return nil
	}
	return []*model.Answer{ans}
}

// reconcileParts mounts newly visible parts and tears down newly hidden
// ones, keeping surviving part views untouched.
func (v *MultipartQuestionView) reconcileParts() error {
	visible := v.visibleParts()

	for name := range v.parts {
		if !visible[name] {
			v.shape.Loader.Destroy(v.partHostID(name))
			delete(v.parts, name)
		}
	}

	names := make([]string, 0, len(visible))
	for name := range visible {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := v.parts[name]; ok {
			continue
		}
		part := v.question.Parts[name]
		if part == nil {
			continue
		}
		shape := v.shape.childShape(part.Question, v, v.shape.Host)
		partName := name
		shape.OnQuestionChange = func(ev QuestionChange) {
			v.partChanged(partName, ev)
		}
		loaded, err := v.shape.Loader.Load(v.partHostID(name), shape)
		if err != nil {
			return err
		}
		if qv, ok := loaded.(QuestionView); ok {
			v.parts[name] = qv
		}
	}
	return nil
}

// partChanged re-derives part visibility after a child change, then bubbles
// the event upward under the multipart's own identity.
func (v *MultipartQuestionView) partChanged(_ string, ev QuestionChange) {
	_ = v.reconcileParts()
	v.Emit(ev.Autosave, true)
}

func answersMatch(answers []*model.Answer, value string) bool {
	for _, a := range answers {
		if a != nil && (a.Matches(value) || a.HasOptionKey(value)) {
			return true
		}
	}
	return false
}

// QuestionTableView renders every cell of the grid as its own question
// view and fans the table's value out to one answer per cell.
type QuestionTableView struct {
	baseQuestionView
	question *template.QuestionTableComponent
	cells    []QuestionView
}

func (v *QuestionTableView) Init(shape *ViewShape) error {
	q := shape.Component.(*template.QuestionTableComponent)
	v.question = q
	v.initQuestion(v, shape, &q.QuestionBase, model.ValueTypeText)
	return nil
}

func (v *QuestionTableView) ViewReady() error {
	for _, cell := range v.question.ChildComponents() {
		loaded, err := v.shape.Loader.Load(v.ComponentID(), v.shape.childShape(cell, v, v.shape.Host))
		if err != nil {
			return err
		}
		if qv, ok := loaded.(QuestionView); ok {
			v.cells = append(v.cells, qv)
		}
	}
	return v.questionViewReady()
}

func (v *QuestionTableView) Destroy() {
	v.shape.Loader.Destroy(v.ComponentID())
	v.cells = nil
	v.destroyQuestion()
}

func (v *QuestionTableView) AddToForm()      {}
func (v *QuestionTableView) RemoveFromForm() {}

func (v *QuestionTableView) Value() []*model.Answer {
	var out []*model.Answer
	for _, cell := range v.cells {
		out = append(out, cell.Value()...)
	}
	return out
}

func (v *QuestionTableView) SetFromAnswer(*model.Answer) {}
