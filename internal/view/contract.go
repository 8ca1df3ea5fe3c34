package view

import (
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
)

// QuestionView is the contract every interactive renderer satisfies,
// polymorphic over the full set of question variants.
type QuestionView interface {
	ViewRenderer

	// Question returns the underlying question attributes.
	Question() *template.QuestionBase

	// AddToForm and RemoveFromForm attach/detach the view's control(s)
	// from the shared form, idempotently. Attaching is gated by Edit.
	AddToForm()
	RemoveFromForm()

	// Display and Edit evaluate the visibility and editability rules for
	// the current context, status and viewing user.
	Display() bool
	Edit() bool

	// Value materializes current control state into one or more answers;
	// composite views fan out to one answer per sub-question.
	Value() []*model.Answer

	// SetFromAnswer replays a saved answer into the control without
	// emitting a change event.
	SetFromAnswer(a *model.Answer)

	// Emit raises a change event to the parent host (unless emitChange is
	// false) and always notifies the autosave coordinator.
	Emit(autosave, emitChange bool)

	// DisableAutosave opts the view out of autosave coordination.
	DisableAutosave() bool
}

// displayAllowed is the shared visibility rule. The boolean grouping is
// deliberate and order-sensitive; referred-field visibility is privacy
// sensitive, so keep the precedence exactly as written.
func displayAllowed(q *template.QuestionBase, shape *ViewShape) bool {
	app := shape.Application
	ctx := shape.Context

	permits := ctx == nil || ctx.Permits == nil || ctx.Permits(q)
	if !permits {
		return false
	}
	if shape.Parent != nil && !shape.Parent.Display() {
		return false
	}

	override := ctx != nil && ctx.ForceDisplay
	editableStatus := app != nil && app.Status.Editable()
	hasAnswer := app != nil && app.AnswerFor(q.ComponentID) != nil
	inContextFields := ctx != nil && containsString(ctx.EditableFields, q.ComponentID)

	return override || editableStatus || hasAnswer || inContextFields
}

// editAllowed is the shared editability rule.
func editAllowed(q *template.QuestionBase, shape *ViewShape) bool {
	app := shape.Application
	ctx := shape.Context

	if ctx != nil && ctx.ForceEdit {
		return true
	}
	if app == nil {
		return false
	}

	userOK := ctx == nil || ctx.User == nil || ctx.User.Is(app.User) || ctx.GivingInput
	if !userOK {
		return false
	}
	if shape.Parent != nil && !shape.Parent.Edit() {
		return false
	}

	switch app.Status {
	case model.StatusDraft:
		return true
	case model.StatusReferred:
		return app.FieldEditable(q.ComponentID)
	default:
		return false
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func answersEmpty(answers []*model.Answer) bool {
	for _, a := range answers {
		if a != nil && !a.Empty() {
			return false
		}
	}
	return true
}
