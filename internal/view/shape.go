package view

import (
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
	"ethics-workflow/internal/template/templatectx"
)

// QuestionChange is the event a question view raises after its value
// changes. Answers carries the materialized value(s); Autosave marks
// whether the autosave coordinator should re-scan.
type QuestionChange struct {
	ComponentID string
	Answers     []*model.Answer
	Autosave    bool
}

// QuestionChangeFunc receives bubbled change events. Parents always
// re-emit child events after their own bookkeeping.
type QuestionChangeFunc func(QuestionChange)

// DisplayContext carries the per-session policy and escalation hooks a
// display tree renders under.
type DisplayContext struct {
	// User is the viewing user; nil means the applicant views their own
	// application.
	User *model.User
	// GivingInput marks a cross-user answer-request sub-flow: the viewer
	// answers specific requested questions on someone else's application.
	GivingInput bool

	// ForceDisplay overrides the status/answer gating of Display.
	ForceDisplay bool
	// ForceEdit renders controls in edit-and-disable mode regardless of
	// user and status.
	ForceEdit bool

	// EditableFields lists the componentIds this context reopens for
	// display, e.g. the requested questions of an answer-request sub-flow.
	EditableFields []string

	// Permits is an optional visibility veto evaluated before any other
	// display condition. Nil permits everything.
	Permits func(q *template.QuestionBase) bool

	// ResolveAutofill resolves an autofill query against the viewing
	// user's profile. A nil hook, or a false return, leaves the question
	// unfilled.
	ResolveAutofill func(query string) (string, bool)

	// Confirm blocks for a yes/no decision. A nil hook declines.
	Confirm func(message string) bool
	// Terminate escalates a terminate action branch.
	Terminate func(comment string)
	// AttachFile escalates an attach-file action branch for a componentId.
	AttachFile func(componentID string)
}

// confirm runs the confirmation hook, declining when none is wired.
func (c *DisplayContext) confirm(message string) bool {
	if c == nil || c.Confirm == nil {
		return false
	}
	return c.Confirm(message)
}

// Host is the composite renderer owning an insertion point. Reload tears
// the hosted sub-tree down and re-renders it, used after a container
// replacement swapped the underlying components.
type Host interface {
	HostID() string
	Reload() error
}

// ViewShape is the initialisation payload every renderer receives before
// its own lifecycle runs.
type ViewShape struct {
	Component   template.ApplicationComponent
	Application *model.Application
	Form        *Form
	Context     *DisplayContext

	// Parent is the enclosing question view, nil at the top of a chain.
	// Display and Edit consult it.
	Parent QuestionView

	// OnQuestionChange receives bubbled change events.
	OnQuestionChange QuestionChangeFunc

	Autosave *AutosaveCoordinator
	Autofill *AutofillNotifier

	// Loader and TemplateContext serve composite renderers and branch
	// execution.
	Loader          *Loader
	TemplateContext *templatectx.Context

	// Host is the composite whose slot this renderer was loaded into.
	Host Host
}

// childShape derives the shape passed to a child renderer.
func (s *ViewShape) childShape(child template.ApplicationComponent, parent QuestionView, host Host) *ViewShape {
	out := *s
	out.Component = child
	out.Parent = parent
	out.Host = host
	return &out
}
