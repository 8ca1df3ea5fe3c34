// internal/view/view_test.go
package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
	"ethics-workflow/internal/template/templatectx"
)

// ==========================
// Test Helper Functions
// ==========================

func textQuestion(componentID, name string, required bool) *template.TextQuestion {
	return &template.TextQuestion{
		QuestionBase: template.QuestionBase{
			ComponentBase: template.ComponentBase{
				Type:        template.TypeTextQuestion,
				Title:       componentID,
				ComponentID: componentID,
			},
			Description: "test question",
			Name:        name,
			Required:    required,
			Editable:    true,
		},
		SingleLine: true,
	}
}

func draftApplication(t *testing.T) *model.Application {
	t.Helper()
	in, err := model.NewInitialiser(model.StatusDraft)
	require.NoError(t, err)
	require.NoError(t, in.Set(model.FieldApplicationID, "APP-1"))
	require.NoError(t, in.Set(model.FieldUser, &model.User{ID: 1, Username: "alice"}))
	return in.Build()
}

func testRegistry(t *testing.T) *RendererRegistry {
	t.Helper()
	reg, err := NewDefaultRendererRegistry()
	require.NoError(t, err)
	return reg
}

func testShape(t *testing.T, app *model.Application, comp template.ApplicationComponent) *ViewShape {
	t.Helper()
	return &ViewShape{
		Component:       comp,
		Application:     app,
		Form:            NewForm(),
		Context:         &DisplayContext{},
		Autosave:        NewAutosaveCoordinator(),
		Autofill:        NewAutofillNotifier(),
		Loader:          NewLoader(testRegistry(t)),
		TemplateContext: templatectx.New(),
	}
}

func loadView(t *testing.T, shape *ViewShape) ViewRenderer {
	t.Helper()
	v, err := shape.Loader.Load("test-host", shape)
	require.NoError(t, err)
	return v
}

// stubQuestionView drives the coordinators without a full renderer.
type stubQuestionView struct {
	q       *template.QuestionBase
	answers []*model.Answer
	display bool
	optOut  bool
	emitted int
}

func newStubQuestion(componentID string, required bool) *stubQuestionView {
	return &stubQuestionView{
		q: &template.QuestionBase{
			ComponentBase: template.ComponentBase{
				Type:        template.TypeTextQuestion,
				ComponentID: componentID,
			},
			Name:     componentID,
			Required: required,
			Editable: true,
		},
		display: true,
	}
}

func (s *stubQuestionView) Init(*ViewShape) error            { return nil }
func (s *stubQuestionView) ViewReady() error                 { return nil }
func (s *stubQuestionView) ComponentID() string              { return s.q.ComponentID }
func (s *stubQuestionView) Destroy()                         {}
func (s *stubQuestionView) Question() *template.QuestionBase { return s.q }
func (s *stubQuestionView) AddToForm()                       {}
func (s *stubQuestionView) RemoveFromForm()                  {}
func (s *stubQuestionView) Display() bool                    { return s.display }
func (s *stubQuestionView) Edit() bool                       { return true }
func (s *stubQuestionView) Value() []*model.Answer           { return s.answers }
func (s *stubQuestionView) SetFromAnswer(a *model.Answer)    { s.answers = []*model.Answer{a} }
func (s *stubQuestionView) Emit(autosave, emitChange bool)   { s.emitted++ }
func (s *stubQuestionView) DisableAutosave() bool            { return s.optOut }

func (s *stubQuestionView) answer(value string) {
	s.answers = []*model.Answer{model.NewAnswer(0, s.q.ComponentID, value, model.ValueTypeText)}
}
