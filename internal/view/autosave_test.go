// internal/view/autosave_test.go
package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ethics-workflow/internal/model"
)

func changed(id, value string, autosave bool) QuestionChange {
	return QuestionChange{
		ComponentID: id,
		Answers:     []*model.Answer{model.NewAnswer(0, id, value, model.ValueTypeText)},
		Autosave:    autosave,
	}
}

func TestAutosave_FiresExactlyOnce(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	a := newStubQuestion("q1", true)
	b := newStubQuestion("q2", true)
	c.Register(a)
	c.Register(b)

	c.QuestionChanged(changed("q1", "hello", true))
	assert.Equal(t, 0, fired, "one of two required questions still empty")

	c.QuestionChanged(changed("q2", "world", true))
	assert.Equal(t, 1, fired, "fires when the last required question fills")

	// A later no-op change must not re-fire.
	c.QuestionChanged(changed("q2", "world", true))
	assert.Equal(t, 1, fired)
}

func TestAutosave_RefiresAfterEmptyTransition(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	a := newStubQuestion("q1", true)
	c.Register(a)

	c.QuestionChanged(changed("q1", "x", true))
	c.QuestionChanged(changed("q1", "", true))
	c.QuestionChanged(changed("q1", "y", true))
	assert.Equal(t, 2, fired, "emptying resets the latch")
}

func TestAutosave_NonAutosaveEventOnlyRecords(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	a := newStubQuestion("q1", true)
	c.Register(a)

	c.QuestionChanged(changed("q1", "x", false))
	assert.Equal(t, 0, fired, "no scan without the autosave flag")

	// The recorded answer counts when a later autosave event scans.
	c.QuestionChanged(changed("q1", "x", true))
	assert.Equal(t, 1, fired)
}

func TestAutosave_OptOutAndUnregister(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	optedOut := newStubQuestion("q0", true)
	optedOut.optOut = true
	c.Register(optedOut)

	a := newStubQuestion("q1", true)
	b := newStubQuestion("q2", true)
	c.Register(a)
	c.Register(b)

	// Unregistering the empty question unblocks the remaining set.
	c.Unregister("q2")
	c.QuestionChanged(changed("q1", "x", true))
	assert.Equal(t, 1, fired)
}

func TestAutosave_NonEditableCountsAsAnswered(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	locked := newStubQuestion("q1", true)
	locked.q.Editable = false
	c.Register(locked)

	a := newStubQuestion("q2", true)
	c.Register(a)

	c.QuestionChanged(changed("q2", "x", true))
	assert.Equal(t, 1, fired)
}

func TestAutosave_HiddenRequestInputExcluded(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	hidden := newStubQuestion("q1", true)
	hidden.display = false
	hidden.q.RequestInput = true
	c.Register(hidden)

	a := newStubQuestion("q2", true)
	c.Register(a)

	c.QuestionChanged(changed("q2", "x", true))
	assert.Equal(t, 1, fired, "invisible cross-user questions do not block the save")
}

func TestAutosave_EmptySetNeverFires(t *testing.T) {
	c := NewAutosaveCoordinator()
	var fired int
	c.OnAutosave = func() { fired++ }

	c.QuestionChanged(changed("q1", "x", true))
	assert.Equal(t, 0, fired)
}
