package view

import (
	"ethics-workflow/internal/common/metrics"
)

// AutosaveCoordinator observes the live set of mounted question views and
// fires a single save trigger exactly when every visible, required
// registered question holds a non-empty answer. Views register on mount
// and unregister on unmount.
type AutosaveCoordinator struct {
	questions map[string]QuestionView
	answered  map[string]bool

	// fired latches the all-answered state so a no-op change after the
	// trigger does not re-fire it.
	fired bool

	// OnAutosave receives the trigger. Nil is allowed; the latch still
	// advances so observers attached later do not get stale triggers.
	OnAutosave func()
}

func NewAutosaveCoordinator() *AutosaveCoordinator {
	return &AutosaveCoordinator{
		questions: make(map[string]QuestionView),
		answered:  make(map[string]bool),
	}
}

// Register adds a mounted view to the coordination set. Views opting out
// via DisableAutosave are ignored. Non-editable questions count as
// pre-answered.
func (c *AutosaveCoordinator) Register(v QuestionView) {
	if v.DisableAutosave() {
		return
	}
	id := v.ComponentID()
	c.questions[id] = v
	if _, ok := c.answered[id]; !ok {
		c.answered[id] = !v.Question().Editable || !answersEmpty(v.Value())
	}
	if !c.answered[id] {
		c.fired = false
	}
}

// Unregister removes an unmounted view and its answered state.
func (c *AutosaveCoordinator) Unregister(componentID string) {
	delete(c.questions, componentID)
	delete(c.answered, componentID)
}

// QuestionChanged records the event's emptiness for its componentId and,
// when the event asks for autosave, re-scans the whole registration set.
func (c *AutosaveCoordinator) QuestionChanged(ev QuestionChange) {
	if _, ok := c.questions[ev.ComponentID]; ok {
		c.answered[ev.ComponentID] = !answersEmpty(ev.Answers)
	}
	if !ev.Autosave {
		return
	}
	c.scan()
}

func (c *AutosaveCoordinator) scan() {
	if len(c.questions) == 0 {
		return
	}
	for id, v := range c.questions {
		if c.satisfied(id, v) {
			continue
		}
		c.fired = false
		return
	}
	if c.fired {
		return
	}
	c.fired = true
	metrics.AutosaveTriggers.Inc()
	if c.OnAutosave != nil {
		c.OnAutosave()
	}
}

// satisfied reports whether one question no longer blocks the trigger:
// not required, answered, or invisible with a pending cross-user input
// request (those are excluded rather than counted against the save).
func (c *AutosaveCoordinator) satisfied(id string, v QuestionView) bool {
	if !v.Question().Required {
		return true
	}
	if c.answered[id] {
		return true
	}
	return !v.Display() && v.Question().RequestInput
}
