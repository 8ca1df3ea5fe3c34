package view

import (
	"ethics-workflow/internal/common/metrics"
	"ethics-workflow/internal/model"
)

// AutofillNotifier coordinates views that each independently resolve an
// external autofill value, emitting one combined answer map only after
// every attached view has reported in.
type AutofillNotifier struct {
	attached map[string]QuestionView
	notified map[string]bool
	emitted  bool

	// OnComplete receives the aggregate componentId → answer map once.
	OnComplete func(map[string]*model.Answer)
}

func NewAutofillNotifier() *AutofillNotifier {
	return &AutofillNotifier{
		attached: make(map[string]QuestionView),
		notified: make(map[string]bool),
	}
}

// Attach registers a view that will resolve an autofill value. Views whose
// componentId already holds an answer are refused: a real answer is never
// clobbered by an autofill default. Reports whether the view attached.
func (n *AutofillNotifier) Attach(v QuestionView, app *model.Application) bool {
	if v.Question().Autofill == "" {
		return false
	}
	if app != nil && app.AnswerFor(v.ComponentID()) != nil {
		return false
	}
	n.attached[v.ComponentID()] = v
	n.notified[v.ComponentID()] = false
	n.emitted = false
	return true
}

// Detach removes both the registration and its notified state. Skipping
// either would leave a fixed point that never fires.
func (n *AutofillNotifier) Detach(componentID string) {
	delete(n.attached, componentID)
	delete(n.notified, componentID)
}

// Notify records that the view under componentID resolved its value; once
// every attached view has notified, the aggregate map is emitted once,
// with array-valued views fanned out to one entry per sub-answer.
func (n *AutofillNotifier) Notify(componentID string) {
	if _, ok := n.attached[componentID]; !ok {
		return
	}
	n.notified[componentID] = true

	if n.emitted || len(n.attached) == 0 {
		return
	}
	for id := range n.attached {
		if !n.notified[id] {
			return
		}
	}

	combined := make(map[string]*model.Answer)
	for _, v := range n.attached {
		for _, ans := range v.Value() {
			if ans != nil {
				combined[ans.ComponentID] = ans
			}
		}
	}
	n.emitted = true
	metrics.AutofillCompletions.Inc()
	if n.OnComplete != nil {
		n.OnComplete(combined)
	}
}
