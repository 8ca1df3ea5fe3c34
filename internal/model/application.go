package model

import (
	"time"

	"ethics-workflow/internal/template"
)

// AttachedFile is a file uploaded against one componentId.
type AttachedFile struct {
	ID          int64  `json:"id"`
	ComponentID string `json:"componentId"`
	FileName    string `json:"fileName"`
	Directory   string `json:"directory"`
	Username    string `json:"username"`
}

// Comment is one review remark.
type Comment struct {
	ID        int64     `json:"id"`
	User      *User     `json:"user"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentThread groups the review comments left against one componentId.
type CommentThread struct {
	ComponentID string     `json:"componentId"`
	Comments    []*Comment `json:"comments"`
}

// Application is the workflow aggregate: one user's answers to one
// resolved template, moving through the review lifecycle.
type Application struct {
	ID            int64  `json:"id"`
	ApplicationID string `json:"applicationId"`

	User     *User                         `json:"user"`
	Status   Status                        `json:"status"`
	Template *template.ApplicationTemplate `json:"applicationTemplate"`

	Answers       map[string]*Answer        `json:"answers"`
	AttachedFiles map[string]*AttachedFile  `json:"attachedFiles"`
	Comments      map[string]*CommentThread `json:"comments"`

	AssignedCommitteeMembers []*User `json:"assignedCommitteeMembers,omitempty"`
	PreviousCommitteeMembers []*User `json:"previousCommitteeMembers,omitempty"`
	FinalComment             string  `json:"finalComment,omitempty"`

	// EditableFields is only meaningful in REFERRED: the componentIds
	// reopened for applicant edits.
	EditableFields []string `json:"editableFields,omitempty"`
	ReferredBy     *User    `json:"referredBy,omitempty"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// AnswerFor returns the stored answer for componentID, nil when unanswered.
func (a *Application) AnswerFor(componentID string) *Answer {
	if a.Answers == nil {
		return nil
	}
	return a.Answers[componentID]
}

// HasAnswer reports whether a non-empty answer exists for componentID.
func (a *Application) HasAnswer(componentID string) bool {
	ans := a.AnswerFor(componentID)
	return ans != nil && !ans.Empty()
}

// PutAnswer stores an answer under its componentId.
func (a *Application) PutAnswer(ans *Answer) {
	if a.Answers == nil {
		a.Answers = make(map[string]*Answer)
	}
	a.Answers[ans.ComponentID] = ans
}

// FieldEditable reports whether componentID is in the referred
// editable-fields list.
func (a *Application) FieldEditable(componentID string) bool {
	for _, f := range a.EditableFields {
		if f == componentID {
			return true
		}
	}
	return false
}
