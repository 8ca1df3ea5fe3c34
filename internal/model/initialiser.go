package model

import (
	"time"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/template"
)

// Field names an assignable application field during initialisation.
type Field string

const (
	FieldID                       Field = "id"
	FieldApplicationID            Field = "applicationId"
	FieldUser                     Field = "user"
	FieldTemplate                 Field = "applicationTemplate"
	FieldAnswers                  Field = "answers"
	FieldAttachedFiles            Field = "attachedFiles"
	FieldLastUpdated              Field = "lastUpdated"
	FieldComments                 Field = "comments"
	FieldAssignedCommitteeMembers Field = "assignedCommitteeMembers"
	FieldPreviousCommitteeMembers Field = "previousCommitteeMembers"
	FieldFinalComment             Field = "finalComment"
	FieldEditableFields           Field = "editableFields"
	FieldReferredBy               Field = "referredBy"
)

var draftFields = []Field{
	FieldID, FieldApplicationID, FieldUser, FieldTemplate,
	FieldAnswers, FieldAttachedFiles, FieldLastUpdated,
}

var submittedFields = append(append([]Field{}, draftFields...),
	FieldComments, FieldAssignedCommitteeMembers,
	FieldPreviousCommitteeMembers, FieldFinalComment,
)

var referredFields = append(append([]Field{}, submittedFields...),
	FieldEditableFields, FieldReferredBy,
)

// Initialiser builds an Application for one status, allowing only the
// fields whitelisted for that status. Setting any other field is a hard
// error, never a silent coercion.
type Initialiser struct {
	status  Status
	allowed map[Field]struct{}
	app     *Application
}

// NewInitialiser returns the initialiser for status, or an error when the
// status is not a member of the state machine.
func NewInitialiser(status Status) (*Initialiser, error) {
	var fields []Field
	switch {
	case status == StatusDraft:
		fields = draftFields
	case status == StatusReferred:
		fields = referredFields
	case status.SubmittedFamily():
		fields = submittedFields
	default:
		return nil, commonerrors.NewStatusNotSupportedError(string(status))
	}

	allowed := make(map[Field]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	return &Initialiser{
		status:  status,
		allowed: allowed,
		app:     &Application{Status: status},
	}, nil
}

// Set assigns one whitelisted field. A field outside the whitelist or a
// value of the wrong type fails immediately.
func (in *Initialiser) Set(field Field, value interface{}) error {
	if _, ok := in.allowed[field]; !ok {
		return commonerrors.NewFieldNotWhitelistedError(string(field), string(in.status))
	}

	ok := true
	switch field {
	case FieldID:
		in.app.ID, ok = value.(int64)
	case FieldApplicationID:
		in.app.ApplicationID, ok = value.(string)
	case FieldUser:
		in.app.User, ok = value.(*User)
	case FieldTemplate:
		in.app.Template, ok = value.(*template.ApplicationTemplate)
	case FieldAnswers:
		in.app.Answers, ok = value.(map[string]*Answer)
	case FieldAttachedFiles:
		in.app.AttachedFiles, ok = value.(map[string]*AttachedFile)
	case FieldLastUpdated:
		in.app.LastUpdated, ok = value.(time.Time)
	case FieldComments:
		in.app.Comments, ok = value.(map[string]*CommentThread)
	case FieldAssignedCommitteeMembers:
		in.app.AssignedCommitteeMembers, ok = value.([]*User)
	case FieldPreviousCommitteeMembers:
		in.app.PreviousCommitteeMembers, ok = value.([]*User)
	case FieldFinalComment:
		in.app.FinalComment, ok = value.(string)
	case FieldEditableFields:
		in.app.EditableFields, ok = value.([]string)
	case FieldReferredBy:
		in.app.ReferredBy, ok = value.(*User)
	}
	if !ok {
		return commonerrors.NewFieldTypeError(string(field))
	}
	return nil
}

// Build returns the initialised application.
func (in *Initialiser) Build() *Application {
	if in.app.Answers == nil {
		in.app.Answers = make(map[string]*Answer)
	}
	if in.app.AttachedFiles == nil {
		in.app.AttachedFiles = make(map[string]*AttachedFile)
	}
	if in.app.Comments == nil {
		in.app.Comments = make(map[string]*CommentThread)
	}
	return in.app
}
