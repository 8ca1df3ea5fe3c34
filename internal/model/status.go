package model

// Status is the application workflow state machine.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusSubmitted   Status = "SUBMITTED"
	StatusResubmitted Status = "RESUBMITTED"
	StatusInReview    Status = "IN_REVIEW"
	StatusReviewed    Status = "REVIEWED"
	StatusReferred    Status = "REFERRED"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

// Editable reports whether the applicant may still change answers. Only
// DRAFT and REFERRED reopen the form; REFERRED further restricts edits to
// the application's editable-fields list.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusReferred
}

// SubmittedFamily reports whether the status belongs to the post-submission
// review lifecycle.
func (s Status) SubmittedFamily() bool {
	switch s {
	case StatusSubmitted, StatusResubmitted, StatusInReview, StatusReviewed,
		StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Known reports whether s is a member of the status set.
func (s Status) Known() bool {
	return s == StatusDraft || s == StatusReferred || s.SubmittedFamily()
}
