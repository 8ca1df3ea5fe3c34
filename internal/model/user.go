package model

// Role is a coarse access role within the review workflow.
type Role string

const (
	RoleApplicant       Role = "applicant"
	RoleCommitteeMember Role = "committee-member"
	RoleChair           Role = "chair"
	RoleAdmin           Role = "admin"
)

// User identifies an account participating in the workflow.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Is reports whether other refers to the same account.
func (u *User) Is(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	return u.Username == other.Username
}
