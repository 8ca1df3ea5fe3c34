package template

// BranchType discriminates the branch variants.
type BranchType string

const (
	ActionBranchType      BranchType = "ACTION_BRANCH"
	ReplacementBranchType BranchType = "REPLACEMENT_BRANCH"
	QuestionBranchType    BranchType = "QUESTION_BRANCH"
)

// BranchAction is the side effect an ActionBranch triggers.
type BranchAction string

const (
	ActionTerminate  BranchAction = "terminate"
	ActionAttachFile BranchAction = "attach-file"
)

// Branch is a conditional action triggered by a user's answer.
type Branch interface {
	BranchKind() BranchType
	CloneBranch() Branch
}

// ActionBranch terminates the application or requests a file attachment,
// optionally after a confirmation comment.
type ActionBranch struct {
	DatabaseID *int64       `json:"databaseId,omitempty"`
	Type       BranchType   `json:"type"`
	Action     BranchAction `json:"action"`
	Comment    string       `json:"comment,omitempty"`
}

func NewActionBranch(databaseID *int64, action BranchAction, comment string) *ActionBranch {
	return &ActionBranch{DatabaseID: databaseID, Type: ActionBranchType, Action: action, Comment: comment}
}

func (b *ActionBranch) BranchKind() BranchType { return ActionBranchType }

func (b *ActionBranch) CloneBranch() Branch {
	out := *b
	if b.DatabaseID != nil {
		id := *b.DatabaseID
		out.DatabaseID = &id
	}
	return &out
}

// Replacement is one replace-container instruction inside a
// ReplacementBranch: swap container replaceId for container targetId.
type Replacement struct {
	ReplaceID string `json:"replaceId"`
	TargetID  string `json:"targetId"`
}

// ReplacementBranch swaps one or more containers for other containers,
// mutating the live template.
type ReplacementBranch struct {
	DatabaseID   *int64        `json:"databaseId,omitempty"`
	Type         BranchType    `json:"type"`
	Replacements []Replacement `json:"replacements"`
}

func NewReplacementBranch(databaseID *int64, replacements []Replacement) *ReplacementBranch {
	return &ReplacementBranch{DatabaseID: databaseID, Type: ReplacementBranchType, Replacements: replacements}
}

func (b *ReplacementBranch) BranchKind() BranchType { return ReplacementBranchType }

func (b *ReplacementBranch) CloneBranch() Branch {
	out := &ReplacementBranch{Type: ReplacementBranchType}
	if b.DatabaseID != nil {
		id := *b.DatabaseID
		out.DatabaseID = &id
	}
	out.Replacements = append(out.Replacements, b.Replacements...)
	return out
}

// QuestionBranch reveals a named part of a multipart question when the
// owning part's value matches.
type QuestionBranch struct {
	DatabaseID *int64     `json:"databaseId,omitempty"`
	Type       BranchType `json:"type"`
	Part       string     `json:"part"`
	Value      string     `json:"value"`
}

func NewQuestionBranch(databaseID *int64, part, value string) *QuestionBranch {
	return &QuestionBranch{DatabaseID: databaseID, Type: QuestionBranchType, Part: part, Value: value}
}

func (b *QuestionBranch) BranchKind() BranchType { return QuestionBranchType }

func (b *QuestionBranch) CloneBranch() Branch {
	out := *b
	if b.DatabaseID != nil {
		id := *b.DatabaseID
		out.DatabaseID = &id
	}
	return &out
}
