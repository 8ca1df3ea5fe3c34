package template

// QuestionBase carries the attributes shared by every question variant.
// Name is the form-control key; Autofill is an optional resolver query;
// RequestInput marks the question as answerable by a user other than the
// applicant.
type QuestionBase struct {
	ComponentBase
	Description  string `json:"description"`
	Name         string `json:"name"`
	Required     bool   `json:"required"`
	Editable     bool   `json:"editable"`
	Autofill     string `json:"autofill,omitempty"`
	RequestInput bool   `json:"requestInput,omitempty"`
}

// Question is implemented by every interactive component variant.
type Question interface {
	ApplicationComponent
	QuestionFields() *QuestionBase
}

func (q *QuestionBase) QuestionFields() *QuestionBase { return q }

func (q *QuestionBase) cloneQuestionBase() QuestionBase {
	out := *q
	out.ComponentBase = q.cloneBase()
	return out
}

// TextQuestion is a free-text input, single or multi line.
type TextQuestion struct {
	QuestionBase
	SingleLine bool `json:"singleLine,omitempty"`
}

func (t *TextQuestion) Clone() ApplicationComponent {
	return &TextQuestion{QuestionBase: t.cloneQuestionBase(), SingleLine: t.SingleLine}
}

// Option is one selectable choice of a select-family question.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SelectQuestion is a dropdown choice over a fixed option set.
type SelectQuestion struct {
	QuestionBase
	Options  []Option `json:"options"`
	Multiple bool     `json:"multiple,omitempty"`
}

func (s *SelectQuestion) Clone() ApplicationComponent {
	out := &SelectQuestion{QuestionBase: s.cloneQuestionBase(), Multiple: s.Multiple}
	out.Options = append(out.Options, s.Options...)
	return out
}

func (s *SelectQuestion) cloneSelect() SelectQuestion {
	out := SelectQuestion{QuestionBase: s.cloneQuestionBase(), Multiple: s.Multiple}
	out.Options = append(out.Options, s.Options...)
	return out
}

// CheckboxQuestion renders the option set as inline checkboxes,
// multi-select by default.
type CheckboxQuestion struct {
	SelectQuestion
}

func (c *CheckboxQuestion) Clone() ApplicationComponent {
	return &CheckboxQuestion{SelectQuestion: c.cloneSelect()}
}

// RadioQuestion renders the option set as inline radios, always
// single-select.
type RadioQuestion struct {
	SelectQuestion
}

func (r *RadioQuestion) Clone() ApplicationComponent {
	return &RadioQuestion{SelectQuestion: r.cloneSelect()}
}

// SignatureQuestion captures a signature image plus the signing date.
type SignatureQuestion struct {
	QuestionBase
	Label string `json:"label,omitempty"`
}

func (s *SignatureQuestion) Clone() ApplicationComponent {
	return &SignatureQuestion{QuestionBase: s.cloneQuestionBase(), Label: s.Label}
}

// QuestionPart wraps one named part of a multipart question: the part's own
// question plus the conditional branches revealing further parts.
type QuestionPart struct {
	Question ApplicationComponent `json:"question"`
	Branches []*QuestionBranch    `json:"branches,omitempty"`
}

func (p *QuestionPart) Clone() *QuestionPart {
	out := &QuestionPart{Question: p.Question.Clone()}
	for _, b := range p.Branches {
		out.Branches = append(out.Branches, b.CloneBranch().(*QuestionBranch))
	}
	return out
}

// MultipartQuestion owns a map of named parts. Parts are revealed by
// QuestionBranches as earlier parts are answered.
type MultipartQuestion struct {
	QuestionBase
	Parts map[string]*QuestionPart `json:"parts"`
}

// ChildComponents returns the part questions in sorted part-name order so
// traversal is deterministic.
func (m *MultipartQuestion) ChildComponents() []ApplicationComponent {
	out := make([]ApplicationComponent, 0, len(m.Parts))
	for _, name := range sortedKeys(m.Parts) {
		out = append(out, m.Parts[name].Question)
	}
	return out
}

func (m *MultipartQuestion) Clone() ApplicationComponent {
	out := &MultipartQuestion{QuestionBase: m.cloneQuestionBase()}
	if m.Parts != nil {
		out.Parts = make(map[string]*QuestionPart, len(m.Parts))
		for name, part := range m.Parts {
			out.Parts[name] = part.Clone()
		}
	}
	return out
}

// Checkbox is one option of a checkbox group. Identifier is the stable
// form-control key within the group; Branch, when set, overrides the
// group's default branch; Checked is the authored default state.
type Checkbox struct {
	DatabaseID *int64 `json:"databaseId,omitempty"`
	Title      string `json:"title"`
	Identifier string `json:"identifier"`
	Branch     Branch `json:"branch,omitempty"`
	Checked    bool   `json:"value"`
}

func (c *Checkbox) Clone() *Checkbox {
	out := *c
	if c.DatabaseID != nil {
		id := *c.DatabaseID
		out.DatabaseID = &id
	}
	if c.Branch != nil {
		out.Branch = c.Branch.CloneBranch()
	}
	return &out
}

// EffectiveBranch resolves the branch to execute when this checkbox is
// checked: its own override if present, else the group default.
func (c *Checkbox) EffectiveBranch(groupDefault Branch) Branch {
	if c.Branch != nil {
		return c.Branch
	}
	return groupDefault
}

// CheckboxGroupComponent owns a list of checkboxes sharing one answer under
// the group's componentId. A group-level default branch may be overridden
// per checkbox.
type CheckboxGroupComponent struct {
	QuestionBase
	Multiple      bool        `json:"multiple"`
	DefaultBranch Branch      `json:"defaultBranch,omitempty"`
	Checkboxes    []*Checkbox `json:"checkboxes"`
}

func (g *CheckboxGroupComponent) Clone() ApplicationComponent {
	out := &CheckboxGroupComponent{
		QuestionBase: g.cloneQuestionBase(),
		Multiple:     g.Multiple,
	}
	if g.DefaultBranch != nil {
		out.DefaultBranch = g.DefaultBranch.CloneBranch()
	}
	for _, cb := range g.Checkboxes {
		out.Checkboxes = append(out.Checkboxes, cb.Clone())
	}
	return out
}

// TableColumn is one named column of a question table; each cell is itself
// a question component.
type TableColumn struct {
	Name  string                 `json:"name"`
	Cells []ApplicationComponent `json:"cells"`
}

// QuestionTableComponent arranges question cells in a named-column grid.
// Columns are an ordered list because JSON object key order is not
// preserved across the wire.
type QuestionTableComponent struct {
	QuestionBase
	Columns []TableColumn `json:"columns"`
}

// CellsByColumn returns the column name → cell list view of the grid.
func (t *QuestionTableComponent) CellsByColumn() map[string][]ApplicationComponent {
	out := make(map[string][]ApplicationComponent, len(t.Columns))
	for _, col := range t.Columns {
		out[col.Name] = col.Cells
	}
	return out
}

func (t *QuestionTableComponent) ChildComponents() []ApplicationComponent {
	var out []ApplicationComponent
	for _, col := range t.Columns {
		out = append(out, col.Cells...)
	}
	return out
}

func (t *QuestionTableComponent) Clone() ApplicationComponent {
	out := &QuestionTableComponent{QuestionBase: t.cloneQuestionBase()}
	for _, col := range t.Columns {
		out.Columns = append(out.Columns, TableColumn{
			Name:  col.Name,
			Cells: cloneComponents(col.Cells),
		})
	}
	return out
}
