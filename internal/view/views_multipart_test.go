// internal/view/views_multipart_test.go
package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
)

// ==========================
// Test Helper Functions
// ==========================

func yesNoRadio(componentID string) *template.RadioQuestion {
	return &template.RadioQuestion{
		SelectQuestion: template.SelectQuestion{
			QuestionBase: template.QuestionBase{
				ComponentBase: template.ComponentBase{
					Type:        template.TypeRadio,
					Title:       componentID,
					ComponentID: componentID,
				},
				Editable: true,
			},
			Options: []template.Option{
				{Key: "Yes", Label: "Yes"},
				{Key: "No", Label: "No"},
			},
		},
	}
}

// dataStorageQuestion models a two-part question: answering "Yes" to the
// storage part reveals the retention part.
func dataStorageQuestion() *template.MultipartQuestion {
	return &template.MultipartQuestion{
		QuestionBase: template.QuestionBase{
			ComponentBase: template.ComponentBase{
				Type:        template.TypeMultipart,
				Title:       "Data storage",
				ComponentID: "mp1",
				Composite:   true,
			},
			Editable: true,
		},
		Parts: map[string]*template.QuestionPart{
			"storage": {
				Question: yesNoRadio("mp1-storage"),
				Branches: []*template.QuestionBranch{
					template.NewQuestionBranch(nil, "retention", "Yes"),
				},
			},
			"retention": {
				Question: textQuestion("mp1-retention", "retention-period", false),
			},
		},
	}
}

// ==========================
// Part Revelation
// ==========================

func TestMultipart_TargetedPartStartsHidden(t *testing.T) {
	app := draftApplication(t)
	shape := testShape(t, app, dataStorageQuestion())

	v := loadView(t, shape).(*MultipartQuestionView)

	require.Len(t, v.parts, 1)
	assert.Contains(t, v.parts, "storage")
	assert.Len(t, shape.Loader.Instances("mp1:storage"), 1)
	assert.Empty(t, shape.Loader.Instances("mp1:retention"))
}

func TestMultipart_RevealsAndHidesOnLiveAnswer(t *testing.T) {
	app := draftApplication(t)
	shape := testShape(t, app, dataStorageQuestion())
	var changes []QuestionChange
	shape.OnQuestionChange = func(ev QuestionChange) { changes = append(changes, ev) }

	v := loadView(t, shape).(*MultipartQuestionView)

	storage := v.parts["storage"].(*RadioQuestionView)
	storage.Select("Yes")

	require.Len(t, v.parts, 2, "the matching answer reveals the branch target")
	assert.True(t, shape.Form.Has("retention-period"))

	// Part changes bubble under the multipart's own identity.
	require.Len(t, changes, 1)
	assert.Equal(t, "mp1", changes[0].ComponentID)

	// Flipping the answer away hides the part and tears its view down.
	storage.Select("No")
	require.Len(t, v.parts, 1)
	assert.Empty(t, shape.Loader.Instances("mp1:retention"))
	assert.False(t, shape.Form.Has("retention-period"))
	assert.Len(t, changes, 2)
}

func TestMultipart_StoredAnswerRevealsOnMount(t *testing.T) {
	app := draftApplication(t)
	app.PutAnswer(model.NewAnswer(1, "mp1-storage", "Yes=Yes", model.ValueTypeOptions))

	shape := testShape(t, app, dataStorageQuestion())
	var changes []QuestionChange
	shape.OnQuestionChange = func(ev QuestionChange) { changes = append(changes, ev) }

	v := loadView(t, shape).(*MultipartQuestionView)

	require.Len(t, v.parts, 2, "re-hydrated answers reveal dependent parts")
	assert.Empty(t, changes, "mount-time revelation is silent")
}

func TestMultipart_ValueFansOutPerPart(t *testing.T) {
	app := draftApplication(t)
	shape := testShape(t, app, dataStorageQuestion())

	v := loadView(t, shape).(*MultipartQuestionView)
	v.parts["storage"].(*RadioQuestionView).Select("Yes")

	answers := v.Value()
	require.Len(t, answers, 2)
	// Part-name order keeps the fan-out deterministic.
	assert.Equal(t, "mp1-retention", answers[0].ComponentID)
	assert.Equal(t, "mp1-storage", answers[1].ComponentID)
	assert.Equal(t, "Yes=Yes", answers[1].Value)
}

// ==========================
// Question Table
// ==========================

func TestQuestionTable_CellsAggregate(t *testing.T) {
	table := &template.QuestionTableComponent{
		QuestionBase: template.QuestionBase{
			ComponentBase: template.ComponentBase{
				Type:        template.TypeQuestionTable,
				Title:       "Participants",
				ComponentID: "tbl",
				Composite:   true,
			},
			Editable: true,
		},
		Columns: []template.TableColumn{
			{Name: "role", Cells: []template.ApplicationComponent{textQuestion("tbl-r1", "role-1", false)}},
			{Name: "count", Cells: []template.ApplicationComponent{textQuestion("tbl-c1", "count-1", false)}},
		},
	}

	app := draftApplication(t)
	shape := testShape(t, app, table)

	v := loadView(t, shape).(*QuestionTableView)
	require.Len(t, v.cells, 2)
	assert.Len(t, shape.Loader.Instances("tbl"), 2)

	v.cells[0].(*TextQuestionView).SetText("Interviewer")

	answers := v.Value()
	require.Len(t, answers, 2)
	assert.Equal(t, "tbl-r1", answers[0].ComponentID)
	assert.Equal(t, "Interviewer", answers[0].Value)
	assert.Equal(t, "tbl-c1", answers[1].ComponentID)

	v.Destroy()
	assert.Empty(t, shape.Loader.Instances("tbl"))
	assert.False(t, shape.Form.Has("role-1"))
}
