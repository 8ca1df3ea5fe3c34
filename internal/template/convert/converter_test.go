// internal/template/convert/converter_test.go
package convert

import (
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/common/metrics"
	"ethics-workflow/internal/template"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestRegistry(t *testing.T) *Registry {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)
	return reg
}

// roundTrip marshals a typed component and converts the resulting raw JSON
// back through the registry.
func roundTrip(t *testing.T, reg *Registry, comp template.ApplicationComponent) template.ApplicationComponent {
	data, err := json.Marshal(comp)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	out, err := reg.ConvertComponent(raw)
	require.NoError(t, err)
	return out
}

// ==========================
// Registry Tests
// ==========================

func TestRegistry_EnsureComplete(t *testing.T) {
	reg := NewRegistry()
	err := reg.EnsureComplete()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converter registry incomplete")

	RegisterDefaults(reg)
	assert.NoError(t, reg.EnsureComplete())
}

func TestRegistry_UnregisteredType(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ConvertComponent(map[string]interface{}{
		"type":        "video-question",
		"title":       "T",
		"componentId": "c1",
	})
	require.Error(t, err)

	engineErr, ok := err.(*commonerrors.EngineError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeNoConverterForType, engineErr.Code)
	assert.Contains(t, engineErr.Message, "video-question")
}

func TestRegistry_MissingTypeDiscriminant(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ConvertComponent(map[string]interface{}{"title": "T"})
	require.Error(t, err)
}

// ==========================
// Parse Scenarios
// ==========================

func TestParseTemplate_TwoLevelScenario(t *testing.T) {
	reg := newTestRegistry(t)

	raw := map[string]interface{}{
		"id":   "t1",
		"name": "T1",
		"components": []interface{}{
			map[string]interface{}{
				"type":        "section",
				"title":       "S",
				"componentId": "s1",
				"components": []interface{}{
					map[string]interface{}{
						"type":        "text",
						"title":       "T",
						"componentId": "c1",
						"content":     "hello",
					},
				},
			},
		},
	}

	tpl, err := reg.ParseTemplate(raw)
	require.NoError(t, err)
	require.Len(t, tpl.Components, 1)

	section, ok := tpl.Components[0].(*template.SectionComponent)
	require.True(t, ok)
	assert.Equal(t, "s1", section.ComponentID)
	require.Len(t, section.Components, 1)

	text, ok := section.Components[0].(*template.TextComponent)
	require.True(t, ok)
	assert.Equal(t, "c1", text.ComponentID)
	assert.Equal(t, "hello", text.Content)
}

func TestParseTemplate_EnvelopeRejected(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ParseTemplate(map[string]interface{}{
		"id": "t1",
		// name missing
		"components": []interface{}{},
	})
	require.Error(t, err)

	engineErr, ok := err.(*commonerrors.EngineError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeTemplateParseFailed, engineErr.Code)
}

func TestParseTemplate_CountsParsesAndFailures(t *testing.T) {
	reg := newTestRegistry(t)

	parsedBefore := testutil.ToFloat64(metrics.TemplatesParsed.WithLabelValues("tpl-counted"))
	failedBefore := testutil.ToFloat64(metrics.TemplateParseFailures.WithLabelValues("tpl-counted"))

	_, err := reg.ParseTemplate(map[string]interface{}{
		"id":   "tpl-counted",
		"name": "Counted",
		"components": []interface{}{
			map[string]interface{}{
				"type":        "text",
				"title":       "T",
				"componentId": "c1",
				"content":     "hello",
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, parsedBefore+1,
		testutil.ToFloat64(metrics.TemplatesParsed.WithLabelValues("tpl-counted")))

	// Envelope rejection counts under the same template id.
	_, err = reg.ParseTemplate(map[string]interface{}{
		"id":         "tpl-counted",
		"components": []interface{}{},
	})
	require.Error(t, err)
	assert.Equal(t, failedBefore+1,
		testutil.ToFloat64(metrics.TemplateParseFailures.WithLabelValues("tpl-counted")))

	// So does a component failure deeper in the tree.
	_, err = reg.ParseTemplate(map[string]interface{}{
		"id":   "tpl-counted",
		"name": "Counted",
		"components": []interface{}{
			map[string]interface{}{"type": "text", "title": "broken"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, failedBefore+2,
		testutil.ToFloat64(metrics.TemplateParseFailures.WithLabelValues("tpl-counted")))
}

func TestConvert_MissingKeysListedSorted(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ConvertComponent(map[string]interface{}{
		"type":  "text-question",
		"title": "Q",
	})
	require.Error(t, err)

	engineErr, ok := err.(*commonerrors.EngineError)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeComponentKeysMissing, engineErr.Code)
	// componentId, description, name, sorted
	assert.Contains(t, engineErr.Details, "componentId")
	assert.Contains(t, engineErr.Details, "description")
	assert.Contains(t, engineErr.Details, "name")
}

func TestConvert_InvalidChildAbortsParent(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.ConvertComponent(map[string]interface{}{
		"type":        "section",
		"title":       "S",
		"componentId": "s1",
		"components": []interface{}{
			map[string]interface{}{
				"type":        "text",
				"title":       "ok",
				"componentId": "c1",
				"content":     "fine",
			},
			map[string]interface{}{
				"type":  "text",
				"title": "broken",
				// componentId and content missing
			},
		},
	})
	require.Error(t, err)
}

func TestConvert_DescriptionNewlinesNormalized(t *testing.T) {
	reg := newTestRegistry(t)

	out, err := reg.ConvertComponent(map[string]interface{}{
		"type":        "text-question",
		"title":       "Q",
		"componentId": "q1",
		"description": "line one\r\nline two\\nline three",
		"name":        "q1name",
	})
	require.NoError(t, err)

	q := out.(*template.TextQuestion)
	assert.Equal(t, "line one\nline two\nline three", q.Description)
}

func TestConvert_EditableDefaultsTrue(t *testing.T) {
	reg := newTestRegistry(t)

	out, err := reg.ConvertComponent(map[string]interface{}{
		"type":        "text-question",
		"title":       "Q",
		"componentId": "q1",
		"description": "d",
		"name":        "n",
	})
	require.NoError(t, err)
	assert.True(t, out.(*template.TextQuestion).Editable)

	out, err = reg.ConvertComponent(map[string]interface{}{
		"type":        "text-question",
		"title":       "Q",
		"componentId": "q1",
		"description": "d",
		"name":        "n",
		"editable":    false,
	})
	require.NoError(t, err)
	assert.False(t, out.(*template.TextQuestion).Editable)
}

// ==========================
// Round Trips
// ==========================

func TestRoundTrip_Text(t *testing.T) {
	reg := newTestRegistry(t)

	original := &template.TextComponent{
		ComponentBase: template.ComponentBase{
			Type:        template.TypeText,
			Title:       "Intro",
			ComponentID: "c1",
		},
		Content: "hello",
	}
	assert.Equal(t, original, roundTrip(t, reg, original))
}

func TestRoundTrip_SelectQuestion(t *testing.T) {
	reg := newTestRegistry(t)

	original := &template.SelectQuestion{
		QuestionBase: template.QuestionBase{
			ComponentBase: template.ComponentBase{
				Type:        template.TypeSelect,
				Title:       "Department",
				ComponentID: "q1",
			},
			Description: "pick one",
			Name:        "department",
			Required:    true,
			Editable:    true,
		},
		Options: []template.Option{
			{Key: "cs", Label: "Computer Science"},
			{Key: "psy", Label: "Psychology"},
		},
	}
	assert.Equal(t, original, roundTrip(t, reg, original))
}

func TestRoundTrip_SectionWithChildren(t *testing.T) {
	reg := newTestRegistry(t)

	original := &template.SectionComponent{
		ComponentBase: template.ComponentBase{
			Type:        template.TypeSection,
			Title:       "Details",
			ComponentID: "s1",
			Composite:   true,
		},
		AutoSave: true,
		Components: []template.ApplicationComponent{
			&template.TextQuestion{
				QuestionBase: template.QuestionBase{
					ComponentBase: template.ComponentBase{
						Type:        template.TypeTextQuestion,
						Title:       "Name",
						ComponentID: "q1",
					},
					Description: "full name",
					Name:        "name",
					Required:    true,
					Editable:    true,
				},
				SingleLine: true,
			},
		},
	}
	assert.Equal(t, original, roundTrip(t, reg, original))
}

// ==========================
// Branch Parsing
// ==========================

func TestConvert_CheckboxGroupWithBranches(t *testing.T) {
	reg := newTestRegistry(t)

	out, err := reg.ConvertComponent(map[string]interface{}{
		"type":        "checkbox-group",
		"title":       "Risks",
		"componentId": "g1",
		"description": "d",
		"name":        "risks",
		"multiple":    true,
		"defaultBranch": map[string]interface{}{
			"type":   "ACTION_BRANCH",
			"action": "attach-file",
		},
		"checkboxes": []interface{}{
			map[string]interface{}{
				"title":      "Vulnerable participants",
				"identifier": "vulnerable",
				"branch": map[string]interface{}{
					"type": "REPLACEMENT_BRANCH",
					"replacements": []interface{}{
						map[string]interface{}{"replaceId": "cA", "targetId": "t1.cB"},
					},
				},
			},
			map[string]interface{}{
				"title":      "Deception",
				"identifier": "deception",
			},
		},
	})
	require.NoError(t, err)

	group := out.(*template.CheckboxGroupComponent)
	require.Len(t, group.Checkboxes, 2)

	action, ok := group.DefaultBranch.(*template.ActionBranch)
	require.True(t, ok)
	assert.Equal(t, template.ActionAttachFile, action.Action)

	replacement, ok := group.Checkboxes[0].Branch.(*template.ReplacementBranch)
	require.True(t, ok)
	require.Len(t, replacement.Replacements, 1)
	assert.Equal(t, "cA", replacement.Replacements[0].ReplaceID)
	assert.Equal(t, "t1.cB", replacement.Replacements[0].TargetID)

	// The unbranched box falls back to the group default.
	assert.Same(t, group.DefaultBranch, group.Checkboxes[1].EffectiveBranch(group.DefaultBranch))
}

func TestConvert_MultipartParts(t *testing.T) {
	reg := newTestRegistry(t)

	out, err := reg.ConvertComponent(map[string]interface{}{
		"type":        "multipart-question",
		"title":       "Data",
		"componentId": "m1",
		"description": "d",
		"name":        "data",
		"parts": map[string]interface{}{
			"collects": map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "radio-question",
					"title":       "Collects personal data?",
					"componentId": "m1-collects",
					"description": "d",
					"name":        "collects",
					"options":     []interface{}{"Yes", "No"},
				},
				"branches": []interface{}{
					map[string]interface{}{
						"type":  "QUESTION_BRANCH",
						"part":  "retention",
						"value": "Yes",
					},
				},
			},
			"retention": map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "text-question",
					"title":       "Retention period",
					"componentId": "m1-retention",
					"description": "d",
					"name":        "retention",
				},
			},
		},
	})
	require.NoError(t, err)

	mp := out.(*template.MultipartQuestion)
	assert.True(t, mp.Composite)
	require.Len(t, mp.Parts, 2)
	require.Len(t, mp.Parts["collects"].Branches, 1)
	assert.Equal(t, "retention", mp.Parts["collects"].Branches[0].Part)

	// Bare string options become their own key and label.
	radio := mp.Parts["collects"].Question.(*template.RadioQuestion)
	assert.Equal(t, template.Option{Key: "Yes", Label: "Yes"}, radio.Options[0])
	assert.False(t, radio.Multiple)
}
