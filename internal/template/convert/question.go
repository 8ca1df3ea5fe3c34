package convert

import (
	"ethics-workflow/internal/template"
)

// questionParser is implemented by each concrete question converter: only
// the type-specific fields. The shared questionConverter layers on the
// optional question attributes and description normalization.
type questionParser interface {
	componentType() template.ComponentType
	requiredKeys() []string
	parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error)
}

// questionConverter is the abstract base for every question variant.
type questionConverter struct {
	parser    questionParser
	composite bool
}

func newQuestionConverter(p questionParser) questionConverter {
	return questionConverter{parser: p}
}

func newCompositeQuestionConverter(p questionParser) questionConverter {
	return questionConverter{parser: p, composite: true}
}

func (c questionConverter) Validate(raw map[string]interface{}) error {
	keys := append([]string{"title", "componentId", "description", "name"},
		c.parser.requiredKeys()...)
	return requireKeys(raw, c.parser.componentType(), keys...)
}

func (c questionConverter) Convert(raw map[string]interface{}) (template.ApplicationComponent, error) {
	if err := c.Validate(raw); err != nil {
		return nil, err
	}

	base := template.QuestionBase{
		ComponentBase: baseOf(raw, c.parser.componentType(), c.composite),
		Description:   normalizeNewlines(stringOf(raw, "description")),
		Name:          stringOf(raw, "name"),
		Required:      boolOf(raw, "required"),
		Editable:      boolOr(raw, "editable", true),
		Autofill:      stringOf(raw, "autofill"),
		RequestInput:  boolOf(raw, "requestInput"),
	}
	return c.parser.parseBase(raw, base)
}

// --- text question ---

type textQuestionParser struct{}

func (textQuestionParser) componentType() template.ComponentType { return template.TypeTextQuestion }
func (textQuestionParser) requiredKeys() []string                { return nil }

func (textQuestionParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	return &template.TextQuestion{
		QuestionBase: base,
		SingleLine:   boolOf(raw, "singleLine"),
	}, nil
}

// --- select family ---

func parseOptions(raw map[string]interface{}, t template.ComponentType) ([]template.Option, error) {
	rawOptions, err := arrayOf(raw, "options", t)
	if err != nil {
		return nil, err
	}
	options := make([]template.Option, 0, len(rawOptions))
	for _, item := range rawOptions {
		obj, ok := item.(map[string]interface{})
		if !ok {
			// A bare string option is its own key and label.
			if s, isStr := item.(string); isStr {
				options = append(options, template.Option{Key: s, Label: s})
				continue
			}
			return nil, shapeError(t, "options entries must be objects or strings")
		}
		options = append(options, template.Option{
			Key:   stringOf(obj, "key"),
			Label: stringOf(obj, "label"),
		})
	}
	return options, nil
}

type selectQuestionParser struct{}

func (selectQuestionParser) componentType() template.ComponentType { return template.TypeSelect }
func (selectQuestionParser) requiredKeys() []string                { return []string{"options"} }

func (selectQuestionParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	options, err := parseOptions(raw, template.TypeSelect)
	if err != nil {
		return nil, err
	}
	return &template.SelectQuestion{
		QuestionBase: base,
		Options:      options,
		Multiple:     boolOf(raw, "multiple"),
	}, nil
}

type checkboxQuestionParser struct{}

func (checkboxQuestionParser) componentType() template.ComponentType { return template.TypeCheckbox }
func (checkboxQuestionParser) requiredKeys() []string                { return []string{"options"} }

func (checkboxQuestionParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	options, err := parseOptions(raw, template.TypeCheckbox)
	if err != nil {
		return nil, err
	}
	return &template.CheckboxQuestion{
		SelectQuestion: template.SelectQuestion{
			QuestionBase: base,
			Options:      options,
			// Checkboxes multi-select unless the author turns it off.
			Multiple: boolOr(raw, "multiple", true),
		},
	}, nil
}

type radioQuestionParser struct{}

func (radioQuestionParser) componentType() template.ComponentType { return template.TypeRadio }
func (radioQuestionParser) requiredKeys() []string                { return []string{"options"} }

func (radioQuestionParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	options, err := parseOptions(raw, template.TypeRadio)
	if err != nil {
		return nil, err
	}
	return &template.RadioQuestion{
		SelectQuestion: template.SelectQuestion{
			QuestionBase: base,
			Options:      options,
			// Radios are always single-select.
			Multiple: false,
		},
	}, nil
}

// --- signature ---

type signatureQuestionParser struct{}

func (signatureQuestionParser) componentType() template.ComponentType { return template.TypeSignature }
func (signatureQuestionParser) requiredKeys() []string                { return nil }

func (signatureQuestionParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	return &template.SignatureQuestion{
		QuestionBase: base,
		Label:        stringOf(raw, "label"),
	}, nil
}
