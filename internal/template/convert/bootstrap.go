package convert

import (
	"ethics-workflow/internal/template"
)

// RegisterDefaults installs the converter for every component type. A
// single explicit bootstrap keeps the discriminant → converter mapping
// deterministic and load-time-complete instead of depending on import-order
// side effects.
func RegisterDefaults(reg *Registry) {
	reg.Register(template.TypeText, textConverter{})
	reg.Register(template.TypeContainer, containerConverter{registry: reg})
	reg.Register(template.TypeSection, sectionConverter{registry: reg})

	reg.Register(template.TypeTextQuestion, newQuestionConverter(textQuestionParser{}))
	reg.Register(template.TypeSelect, newQuestionConverter(selectQuestionParser{}))
	reg.Register(template.TypeCheckbox, newQuestionConverter(checkboxQuestionParser{}))
	reg.Register(template.TypeRadio, newQuestionConverter(radioQuestionParser{}))
	reg.Register(template.TypeSignature, newQuestionConverter(signatureQuestionParser{}))

	reg.Register(template.TypeMultipart, newCompositeQuestionConverter(multipartQuestionParser{registry: reg}))
	reg.Register(template.TypeCheckboxGroup, newQuestionConverter(checkboxGroupParser{}))
	reg.Register(template.TypeQuestionTable, newCompositeQuestionConverter(questionTableParser{registry: reg}))
}

// NewDefaultRegistry builds a registry with every default converter
// installed and verified complete.
func NewDefaultRegistry() (*Registry, error) {
	reg := NewRegistry()
	RegisterDefaults(reg)
	if err := reg.EnsureComplete(); err != nil {
		return nil, err
	}
	return reg, nil
}
