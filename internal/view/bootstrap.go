package view

import "ethics-workflow/internal/template"

// RegisterDefaultRenderers registers the built-in renderer for every
// component type. Registration is explicit so a missing renderer is a
// startup error, not a render-time one.
func RegisterDefaultRenderers(r *RendererRegistry) {
	r.Register(template.TypeText, func() ViewRenderer { return &TextView{} })
	r.Register(template.TypeTextQuestion, func() ViewRenderer { return &TextQuestionView{} })
	r.Register(template.TypeSelect, func() ViewRenderer { return &SelectQuestionView{} })
	r.Register(template.TypeCheckbox, func() ViewRenderer { return &CheckboxQuestionView{} })
	r.Register(template.TypeRadio, func() ViewRenderer { return &RadioQuestionView{} })
	r.Register(template.TypeSignature, func() ViewRenderer { return &SignatureQuestionView{} })
	r.Register(template.TypeMultipart, func() ViewRenderer { return &MultipartQuestionView{} })
	r.Register(template.TypeCheckboxGroup, func() ViewRenderer { return &CheckboxGroupView{} })
	r.Register(template.TypeQuestionTable, func() ViewRenderer { return &QuestionTableView{} })
	r.Register(template.TypeContainer, func() ViewRenderer { return &ContainerView{} })
	r.Register(template.TypeSection, func() ViewRenderer { return &SectionView{} })
}

// NewDefaultRendererRegistry builds and verifies the built-in registry.
func NewDefaultRendererRegistry() (*RendererRegistry, error) {
	r := NewRendererRegistry()
	RegisterDefaultRenderers(r)
	if err := r.EnsureComplete(); err != nil {
		return nil, err
	}
	return r, nil
}
