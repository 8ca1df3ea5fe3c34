package convert

import (
	"fmt"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/template"
)

// --- multipart question ---

type multipartQuestionParser struct {
	registry *Registry
}

func (multipartQuestionParser) componentType() template.ComponentType {
	return template.TypeMultipart
}

func (multipartQuestionParser) requiredKeys() []string { return []string{"parts"} }

func (p multipartQuestionParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	rawParts, ok := raw["parts"].(map[string]interface{})
	if !ok {
		return nil, shapeError(template.TypeMultipart, "parts must be an object")
	}

	parts := make(map[string]*template.QuestionPart, len(rawParts))
	for name, item := range rawParts {
		partRaw, ok := item.(map[string]interface{})
		if !ok {
			return nil, shapeError(template.TypeMultipart,
				fmt.Sprintf("part '%s' is not an object", name))
		}
		questionRaw, ok := partRaw["question"].(map[string]interface{})
		if !ok {
			return nil, shapeError(template.TypeMultipart,
				fmt.Sprintf("part '%s' has no question object", name))
		}
		question, err := p.registry.ConvertComponent(questionRaw)
		if err != nil {
			return nil, err
		}

		part := &template.QuestionPart{Question: question}
		rawBranches, err := arrayOf(partRaw, "branches", template.TypeMultipart)
		if err != nil {
			return nil, err
		}
		for i, b := range rawBranches {
			branchRaw, ok := b.(map[string]interface{})
			if !ok {
				return nil, shapeError(template.TypeMultipart,
					fmt.Sprintf("part '%s' branch %d is not an object", name, i))
			}
			branch, err := convertBranch(branchRaw)
			if err != nil {
				return nil, err
			}
			qb, ok := branch.(*template.QuestionBranch)
			if !ok {
				return nil, shapeError(template.TypeMultipart,
					fmt.Sprintf("part '%s' branch %d must be a question branch", name, i))
			}
			part.Branches = append(part.Branches, qb)
		}
		parts[name] = part
	}

	base.Composite = true
	return &template.MultipartQuestion{QuestionBase: base, Parts: parts}, nil
}

// --- checkbox group ---

type checkboxGroupParser struct{}

func (checkboxGroupParser) componentType() template.ComponentType {
	return template.TypeCheckboxGroup
}

func (checkboxGroupParser) requiredKeys() []string { return []string{"checkboxes"} }

func (checkboxGroupParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	rawBoxes, ok := raw["checkboxes"].([]interface{})
	if !ok {
		return nil, shapeError(template.TypeCheckboxGroup, "checkboxes must be an array")
	}

	defaultBranch, err := optionalBranch(raw, "defaultBranch", template.TypeCheckboxGroup)
	if err != nil {
		return nil, err
	}

	group := &template.CheckboxGroupComponent{
		QuestionBase:  base,
		Multiple:      boolOf(raw, "multiple"),
		DefaultBranch: defaultBranch,
	}

	for i, item := range rawBoxes {
		boxRaw, ok := item.(map[string]interface{})
		if !ok {
			return nil, shapeError(template.TypeCheckboxGroup,
				fmt.Sprintf("checkbox %d is not an object", i))
		}
		if err := requireKeys(boxRaw, template.TypeCheckboxGroup, "title", "identifier"); err != nil {
			return nil, err
		}
		branch, err := optionalBranch(boxRaw, "branch", template.TypeCheckboxGroup)
		if err != nil {
			return nil, err
		}
		group.Checkboxes = append(group.Checkboxes, &template.Checkbox{
			DatabaseID: optionalDatabaseID(boxRaw),
			Title:      stringOf(boxRaw, "title"),
			Identifier: stringOf(boxRaw, "identifier"),
			Branch:     branch,
			Checked:    boolOf(boxRaw, "value"),
		})
	}
	return group, nil
}

// --- question table ---

type questionTableParser struct {
	registry *Registry
}

func (questionTableParser) componentType() template.ComponentType {
	return template.TypeQuestionTable
}

func (questionTableParser) requiredKeys() []string { return []string{"columns"} }

func (p questionTableParser) parseBase(raw map[string]interface{}, base template.QuestionBase) (template.ApplicationComponent, error) {
	rawColumns, ok := raw["columns"].([]interface{})
	if !ok {
		return nil, shapeError(template.TypeQuestionTable, "columns must be an array")
	}

	base.Composite = true
	table := &template.QuestionTableComponent{QuestionBase: base}
	for i, item := range rawColumns {
		colRaw, ok := item.(map[string]interface{})
		if !ok {
			return nil, shapeError(template.TypeQuestionTable,
				fmt.Sprintf("column %d is not an object", i))
		}
		name := stringOf(colRaw, "name")
		if name == "" {
			return nil, commonerrors.NewMissingKeysError(string(template.TypeQuestionTable), []string{"name"})
		}
		rawCells, ok := colRaw["cells"].([]interface{})
		if !ok {
			return nil, shapeError(template.TypeQuestionTable,
				fmt.Sprintf("column '%s' cells must be an array", name))
		}
		cells, err := p.registry.ConvertComponents(rawCells, template.TypeQuestionTable)
		if err != nil {
			return nil, err
		}
		table.Columns = append(table.Columns, template.TableColumn{Name: name, Cells: cells})
	}
	return table, nil
}
