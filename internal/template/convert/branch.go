package convert

import (
	"fmt"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/template"
)

// convertBranch parses one branch object, discriminated by its type field.
func convertBranch(raw map[string]interface{}) (template.Branch, error) {
	typeStr, ok := raw["type"].(string)
	if !ok || typeStr == "" {
		return nil, commonerrors.NewComponentShapeError("branch", "branch has no type discriminant")
	}

	switch template.BranchType(typeStr) {
	case template.ActionBranchType:
		action := stringOf(raw, "action")
		switch template.BranchAction(action) {
		case template.ActionTerminate, template.ActionAttachFile:
		default:
			return nil, commonerrors.NewComponentShapeError("branch",
				fmt.Sprintf("unknown branch action '%s'", action))
		}
		return template.NewActionBranch(
			optionalDatabaseID(raw),
			template.BranchAction(action),
			stringOf(raw, "comment"),
		), nil

	case template.ReplacementBranchType:
		rawReplacements, ok := raw["replacements"].([]interface{})
		if !ok {
			return nil, commonerrors.NewComponentShapeError("branch", "replacements must be an array")
		}
		replacements := make([]template.Replacement, 0, len(rawReplacements))
		for i, item := range rawReplacements {
			obj, ok := item.(map[string]interface{})
			if !ok {
				return nil, commonerrors.NewComponentShapeError("branch",
					fmt.Sprintf("replacement %d is not an object", i))
			}
			replaceID := stringOf(obj, "replaceId")
			targetID := stringOf(obj, "targetId")
			if replaceID == "" || targetID == "" {
				return nil, commonerrors.NewComponentShapeError("branch",
					fmt.Sprintf("replacement %d needs replaceId and targetId", i))
			}
			replacements = append(replacements, template.Replacement{
				ReplaceID: replaceID,
				TargetID:  targetID,
			})
		}
		return template.NewReplacementBranch(optionalDatabaseID(raw), replacements), nil

	case template.QuestionBranchType:
		part := stringOf(raw, "part")
		if part == "" {
			return nil, commonerrors.NewComponentShapeError("branch", "question branch needs a part")
		}
		return template.NewQuestionBranch(
			optionalDatabaseID(raw),
			part,
			stringOf(raw, "value"),
		), nil

	default:
		return nil, commonerrors.NewComponentShapeError("branch",
			fmt.Sprintf("unknown branch type '%s'", typeStr))
	}
}

// optionalBranch parses raw[key] as a branch when present.
func optionalBranch(raw map[string]interface{}, key string, t template.ComponentType) (template.Branch, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, shapeError(t, key+" must be an object")
	}
	return convertBranch(obj)
}
