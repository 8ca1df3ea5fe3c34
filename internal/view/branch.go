package view

import (
	"fmt"

	"ethics-workflow/internal/template"
)

// executeBranch dispatches a checkbox branch. The return value reports
// whether the triggering check should stand: a declined confirmation
// cancels the check, so the caller must revert its control silently.
func executeBranch(b template.Branch, shape *ViewShape, componentID string) bool {
	if b == nil {
		return true
	}
	switch br := b.(type) {
	case *template.ActionBranch:
		return executeActionBranch(br, shape, componentID)
	case *template.ReplacementBranch:
		return executeReplacementBranch(br, shape)
	default:
		return true
	}
}

func executeActionBranch(b *template.ActionBranch, shape *ViewShape, componentID string) bool {
	ctx := shape.Context
	switch b.Action {
	case template.ActionTerminate:
		if !ctx.confirm(terminateMessage(b.Comment)) {
			return false
		}
		if ctx != nil && ctx.Terminate != nil {
			ctx.Terminate(b.Comment)
		}
		return true
	case template.ActionAttachFile:
		if ctx != nil && ctx.AttachFile != nil {
			ctx.AttachFile(componentID)
		}
		return true
	default:
		return true
	}
}

// executeReplacementBranch swaps every container pair the branch names,
// then asks the hosting composite to re-render its slot so the new
// sub-tree becomes visible. Declining the confirmation leaves the
// template untouched.
func executeReplacementBranch(b *template.ReplacementBranch, shape *ViewShape) bool {
	if !shape.Context.confirm(replacementMessage()) {
		return false
	}
	if shape.TemplateContext == nil {
		return false
	}
	for _, rep := range b.Replacements {
		if res := shape.TemplateContext.ExecuteContainerReplacement(rep.ReplaceID, rep.TargetID); res == nil {
			return false
		}
	}
	if shape.Host != nil {
		if err := shape.Host.Reload(); err != nil {
			return false
		}
	}
	return true
}

func terminateMessage(comment string) string {
	if comment == "" {
		return "This selection will terminate the application. Continue?"
	}
	return fmt.Sprintf("%s Continue?", comment)
}

func replacementMessage() string {
	return "This selection will change later sections of the application. Continue?"
}
