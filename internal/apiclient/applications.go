package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ethics-workflow/internal/model"
)

// ApplicationPayload is the wire shape of an application. The template
// arrives as raw JSON because component decoding goes through the
// converter registry, and the optional review fields discriminate the
// submitted and referred response variants by status.
type ApplicationPayload struct {
	ID                  int64           `json:"id"`
	ApplicationID       string          `json:"applicationId"`
	Status              model.Status    `json:"status"`
	User                *model.User     `json:"user"`
	ApplicationTemplate json.RawMessage `json:"applicationTemplate"`

	Answers       []*model.Answer       `json:"answers"`
	AttachedFiles []*model.AttachedFile `json:"attachedFiles"`

	Comments                 []*model.CommentThread `json:"comments,omitempty"`
	AssignedCommitteeMembers []*model.User          `json:"assignedCommitteeMembers,omitempty"`
	PreviousCommitteeMembers []*model.User          `json:"previousCommitteeMembers,omitempty"`
	FinalComment             string                 `json:"finalComment,omitempty"`

	EditableFields []string    `json:"editableFields,omitempty"`
	ReferredBy     *model.User `json:"referredBy,omitempty"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// GetApplication fetches one application by its applicationId.
func (c *Client) GetApplication(ctx context.Context, applicationID string) (*ApplicationPayload, error) {
	var out ApplicationPayload
	if err := c.get(ctx, "get_application", "/api/applications/"+queryEscape(applicationID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateApplication persists a new draft and returns the stored payload
// with its server-assigned ids.
func (c *Client) CreateApplication(ctx context.Context, payload *ApplicationPayload) (*ApplicationPayload, error) {
	var out ApplicationPayload
	if err := c.post(ctx, "create_application", "/api/applications", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplication replaces the stored application.
func (c *Client) UpdateApplication(ctx context.Context, payload *ApplicationPayload) (*ApplicationPayload, error) {
	var out ApplicationPayload
	path := "/api/applications/" + queryEscape(payload.ApplicationID)
	if err := c.put(ctx, "update_application", path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus moves the application to a new lifecycle status.
func (c *Client) UpdateStatus(ctx context.Context, applicationID string, status model.Status) error {
	path := "/api/applications/" + queryEscape(applicationID) + "/status"
	body := map[string]string{"status": string(status)}
	return c.patch(ctx, "update_status", path, body, nil)
}

// SaveAnswers persists the given answers against the application. This is
// the autosave entry point.
func (c *Client) SaveAnswers(ctx context.Context, applicationID string, answers []*model.Answer) error {
	path := "/api/applications/" + queryEscape(applicationID) + "/answers"
	return c.put(ctx, "save_answers", path, answers, nil)
}

// Search queries applications. With or set, the terms combine
// disjunctively.
func (c *Client) Search(ctx context.Context, query string, or bool) ([]*ApplicationPayload, error) {
	var out []*ApplicationPayload
	path := fmt.Sprintf("/api/applications/search?query=%s&or=%t", queryEscape(query), or)
	if err := c.get(ctx, "search_applications", path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTemplate fetches a template's raw JSON by template id. Decoding into
// typed components is the converter registry's job.
func (c *Client) GetTemplate(ctx context.Context, templateID string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "get_template", "/api/templates/"+queryEscape(templateID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
