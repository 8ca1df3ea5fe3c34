package apiclient

import (
	"context"

	"ethics-workflow/internal/model"
)

// GetUser fetches one user's account details by username.
func (c *Client) GetUser(ctx context.Context, username string) (*model.User, error) {
	var out model.User
	if err := c.get(ctx, "get_user", "/api/users/"+queryEscape(username), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCommitteeMembers fetches every user holding the committee-member role.
func (c *Client) GetCommitteeMembers(ctx context.Context) ([]*model.User, error) {
	var out []*model.User
	if err := c.get(ctx, "get_committee_members", "/api/users/committee-members", &out); err != nil {
		return nil, err
	}
	return out, nil
}
