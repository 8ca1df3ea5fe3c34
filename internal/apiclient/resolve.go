package apiclient

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/common/logger"
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template"
	"ethics-workflow/internal/template/convert"
)

// Resolver turns wire payloads into fully typed applications: raw template
// JSON through the converter registry, answers and files re-keyed by
// componentId, fields assigned through the status-whitelisting
// initialiser.
type Resolver struct {
	client   *Client
	registry *convert.Registry
	log      logger.Logger
}

func NewResolver(client *Client, registry *convert.Registry, log logger.Logger) *Resolver {
	return &Resolver{client: client, registry: registry, log: log}
}

func (r *Resolver) parseTemplate(raw json.RawMessage) (*template.ApplicationTemplate, error) {
	var rawMap map[string]interface{}
	if err := json.Unmarshal(raw, &rawMap); err != nil {
		return nil, fmt.Errorf("decoding template JSON: %w", err)
	}
	return r.registry.ParseTemplate(rawMap)
}

// ResolveApplication assembles a typed application from one payload.
func (r *Resolver) ResolveApplication(ctx context.Context, payload *ApplicationPayload) (*model.Application, error) {
	tpl, err := r.parseTemplate(payload.ApplicationTemplate)
	if err != nil {
		return nil, err
	}

	in, err := model.NewInitialiser(payload.Status)
	if err != nil {
		return nil, err
	}

	answers := make(map[string]*model.Answer, len(payload.Answers))
	for _, a := range payload.Answers {
		answers[a.ComponentID] = a
	}
	files := make(map[string]*model.AttachedFile, len(payload.AttachedFiles))
	for _, f := range payload.AttachedFiles {
		files[f.ComponentID] = f
	}

	type assignment struct {
		field model.Field
		value interface{}
	}
	steps := []assignment{
		{model.FieldID, payload.ID},
		{model.FieldApplicationID, payload.ApplicationID},
		{model.FieldUser, payload.User},
		{model.FieldTemplate, tpl},
		{model.FieldAnswers, answers},
		{model.FieldAttachedFiles, files},
		{model.FieldLastUpdated, payload.LastUpdated},
	}

	if payload.Status != model.StatusDraft {
		comments := make(map[string]*model.CommentThread, len(payload.Comments))
		for _, t := range payload.Comments {
			comments[t.ComponentID] = t
		}
		steps = append(steps,
			assignment{model.FieldComments, comments},
			assignment{model.FieldAssignedCommitteeMembers, payload.AssignedCommitteeMembers},
			assignment{model.FieldPreviousCommitteeMembers, payload.PreviousCommitteeMembers},
			assignment{model.FieldFinalComment, payload.FinalComment},
		)
	}
	if payload.Status == model.StatusReferred {
		steps = append(steps,
			assignment{model.FieldEditableFields, payload.EditableFields},
			assignment{model.FieldReferredBy, payload.ReferredBy},
		)
	}

	for _, step := range steps {
		if err := in.Set(step.field, step.value); err != nil {
			return nil, err
		}
	}
	return in.Build(), nil
}

// ResolveSubmittedApplication resolves a submitted-family payload plus the
// collaborating lookups a review screen needs: the verified applicant
// account and the current committee-member list. The lookups fan out
// concurrently and the whole resolution fails if any of them does.
func (r *Resolver) ResolveSubmittedApplication(ctx context.Context, payload *ApplicationPayload) (*model.Application, []*model.User, error) {
	if payload.User == nil {
		return nil, nil, commonerrors.NewIdentityMismatchError("payload carries no user")
	}

	var (
		account   *model.User
		committee []*model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := r.client.GetUser(gctx, payload.User.Username)
		if err != nil {
			return err
		}
		if !fetched.Is(payload.User) {
			return commonerrors.NewIdentityMismatchError(
				fmt.Sprintf("application user %q, account %q", payload.User.Username, fetched.Username))
		}
		account = fetched
		return nil
	})
	g.Go(func() error {
		var err error
		committee, err = r.client.GetCommitteeMembers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	enriched := *payload
	enriched.User = account
	app, err := r.ResolveApplication(ctx, &enriched)
	if err != nil {
		return nil, nil, err
	}
	return app, committee, nil
}
