package api

import (
	"context"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type DeadMemberAPI struct {
	c *transport.Client
}

func (a *DeadMemberAPI) List(ctx context.Context) ([]models.DeadMember, error) {
	var resp struct {
		Data []models.DeadMember `json:"data"`
	}
	if err := a.c.Get(ctx, "/api/dead-member", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create marks a member as dead; the backend returns the updated member.
func (a *DeadMemberAPI) Create(ctx context.Context, payload models.DeadMemberInput) (*UserResult, error) {
	var resp UserResult
	if err := a.c.Post(ctx, "/api/dead-member/create", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update amends the record identified by payload.ID.
func (a *DeadMemberAPI) Update(ctx context.Context, payload models.DeadMemberInput) (*MutationResult, error) {
	var resp MutationResult
	if err := a.c.Put(ctx, pathID("/api/dead-member/update/", payload.ID), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
