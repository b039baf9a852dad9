package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type UserAPI struct {
	c *transport.Client
}

type UserResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    models.User `json:"user"`
}

// ListUsers lists members. A nil query means no filter.
func (a *UserAPI) ListUsers(ctx context.Context, query *string) (*models.UserList, error) {
	var params url.Values
	if query != nil {
		params = url.Values{"query": {*query}}
	}
	var resp models.UserList
	if err := a.c.Get(ctx, "/api/user", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser registers a new member. The response token belongs to the new
// member and is what the follow-up profile/address calls must use.
func (a *UserAPI) CreateUser(ctx context.Context, payload models.UserCreate) (*UserResult, error) {
	var resp UserResult
	if err := a.c.Post(ctx, "/api/auth/register", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *UserAPI) UpdateUser(ctx context.Context, userID string, payload models.UserUpdate) (*UserResult, error) {
	var resp UserResult
	if err := a.c.Put(ctx, pathID("/api/user/update/", userID), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
