package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type ProfileAPI struct {
	c *transport.Client
}

type ProfileResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Profile models.Profile `json:"profile"`
}

// CreateProfile creates a profile. A non-empty userToken is sent instead of
// the signed-in administrator's token.
func (a *ProfileAPI) CreateProfile(ctx context.Context, userToken string, payload models.ProfileCreate) (*ProfileResult, error) {
	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		User    models.Profile `json:"user"`
	}
	err := a.c.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/profile/create",
		Body:   payload,
		Header: transport.WithToken(userToken),
	}, &resp)
	if err != nil {
		return nil, err
	}
	// The create endpoint answers with the profile under "user".
	return &ProfileResult{Success: resp.Success, Message: resp.Message, Profile: resp.User}, nil
}

func (a *ProfileAPI) UpdateProfile(ctx context.Context, profileID string, payload models.ProfileUpdate) (*ProfileResult, error) {
	var resp ProfileResult
	if err := a.c.Put(ctx, pathID("/api/profile/update/", profileID), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
