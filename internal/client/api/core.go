package api

import (
	"context"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type CoreAPI struct {
	c *transport.Client
}

// FetchUserInfo returns the member with profile, addresses and related
// records.
func (a *CoreAPI) FetchUserInfo(ctx context.Context, userID string) (*models.UserAllInfo, error) {
	var resp struct {
		Data models.UserAllInfo `json:"data"`
	}
	if err := a.c.Get(ctx, pathID("/api/user/", userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
