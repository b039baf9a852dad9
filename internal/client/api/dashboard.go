package api

import (
	"context"

	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type DashboardAPI struct {
	c *transport.Client
}

// DashboardStats is passed through as the backend shapes it.
type DashboardStats map[string]any

func (a *DashboardAPI) Stats(ctx context.Context) (DashboardStats, error) {
	var resp DashboardStats
	if err := a.c.Get(ctx, "/api/admin/get-dashboard-stats", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
