package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type AddressAPI struct {
	c *transport.Client
}

type AddressResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Address models.Address `json:"address"`
}

// CreateAddress creates an address, optionally on behalf of userToken.
func (a *AddressAPI) CreateAddress(ctx context.Context, userToken string, payload models.AddressInput) (*AddressResult, error) {
	var resp AddressResult
	err := a.c.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/address/create",
		Body:   payload,
		Header: transport.WithToken(userToken),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AddressAPI) UpdateAddress(ctx context.Context, addressID string, payload models.AddressInput) (*AddressResult, error) {
	var resp AddressResult
	if err := a.c.Put(ctx, pathID("/api/address/update/", addressID), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
