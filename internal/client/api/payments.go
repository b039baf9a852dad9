package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type PaymentAPI struct {
	c *transport.Client
}

// ListPayments returns payments, optionally bounded by YYYY-MM-DD dates.
// Empty bounds are omitted.
func (a *PaymentAPI) ListPayments(ctx context.Context, startDate, endDate string) ([]models.Payment, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("startDate", startDate)
	}
	if endDate != "" {
		params.Set("endDate", endDate)
	}
	var resp struct {
		Data []models.Payment `json:"data"`
	}
	if err := a.c.Get(ctx, "/api/payment", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *PaymentAPI) OutstandingOfMember(ctx context.Context, userID string) (*models.Outstanding, error) {
	var resp struct {
		Data models.Outstanding `json:"data"`
	}
	if err := a.c.Get(ctx, pathID("/api/payment/get-outstanding-table/", userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// AllUserOutstanding returns the per-member outstanding amounts as the
// backend reports them.
func (a *PaymentAPI) AllUserOutstanding(ctx context.Context) ([]map[string]any, error) {
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := a.c.Get(ctx, "/api/payment/get-all-user-outstanding-amount", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *PaymentAPI) AddPayment(ctx context.Context, payload models.PaymentInput) (*MutationResult, error) {
	var resp MutationResult
	if err := a.c.Post(ctx, "/api/payment/create", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePayment amends the payment identified by payload.ID.
func (a *PaymentAPI) UpdatePayment(ctx context.Context, payload models.PaymentInput) (*MutationResult, error) {
	var resp MutationResult
	if err := a.c.Put(ctx, pathID("/api/payment/update/", payload.ID), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *PaymentAPI) ListPayouts(ctx context.Context, limit, page int) ([]models.Payout, error) {
	params := url.Values{
		"limit": {strconv.Itoa(limit)},
		"page":  {strconv.Itoa(page)},
	}
	var resp struct {
		Data []models.Payout `json:"data"`
	}
	if err := a.c.Get(ctx, "/api/payout", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *PaymentAPI) AddPayout(ctx context.Context, payload models.PayoutCreate) (*MutationResult, error) {
	var resp MutationResult
	if err := a.c.Post(ctx, "/api/payout/create", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
