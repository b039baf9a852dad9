package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

type AuthAPI struct {
	c *transport.Client
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := a.c.Post(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User.ID == "" {
		return nil, fmt.Errorf("login response carries no token or user id")
	}
	return &resp, nil
}
