// Package session holds the signed-in administrator's session: hydration
// from persisted credentials at startup, login, logout and the derived
// admin flag.
//
// A Store is created once by the application and shared by everything that
// needs the session. Its HandleForbidden method is meant to be registered as
// the transport's OnForbidden callback, which is how an expired token ends
// the session.
package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/memberdesk/internal/client/api"
	"github.com/dmitrijs2005/memberdesk/internal/client/models"
)

// ErrSuperseded is returned by Login when a newer Login, Initialize or
// Logout started before it completed. Its result is discarded.
var ErrSuperseded = errors.New("session operation superseded")

const (
	msgLoginFailed = "Login failed"
	msgAuthFailed  = "Authentication failed"
)

// State is a snapshot of the session.
type State struct {
	UserInfo        *models.UserAllInfo
	IsLoading       bool
	IsAuthenticated bool
	Error           string
}

// IsAdmin reports whether the session is active and its user has the
// administrator role.
func (s State) IsAdmin() bool {
	return s.IsAuthenticated && s.UserInfo != nil && s.UserInfo.User.Role == roleAdmin
}

// Storage persists the credentials between runs.
type Storage interface {
	Token(ctx context.Context) (string, error)
	UserID(ctx context.Context) (string, error)
	Save(ctx context.Context, token, userID string) error
	RemoveToken(ctx context.Context) error
	Clear(ctx context.Context) error
}

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
}

// UserInfoFetcher loads the full user record by id.
type UserInfoFetcher interface {
	FetchUserInfo(ctx context.Context, userID string) (*models.UserAllInfo, error)
}

// Navigator performs the redirects the session triggers.
type Navigator interface {
	Navigate(route string)
}

// Invalidator is a cache that must be dropped when the session changes.
type Invalidator interface {
	Clear()
}
