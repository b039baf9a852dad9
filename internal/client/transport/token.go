package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenSource yields the ambient bearer token. An empty string means no
// token is stored.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken always returns the same token.
func StaticToken(token string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, error) { return token, nil })
}

// TokenClaims is what can be read from a JWT bearer token without verifying
// it. The signature is the backend's business.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// InspectToken decodes token claims without signature verification.
// Opaque (non-JWT) tokens yield common.ErrInvalidToken.
func InspectToken(token string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	var tc TokenClaims
	tc.Subject, _ = claims.GetSubject()
	if email, ok := claims["email"].(string); ok {
		tc.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}
	return tc, nil
}

// Expired reports whether the claims carry an expiry that lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
