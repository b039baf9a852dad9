package transport

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "U1",
		"email": "a@b.com",
		"exp":   exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestInspectToken_ReadsClaimsWithoutVerification(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	claims, err := InspectToken(signedToken(t, exp))
	require.NoError(t, err)

	assert.Equal(t, "U1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(exp.Add(time.Minute)))
}

func TestInspectToken_OpaqueToken(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenClaims_NoExpiryNeverExpires(t *testing.T) {
	assert.False(t, TokenClaims{}.Expired(time.Now()))
}

func TestServerMessage(t *testing.T) {
	apiErr := &APIError{StatusCode: 401, Message: "Invalid credentials"}
	assert.Equal(t, "Invalid credentials", ServerMessage(apiErr, "Login failed"))
	assert.Equal(t, "Login failed", ServerMessage(&APIError{StatusCode: 500}, "Login failed"))
	assert.Equal(t, "Login failed", ServerMessage(ErrUnavailable, "Login failed"))
}

func TestServerMessageFromBody(t *testing.T) {
	assert.Equal(t, "m", serverMessage([]byte(`{"message":"m","error":"e"}`)))
	assert.Equal(t, "e", serverMessage([]byte(`{"message":"","error":"e"}`)))
	assert.Equal(t, "", serverMessage([]byte(`{"message":42}`)))
	assert.Equal(t, "", serverMessage([]byte(`<html>`)))
	assert.Equal(t, "", serverMessage(nil))
}

func TestAPIError_Is(t *testing.T) {
	assert.ErrorIs(t, &APIError{StatusCode: 401}, ErrUnauthorized)
	assert.ErrorIs(t, &APIError{StatusCode: 403}, ErrForbidden)
	assert.ErrorIs(t, &APIError{StatusCode: 404}, common.ErrorNotFound)
	assert.NotErrorIs(t, &APIError{StatusCode: 500}, ErrForbidden)
}

func TestAPIError_Error(t *testing.T) {
	e := &APIError{Method: "GET", Path: "/api/user/U1", StatusCode: 404, Message: "User not found"}
	assert.Equal(t, "GET /api/user/U1: 404 Not Found: User not found", e.Error())

	e.Message = ""
	assert.Equal(t, "GET /api/user/U1: 404 Not Found", e.Error())
}
