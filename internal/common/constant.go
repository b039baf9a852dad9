// Package common contains shared constants and sentinel errors used across
// memberdesk components.
package common

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// TokenOverrideHeaderName forces a specific token for a single request.
// It is consumed by the transport and never reaches the network.
const TokenOverrideHeaderName = "X-Custom-Authorization"

// RequestIDHeaderName tags every outbound request with a unique id.
const RequestIDHeaderName = "X-Request-ID"

// BearerScheme is the authorization scheme prefix.
const BearerScheme = "Bearer"

// Persisted storage keys.
const (
	StorageKeyAuthToken = "authToken"
	StorageKeyUserID    = "userId"
)

// RoleAdmin is the role value that grants administrator access.
const RoleAdmin = "admin"

// Navigation routes.
const (
	RouteLogin        = "/admin"
	RouteUnauthorized = "/unauthorized"
)
