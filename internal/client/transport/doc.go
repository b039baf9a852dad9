// Package transport contains the single configured HTTP client every
// resource client goes through.
//
// # Overview
//
// An auth round tripper sits in front of the network:
//  1. It resolves the bearer token for each request: a per-request override
//     header (common.TokenOverrideHeaderName) wins over the ambient token,
//     which is read fresh from the TokenSource on every call. The override
//     header is stripped before the request leaves the process.
//  2. Without any token the request is sent unauthenticated and a
//     diagnostic is logged and counted; that is not an error.
//  3. A response with status 403 fires the registered forbidden callback
//     (session invalidation) exactly once before the error is returned.
//
// # Error Handling
//
// Non-2xx responses surface as *APIError, which matches ErrUnauthorized,
// ErrForbidden and common.ErrorNotFound through errors.Is. Network failures
// wrap ErrUnavailable.
package transport
