package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/tidwall/gjson"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server-supplied "message" (or "error") field, if any.
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case common.ErrorNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	return &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    serverMessage(body),
		Body:       body,
	}
}

func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && m.String() != "" {
		return m.String()
	}
	if m := gjson.GetBytes(body, "error"); m.Type == gjson.String {
		return m.String()
	}
	return ""
}

// ServerMessage returns the most specific human-readable message carried by
// err: the backend's message field when err is an *APIError that has one,
// otherwise fallback.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
