package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionMissing is returned by calls that need a signed-in session.
var ErrSessionMissing = &Error{Status: http.StatusUnauthorized, Code: "session_missing", Message: "auth session missing"}

// Error is a failure reported by the gateway, carrying its original message.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("gateway %d: %s", e.Status, e.Message)
}

// Is matches gateway errors by status and code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Code == t.Code
}

// StatusOf returns the HTTP status of a gateway error, or 0.
func StatusOf(err error) int {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Status
	}
	return 0
}

// IsClientError reports whether err is a 4xx gateway error.
func IsClientError(err error) bool {
	s := StatusOf(err)
	return s >= 400 && s < 500
}
