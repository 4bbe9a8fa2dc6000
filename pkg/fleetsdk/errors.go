package fleetsdk

import (
	"fmt"
	"net/http"

	"github.com/tynanfleet/fleetcheck/pkg/httpx"
)

// APIError is the service's error envelope: `{"ok": false, "error": "..."}`
// plus an HTTP status. It is shared by the server (to write responses) and
// the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Message is the error string surfaced to the caller.
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this error to an HTTP response writer in the standard
// envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]any{
		"ok":    false,
		"error": e.Message,
	})
}

// ValidationError builds the 400 response for a submission rejected by the
// pipeline; msg is the validation message itself (e.g. "Missing field:
// shift").
func ValidationError(msg string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: msg}
}

var (
	// ErrInvalidPayload is returned when a request body cannot be decoded.
	ErrInvalidPayload = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid_payload",
	}

	// ErrInvalidCredentials is the single response for every sign-in
	// failure; it never distinguishes unknown user from wrong password.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "invalid_credentials",
	}

	// ErrMissingSignupFields is returned when a sign-up omits the name,
	// username or password.
	ErrMissingSignupFields = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "missing_fields",
	}

	// ErrUsernameUnavailable covers both the reserved administrator
	// username and an already-registered one, without revealing which.
	ErrUsernameUnavailable = &APIError{
		StatusCode: http.StatusConflict,
		Message:    "username_unavailable",
	}

	// ErrUnauthorized is returned by the session gates in API contexts.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "unauthorized",
	}

	// ErrServerError is the opaque category returned for storage failures;
	// detail stays in the server logs.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "server_error",
	}
)
