package razorpay

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error messages shared by every resource. Local precondition failures and
// remote failures surface as the same *Error type; callers that need to
// branch can inspect Message or StatusCode.
const (
	// ErrMessageAPI is set on errors raised after an attempted HTTP call.
	ErrMessageAPI = "API Error"
	// ErrMessageMissingParameter is set on errors raised before any
	// network call, when a required argument is absent.
	ErrMessageMissingParameter = "Missing parameter"
)

// noStatusCode marks errors that did not originate from an HTTP response.
const noStatusCode = -1

// Error is the single error type surfaced by the SDK.
type Error struct {
	// Message is either ErrMessageAPI or ErrMessageMissingParameter.
	Message string
	// Data carries the server-provided error payload when present, or a
	// {"message": ...} map for validation failures. Never nil.
	Data map[string]any
	// StatusCode is the HTTP status of the failed response, or -1 when no
	// response was received (network failure, local validation).
	StatusCode int

	cause error
}

func (e *Error) Error() string {
	if desc, ok := e.Data["description"].(string); ok && desc != "" {
		return fmt.Sprintf("%s: %s", e.Message, desc)
	}
	if msg, ok := e.Data["message"].(string); ok && msg != "" {
		return fmt.Sprintf("%s: %s", e.Message, msg)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// newError builds an *Error following the construction contract shared with
// validation and transport failure sites. A string payload becomes
// {"message": payload}; a map payload is stored as-is; anything else yields
// an empty map.
func newError(message string, payload any, statusCode int) *Error {
	e := &Error{
		Message:    message,
		Data:       map[string]any{},
		StatusCode: statusCode,
	}
	switch p := payload.(type) {
	case string:
		e.Data = map[string]any{"message": p}
	case map[string]any:
		if p != nil {
			e.Data = p
		}
	}
	return e
}

// withCause attaches the underlying transport error before the error is
// returned to the caller.
func (e *Error) withCause(err error) *Error {
	e.cause = err
	return e
}

// newMissingParameter reports a required argument that was absent. It is
// raised synchronously, before any network call.
func newMissingParameter(detail string) *Error {
	return newError(ErrMessageMissingParameter, detail, noStatusCode)
}

// IsError checks if an error is an SDK error, unwrapping as needed.
func IsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsMissingParameter reports whether err is a local validation failure, as
// opposed to a failed or unreachable remote call.
func IsMissingParameter(err error) bool {
	apiErr, ok := IsError(err)
	return ok && apiErr.Message == ErrMessageMissingParameter
}
