package swilen

import (
	"net/http"

	"github.com/swilenhq/swilen/internal"
)

// Boot failure sentinels, matchable with errors.Is.
var (
	ErrBootEnvironment = internal.ErrBootEnvironment
	ErrBootConfig      = internal.ErrBootConfig
	ErrBootFacades     = internal.ErrBootFacades
	ErrBootProvider    = internal.ErrBootProvider
)

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithDetail attaches an extended description, rendered in debug mode.
func WithDetail(detail string) HTTPErrorOption {
	return internal.WithDetail(detail)
}

// WithErrorCode attaches an application-specific error code.
func WithErrorCode(code string) HTTPErrorOption {
	return internal.WithErrorCode(code)
}

// WithRequestID attaches the request tracking ID.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithError attaches the underlying cause, logged but never exposed.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrUnauthorized(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnauthorized(message, opts...)
}

func ErrForbidden(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrForbidden(message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

func ErrConflict(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrConflict(message, opts...)
}

func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnprocessable(message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// ErrValidation renders a 422 carrying the first failure message from
// the bag. Handlers typically return the bag as JSON instead; this is
// the shortcut for non-JSON clients.
func ErrValidation(bag *MessageBag, opts ...HTTPErrorOption) *HTTPError {
	msg := http.StatusText(http.StatusUnprocessableEntity)
	if keys := bag.Keys(); len(keys) > 0 {
		msg = bag.First(keys[0])
	}
	return internal.ErrUnprocessable(msg, opts...)
}

// AsHTTPError extracts an HTTPError from err, unwrapping as needed.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// IsHTTPError reports whether err carries an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}
