package internal

import (
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Cause     string `json:"cause,omitempty"`
}

// exceptionHandler builds the default error handler installed during
// boot: report the error, then render it as JSON or plain text.
func (a *App) exceptionHandler() ErrorHandler {
	return func(c Context, err error) error {
		httpErr := AsHTTPError(err)
		if httpErr == nil {
			httpErr = ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(err))
		}
		a.reportError(c, httpErr)
		return a.renderError(c, httpErr)
	}
}

// reportError logs the error and forwards server faults to Sentry when
// the SDK is initialized.
func (a *App) reportError(c Context, e *HTTPError) {
	attrs := []any{
		slog.Int("status", e.Code),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	if e.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", e.RequestID))
	}

	if e.Code >= http.StatusInternalServerError {
		c.LogError(e.Message, attrs...)
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			cause := error(e)
			if e.Err != nil {
				cause = e.Err
			}
			hub.CaptureException(cause)
		}
		return
	}
	c.LogWarn(e.Message, attrs...)
}

// renderError writes the error response. Debug mode includes the detail
// and underlying cause; production responses stay terse.
func (a *App) renderError(c Context, e *HTTPError) error {
	if c.Written() {
		return nil
	}

	debug := a.config != nil && a.config.IsDebug()

	if c.WantsJSON() || c.IsJSON() {
		body := errorResponse{
			Error:     e.Message,
			ErrorCode: e.ErrorCode,
			RequestID: e.RequestID,
		}
		if debug {
			body.Detail = e.Detail
			if e.Err != nil {
				body.Cause = e.Err.Error()
			}
		}
		return c.JSON(e.Code, body)
	}

	msg := e.Message
	if debug && e.Detail != "" {
		msg += "\n" + e.Detail
	}
	return c.String(e.Code, msg)
}
