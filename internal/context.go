package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/swilenhq/swilen/pkg/sanitizer"
	"github.com/swilenhq/swilen/pkg/validation"
)

// MessageBag collects validation failure messages per field.
type MessageBag = validation.MessageBag

// Context provides request/response access and helper methods.
// It implements context.Context by delegating to the request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// ResponseWriter returns the wrapped writer for status and size access.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Method returns the request method. When the method override
	// middleware is installed this is the effective, overridden method.
	Method() string

	// Path returns the request URL path.
	Path() string

	// Param returns the URL parameter value by name, or "".
	Param(name string) string

	// Query returns the query parameter value by name, or "".
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// Form returns a form value by name, parsing the body on first access.
	Form(name string) string

	// FormFile returns the first uploaded file for the given form key.
	FormFile(name string) (multipart.File, *multipart.FileHeader, error)

	// Header returns a request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Cookie returns a request cookie value.
	Cookie(name string) (string, error)

	// SetCookie adds a Set-Cookie header to the response.
	SetCookie(cookie *http.Cookie)

	// IP returns the client address, honouring X-Forwarded-For and
	// X-Real-IP set by a trusted proxy.
	IP() string

	// WantsJSON reports whether the client prefers a JSON response.
	WantsJSON() bool

	// IsJSON reports whether the request body is JSON.
	IsJSON() bool

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// Blob writes raw bytes with the given content type.
	Blob(code int, contentType string, b []byte) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect redirects to the given URL with the given status code.
	Redirect(code int, url string) error

	// Error creates an HTTPError without writing a response. Return it
	// from the handler to trigger the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Bind decodes form data into v, sanitizes tagged string fields,
	// and validates `validate` tags. A non-nil MessageBag holds rule
	// failures; the error covers decode and definition problems.
	Bind(v any) (*MessageBag, error)

	// BindQuery is Bind for query parameters.
	BindQuery(v any) (*MessageBag, error)

	// BindJSON is Bind for a JSON request body.
	BindJSON(v any) (*MessageBag, error)

	// Written reports whether a response has been committed.
	Written() bool

	// Logger returns the request logger.
	Logger() *slog.Logger

	// LogDebug logs a debug message with optional attributes.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs an info message with optional attributes.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs a warning message with optional attributes.
	LogWarn(msg string, attrs ...any)

	// LogError logs an error message with optional attributes.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key any, value any)

	// Get retrieves a value from the request context, or nil.
	Get(key any) any
}

// requestContext implements Context.
type requestContext struct {
	response       http.ResponseWriter
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, log *slog.Logger) *requestContext {
	rw := NewResponseWriter(w)
	return &requestContext{
		request:        r,
		response:       rw,
		responseWriter: rw,
		logger:         log,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Method() string {
	return c.request.Method
}

func (c *requestContext) Path() string {
	return c.request.URL.Path
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.request.URL.Query().Get(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Form(name string) string {
	return c.request.PostFormValue(name)
}

func (c *requestContext) FormFile(name string) (multipart.File, *multipart.FileHeader, error) {
	return c.request.FormFile(name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *requestContext) SetCookie(cookie *http.Cookie) {
	http.SetCookie(c.response, cookie)
}

// IP returns the client address. Forwarding headers are trusted as-is;
// deployments without a fronting proxy should rely on RemoteAddr only.
func (c *requestContext) IP() string {
	if fwd := c.request.Header.Get("X-Forwarded-For"); fwd != "" {
		ip, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(ip)
	}
	if ip := c.request.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(c.request.RemoteAddr)
	if err != nil {
		return c.request.RemoteAddr
	}
	return host
}

func (c *requestContext) WantsJSON() bool {
	accept := c.request.Header.Get("Accept")
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "+json")
}

func (c *requestContext) IsJSON() bool {
	ct := c.request.Header.Get("Content-Type")
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	return c.Blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *requestContext) Blob(code int, contentType string, b []byte) error {
	c.response.Header().Set("Content-Type", contentType)
	c.response.WriteHeader(code)
	_, err := c.response.Write(b)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Bind(v any) (*MessageBag, error) {
	if err := bindForm(c.request, v); err != nil {
		return nil, fmt.Errorf("bind form: %w", err)
	}
	return c.finishBind(v)
}

func (c *requestContext) BindQuery(v any) (*MessageBag, error) {
	if err := bindValues(c.request.URL.Query(), v); err != nil {
		return nil, fmt.Errorf("bind query: %w", err)
	}
	return c.finishBind(v)
}

func (c *requestContext) BindJSON(v any) (*MessageBag, error) {
	dec := json.NewDecoder(c.request.Body)
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("bind json: %w", err)
	}
	return c.finishBind(v)
}

// finishBind sanitizes and validates a freshly decoded struct.
func (c *requestContext) finishBind(v any) (*MessageBag, error) {
	if err := sanitizer.SanitizeStruct(v); err != nil {
		return nil, fmt.Errorf("sanitize: %w", err)
	}

	validator, err := validation.Struct(v)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if validator.Fails() {
		return validator.Errors(), nil
	}
	return nil, nil
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
