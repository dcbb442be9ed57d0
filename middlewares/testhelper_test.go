package middlewares_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/swilenhq/swilen/internal"
)

// testContext is a minimal Context implementation for middleware tests.
type testContext struct {
	response *internal.ResponseWriter
	request  *http.Request
	logger   *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: internal.NewResponseWriter(w),
		request:  r,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// newLoggingTestContext records log messages into the returned slice.
func newLoggingTestContext(w http.ResponseWriter, r *http.Request, sink io.Writer) *testContext {
	c := newTestContext(w, r)
	c.logger = slog.New(slog.NewJSONHandler(sink, nil))
	return c
}

func (c *testContext) Request() *http.Request           { return c.request }
func (c *testContext) Response() http.ResponseWriter    { return c.response }
func (c *testContext) ResponseWriter() *internal.ResponseWriter {
	return c.response
}
func (c *testContext) Context() context.Context { return c.request.Context() }
func (c *testContext) Method() string           { return c.request.Method }
func (c *testContext) Path() string             { return c.request.URL.Path }
func (c *testContext) Param(name string) string { return "" }
func (c *testContext) Query(name string) string { return c.request.URL.Query().Get(name) }

func (c *testContext) QueryDefault(name, defaultValue string) string {
	if v := c.request.URL.Query().Get(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *testContext) Form(name string) string { return c.request.PostFormValue(name) }

func (c *testContext) FormFile(name string) (multipart.File, *multipart.FileHeader, error) {
	return c.request.FormFile(name)
}

func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }

func (c *testContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *testContext) SetCookie(cookie *http.Cookie) { http.SetCookie(c.response, cookie) }
func (c *testContext) IP() string                    { return c.request.RemoteAddr }
func (c *testContext) WantsJSON() bool               { return false }
func (c *testContext) IsJSON() bool                  { return false }

func (c *testContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	return c.Blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *testContext) Blob(code int, contentType string, b []byte) error {
	c.response.Header().Set("Content-Type", contentType)
	c.response.WriteHeader(code)
	_, err := c.response.Write(b)
	return err
}

func (c *testContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *testContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) Bind(v any) (*internal.MessageBag, error)      { return nil, nil }
func (c *testContext) BindQuery(v any) (*internal.MessageBag, error) { return nil, nil }
func (c *testContext) BindJSON(v any) (*internal.MessageBag, error)  { return nil, nil }

func (c *testContext) Written() bool        { return c.response.Written() }
func (c *testContext) Logger() *slog.Logger { return c.logger }

func (c *testContext) LogDebug(msg string, attrs ...any) { c.logger.Debug(msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)  { c.logger.Info(msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)  { c.logger.Warn(msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any) { c.logger.Error(msg, attrs...) }

func (c *testContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any { return c.request.Context().Value(key) }

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

var _ internal.Context = (*testContext)(nil)
