package internal

// Handler declares routes on a router.
//
// Example:
//
//	type UserHandler struct {
//	    users *repository.Users
//	}
//
//	func (h *UserHandler) Routes(r swilen.Router) {
//	    r.GET("/users/{id}", h.show)
//	    r.POST("/users", h.create)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing, or
// wrap the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error

// Provider is a user-registered bootstrap step. Providers run in
// registration order after the framework bootables, once per App.
type Provider func(app *App) error
