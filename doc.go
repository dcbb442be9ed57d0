// Package swilen is a small, opinionated web framework built around a
// service container, an ordered boot sequence, and handlers that return
// errors.
//
// # Quick Start
//
// Create an application with swilen.New(), configure it with options,
// and call Run to boot and serve:
//
//	app := swilen.New(
//	    swilen.WithEnvFiles(".env"),
//	    swilen.WithConfigFile("config.yml"),
//	    swilen.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	    ),
//	    swilen.WithHandlers(handlers.NewUsers(repo)),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Boot Sequence
//
// Run executes the bootables in a fixed order, each exactly once:
// environment files, YAML configuration, the exception handler, the
// service facades, then user providers. A failing step aborts boot and
// surfaces a sentinel matchable with errors.Is (ErrBootEnvironment,
// ErrBootConfig, ErrBootFacades, ErrBootProvider).
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type Users struct{ repo *Repo }
//
//	func (h *Users) Routes(r swilen.Router) {
//	    r.GET("/users/{id}", h.show)
//	    r.POST("/users", h.create)
//	}
//
//	func (h *Users) show(c swilen.Context) error {
//	    user, err := h.repo.Find(c, swilen.Param[int64](c, "id"))
//	    if err != nil {
//	        return swilen.ErrNotFound("user not found", swilen.WithError(err))
//	    }
//	    return c.JSON(http.StatusOK, user)
//	}
//
// Returned errors flow through the exception handler, which logs them,
// forwards server faults to Sentry when configured, and renders JSON or
// plain text depending on the Accept header.
//
// # Binding and Validation
//
// Bind decodes the request into a struct, sanitizes tagged fields, and
// validates rule tags. Rule failures come back as a MessageBag; decode
// and definition problems come back as the error:
//
//	var in CreateUser
//	if bag, err := c.Bind(&in); err != nil {
//	    return swilen.ErrBadRequest("malformed request", swilen.WithError(err))
//	} else if bag != nil {
//	    return c.JSON(http.StatusUnprocessableEntity, bag)
//	}
//
// # Facades
//
// After boot the package facades resolve framework services without
// threading the container through call sites:
//
//	cfg := swilen.Config.MustUse()
//	swilen.Log.MustUse().Info("ready", "env", cfg.Environment())
package swilen
