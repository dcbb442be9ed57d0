package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/swilenhq/swilen"
	"github.com/swilenhq/swilen/example/handlers"
	"github.com/swilenhq/swilen/middlewares"
	"github.com/swilenhq/swilen/pkg/database"
)

func main() {
	app := swilen.New(
		swilen.WithEnvFiles(".env"),
		swilen.WithConfigFile("config.yml"),
		swilen.WithLogExtractors(middlewares.RequestIDExtractor()),

		swilen.WithMiddleware(
			middlewares.CORS(),
			middlewares.MethodOverride(),
			middlewares.RequestID(),
			middlewares.Logging(),
			middlewares.Recover(),
		),

		swilen.WithHandlers(
			handlers.NewTodos(),
		),

		swilen.WithNotFoundHandler(func(c swilen.Context) error {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}),

		swilen.WithHealthChecks(),
	)

	err := app.Run(":8080",
		swilen.ShutdownTimeout(30*time.Second),
		swilen.ShutdownHook(func(ctx context.Context) error {
			if conn, err := swilen.DB.Use(); err == nil {
				return database.Shutdown(conn.Pool())(ctx)
			}
			return nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
}
