// Package http provides HTTP routing and middleware configuration
// for the CmdKeeper service.
package http

import (
	"net/http"

	"github.com/atinyakov/CmdKeeper/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the CmdKeeper API. It applies JSON content-type enforcement and
// request logging globally, and bearer token authentication on the
// command routes.
//
// Parameters:
//
//	authHandler    - handler for registration and login endpoints
//	commandHandler - handler for command CRUD endpoints
//	tokens         - verifier for bearer tokens
//	logger         - structured logger for request logging middleware
//
// Routes:
//
//	POST   /auth/register               → authHandler.Register
//	POST   /auth/login                  → authHandler.Login
//	GET    /commands                    → commandHandler.List           (auth)
//	GET    /commands/category/{category} → commandHandler.ListByCategory (auth)
//	POST   /commands                    → commandHandler.Create         (auth)
//	DELETE /commands/{id}               → commandHandler.Delete         (auth)
func NewRouter(
	authHandler *AuthHandler,
	commandHandler *CommandHandler,
	tokens middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected group: requires a valid bearer token
	r.Route("/commands", func(r chi.Router) {
		r.Use(middleware.BearerAuth(tokens))

		r.Get("/", commandHandler.List)
		r.Get("/category/{category}", commandHandler.ListByCategory)
		r.Post("/", commandHandler.Create)
		r.Delete("/{id}", commandHandler.Delete)
	})

	return r
}
