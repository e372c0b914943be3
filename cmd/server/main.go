// Package main initializes and starts the CmdKeeper HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/atinyakov/CmdKeeper/internal/config"
	"github.com/atinyakov/CmdKeeper/internal/db"
	"github.com/atinyakov/CmdKeeper/internal/logger"
	"github.com/atinyakov/CmdKeeper/internal/repository"
	"github.com/atinyakov/CmdKeeper/internal/server/handler/http"
	"github.com/atinyakov/CmdKeeper/internal/service"
	"github.com/atinyakov/CmdKeeper/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.TokenSecret == "" {
		zapLogger.Fatal("token secret is required (-t flag or TOKEN_SECRET)")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and commands.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	commandRepo := repository.NewPostgresCommandRepository(postgresDB)

	// Initialize the token manager and business-logic services.
	tokens := token.NewManager(options.TokenSecret)
	authService := service.NewAuthService(authRepo, tokens)
	commandService := service.NewCommandService(commandRepo)

	// Create HTTP handlers for auth and command endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	commandHandler := &http.CommandHandler{CommandService: commandService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, commandHandler, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
