package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/dispatch_ledger/internal/core/services"
	"github.com/SscSPs/dispatch_ledger/internal/handlers"
	"github.com/SscSPs/dispatch_ledger/internal/middleware"
	"github.com/SscSPs/dispatch_ledger/internal/platform/config"
	"github.com/SscSPs/dispatch_ledger/internal/platform/logger"
	"github.com/SscSPs/dispatch_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/dispatch_ledger/internal/repositories/memory"
	"github.com/SscSPs/dispatch_ledger/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Dispatch Ledger API
// @version 1.0
// @description Job planning, worker payouts and cash-flow reporting for a labor dispatch business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	repos, cleanup, err := openStore(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to open ledger store", slog.String("store_driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		log.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(log),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, repos.Health)

	log.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_driver", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore builds the repository provider for the configured driver. The
// returned cleanup releases whatever the store holds open.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("Using in-memory ledger store; data is lost on restart")
		return memory.New().Provider(), func() {}, nil

	case config.StoreDriverPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		log.Info("Database connection pool established.")

		log.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			database.ClosePgxPool(dbPool)
			return repositories.RepositoryProvider{}, nil, err
		}

		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	default:
		return repositories.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
