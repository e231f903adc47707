package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/forex_marketplace/internal/adapters/notify"
	"github.com/SscSPs/forex_marketplace/internal/adapters/payments"
	"github.com/SscSPs/forex_marketplace/internal/async"
	"github.com/SscSPs/forex_marketplace/internal/broadcast"
	portssvc "github.com/SscSPs/forex_marketplace/internal/core/ports/services"
	"github.com/SscSPs/forex_marketplace/internal/core/services"
	"github.com/SscSPs/forex_marketplace/internal/handlers"
	"github.com/SscSPs/forex_marketplace/internal/middleware"
	"github.com/SscSPs/forex_marketplace/internal/platform/config"
	"github.com/SscSPs/forex_marketplace/internal/repositories/database/pgsql"
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/SscSPs/forex_marketplace/pkg/cache"
	"github.com/SscSPs/forex_marketplace/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 15 * time.Second

// @title Forex Marketplace API
// @version 1.0
// @description Live currency rates, quotes, orders and payments for the forex marketplace.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, closeRedis, err := cache.NewRedisClient(ctx, cache.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer closeRedis()
		redisClient = client
		logger.Info("Redis connection established.")
	} else {
		logger.Warn("REDIS_URL not set, rate limits and rate fan-out are local to this instance")
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	dispatcher := async.NewDispatcher(cfg.NotifyWorkers, cfg.NotifyQueueSize, cfg.NotifyJobTimeout, logger,
		async.WithRegisterer(prometheus.DefaultRegisterer))
	dispatcher.Start()

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	hub := broadcast.NewHub(repos.RateRepo, logger,
		broadcast.WithInterval(cfg.RateBroadcastInterval),
		broadcast.WithMetrics(broadcast.NewMetrics(prometheus.DefaultRegisterer)))
	go hub.Run(hubCtx)

	var rateNotifier portssvc.RateChangeNotifier = hub
	if redisClient != nil {
		relay := broadcast.NewRedisRelay(redisClient, hub, logger)
		rateNotifier = relay
		go func() {
			if err := relay.Listen(hubCtx); err != nil {
				logger.Error("Rate change relay stopped", slog.String("error", err.Error()))
			}
		}()
	}

	gateway, err := payments.NewCheckoutGateway(cfg.PaymentGatewayKeyID, cfg.PaymentGatewayKeySecret, cfg.PaymentGatewayMock, logger,
		payments.WithAPIBaseURL(cfg.PaymentGatewayURL),
		payments.WithTimeout(cfg.PaymentGatewayTimeout))
	if err != nil {
		logger.Error("Failed to configure payment gateway", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	deps := services.Dependencies{
		Jobs:         dispatcher,
		Gateway:      gateway,
		RateNotifier: rateNotifier,
		Notifier:     notify.NewLogNotifier(logger),
	}
	if posthogClient.IsInitialized() {
		deps.Events = posthogClient
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, deps)

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Metrics(), middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteOptions{
		RateStream: hub,
		Limiter:    rateLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Rate streams only end once the hub stops, so it goes before the server drains
	stopHub()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Background jobs did not finish", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// runMigrations applies all pending "up" migrations from ./migrations.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
