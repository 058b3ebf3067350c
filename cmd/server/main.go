package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankrules/internal/config"
	"bankrules/internal/database"
	"bankrules/internal/handlers"
	custommw "bankrules/internal/middleware"
	"bankrules/internal/repositories"
	"bankrules/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	ruleRepo := repositories.NewRuleRepository(db)
	credentialRepo := repositories.NewCredentialRepository(db)
	balanceRepo := repositories.NewBalanceRepository(db)

	// Ambient services
	engineLogger := services.NewEngineLogger(logger)
	metrics := services.NewPrometheusMetrics()

	// Domain services
	engine := services.NewRuleEngineService()
	suggester := services.NewCategorySuggestionService()
	cache := services.NewTransactionCacheService(transactionRepo, engineLogger, metrics, cfg.Cache.TransactionTTL)
	applier := services.NewRuleApplicationService(
		engine,
		suggester,
		transactionRepo,
		ruleRepo,
		cache,
		engineLogger,
		metrics,
		cfg.Engine.ConflictPolicy,
		cfg.Engine.ResultSampleLimit,
		cfg.Engine.WorkerCount,
	)

	credentialService, err := services.NewCredentialService(credentialRepo, cfg.Provider.EncryptionKey)
	if err != nil {
		slog.Error("Failed to initialize credential service", "error", err)
		os.Exit(1)
	}

	circuitBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	providerClient := services.NewBankDataClient(&cfg.Provider, engineLogger, circuitBreaker)
	syncService := services.NewSyncService(
		providerClient,
		credentialService,
		applier,
		transactionRepo,
		balanceRepo,
		cache,
		engineLogger,
		metrics,
	)

	// Handlers
	ruleHandler := handlers.NewRuleHandler(ruleRepo, applier)
	transactionHandler := handlers.NewTransactionHandler(cache)
	syncHandler := handlers.NewSyncHandler(syncService, credentialService, balanceRepo)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(transactionRepo, cache)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	// Global middleware
	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, custommw.TraceIDHeader},
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Authenticated API
	requireAuth := custommw.RequireAuth(cfg.Auth.JWTSecret, !cfg.IsProduction())
	api := e.Group("/api", requireAuth)

	api.GET("/rules", ruleHandler.ListRules)
	api.POST("/rules", ruleHandler.CreateRule)
	api.POST("/rules/test", ruleHandler.TestRule)
	api.PUT("/rules/:id", ruleHandler.UpdateRule)
	api.DELETE("/rules/:id", ruleHandler.DeleteRule)
	api.POST("/rules/:id/apply", ruleHandler.ApplyRule)

	api.GET("/transactions", transactionHandler.ListTransactions)

	api.POST("/sync", syncHandler.TriggerSync)
	api.GET("/balances", syncHandler.ListBalances)
	api.PUT("/credentials", syncHandler.StoreCredentials)
	api.DELETE("/credentials", syncHandler.DeleteCredentials)

	if !cfg.IsProduction() {
		api.POST("/dev/generate-test-data", devHandler.GenerateTestData)
	}

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting server",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"conflict_policy", cfg.Engine.ConflictPolicy,
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
