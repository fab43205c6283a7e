// Package main is the entry point for the VitalTrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/config"
	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/application/usecase/user"
	"github.com/vitaltrack/backend/internal/application/usecase/weightgoal"
	"github.com/vitaltrack/backend/internal/infra/db"
	"github.com/vitaltrack/backend/internal/infra/server/router"
	"github.com/vitaltrack/backend/internal/integration/adapters"
	"github.com/vitaltrack/backend/internal/integration/email"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/controller"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/middleware"
	"github.com/vitaltrack/backend/internal/integration/persistence"
	"github.com/vitaltrack/backend/internal/integration/persistence/memory"
	"github.com/vitaltrack/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Emit decimal fields as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting VitalTrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection, falling back to in-memory stores
	var userRepo adapter.UserRepository
	var goalRepo adapter.WeightGoalRepository
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, using in-memory stores",
			"error", err,
		)
		userRepo = memory.NewUserStore()
		goalRepo = memory.NewWeightGoalStore()
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.WeightGoalModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		userRepo = persistence.NewUserRepository(database.DB())
		goalRepo = persistence.NewWeightGoalRepository(database.DB())
		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis connection for refresh token storage
	redisClient, err := db.NewRedisClient(&cfg.Redis)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, redisClient)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, confirmation emails disabled")
	}

	// Create user use cases
	registerUseCase := user.NewRegisterUserUseCase(userRepo, passwordService, emailSender, logger)
	loginUseCase := user.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	profileUseCase := user.NewGetProfileUseCase(userRepo)
	ageResolver := user.NewAgeResolver(userRepo)

	// Create weight goal use cases
	createGoalUseCase := weightgoal.NewCreateWeightGoalUseCase(goalRepo, ageResolver)
	getGoalUseCase := weightgoal.NewGetWeightGoalUseCase(goalRepo)
	listGoalsUseCase := weightgoal.NewListWeightGoalsUseCase(goalRepo)
	updateGoalUseCase := weightgoal.NewUpdateWeightGoalUseCase(goalRepo)
	deleteGoalUseCase := weightgoal.NewDeleteWeightGoalUseCase(goalRepo)
	reviseGoalUseCase := weightgoal.NewReviseWeightGoalUseCase(goalRepo, updateGoalUseCase)

	// Create controllers and middleware
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, profileUseCase)
	weightGoalController := controller.NewWeightGoalController(
		createGoalUseCase,
		getGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		reviseGoalUseCase,
	)
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(healthController, authController, weightGoalController, loginRateLimiter, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
