package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/lendly/loan-tracker/internal/batch"
	"github.com/lendly/loan-tracker/internal/config"
	"github.com/lendly/loan-tracker/internal/handler"
	"github.com/lendly/loan-tracker/internal/logging"
	"github.com/lendly/loan-tracker/internal/notify"
	"github.com/lendly/loan-tracker/internal/repository"
	"github.com/lendly/loan-tracker/internal/service"
	"github.com/lendly/loan-tracker/pkg/response"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logging)

	// Initialize Redis (session flag store)
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	debtorRepo := repository.NewMemoryDebtorRepository()
	sessionRepo := repository.NewRedisSessionRepository(redisClient)

	// Initialize services
	linker := notify.WhatsAppLinker{CountryCode: cfg.Reminder.CountryCode}
	debtorService := service.NewDebtorService(debtorRepo, linker, logger)
	authService := service.NewAuthService(sessionRepo, cfg, logger)

	// Initialize handlers
	debtorHandler := handler.NewDebtorHandler(debtorService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(redisClient, cfg.GetHealthTimeout())

	// Setup routes
	router := setupRoutes(debtorHandler, authHandler, healthHandler, authService, logger)

	// The reminder sweep runs in-process; the debtor collection lives in
	// this process's memory and is not reachable from a separate binary.
	scheduler := startReminderJob(cfg, debtorService, logger)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	debtorHandler *handler.DebtorHandler,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	authService *service.AuthService,
	logger *slog.Logger,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.CORSMiddleware)
	router.Use(response.LoggingMiddleware(logger))
	router.Use(handler.MetricsMiddleware)

	// Health and metrics
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Login is the only open API route
	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")

	// Authenticated API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(handler.AuthMiddleware(authService))

	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/debtors", debtorHandler.List).Methods("GET")
	api.HandleFunc("/debtors", debtorHandler.Create).Methods("POST")
	api.HandleFunc("/debtors/overdue", debtorHandler.Overdue).Methods("GET")
	api.HandleFunc("/debtors/{id}", debtorHandler.Get).Methods("GET")
	api.HandleFunc("/debtors/{id}", debtorHandler.Update).Methods("PUT")
	api.HandleFunc("/debtors/{id}", debtorHandler.Delete).Methods("DELETE")
	api.HandleFunc("/debtors/{id}/pay", debtorHandler.PayInstallment).Methods("POST")
	api.HandleFunc("/debtors/{id}/pay-total", debtorHandler.PayTotal).Methods("POST")

	api.HandleFunc("/reports/monthly", debtorHandler.MonthlyReport).Methods("GET")
	api.HandleFunc("/summary", debtorHandler.Summary).Methods("GET")

	return router
}

func startReminderJob(cfg *config.Config, debtorService *service.DebtorService, logger *slog.Logger) *cron.Cron {
	scheduler := cron.New()
	job := batch.NewReminderJob(debtorService, logger)

	_, err := scheduler.AddFunc(cfg.Reminder.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			logger.Error("Reminder job failed", "error", err)
		}
	})
	if err != nil {
		logger.Error("Failed to schedule reminder job", "schedule", cfg.Reminder.Schedule, "error", err)
		return scheduler
	}

	scheduler.Start()
	logger.Info("Reminder job scheduled", "schedule", cfg.Reminder.Schedule)
	return scheduler
}
