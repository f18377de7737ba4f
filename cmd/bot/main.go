package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"familiaconnect/internal/api"
	"familiaconnect/internal/config"
	"familiaconnect/internal/database"
	"familiaconnect/internal/handler"
	"familiaconnect/internal/metrics"
	"familiaconnect/internal/middleware"
	"familiaconnect/internal/repository/memory"
	"familiaconnect/internal/repository/postgres"
	"familiaconnect/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	cleanupInterval    = 24 * time.Hour
	rateLimiterJanitor = time.Minute
	shutdownTimeout    = 10 * time.Second
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting FamiliaConnect")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("timezone", cfg.Location().String()))

	db, err := database.Connect(cfg.DSN(), database.DefaultRetry, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := database.Migrate(db, database.DefaultMigrationsURL, database.Up, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	memberRepo := postgres.NewMemberRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	emergencyRepo := postgres.NewEmergencyRepo(db)
	taskStore := memory.NewSeededTaskStore(time.Now().In(cfg.Location()))
	chatStore := memory.NewSampleChatStore(time.Now())

	// Services
	tasks := service.NewTaskService(taskStore, logger)
	services := service.Services{
		Members:    service.NewMemberService(memberRepo),
		Calendar:   service.NewCalendarService(eventRepo, cfg.Location(), logger),
		Tasks:      tasks,
		Chats:      service.NewChatService(chatStore),
		Profiles:   service.NewProfileService(memberRepo, emergencyRepo),
		Home:       service.NewHomeService(memberRepo, eventRepo, tasks),
		Activities: service.NewActivityService(memberRepo, logger),
	}
	maintenance := service.NewMaintenanceService(eventRepo, cfg.EventRetentionDays, logger)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot handler failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	bot.Use(middleware.BotMetrics(m))
	bot.Use(middleware.MemberMiddleware(services.Members, logger))

	h := handler.NewHandler(bot, services, logger)
	h.RegisterHandlers()

	logger.Info("Telegram bot initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go maintenance.Run(ctx, cleanupInterval)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m.RateLimited).
		TrustProxies(cfg.TrustedProxies...)
	go limiter.Run(ctx, rateLimiterJanitor)

	router := api.New(services, db, logger).Router(api.Options{
		Metrics:     m,
		Gatherer:    registry,
		RateLimiter: limiter,
		MetricsUser: cfg.Metrics.User,
		MetricsPass: cfg.Metrics.Password,
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	bot.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}
