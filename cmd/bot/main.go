package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursebot/internal/config"
	"coursebot/internal/handler"
	"coursebot/internal/repository"
	filerepo "coursebot/internal/repository/file"
	"coursebot/internal/repository/postgres"
	"coursebot/internal/server"
	"coursebot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting course sales bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Select storage: Postgres when DATABASE_URL is set, flat files otherwise
	catalogRepo, statsRepo, rosterRepo, cleanup, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, logger)
	statsService := service.NewStatsService(statsRepo, logger)
	rosterService := service.NewRosterService(rosterRepo, logger)

	if err := catalogService.Load(); err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	if err := statsService.Load(); err != nil {
		logger.Fatal("Failed to load stats", zap.Error(err))
	}
	if err := rosterService.Load(); err != nil {
		logger.Fatal("Failed to load roster", zap.Error(err))
	}

	logger.Info("Storage loaded")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, catalogService, statsService, rosterService, cfg.AdminID, cfg.PaymentLink, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start health check server in background
	health := server.NewHealth(cfg.Port, logger)
	go health.Start()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health.Shutdown(shutdownCtx)

	logger.Info("Bot stopped gracefully")
}

// buildStorage wires the repositories for the configured backend
func buildStorage(cfg *config.Config, logger *zap.Logger) (
	repository.CatalogRepository,
	repository.StatsRepository,
	repository.RosterRepository,
	func(),
	error,
) {
	if cfg.DatabaseURL == "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("create data dir: %w", err)
		}
		logger.Info("Using file storage", zap.String("dir", cfg.DataDir))
		return filerepo.NewCatalogRepo(cfg.DataDir),
			filerepo.NewStatsRepo(cfg.DataDir),
			filerepo.NewRosterRepo(cfg.DataDir),
			func() {},
			nil
	}

	db, err := connectDatabase(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, nil, nil, err
	}

	logger.Info("Using Postgres storage")
	return postgres.NewCatalogRepo(db),
		postgres.NewStatsRepo(db),
		postgres.NewRosterRepo(db),
		func() { db.Close() },
		nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
