package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"todoapi/internal/config"
	"todoapi/internal/database"
	"todoapi/internal/database/migration"
	"todoapi/internal/http/server"
	"todoapi/internal/logging"
	"todoapi/internal/otel"
	"todoapi/internal/repository"
	"todoapi/internal/repository/memory"
	"todoapi/internal/repository/objectstore"
	"todoapi/internal/repository/postgres"
	"todoapi/internal/service"
	"todoapi/internal/storage"
)

// @title Todo API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.Timezone)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("config_invalid", zap.Error(err))
	}
	if err := run(cfg, logger); err != nil {
		logger.Fatal("server_exit", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := server.New(server.Options{
		Service:   service.NewTodoService(repo),
		Pinger:    repo,
		Logger:    logger,
		Registry:  reg,
		APIPrefix: cfg.APIPrefix,
		Tracing:   otel.Enabled(),
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_listening", zap.String("port", cfg.Port), zap.String("store_driver", cfg.StoreDriver))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_shutdown")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

// openStore builds the gateway selected by STORE_DRIVER. The returned func
// releases whatever connection the gateway holds.
func openStore(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.TodoRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewTodoPostgres(db), closeDB(db, logger), nil
	case config.StoreDriverMinIO:
		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		return objectstore.NewTodoObjectStore(objStore), func() {}, nil
	case config.StoreDriverMemory:
		logger.Warn("store_volatile", zap.String("store_driver", cfg.StoreDriver))
		return memory.NewTodoMemory(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func closeDB(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("db_close_failed", zap.Error(err))
		}
	}
}
