package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"recipe-app/cmd/config"
	migration "recipe-app/cmd/database/migrate"
	"recipe-app/internal/utils"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}
	utils.LoadConfig()

	logger := utils.NewLogger(utils.LoggerConfig{
		Level:  utils.GetConfig("LOG_LEVEL"),
		IsJSON: utils.GetConfig("LOG_JSON") == "true",
	})
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx := context.Background()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if err := migration.Migrate(db); err != nil {
		return err
	}

	mongoClient, documents, err := config.ConnectMongo(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}()

	store, closeStore, err := config.ConnectKVStore(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("kv store close failed", "error", err)
		}
	}()

	app, err := config.NewApp(db, documents, store, logger)
	if err != nil {
		return err
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "port", port)
		errCh <- app.Listen(":" + port)
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-shutdownChan:
	}

	logger.Info("shutdown signal received, shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	logger.Info("server stopped cleanly")
	return nil
}
