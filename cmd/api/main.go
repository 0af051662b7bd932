package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/config"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/database"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/logger"
	"github.com/harshithsai-30/Recipe-generator-using-Gemini-Flash/internal/server"
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, redisClient)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("received signal", "signal", sig.String())
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
