package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Shivakarthikeya23/CultureSense/internal/analysis"
	"github.com/Shivakarthikeya23/CultureSense/internal/auth"
	"github.com/Shivakarthikeya23/CultureSense/internal/config"
	"github.com/Shivakarthikeya23/CultureSense/internal/gemini"
	"github.com/Shivakarthikeya23/CultureSense/internal/qloo"
	"github.com/Shivakarthikeya23/CultureSense/internal/server"
	"github.com/Shivakarthikeya23/CultureSense/internal/storage"
)

func main() {
	// Best effort; real env vars win over .env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Fatal("failed to create Gemini client", zap.Error(err))
	}
	defer geminiClient.Close()

	qlooClient := qloo.NewClient(cfg.QlooAPIURL, cfg.QlooAPIKey, logger)

	var repo storage.Repository
	if cfg.DatabasePath != "" {
		store, err := storage.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		defer store.Close()
		repo = store
	} else {
		logger.Warn("DATABASE_PATH not set, using in-memory store")
		repo = storage.NewMemoryStore()
	}

	svc := analysis.NewService(geminiClient, qlooClient, logger)
	handler := server.NewHandler(svc, repo, auth.HeaderProvider{}, logger)

	router := gin.New()
	router.Use(server.RequestLogging(logger), server.Recovery(logger))
	handler.Routes(router)

	logger.Info("CultureSense server starting", zap.String("port", cfg.Port))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
