package main

import (
	"fmt"
	"os"

	"adpulse/internal/delivery"
	"adpulse/internal/infrastructure"
	"adpulse/internal/usecase"
	"adpulse/pkg/config"
	"adpulse/pkg/logger"
	"adpulse/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("Starting server")

	m := metrics.New()

	datasets := infrastructure.NewDatasetRepository(log)
	settings := infrastructure.NewSettingsRepository(log)

	pipeline := usecase.NewPipelineService(datasets, log, m)
	insights := usecase.NewInsightsService(pipeline, log)
	assistant := usecase.NewAssistantService(insights, log)

	handlers := delivery.NewHTTPHandlers(pipeline, insights, assistant, settings, log, m, cfg.Upload.MaxChunkBytes)
	router := delivery.NewHTTPRouter(handlers, cfg, log, m)

	engine := router.SetupRoutes()

	log.WithField("port", cfg.Server.Port).Info("Listening")
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Error("Server stopped")
		os.Exit(1)
	}
}
