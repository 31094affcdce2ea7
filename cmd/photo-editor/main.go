package main

import (
	"log"
	"os"

	"photo-editor/internal/app"
	"photo-editor/internal/config"
	"photo-editor/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	format, formatErr := logger.ParseFormat(cfg.LogFormat)
	appLogger := logger.New(format, level)

	for _, err := range []error{levelErr, formatErr} {
		if err != nil {
			appLogger.Warning("Main", "using default logging setting", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	application, err := app.New(cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", "initialization failed", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", "event loop failed", err, nil)
		os.Exit(1)
	}

	appLogger.Info("Main", "application terminated", nil)
}
