// Package main is the entry point for the HMD viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hmdview/internal/app"
	"github.com/Faultbox/hmdview/internal/config"
	"github.com/Faultbox/hmdview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== HMD Viewer ===", zap.String("config", config.Source))
	if config.Source == "" {
		logger.Warn("no config file found, using defaults", zap.String("expected", config.DefaultPath()))
	}
	logger.Debug("config loaded", zap.Any("config", cfg))

	a, err := app.New(cfg, config.Source)
	if err != nil {
		logger.Fatal("failed to start viewer", zap.Error(err))
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
