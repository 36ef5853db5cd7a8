// Package main is the entry point for the Strider sandbox.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/internal/game"
	"github.com/Faultbox/strider/internal/logger"
	"github.com/Faultbox/strider/internal/settings"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Strider ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Load input settings, falling back to defaults if the file is missing
	// or unreadable
	settingsPath := filepath.Join(config.ConfigDir(), "settings.txt")
	set, err := settings.Load(settingsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to load settings, using defaults",
				zap.String("path", settingsPath),
				zap.Error(err),
			)
		}
		set = settings.Default()
	}

	// Create and run game
	g, err := game.New(cfg, set)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	// Run the game loop
	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
