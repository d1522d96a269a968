package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/config"
	"github.com/Faultbox/glsamples/internal/logger"
)

// Bootstrap parses flags, loads the configuration and initializes the
// logger. With -save-config the effective configuration is written to the
// user config directory.
func Bootstrap(name string) (*config.Config, error) {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger error: %w", err)
	}

	logger.Info("=== " + name + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}
	return cfg, nil
}
