// Package main draws a textured quad that slides back and forth.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/app"
	"github.com/Faultbox/glsamples/internal/engine/texture"
	"github.com/Faultbox/glsamples/internal/logger"
	"github.com/Faultbox/glsamples/internal/samples"
)

func main() {
	cfg, err := app.Bootstrap("Textures")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	img, err := texture.Load(cfg.Assets.Texture)
	if err != nil {
		logger.Error("failed to load texture", zap.String("path", cfg.Assets.Texture), zap.Error(err))
		os.Exit(1)
	}
	sample := samples.NewTexture(img)

	a, err := app.New(cfg, sample)
	if err != nil {
		logger.Error("failed to create sample", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("render error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("sample closed normally")
}
