// Package main imports an OBJ model, scales it to fit the view and renders it lit.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/app"
	"github.com/Faultbox/glsamples/internal/mesh"
	"github.com/Faultbox/glsamples/internal/logger"
	"github.com/Faultbox/glsamples/internal/samples"
)

func main() {
	cfg, err := app.Bootstrap("Teapot")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	parser, err := mesh.ParserFor(cfg.Assets.Parser)
	if err != nil {
		logger.Error("failed to select model parser", zap.Error(err))
		os.Exit(1)
	}

	// Import completes before the window opens
	model, err := mesh.NewImporter(parser).Import(cfg.Assets.Model)
	if err != nil {
		logger.Error("failed to import model", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("model imported",
		zap.Int("vertices", len(model.Vertices)),
		zap.Int("indices", len(model.Indices)),
		zap.Float32("scale", model.Scale),
	)
	sample := samples.NewTeapot(model)

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
