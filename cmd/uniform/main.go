// Package main draws a triangle that slides back and forth driven by a uniform.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/app"
	"github.com/Faultbox/glsamples/internal/logger"
	"github.com/Faultbox/glsamples/internal/samples"
)

func main() {
	cfg, err := app.Bootstrap("Uniforms")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sample := samples.NewUniform()

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
