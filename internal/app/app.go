// Package app wires a sample to its window, renderer and render loop.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/config"
	"github.com/Faultbox/glsamples/internal/engine/loop"
	"github.com/Faultbox/glsamples/internal/engine/renderer"
	"github.com/Faultbox/glsamples/internal/engine/window"
	"github.com/Faultbox/glsamples/internal/logger"
	"github.com/Faultbox/glsamples/internal/samples"
)

// App owns the window and GL state of one running sample.
type App struct {
	sample   samples.Sample
	window   window.Window
	renderer *renderer.Renderer
	pacer    loop.Pacer
	log      *zap.Logger
}

// New creates the window and renderer for sample and sets its resources up.
func New(cfg *config.Config, sample samples.Sample) (*App, error) {
	opts := sample.Options()
	title := cfg.Window.Title
	if title == "" {
		title = opts.Title
	}

	a := &App{sample: sample, log: logger.Named("app")}
	a.log.Info("initializing sample",
		zap.String("title", title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	var err error
	a.pacer, err = loop.NewPacer(cfg.Render.Pacing, cfg.Render.FrameInterval)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates the OpenGL context)
	a.window, err = window.New(window.Config{
		Backend: cfg.Window.Backend,
		Title:   title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		VSync:   cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, the context must exist
	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: opts.Background,
		DepthTest:  opts.DepthTest,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := sample.Setup(); err != nil {
		sample.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to set up sample: %w", err)
	}

	a.log.Info("sample initialized")
	return a, nil
}

// Run drives the sample until the window is closed.
func (a *App) Run() error {
	d := &loop.Driver{
		Surface: frame{a},
		Events:  a.window.Input(),
		Pacer:   a.pacer,
		Logger:  logger.Named("loop"),
	}

	a.log.Info("starting render loop")
	frames, err := d.Run(a.sample)
	if err != nil {
		return err
	}
	a.log.Info("render loop finished", zap.Int("frames", frames))
	return nil
}

// Close releases the sample's GPU resources and destroys the window.
func (a *App) Close() {
	a.log.Info("closing sample")
	a.sample.Close()
	if a.window != nil {
		a.window.Close()
	}
}

// frame adapts the renderer and window to loop.Surface.
type frame struct {
	a *App
}

func (f frame) Clear() {
	f.a.renderer.Clear()
}

func (f frame) Present() error {
	return f.a.window.SwapBuffers()
}
