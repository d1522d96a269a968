// Package config handles sample configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all sample settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds window settings. An empty title means the sample picks its own.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Backend string `yaml:"backend"` // sdl or glfw
	VSync   bool   `yaml:"vsync"`
}

// RenderConfig holds frame pacing settings.
type RenderConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Pacing        string        `yaml:"pacing"` // sleep or budget
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	Model   string `yaml:"model"`
	Texture string `yaml:"texture"`
	Parser  string `yaml:"parser"` // builtin or g3n
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the samples' built-in settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   1024,
			Height:  768,
			Backend: "sdl",
			VSync:   false,
		},
		Render: RenderConfig{
			FrameInterval: 17 * time.Millisecond,
			Pacing:        "sleep",
		},
		Assets: AssetsConfig{
			Model:   "res/teapot.obj",
			Texture: "res/awesomeface.png",
			Parser:  "builtin",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		return fmt.Errorf("unknown window backend %q (want sdl or glfw)", c.Window.Backend)
	}
	if c.Render.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.Render.FrameInterval)
	}
	switch c.Render.Pacing {
	case "sleep", "budget":
	default:
		return fmt.Errorf("unknown pacing %q (want sleep or budget)", c.Render.Pacing)
	}
	switch c.Assets.Parser {
	case "builtin", "g3n":
	default:
		return fmt.Errorf("unknown model parser %q (want builtin or g3n)", c.Assets.Parser)
	}
	return nil
}
