package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagBackend = flag.String("backend", "", "Window backend (sdl or glfw)")
	flagModel   = flag.String("model", "", "Path to the OBJ model")
	flagTexture = flag.String("texture", "", "Path to the texture image")
	flagParser  = flag.String("parser", "", "OBJ parser (builtin or g3n)")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagSave    = flag.Bool("save-config", false, "Write the effective config to the user config dir")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagModel != "" {
		cfg.Assets.Model = *flagModel
	}
	if *flagTexture != "" {
		cfg.Assets.Texture = *flagTexture
	}
	if *flagParser != "" {
		cfg.Assets.Parser = *flagParser
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
