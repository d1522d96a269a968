package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/engine/input"
	"github.com/Faultbox/glsamples/internal/logger"
)

// sdlWindow wraps an SDL2 window and its OpenGL context.
type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext
	input     *input.SDLPoller
}

func newSDL(cfg Config) (*sdlWindow, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window is created
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, glMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, glMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN),
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return &sdlWindow{window: win, glContext: ctx, input: input.NewSDL()}, nil
}

func (w *sdlWindow) SwapBuffers() error {
	w.window.GLSwap()
	return nil
}

func (w *sdlWindow) Input() input.Poller {
	return w.input
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendSDL))
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
