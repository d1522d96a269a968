package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/engine/input"
	"github.com/Faultbox/glsamples/internal/logger"
)

// glfwWindow wraps a GLFW window; GLFW owns the OpenGL context.
type glfwWindow struct {
	window *glfw.Window
	input  *input.GLFWPoller
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwInit failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, glMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwCreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return &glfwWindow{window: win, input: input.NewGLFW(win)}, nil
}

func (w *glfwWindow) SwapBuffers() error {
	w.window.SwapBuffers()
	return nil
}

func (w *glfwWindow) Input() input.Poller {
	return w.input
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}
