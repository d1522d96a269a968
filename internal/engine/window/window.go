// Package window creates the native window and OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/glsamples/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// OpenGL context version requested from every backend (4.1 core is the
// highest macOS supports).
const (
	glMajor = 4
	glMinor = 1
)

// Config holds window configuration.
type Config struct {
	Backend string
	Title   string
	Width   int
	Height  int
	VSync   bool
}

// Window is a native window with a current OpenGL context.
type Window interface {
	// SwapBuffers presents the back buffer.
	SwapBuffers() error
	// Input returns the event poller for this window.
	Input() input.Poller
	// Size returns the drawable size in pixels.
	Size() (int, int)
	// Close destroys the window and shuts the backend down.
	Close()
}

// New creates a window with the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
