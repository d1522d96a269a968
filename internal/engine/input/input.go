// Package input drains window-system events and reports close requests.
package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"
)

// Poller drains all buffered events without blocking.
type Poller interface {
	// Poll reports whether a close was requested since the last call.
	Poll() bool
}

// SDLPoller polls the SDL2 event queue.
type SDLPoller struct{}

// NewSDL creates a poller for the SDL2 event queue.
func NewSDL() *SDLPoller {
	return &SDLPoller{}
}

// Poll implements Poller. Every pending event is consumed, even after a
// close has been seen, so the queue is empty when Poll returns.
func (p *SDLPoller) Poll() bool {
	closed := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if isSDLClose(event) {
			closed = true
		}
	}
	return closed
}

func isSDLClose(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return e.Event == sdl.WINDOWEVENT_CLOSE
	case *sdl.KeyboardEvent:
		return e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE
	}
	return false
}

// GLFWPoller processes pending GLFW events for one window.
type GLFWPoller struct {
	window *glfw.Window
}

// NewGLFW creates a poller bound to a GLFW window.
func NewGLFW(w *glfw.Window) *GLFWPoller {
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return &GLFWPoller{window: w}
}

// Poll implements Poller.
func (p *GLFWPoller) Poll() bool {
	glfw.PollEvents()
	return p.window.ShouldClose()
}
