// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background mgl32.Vec4
	DepthTest  bool
}

// Renderer owns global GL state and the frame clear.
type Renderer struct {
	config Config
}

// New initializes OpenGL and the default state.
// The OpenGL context must be current before calling New.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{config: cfg}
	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	r.SetBackground(cfg.Background)
	r.Resize(cfg.Width, cfg.Height)

	return r, CheckError("renderer setup")
}

// SetBackground changes the clear color.
func (r *Renderer) SetBackground(c mgl32.Vec4) {
	r.config.Background = c
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport set", zap.Int("width", width), zap.Int("height", height))
}

// Clear clears the color (and depth, if enabled) buffers.
func (r *Renderer) Clear() {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.config.DepthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// CheckError returns an error if the GL error flag is set.
func CheckError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04x", op, code)
	}
	return nil
}
