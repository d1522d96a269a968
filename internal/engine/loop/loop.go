// Package loop drives the clear/draw/present/sleep/poll cadence of a sample.
package loop

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Scene is the per-frame work of a sample.
type Scene interface {
	// Update recomputes time-varying uniforms. Called once per frame before drawing.
	Update()
	// Draw submits the frame's draw calls.
	Draw() error
}

// Surface is the frame target.
type Surface interface {
	Clear()
	Present() error
}

// Events drains pending input events without blocking.
type Events interface {
	// Poll reports whether a close was requested since the last call.
	Poll() bool
}

// Driver runs a Scene until the window is closed.
type Driver struct {
	Surface Surface
	Events  Events
	Pacer   Pacer
	Logger  *zap.Logger

	// now is replaced in tests.
	now func() time.Time
}

// Run executes frames until Events reports a close. A draw or present
// failure stops the loop and is returned; callers treat it as fatal.
// Returns the number of completed frames.
func (d *Driver) Run(scene Scene) (int, error) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := d.now
	if now == nil {
		now = time.Now
	}

	frames := 0
	fpsFrames := 0
	fpsStart := now()
	closed := false

	for !closed {
		scene.Update()

		d.Surface.Clear()
		if err := scene.Draw(); err != nil {
			return frames, fmt.Errorf("draw frame %d: %w", frames, err)
		}
		if err := d.Surface.Present(); err != nil {
			return frames, fmt.Errorf("present frame %d: %w", frames, err)
		}
		frames++

		d.Pacer.Wait()
		closed = d.Events.Poll()

		fpsFrames++
		if elapsed := now().Sub(fpsStart); elapsed >= time.Second {
			log.Debug("fps", zap.Float64("fps", float64(fpsFrames)/elapsed.Seconds()))
			fpsFrames = 0
			fpsStart = now()
		}
	}

	log.Info("window closed", zap.Int("frames", frames))
	return frames, nil
}
