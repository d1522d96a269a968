// Package samples contains the sample scenes: a colored triangle, a textured
// quad, an animated triangle and the lit mesh viewer.
package samples

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsamples/internal/engine/loop"
	"github.com/Faultbox/glsamples/internal/engine/renderer"
	"github.com/Faultbox/glsamples/internal/engine/shader"
)

// Options are the window and renderer settings a sample asks for.
type Options struct {
	Title      string
	Background mgl32.Vec4
	DepthTest  bool
}

// Sample is a scene driven by the render loop.
type Sample interface {
	loop.Scene
	Options() Options
	// Setup creates GPU resources. Called once the OpenGL context is current.
	Setup() error
	// Close releases GPU resources.
	Close()
}

// Per-frame offset animation shared by the animated samples.
const (
	offsetMin  = -0.5
	offsetMax  = 0.5
	offsetStep = 0.0005
)

// colorVertex is a 2D position with an RGB color.
type colorVertex struct {
	Position [2]float32
	Color    [3]float32
}

var colorVertexLayout = renderer.Layout{
	Stride: 20,
	Attribs: []renderer.Attrib{
		{Location: 0, Components: 2, Offset: 0},
		{Location: 1, Components: 3, Offset: 8},
	},
}

var triangleVertices = []colorVertex{
	{Position: [2]float32{-0.5, -0.5}, Color: [3]float32{1, 0, 0}},
	{Position: [2]float32{0.0, 0.5}, Color: [3]float32{0, 1, 0}},
	{Position: [2]float32{0.5, -0.5}, Color: [3]float32{0, 0, 1}},
}

// drawable bundles a program and a buffer, the state every sample needs.
type drawable struct {
	program *shader.Program
	buffer  *renderer.Buffer
}

func (d *drawable) release() {
	if d.buffer != nil {
		d.buffer.Delete()
		d.buffer = nil
	}
	if d.program != nil {
		d.program.Delete()
		d.program = nil
	}
}

// draw submits the buffer and reports any GL error raised by the frame.
func (d *drawable) draw() error {
	d.buffer.Draw()
	return renderer.CheckError("draw")
}
