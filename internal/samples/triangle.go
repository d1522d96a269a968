package samples

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsamples/internal/engine/renderer"
	"github.com/Faultbox/glsamples/internal/engine/shader"
	"github.com/Faultbox/glsamples/internal/samples/shaders"
)

// Triangle draws a single colored triangle without an index buffer.
type Triangle struct {
	drawable
}

// NewTriangle creates the triangle sample.
func NewTriangle() *Triangle {
	return &Triangle{}
}

func (s *Triangle) Options() Options {
	return Options{Title: "Hello world", Background: mgl32.Vec4{0.2, 0.3, 0.3, 0.3}}
}

func (s *Triangle) Setup() error {
	var err error
	s.program, err = shader.Compile(shaders.TriangleVertex, shaders.TriangleFragment)
	if err != nil {
		return fmt.Errorf("triangle program: %w", err)
	}
	s.buffer, err = renderer.Upload(triangleVertices, colorVertexLayout, nil)
	if err != nil {
		return fmt.Errorf("triangle buffer: %w", err)
	}
	return nil
}

func (s *Triangle) Update() {}

func (s *Triangle) Draw() error {
	s.program.Use()
	return s.draw()
}

func (s *Triangle) Close() {
	s.release()
}
