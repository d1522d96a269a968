package samples

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsamples/internal/engine/loop"
	"github.com/Faultbox/glsamples/internal/engine/renderer"
	"github.com/Faultbox/glsamples/internal/engine/shader"
	"github.com/Faultbox/glsamples/internal/samples/shaders"
)

// Uniform slides the colored triangle back and forth through a float uniform.
type Uniform struct {
	drawable
	offset *loop.Oscillator
}

// NewUniform creates the animated triangle sample.
func NewUniform() *Uniform {
	return &Uniform{offset: loop.NewOscillator(offsetMin, offsetMax, offsetStep)}
}

func (s *Uniform) Options() Options {
	return Options{Title: "Uniforms", Background: mgl32.Vec4{0.2, 0.3, 0.3, 0.3}}
}

func (s *Uniform) Setup() error {
	var err error
	s.program, err = shader.Compile(shaders.UniformVertex, shaders.UniformFragment)
	if err != nil {
		return fmt.Errorf("uniform program: %w", err)
	}
	s.buffer, err = renderer.Upload(triangleVertices, colorVertexLayout, nil)
	if err != nil {
		return fmt.Errorf("uniform buffer: %w", err)
	}
	return nil
}

func (s *Uniform) Update() {
	s.offset.Advance()
}

func (s *Uniform) Draw() error {
	s.program.Use()
	s.program.SetFloat("offset", s.offset.Value())
	return s.draw()
}

func (s *Uniform) Close() {
	s.release()
}
