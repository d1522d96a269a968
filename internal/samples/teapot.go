package samples

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsamples/internal/engine/renderer"
	"github.com/Faultbox/glsamples/internal/engine/shader"
	"github.com/Faultbox/glsamples/internal/mesh"
	"github.com/Faultbox/glsamples/internal/samples/shaders"
)

var meshVertexLayout = renderer.Layout{
	Stride: int32(unsafe.Sizeof(mesh.Vertex{})),
	Attribs: []renderer.Attrib{
		{Location: 0, Components: 3, Offset: unsafe.Offsetof(mesh.Vertex{}.Position)},
		{Location: 1, Components: 3, Offset: unsafe.Offsetof(mesh.Vertex{}.Normal)},
		{Location: 2, Components: 3, Offset: unsafe.Offsetof(mesh.Vertex{}.Diffuse)},
		{Location: 3, Components: 4, Offset: unsafe.Offsetof(mesh.Vertex{}.Specular)},
	},
}

// lightDir is the constant direction towards the light.
var lightDir = mgl32.Vec3{-1.0, 0.4, 0.9}

// Teapot renders an imported mesh with per-vertex material lighting.
// The mesh and its transform never change after construction.
type Teapot struct {
	drawable
	model     *mesh.Result
	transform mgl32.Mat4
}

// NewTeapot creates the mesh viewer for an imported model.
func NewTeapot(model *mesh.Result) *Teapot {
	return &Teapot{model: model, transform: model.Transform()}
}

func (s *Teapot) Options() Options {
	return Options{Title: "Teapot", Background: mgl32.Vec4{0, 0, 0, 0}, DepthTest: true}
}

func (s *Teapot) Setup() error {
	var err error
	s.program, err = shader.Compile(shaders.TeapotVertex, shaders.TeapotFragment)
	if err != nil {
		return fmt.Errorf("teapot program: %w", err)
	}
	s.buffer, err = renderer.Upload(s.model.Vertices, meshVertexLayout, s.model.Indices)
	if err != nil {
		return fmt.Errorf("mesh buffer: %w", err)
	}
	return nil
}

func (s *Teapot) Update() {}

func (s *Teapot) Draw() error {
	s.program.Use()
	s.program.SetMat4("matrix", s.transform)
	s.program.SetVec3("lightDir", lightDir)
	return s.draw()
}

func (s *Teapot) Close() {
	s.release()
}
