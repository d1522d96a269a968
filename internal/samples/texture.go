package samples

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glsamples/internal/engine/loop"
	"github.com/Faultbox/glsamples/internal/engine/renderer"
	"github.com/Faultbox/glsamples/internal/engine/shader"
	"github.com/Faultbox/glsamples/internal/samples/shaders"
)

type texVertex struct {
	Position [2]float32
	TexCoord [2]float32
}

var texVertexLayout = renderer.Layout{
	Stride: 16,
	Attribs: []renderer.Attrib{
		{Location: 0, Components: 2, Offset: 0},
		{Location: 1, Components: 2, Offset: 8},
	},
}

var quadVertices = []texVertex{
	{Position: [2]float32{-0.5, -0.5}, TexCoord: [2]float32{0, 0}},
	{Position: [2]float32{0.5, -0.5}, TexCoord: [2]float32{1, 0}},
	{Position: [2]float32{0.5, 0.5}, TexCoord: [2]float32{1, 1}},
	{Position: [2]float32{-0.5, 0.5}, TexCoord: [2]float32{0, 1}},
}

var quadIndices = []uint32{0, 1, 2, 0, 2, 3}

// Texture draws an image on a quad that slides horizontally.
type Texture struct {
	drawable
	image   *image.RGBA
	texture *renderer.Texture
	offset  *loop.Oscillator
}

// NewTexture creates the texture sample from decoded, bottom-up RGBA pixels.
func NewTexture(img *image.RGBA) *Texture {
	return &Texture{
		image:  img,
		offset: loop.NewOscillator(offsetMin, offsetMax, offsetStep),
	}
}

func (s *Texture) Options() Options {
	return Options{Title: "Textures", Background: mgl32.Vec4{0.0, 0.0, 1.0, 1.0}}
}

func (s *Texture) Setup() error {
	var err error
	s.program, err = shader.Compile(shaders.TextureVertex, shaders.TextureFragment)
	if err != nil {
		return fmt.Errorf("texture program: %w", err)
	}
	s.buffer, err = renderer.Upload(quadVertices, texVertexLayout, quadIndices)
	if err != nil {
		return fmt.Errorf("quad buffer: %w", err)
	}
	s.texture, err = renderer.UploadTexture(s.image)
	if err != nil {
		return err
	}
	// Pixels live on the GPU now
	s.image = nil
	return nil
}

func (s *Texture) Update() {
	s.offset.Advance()
}

func (s *Texture) Draw() error {
	s.program.Use()
	s.program.SetMat4("matrix", mgl32.Translate3D(s.offset.Value(), 0, 0))
	s.texture.Bind(0)
	s.program.SetInt("tex", 0)
	return s.draw()
}

func (s *Texture) Close() {
	if s.texture != nil {
		s.texture.Delete()
		s.texture = nil
	}
	s.release()
}
