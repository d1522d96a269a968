package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attrib describes one float vertex attribute.
type Attrib struct {
	Location   uint32
	Components int32
	Offset     uintptr
}

// Layout describes the interleaved vertex format of a buffer.
type Layout struct {
	Stride  int32
	Attribs []Attrib
}

// Buffer is an uploaded vertex array, optionally indexed.
type Buffer struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// Upload creates a vertex buffer from vertices. When indices is nil the
// buffer is drawn with DrawArrays, otherwise with DrawElements.
func Upload[V any](vertices []V, layout Layout, indices []uint32) (*Buffer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("upload: no vertices")
	}
	var zero V
	if size := int32(unsafe.Sizeof(zero)); size != layout.Stride {
		return nil, fmt.Errorf("upload: vertex size %d does not match layout stride %d", size, layout.Stride)
	}

	b := &Buffer{count: int32(len(vertices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(layout.Stride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	for _, a := range layout.Attribs {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, layout.Stride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}

	if len(indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
		b.count = int32(len(indices))
	}

	gl.BindVertexArray(0)

	if err := CheckError("upload"); err != nil {
		b.Delete()
		return nil, err
	}
	return b, nil
}

// Draw issues one triangle-list draw call for the buffer.
func (b *Buffer) Draw() {
	gl.BindVertexArray(b.vao)
	if b.ebo != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects.
func (b *Buffer) Delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
