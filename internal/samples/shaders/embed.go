// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TriangleVertex is the vertex shader for the colored triangle.
//
//go:embed triangle.vert
var TriangleVertex string

// TriangleFragment is the fragment shader for the colored triangle.
//
//go:embed triangle.frag
var TriangleFragment string

// UniformVertex offsets the triangle horizontally by the offset uniform.
//
//go:embed uniform.vert
var UniformVertex string

//go:embed uniform.frag
var UniformFragment string

// TextureVertex is the vertex shader for the textured quad.
//
//go:embed texture.vert
var TextureVertex string

//go:embed texture.frag
var TextureFragment string

// TeapotVertex is the vertex shader for the lit mesh.
//
//go:embed teapot.vert
var TeapotVertex string

// TeapotFragment shades the mesh with its per-vertex material colors.
//
//go:embed teapot.frag
var TeapotFragment string
