// Package mesh imports a model file and normalizes it into a unit viewing
// volume ready for a single indexed draw call.
package mesh

import gomath "math"

// NoMaterial marks a sub-mesh without a material reference.
const NoMaterial = -1

// TargetDiagonal is the bounding-box diagonal length a normalized mesh is
// scaled to, so the object fits within [-1, 1].
const TargetDiagonal = 2.0

// Default matte-gray colors for sub-meshes without a material.
var (
	DefaultDiffuse  = [3]float32{0.8, 0.8, 0.8}
	DefaultSpecular = [4]float32{0.15, 0.15, 0.15, 15.0}
)

// Vertex is the flattened, renderer-ready vertex.
// The layout is uploaded as-is: 13 float32 values, 52 bytes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Diffuse  [3]float32
	Specular [4]float32 // RGB + shininess
}

// Material holds the shading parameters referenced by a sub-mesh.
type Material struct {
	Name      string
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
}

// SubMesh is one geometric group of a parsed model.
type SubMesh struct {
	Name       string
	Positions  []float32 // flat x,y,z triples
	Normals    []float32 // flat x,y,z triples, may be empty
	Indices    []uint32  // local to this sub-mesh
	MaterialID int       // index into Source.Materials or NoMaterial
}

// Source is the structured output of a Parser.
type Source struct {
	Meshes    []SubMesh
	Materials []Material
}

// Bounds is an axis-aligned bounding box that only ever widens.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns a box that contains nothing; the first Extend sets both corners.
func EmptyBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

// Extend widens the box to contain p.
func (b *Bounds) Extend(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// IsEmpty reports whether no point has been added.
func (b Bounds) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Diagonal returns the length of the vector from Min to Max. It is computed
// in float64 so boxes spanning most of the float32 range stay finite.
func (b Bounds) Diagonal() float64 {
	var sq float64
	for i := 0; i < 3; i++ {
		d := float64(b.Max[i]) - float64(b.Min[i])
		sq += d * d
	}
	return gomath.Sqrt(sq)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	var c [3]float32
	for i := range c {
		c[i] = float32((float64(b.Min[i]) + float64(b.Max[i])) / 2)
	}
	return c
}

// Result is the normalized mesh handed to the renderer. It is built once and
// treated as read-only afterwards.
type Result struct {
	Vertices []Vertex
	Indices  []uint32
	Scale    float32
	Bounds   Bounds
}
