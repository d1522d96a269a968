package mesh

import "github.com/go-gl/mathgl/mgl32"

// Transform returns the model matrix that centers the mesh on the origin and
// applies the normalization scale, so the whole object lies inside [-1, 1].
func (r *Result) Transform() mgl32.Mat4 {
	c := r.Bounds.Center()
	return mgl32.Scale3D(r.Scale, r.Scale, r.Scale).
		Mul4(mgl32.Translate3D(-c[0], -c[1], -c[2]))
}
