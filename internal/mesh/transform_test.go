package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestResult_TransformFitsUnitCube(t *testing.T) {
	src := &Source{Meshes: []SubMesh{{
		Positions:  []float32{10, 20, 30, 14, 23, 30, 12, 21, 42},
		MaterialID: NoMaterial,
	}}}
	res, err := Normalize(src)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	m := res.Transform()
	lo := m.Mul4x1(mgl32.Vec4{res.Bounds.Min[0], res.Bounds.Min[1], res.Bounds.Min[2], 1})
	hi := m.Mul4x1(mgl32.Vec4{res.Bounds.Max[0], res.Bounds.Max[1], res.Bounds.Max[2], 1})

	// Corners land symmetric around the origin
	if !lo.Vec3().ApproxEqualThreshold(hi.Vec3().Mul(-1), 1e-4) {
		t.Errorf("expected symmetric corners, got %v and %v", lo, hi)
	}
	// and the transformed diagonal has the target length
	if d := hi.Vec3().Sub(lo.Vec3()).Len(); !mgl32.FloatEqualThreshold(d, TargetDiagonal, 1e-4) {
		t.Errorf("expected diagonal %v, got %v", TargetDiagonal, d)
	}
	for _, v := range res.Vertices {
		p := m.Mul4x1(mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1})
		for axis := 0; axis < 3; axis++ {
			if p[axis] < -1.0001 || p[axis] > 1.0001 {
				t.Errorf("vertex %v maps outside [-1, 1]: %v", v.Position, p)
			}
		}
	}
}

func TestResult_TransformCenteredCube(t *testing.T) {
	res, err := Normalize(&Source{Meshes: []SubMesh{unitCube()}})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := mgl32.Scale3D(res.Scale, res.Scale, res.Scale)
	if !res.Transform().ApproxEqual(want) {
		t.Errorf("centered mesh should only be scaled, got %v", res.Transform())
	}
}
