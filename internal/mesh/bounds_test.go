package mesh

import (
	gomath "math"
	"testing"
)

func TestBounds_Monotonic(t *testing.T) {
	points := [][3]float32{
		{0, 0, 0},
		{1, -2, 3},
		{0.5, 0.5, 0.5},
		{-4, 10, -1},
		{2, 2, 2},
		{-1, -1, 8},
	}

	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Fatal("expected new bounds to be empty")
	}

	prev := b
	for i, p := range points {
		b.Extend(p)
		for axis := 0; axis < 3; axis++ {
			if b.Min[axis] > prev.Min[axis] {
				t.Errorf("step %d axis %d: min grew from %v to %v", i, axis, prev.Min[axis], b.Min[axis])
			}
			if b.Max[axis] < prev.Max[axis] {
				t.Errorf("step %d axis %d: max shrank from %v to %v", i, axis, prev.Max[axis], b.Max[axis])
			}
			if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
				t.Errorf("step %d axis %d: point %v outside bounds", i, axis, p)
			}
		}
		prev = b
	}

	if b.Min != [3]float32{-4, -2, -1} || b.Max != [3]float32{2, 10, 8} {
		t.Errorf("unexpected final bounds %+v", b)
	}
	if b.IsEmpty() {
		t.Error("expected non-empty bounds")
	}
}

func TestBounds_EmptyIsInfinite(t *testing.T) {
	b := EmptyBounds()
	for axis := 0; axis < 3; axis++ {
		if !gomath.IsInf(float64(b.Min[axis]), 1) || !gomath.IsInf(float64(b.Max[axis]), -1) {
			t.Errorf("axis %d: expected +Inf/-Inf, got %v/%v", axis, b.Min[axis], b.Max[axis])
		}
	}
}

func TestBounds_DiagonalAndCenter(t *testing.T) {
	b := EmptyBounds()
	b.Extend([3]float32{-1, -2, -2})
	b.Extend([3]float32{1, 2, 2})

	if got := b.Diagonal(); got != 6 {
		t.Errorf("expected diagonal 6, got %v", got)
	}
	if got := b.Center(); got != [3]float32{0, 0, 0} {
		t.Errorf("expected center at origin, got %v", got)
	}
}

func TestBounds_WideBoxStaysFinite(t *testing.T) {
	b := EmptyBounds()
	b.Extend([3]float32{-3e38, -3e38, -3e38})
	b.Extend([3]float32{3e38, 3e38, 3e38})

	want := 6e38 * gomath.Sqrt(3)
	if got := b.Diagonal(); gomath.IsInf(got, 0) || gomath.Abs(got-want) > want*1e-6 {
		t.Errorf("expected diagonal %v, got %v", want, got)
	}

	b = EmptyBounds()
	b.Extend([3]float32{3e38, 0, 0})
	b.Extend([3]float32{3.4e38, 0, 0})
	c := b.Center()
	if gomath.IsInf(float64(c[0]), 0) || gomath.Abs(float64(c[0])-3.2e38) > 3.2e38*1e-6 {
		t.Errorf("expected center x 3.2e38, got %v", c[0])
	}
}
