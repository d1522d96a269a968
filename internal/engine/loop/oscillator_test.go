package loop

import "testing"

func TestOscillator_Bounces(t *testing.T) {
	o := NewOscillator(-0.5, 0.5, 0.0005)
	if o.Value() != -0.5 {
		t.Fatalf("expected start at -0.5, got %v", o.Value())
	}

	prev := o.Value()
	reversedAt := -1
	for frame := 1; frame <= 2000; frame++ {
		v := o.Advance()
		if v < -0.5 || v > 0.5 {
			t.Fatalf("frame %d: value %v outside [-0.5, 0.5]", frame, v)
		}
		if reversedAt < 0 && o.Direction() < 0 {
			reversedAt = frame
		}
		if reversedAt < 0 && v <= prev {
			t.Fatalf("frame %d: value did not increase before reversal (%v -> %v)", frame, prev, v)
		}
		prev = v
	}

	if o.Reversals() < 1 {
		t.Errorf("expected at least one reversal after 2000 frames, got %d", o.Reversals())
	}
	if reversedAt != 2000 {
		t.Errorf("expected reversal at frame 2000, got %d", reversedAt)
	}
	if o.Value() != 0.5 {
		t.Errorf("expected to sit at 0.5 after a full sweep, got %v", o.Value())
	}
}

func TestOscillator_FullCycle(t *testing.T) {
	o := NewOscillator(-0.5, 0.5, 0.0005)
	for i := 0; i < 4000; i++ {
		v := o.Advance()
		if v < -0.5 || v > 0.5 {
			t.Fatalf("step %d: value %v out of range", i, v)
		}
	}
	if o.Value() != -0.5 || o.Direction() != 1 {
		t.Errorf("expected back at -0.5 moving up, got %v dir %d", o.Value(), o.Direction())
	}
	if o.Reversals() != 2 {
		t.Errorf("expected 2 reversals, got %d", o.Reversals())
	}
}

func TestOscillator_DescendsAfterMax(t *testing.T) {
	o := NewOscillator(0, 1, 0.25)
	want := []float32{0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0.25}
	for i, w := range want {
		if got := o.Advance(); got != w {
			t.Errorf("step %d: expected %v, got %v", i, w, got)
		}
	}
}
