package loop

import (
	"testing"
	"time"
)

func TestSleepPacer(t *testing.T) {
	var slept []time.Duration
	p := NewSleepPacer(DefaultInterval)
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 3; i++ {
		p.Wait()
	}

	if len(slept) != 3 {
		t.Fatalf("expected 3 sleeps, got %d", len(slept))
	}
	for _, d := range slept {
		if d != 17*time.Millisecond {
			t.Errorf("expected 17ms sleep, got %v", d)
		}
	}
}

func TestBudgetPacer(t *testing.T) {
	clock := time.Unix(100, 0)
	var slept []time.Duration

	p := NewBudgetPacer(20 * time.Millisecond)
	p.now = func() time.Time { return clock }
	p.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	// First frame: budget starts now, full interval remains
	p.Wait()
	// Frame took 5ms: sleep the remaining 15ms
	clock = clock.Add(5 * time.Millisecond)
	p.Wait()
	// Frame took 30ms: over budget, no sleep
	clock = clock.Add(30 * time.Millisecond)
	p.Wait()
	// Frame took 8ms from the reset point
	clock = clock.Add(8 * time.Millisecond)
	p.Wait()

	want := []time.Duration{20 * time.Millisecond, 15 * time.Millisecond, 12 * time.Millisecond}
	if len(slept) != len(want) {
		t.Fatalf("expected sleeps %v, got %v", want, slept)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep %d: expected %v, got %v", i, want[i], slept[i])
		}
	}
}

func TestNewPacer(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{"", "sleep", false},
		{"sleep", "sleep", false},
		{"budget", "budget", false},
		{"vsync", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			p, err := NewPacer(tt.mode, DefaultInterval)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch p.(type) {
			case *SleepPacer:
				if tt.want != "sleep" {
					t.Errorf("expected %s pacer, got sleep", tt.want)
				}
			case *BudgetPacer:
				if tt.want != "budget" {
					t.Errorf("expected %s pacer, got budget", tt.want)
				}
			}
		})
	}
}
