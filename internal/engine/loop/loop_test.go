package loop

import (
	"errors"
	"testing"
	"time"
)

// recorder captures the order of calls made by the driver.
type recorder struct {
	calls []string
}

func (r *recorder) add(s string) { r.calls = append(r.calls, s) }

type fakeScene struct {
	rec     *recorder
	drawErr error
	failAt  int
	draws   int
}

func (s *fakeScene) Update() { s.rec.add("update") }

func (s *fakeScene) Draw() error {
	s.rec.add("draw")
	s.draws++
	if s.drawErr != nil && s.draws == s.failAt {
		return s.drawErr
	}
	return nil
}

type fakeSurface struct {
	rec        *recorder
	presentErr error
}

func (s *fakeSurface) Clear() { s.rec.add("clear") }

func (s *fakeSurface) Present() error {
	s.rec.add("present")
	return s.presentErr
}

type fakePacer struct{ rec *recorder }

func (p *fakePacer) Wait() { p.rec.add("wait") }

// closeAfter reports a close on the n-th poll.
type closeAfter struct {
	rec   *recorder
	n     int
	polls int
}

func (e *closeAfter) Poll() bool {
	e.rec.add("poll")
	e.polls++
	return e.polls >= e.n
}

func newDriver(rec *recorder, closeAt int) (*Driver, *closeAfter) {
	ev := &closeAfter{rec: rec, n: closeAt}
	return &Driver{
		Surface: &fakeSurface{rec: rec},
		Events:  ev,
		Pacer:   &fakePacer{rec: rec},
	}, ev
}

func TestDriver_FrameOrder(t *testing.T) {
	rec := &recorder{}
	d, _ := newDriver(rec, 2)

	frames, err := d.Run(&fakeScene{rec: rec})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if frames != 2 {
		t.Errorf("expected 2 frames, got %d", frames)
	}

	frame := []string{"update", "clear", "draw", "present", "wait", "poll"}
	want := append(append([]string{}, frame...), frame...)
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(rec.calls), rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], rec.calls[i])
		}
	}
}

func TestDriver_ClosesAfterFirstFrame(t *testing.T) {
	rec := &recorder{}
	d, ev := newDriver(rec, 1)

	frames, err := d.Run(&fakeScene{rec: rec})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// A close is seen at most one frame late
	if frames != 1 || ev.polls != 1 {
		t.Errorf("expected 1 frame and 1 poll, got %d frames, %d polls", frames, ev.polls)
	}
}

func TestDriver_DrawErrorAborts(t *testing.T) {
	rec := &recorder{}
	d, ev := newDriver(rec, 100)
	drawErr := errors.New("lost context")

	frames, err := d.Run(&fakeScene{rec: rec, drawErr: drawErr, failAt: 3})
	if !errors.Is(err, drawErr) {
		t.Fatalf("expected draw error, got %v", err)
	}
	if frames != 2 {
		t.Errorf("expected 2 completed frames, got %d", frames)
	}
	if ev.polls != 2 {
		t.Errorf("expected no poll after the failing draw, got %d polls", ev.polls)
	}
}

func TestDriver_PresentErrorAborts(t *testing.T) {
	rec := &recorder{}
	presentErr := errors.New("swap failed")
	d := &Driver{
		Surface: &fakeSurface{rec: rec, presentErr: presentErr},
		Events:  &closeAfter{rec: rec, n: 100},
		Pacer:   &fakePacer{rec: rec},
	}

	frames, err := d.Run(&fakeScene{rec: rec})
	if !errors.Is(err, presentErr) {
		t.Fatalf("expected present error, got %v", err)
	}
	if frames != 0 {
		t.Errorf("expected 0 completed frames, got %d", frames)
	}
}

func TestDriver_FPSLogClock(t *testing.T) {
	rec := &recorder{}
	d, _ := newDriver(rec, 5)

	// Each call to now advances 600ms so the fps window rolls over mid-run
	clock := time.Unix(0, 0)
	d.now = func() time.Time {
		clock = clock.Add(600 * time.Millisecond)
		return clock
	}

	frames, err := d.Run(&fakeScene{rec: rec})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if frames != 5 {
		t.Errorf("expected 5 frames, got %d", frames)
	}
}
