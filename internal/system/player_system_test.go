package system

import (
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"math"
	"testing"
	"time"
)

func TestMovementIsUnnormalizedOnDiagonals(t *testing.T) {
	s := NewPlayerSystem(config.DefaultTuning(), event.NewDispatcher())
	w := newRunningWorld()

	in := input.Centered(800, 600)
	in.Up, in.Right = true, true
	s.Update(w, in, epoch)

	if w.Player.X != 5 || w.Player.Y != -5 {
		t.Fatalf("player at (%v, %v), want (5, -5)", w.Player.X, w.Player.Y)
	}

	in = input.Centered(800, 600)
	in.Left, in.Right = true, true
	s.Update(w, in, epoch)
	if w.Player.X != 5 {
		t.Fatalf("opposite keys should cancel, x = %v", w.Player.X)
	}
}

func TestSingleBulletFliesExactlyAtAim(t *testing.T) {
	s := NewPlayerSystem(config.DefaultTuning(), event.NewDispatcher())
	w := newRunningWorld()

	in := input.State{PointerX: 500, PointerY: 400, ScreenW: 800, ScreenH: 600}
	s.Update(w, in, epoch)

	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(w.Bullets))
	}
	want := math.Atan2(100, 100)
	if w.Bullets[0].Angle != want {
		t.Fatalf("angle = %v, want %v", w.Bullets[0].Angle, want)
	}
	if !w.Player.LastShot.Equal(epoch) {
		t.Fatalf("LastShot = %v, want %v", w.Player.LastShot, epoch)
	}
}

func TestThreeBulletVolleyIsSymmetric(t *testing.T) {
	s := NewPlayerSystem(config.DefaultTuning(), event.NewDispatcher())
	w := newRunningWorld()
	w.Player.BulletCount = 3

	in := input.State{PointerX: 900, PointerY: 300, ScreenW: 600, ScreenH: 600}
	s.Update(w, in, epoch)

	if len(w.Bullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(w.Bullets))
	}
	aim := math.Atan2(0, 600)
	const eps = 1e-12
	if d := w.Bullets[1].Angle - aim; math.Abs(d) > eps {
		t.Errorf("middle bullet off aim by %v", d)
	}
	lo, hi := w.Bullets[0].Angle-aim, w.Bullets[2].Angle-aim
	if math.Abs(lo+hi) > eps {
		t.Errorf("volley not symmetric: %v vs %v", lo, hi)
	}
	if math.Abs(hi-0.15) > eps {
		t.Errorf("outer bullet offset = %v, want 0.15", hi)
	}
}

func TestVolleyAnglesStayInsideWindow(t *testing.T) {
	for n := 2; n <= 8; n++ {
		angles := VolleyAngles(1, n, 0.3)
		if len(angles) != n {
			t.Fatalf("n=%d: got %d angles", n, len(angles))
		}
		if math.Abs(angles[0]-0.85) > 1e-12 || math.Abs(angles[n-1]-1.15) > 1e-12 {
			t.Errorf("n=%d: edges %v..%v, want 0.85..1.15", n, angles[0], angles[n-1])
		}
	}
	if VolleyAngles(1, 0, 0.3) != nil {
		t.Error("zero bullets should yield no angles")
	}
}

func TestFiringRespectsAttackInterval(t *testing.T) {
	d := event.NewDispatcher()
	rec := listenAll(d)
	s := NewPlayerSystem(config.DefaultTuning(), d)
	w := newRunningWorld()
	in := input.Centered(800, 600)

	now := epoch
	s.Update(w, in, now) // первый залп сразу
	for i := 0; i < 29; i++ {
		now = now.Add(time.Second / 60)
		s.Update(w, in, now)
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets before 500ms = %d, want 1", len(w.Bullets))
	}

	s.Update(w, in, epoch.Add(500*time.Millisecond))
	if len(w.Bullets) != 2 {
		t.Fatalf("bullets at 500ms = %d, want 2", len(w.Bullets))
	}
	if rec.count(event.VolleyFired) != 2 {
		t.Fatalf("VolleyFired events = %d, want 2", rec.count(event.VolleyFired))
	}
}
