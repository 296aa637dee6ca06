package system

import (
	"errors"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"math"
	"testing"
	"time"
)

func newProgression() (*ProgressionSystem, *recorder) {
	d := event.NewDispatcher()
	rec := listenAll(d)
	return NewProgressionSystem(config.DefaultTuning(), NewRunStateSystem(d), d), rec
}

func TestLevelUpDiscardsExcessAndGrowsThreshold(t *testing.T) {
	s, rec := newProgression()
	w := newRunningWorld()
	w.Player.Experience = 95

	s.GrantExperience(w, 20)

	p := w.Player
	if p.Level != 2 || p.Experience != 0 {
		t.Fatalf("level=%d exp=%v, want 2 and 0", p.Level, p.Experience)
	}
	if math.Abs(p.ExperienceToNext-120) > 1e-9 {
		t.Fatalf("threshold = %v, want 120", p.ExperienceToNext)
	}
	if w.Phase != component.LevelingUp {
		t.Fatalf("phase = %v, want leveling-up", w.Phase)
	}
	if rec.count(event.UpgradeRequested) != 1 {
		t.Fatalf("UpgradeRequested events = %d, want 1", rec.count(event.UpgradeRequested))
	}
}

func TestThresholdCompounds(t *testing.T) {
	s, _ := newProgression()
	w := newRunningWorld()

	want := 100.0
	for level := 2; level <= 6; level++ {
		s.GrantExperience(w, w.Player.ExperienceToNext)
		want *= 1.2
		if math.Abs(w.Player.ExperienceToNext-want) > 1e-9 {
			t.Fatalf("level %d threshold = %v, want %v", level, w.Player.ExperienceToNext, want)
		}
		if err := s.ApplyUpgrade(w, component.UpgradeAttackPower); err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
	}
}

func TestBelowThresholdJustAccumulates(t *testing.T) {
	s, rec := newProgression()
	w := newRunningWorld()

	s.GrantExperience(w, 20)
	s.GrantExperience(w, 20)

	if w.Player.Experience != 40 || w.Player.Level != 1 || w.Phase != component.Running {
		t.Fatalf("unexpected state: exp=%v level=%d phase=%v", w.Player.Experience, w.Player.Level, w.Phase)
	}
	if len(rec.events) != 0 {
		t.Fatalf("unexpected events: %v", rec.events)
	}
}

func TestSpecialUpgradesEveryThirdLevel(t *testing.T) {
	s, rec := newProgression()
	w := newRunningWorld()

	for level := 2; level <= 6; level++ {
		s.GrantExperience(w, w.Player.ExperienceToNext)
		last := rec.events[len(rec.events)-1].Data.(event.UpgradeRequestedData)
		wantSpecial := level%3 == 0
		if last.Level != level || last.Special != wantSpecial {
			t.Fatalf("level %d: request %+v, want special=%v", level, last, wantSpecial)
		}
		offered := s.Offered(level)
		if wantSpecial && len(offered) != 5 || !wantSpecial && len(offered) != 3 {
			t.Fatalf("level %d: %d upgrades offered", level, len(offered))
		}
		if err := s.ApplyUpgrade(w, component.UpgradeMoveSpeed); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAttackSpeedFloorsAtMinimum(t *testing.T) {
	s, _ := newProgression()
	w := newRunningWorld()

	for i := 0; i < 10; i++ {
		w.Phase = component.LevelingUp
		if err := s.ApplyUpgrade(w, component.UpgradeAttackSpeed); err != nil {
			t.Fatal(err)
		}
	}
	if w.Player.AttackInterval != 100*time.Millisecond {
		t.Fatalf("interval after 10 upgrades = %v, want 100ms", w.Player.AttackInterval)
	}

	w.Phase = component.LevelingUp
	if err := s.ApplyUpgrade(w, component.UpgradeAttackSpeed); err != nil {
		t.Fatal(err)
	}
	if w.Player.AttackInterval != 100*time.Millisecond {
		t.Fatalf("interval went below floor: %v", w.Player.AttackInterval)
	}
}

func TestUpgradeEffects(t *testing.T) {
	tests := []struct {
		id    component.UpgradeID
		level int
		check func(p component.Player) bool
	}{
		{component.UpgradeAttackPower, 2, func(p component.Player) bool { return p.AttackPower == 30 }},
		{component.UpgradeMoveSpeed, 2, func(p component.Player) bool { return p.Speed == 6 }},
		{component.UpgradeBulletCount, 3, func(p component.Player) bool { return p.BulletCount == 2 }},
		{component.UpgradeBulletSize, 3, func(p component.Player) bool { return p.BulletSize == 10 }},
		{component.UpgradeAttackSpeed, 2, func(p component.Player) bool { return p.AttackInterval == 450*time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			s, rec := newProgression()
			w := newRunningWorld()
			w.Phase = component.LevelingUp
			w.Player.Level = tt.level

			if err := s.ApplyUpgrade(w, tt.id); err != nil {
				t.Fatal(err)
			}
			if !tt.check(w.Player) {
				t.Fatalf("upgrade not applied: %+v", w.Player)
			}
			if w.Phase != component.Running {
				t.Fatalf("phase = %v, want running", w.Phase)
			}
			if rec.count(event.UpgradeChosen) != 1 {
				t.Fatal("UpgradeChosen not dispatched")
			}
		})
	}
}

func TestApplyUpgradeRejections(t *testing.T) {
	s, _ := newProgression()

	w := newRunningWorld()
	if err := s.ApplyUpgrade(w, component.UpgradeAttackPower); !errors.Is(err, ErrNotLevelingUp) {
		t.Fatalf("running: err = %v, want ErrNotLevelingUp", err)
	}

	w.Phase = component.LevelingUp
	w.Player.Level = 2
	if err := s.ApplyUpgrade(w, "health"); !errors.Is(err, ErrUnknownUpgrade) {
		t.Fatalf("unknown: err = %v, want ErrUnknownUpgrade", err)
	}
	if err := s.ApplyUpgrade(w, component.UpgradeBulletCount); !errors.Is(err, ErrUpgradeNotOffered) {
		t.Fatalf("special at level 2: err = %v, want ErrUpgradeNotOffered", err)
	}
	if w.Phase != component.LevelingUp || w.Player.BulletCount != 1 {
		t.Fatal("rejected upgrade changed the run")
	}
}

func TestExperienceRatio(t *testing.T) {
	p := component.Player{Experience: 30, ExperienceToNext: 120}
	if got := ExperienceRatio(p); got != 0.25 {
		t.Fatalf("ratio = %v, want 0.25", got)
	}
	p.Experience = 500
	if got := ExperienceRatio(p); got != 1 {
		t.Fatalf("ratio = %v, want 1", got)
	}
	if got := ExperienceRatio(component.Player{}); got != 0 {
		t.Fatalf("ratio with zero threshold = %v, want 0", got)
	}
}
