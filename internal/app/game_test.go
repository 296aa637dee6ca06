package app

import (
	"context"
	"errors"
	"go-survivor/internal/clock"
	"go-survivor/internal/component"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"go-survivor/internal/system"
	"image/color"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const frame = time.Second / 60

func newTestGame() (*Game, *clock.Manual) {
	clk := clock.NewManual(epoch)
	return NewGame(Options{Clock: clk, Seed: 11}), clk
}

func idle(w, h int) input.State { return input.Centered(w, h) }

func TestUpdateDoesNothingBeforeStart(t *testing.T) {
	g, _ := newTestGame()
	g.Update(input.Centered(800, 600))
	if g.World.DifficultyTimer != 0 || len(g.World.Bullets) != 0 {
		t.Fatal("simulation advanced before Start")
	}
}

func TestFrameLoopCadence(t *testing.T) {
	g, clk := newTestGame()
	spawned := 0
	g.Subscribe(event.EnemySpawned, event.ListenerFunc(func(event.Event) { spawned++ }))
	g.Start()
	loop := NewFrameLoop(g, clk, frame, InputFunc(idle))

	for i := 0; i < 120; i++ {
		if err := loop.Step(); err != nil {
			t.Fatal(err)
		}
	}

	if g.World.DifficultyTimer != 120 {
		t.Fatalf("difficulty timer = %d, want 120", g.World.DifficultyTimer)
	}
	// Первый враг на первом кадре, второй через секунду; третий ещё не успел.
	if spawned != 2 {
		t.Fatalf("enemies spawned in 2s = %d, want 2", spawned)
	}
	if g.Phase() != component.Running {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
}

func TestRunEndsWhenEnemyReachesIdlePlayer(t *testing.T) {
	g, clk := newTestGame()
	var overs []event.GameOverData
	g.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		overs = append(overs, e.Data.(event.GameOverData))
	}))
	g.Start()

	// Игрок стоит и целится в сторону, враг в конце концов его догоняет.
	loop := NewFrameLoop(g, clk, frame, InputFunc(func(w, h int) input.State {
		in := input.Centered(w, h)
		in.PointerX += 100
		return in
	}))
	loop.Picker = func(g *Game) component.UpgradeID { return component.UpgradeAttackPower }

	if err := loop.Run(context.Background(), 60*60*10); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.GameOver {
		t.Fatalf("phase after run = %v, want game-over", g.Phase())
	}
	if len(overs) != 1 || overs[0].FinalScore != g.Score() {
		t.Fatalf("GameOver events = %+v, score %d", overs, g.Score())
	}

	frames := loop.Frames
	g.Update(input.Centered(800, 600))
	if g.World.DifficultyTimer != frames {
		t.Fatal("simulation advanced after game over")
	}
}

func TestRunHonoursContext(t *testing.T) {
	g, clk := newTestGame()
	g.Start()
	loop := NewFrameLoop(g, clk, frame, InputFunc(idle))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if loop.Frames != 0 {
		t.Fatalf("frames = %d, want 0", loop.Frames)
	}
}

func TestChooseUpgradeOnlyWhilePaused(t *testing.T) {
	g, _ := newTestGame()
	g.Start()

	if err := g.ChooseUpgrade(component.UpgradeAttackPower); !errors.Is(err, system.ErrNotLevelingUp) {
		t.Fatalf("err = %v, want ErrNotLevelingUp", err)
	}

	var requested []event.UpgradeRequestedData
	g.Subscribe(event.UpgradeRequested, event.ListenerFunc(func(e event.Event) {
		requested = append(requested, e.Data.(event.UpgradeRequestedData))
	}))
	g.ProgressionSystem.GrantExperience(g.World, 100)

	if g.Phase() != component.LevelingUp || len(requested) != 1 {
		t.Fatalf("phase=%v requests=%d", g.Phase(), len(requested))
	}
	if g.Level() != 2 || g.ExperienceRatio() != 0 {
		t.Fatalf("level=%d ratio=%v", g.Level(), g.ExperienceRatio())
	}
	if len(g.OfferedUpgrades()) != 3 {
		t.Fatalf("offered = %d, want 3", len(g.OfferedUpgrades()))
	}

	// Пока забег на паузе, кадры ничего не двигают.
	timer := g.World.DifficultyTimer
	g.Update(input.Centered(800, 600))
	if g.World.DifficultyTimer != timer {
		t.Fatal("paused run advanced")
	}

	if err := g.ChooseUpgrade(component.UpgradeAttackPower); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.Running || g.World.Player.AttackPower != 30 {
		t.Fatalf("phase=%v power=%d", g.Phase(), g.World.Player.AttackPower)
	}
}

func TestRestartGivesCleanRun(t *testing.T) {
	g, clk := newTestGame()
	g.Start()
	loop := NewFrameLoop(g, clk, frame, InputFunc(idle))
	for i := 0; i < 90; i++ {
		if err := loop.Step(); err != nil {
			t.Fatal(err)
		}
	}
	g.World.Score = 5
	g.RunStateSystem.GameOver(g.World)
	oldRun := g.World.RunID

	g.Restart()

	w := g.World
	if w.RunID == oldRun {
		t.Fatal("restart kept the run id")
	}
	if w.Phase != component.Running || w.Score != 0 || w.DifficultyTimer != 0 {
		t.Fatalf("phase=%v score=%d timer=%d", w.Phase, w.Score, w.DifficultyTimer)
	}
	if len(w.Bullets) != 0 || len(w.Enemies) != 0 || w.Player.Level != 1 {
		t.Fatal("restart kept entities from the previous run")
	}
}

type nullPainter struct{ texts int }

func (p *nullPainter) Clear(color.Color)                                       {}
func (p *nullPainter) FillCircle(x, y, r float32, c color.Color)               {}
func (p *nullPainter) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {}
func (p *nullPainter) FillRect(x, y, w, h float32, c color.Color)              {}
func (p *nullPainter) StrokeRect(x, y, w, h, width float32, c color.Color)     {}
func (p *nullPainter) Text(s string, x, y int, c color.Color)                  { p.texts++ }
func (p *nullPainter) Size() (int, int)                                        { return 800, 600 }

func TestDrawUsesDebugFlag(t *testing.T) {
	g, _ := newTestGame()
	g.Start()
	p := &nullPainter{}
	g.Draw(p)
	if p.texts != 0 {
		t.Fatalf("texts without debug = %d", p.texts)
	}
	g.Debug = true
	g.Draw(p)
	if p.texts == 0 {
		t.Fatal("debug overlay not drawn")
	}
}
