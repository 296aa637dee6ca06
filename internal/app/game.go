// internal/app/game.go
package app

import (
	"fmt"
	"go-survivor/internal/clock"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"go-survivor/internal/system"
	"go-survivor/internal/utils"
	"go-survivor/pkg/render"
)

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	Tuning *config.Tuning
	Clock  clock.Clock
	Seed   int64 // 0 — сид от текущего времени
	Debug  bool
}

// Game holds one run and the systems that advance it, one frame at a time.
type Game struct {
	World *entity.World

	PlayerSystem      *system.PlayerSystem
	ProjectileSystem  *system.ProjectileSystem
	SpawnSystem       *system.SpawnSystem
	CombatSystem      *system.CombatSystem
	ProgressionSystem *system.ProgressionSystem
	RunStateSystem    *system.RunStateSystem
	RenderSystem      *system.RenderSystem
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService

	Debug  bool
	tuning config.Tuning
	clock  clock.Clock
}

// NewGame initializes a new game instance with a fresh, not yet started run.
func NewGame(opts Options) *Game {
	tuning := config.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewReal()
	}

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	g := &Game{
		World:            entity.NewWorld(tuning),
		PlayerSystem:     system.NewPlayerSystem(tuning, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(tuning),
		SpawnSystem:      system.NewSpawnSystem(tuning, rng, eventDispatcher),
		RunStateSystem:   system.NewRunStateSystem(eventDispatcher),
		RenderSystem:     system.NewRenderSystem(),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		Debug:            opts.Debug,
		tuning:           tuning,
		clock:            clk,
	}
	g.ProgressionSystem = system.NewProgressionSystem(tuning, g.RunStateSystem, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(tuning, g.ProgressionSystem, g.RunStateSystem, eventDispatcher)
	return g
}

// Start begins the current run.
func (g *Game) Start() {
	g.World.StartedAt = g.clock.Now()
	g.RunStateSystem.Start(g.World)
}

// Update advances the run by one frame. Nothing moves unless the run is Running.
func (g *Game) Update(in input.State) {
	w := g.World
	if w.Phase != component.Running {
		return
	}
	now := g.clock.Now()

	w.DifficultyTimer++
	g.PlayerSystem.Update(w, in, now)
	g.ProjectileSystem.Update(w)
	g.SpawnSystem.Update(w, now)
	g.CombatSystem.Update(w)
}

// Draw renders the current run without changing it.
func (g *Game) Draw(p render.Painter) {
	g.RenderSystem.Draw(p, g.World, system.RenderView{Now: g.clock.Now(), Debug: g.Debug})
}

// ChooseUpgrade applies an upgrade while the run is paused for leveling up.
func (g *Game) ChooseUpgrade(id component.UpgradeID) error {
	if err := g.ProgressionSystem.ApplyUpgrade(g.World, id); err != nil {
		return fmt.Errorf("choose upgrade: %w", err)
	}
	return nil
}

// Restart throws the current run away and starts a clean one.
func (g *Game) Restart() {
	g.World = entity.NewWorld(g.tuning)
	g.Start()
}

// Subscribe registers a listener for run events.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}

func (g *Game) Phase() component.Phase { return g.World.Phase }

func (g *Game) Score() int { return g.World.Score }

func (g *Game) Level() int { return g.World.Player.Level }

// ExperienceRatio is the fill of the experience bar in [0, 1].
func (g *Game) ExperienceRatio() float64 {
	return system.ExperienceRatio(g.World.Player)
}

// OfferedUpgrades lists the choices for the current level.
func (g *Game) OfferedUpgrades() []defs.UpgradeDefinition {
	return g.ProgressionSystem.Offered(g.World.Player.Level)
}

func (g *Game) Tuning() config.Tuning { return g.tuning }
