// cmd/sim runs the simulation headless with a simple bot: it strafes in a
// circle, aims at the nearest enemy and always takes the first upgrade on
// offer. Useful for checking balance changes in a tuning file.
package main

import (
	"context"
	"flag"
	"go-survivor/internal/app"
	"go-survivor/internal/clock"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"log"
	"math"
	"os"
	"os/signal"
	"time"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay numbers")
	seed := flag.Int64("seed", 1, "Random seed for enemy spawns")
	frames := flag.Uint64("frames", config.DefaultSimulationFrames, "Maximum number of frames to simulate (0 = until game over)")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Fatal(err)
		}
	}

	clk := clock.NewManual(time.Unix(0, 0))
	game := app.NewGame(app.Options{Tuning: &tuning, Clock: clk, Seed: *seed})
	game.Subscribe(event.UpgradeChosen, event.ListenerFunc(func(e event.Event) {
		if data, ok := e.Data.(event.UpgradeChosenData); ok {
			log.Printf("level %d: took %s", data.Level, data.Upgrade)
		}
	}))

	loop := app.NewFrameLoop(game, clk, config.FrameDuration, app.InputFunc(func(w, h int) input.State {
		return botInput(game, w, h)
	}))
	loop.Picker = func(g *app.Game) component.UpgradeID {
		return g.OfferedUpgrades()[0].ID
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game.Start()
	if err := loop.Run(ctx, *frames); err != nil {
		log.Printf("simulation stopped: %v", err)
	}
	log.Printf("frames=%d phase=%s score=%d level=%d seed=%d",
		loop.Frames, game.Phase(), game.Score(), game.Level(), game.Rng.Seed())
}

// botInput strafes around a circle and points at the nearest enemy.
func botInput(g *app.Game, w, h int) input.State {
	in := input.Centered(w, h)
	phase := float64(g.World.DifficultyTimer) / 120
	in.Right = math.Cos(phase) > 0.3
	in.Left = math.Cos(phase) < -0.3
	in.Down = math.Sin(phase) > 0.3
	in.Up = math.Sin(phase) < -0.3

	best := math.MaxFloat64
	for _, e := range g.World.Enemies {
		if d := g.World.Player.DistanceTo(e.Position); d < best {
			best = d
			in.PointerX = float64(w)/2 + e.X - g.World.Player.X
			in.PointerY = float64(h)/2 + e.Y - g.World.Player.Y
		}
	}
	return in
}
