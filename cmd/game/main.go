// cmd/game/main.go
package main

import (
	"flag"
	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine     *state.StateMachine
	screenW, screenH int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.screenW, a.screenH)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout следует за размером окна (или холста в браузере), он перечитывается каждый кадр.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.screenW, a.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay numbers")
	seed := flag.Int64("seed", 0, "Random seed for enemy spawns (0 = time based)")
	debug := flag.Bool("debug", true, "Show the diagnostic overlay (toggle in game with F3)")
	skipMenu := flag.Bool("dev", false, "Start directly in the game state for development")
	pprofAddr := flag.String("pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		var err error
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Fatal(err)
		}
	}
	opts := app.Options{Tuning: &tuning, Seed: *seed, Debug: *debug}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, opts))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Survivor")
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if err := ebiten.RunGame(&AppGame{
		stateMachine: sm,
		screenW:      config.ScreenWidth,
		screenH:      config.ScreenHeight,
	}); err != nil {
		log.Fatal(err)
	}
}
