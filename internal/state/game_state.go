// internal/state/game_state.go
package state

import (
	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"go-survivor/internal/ui"
	"go-survivor/pkg/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var upgradeHotkeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

// GameState — экран самого забега, включая паузу на выбор улучшения.
type GameState struct {
	sm             *StateMachine
	game           *app.Game
	levelIndicator *ui.PlayerLevelIndicator
	scoreIndicator *ui.ScoreIndicator
	upgradeMenu    *ui.UpgradeMenu
	screenW        int
	screenH        int
}

func NewGameState(sm *StateMachine, opts app.Options) *GameState {
	gs := &GameState{
		sm:             sm,
		game:           app.NewGame(opts),
		levelIndicator: ui.NewPlayerLevelIndicator(config.IndicatorOffsetX, config.IndicatorOffsetY),
		scoreIndicator: ui.NewScoreIndicator(config.IndicatorOffsetX),
		screenW:        config.ScreenWidth,
		screenH:        config.ScreenHeight,
	}
	gs.game.Subscribe(event.UpgradeRequested, event.ListenerFunc(gs.onUpgradeRequested))
	return gs
}

func (g *GameState) Enter() {
	g.upgradeMenu = nil
	if g.game.Phase() == component.NotStarted {
		g.game.Start()
	}
}

func (g *GameState) onUpgradeRequested(e event.Event) {
	data, ok := e.Data.(event.UpgradeRequestedData)
	if !ok {
		return
	}
	g.upgradeMenu = ui.NewUpgradeMenu(data.Level, g.game.OfferedUpgrades(), g.screenW, g.screenH)
}

func (g *GameState) Update(screenW, screenH int) {
	g.screenW, g.screenH = screenW, screenH

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.game.Debug = !g.game.Debug
	}

	switch g.game.Phase() {
	case component.Running:
		g.game.Update(input.Sample(screenW, screenH))
	case component.LevelingUp:
		g.handleUpgradeChoice(sampleUpgradeInput())
	}

	// Проверяем после кадра: столкновение могло завершить забег.
	if g.game.Phase() == component.GameOver {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// upgradeInput — ввод меню улучшений за один кадр.
type upgradeInput struct {
	Clicked        bool
	MouseX, MouseY float32
	Hotkey         int // 0-based номер клавиши 1–6, -1 если не нажата
}

func sampleUpgradeInput() upgradeInput {
	in := upgradeInput{Hotkey: -1}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Clicked, in.MouseX, in.MouseY = true, float32(x), float32(y)
	}
	for i, key := range upgradeHotkeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Hotkey = i
			break
		}
	}
	return in
}

// pickUpgrade переводит ввод в выбор. Клик по кнопке важнее клавиши.
func pickUpgrade(menu *ui.UpgradeMenu, in upgradeInput) (component.UpgradeID, bool) {
	if menu == nil {
		return "", false
	}
	if in.Clicked {
		if id, ok := menu.HitTest(in.MouseX, in.MouseY); ok {
			return id, true
		}
	}
	if in.Hotkey >= 0 {
		return menu.ByIndex(in.Hotkey)
	}
	return "", false
}

func (g *GameState) handleUpgradeChoice(in upgradeInput) {
	id, chosen := pickUpgrade(g.upgradeMenu, in)
	if !chosen {
		return
	}
	if err := g.game.ChooseUpgrade(id); err != nil {
		log.Printf("upgrade rejected: %v", err)
		return
	}
	g.upgradeMenu = nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	p := render.NewEbitenPainter(screen, nil)
	g.game.Draw(p)

	g.levelIndicator.Draw(p, g.game.Level(), g.game.ExperienceRatio())
	g.scoreIndicator.Draw(p, g.game.Score())

	if g.game.Phase() == component.LevelingUp && g.upgradeMenu != nil {
		x, y := ebiten.CursorPosition()
		g.upgradeMenu.Draw(p, float32(x), float32(y))
	}
}

func (g *GameState) Exit() {}
