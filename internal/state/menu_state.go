// internal/state/menu_state.go
package state

import (
	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const menuTitle = "SURVIVOR"

var menuLines = []string{
	"WASD / arrows to move, aim with the mouse",
	"Bullets fire automatically",
	"Press SPACE or click to start",
}

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	opts app.Options
}

func NewMenuState(sm *StateMachine, opts app.Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(screenW, screenH int) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	p := render.NewEbitenPainter(screen, nil)
	p.Clear(config.BackgroundColor)
	w, h := p.Size()
	drawCentered(p, menuTitle, w, h/2-3*config.DebugLineHeight)
	for i, line := range menuLines {
		drawCentered(p, line, w, h/2+i*config.DebugLineHeight)
	}
}

func (m *MenuState) Exit() {}

func drawCentered(p render.Painter, s string, screenW, y int) {
	p.Text(s, (screenW-len(s)*config.TextCharWidth)/2, y, config.TextLightColor)
}
