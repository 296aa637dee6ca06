package state

import (
	"fmt"
	"go-survivor/internal/config"
	"go-survivor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState показывает итоговый счёт; новый забег начинается с чистого листа.
type GameOverState struct {
	sm         *StateMachine
	finished   *GameState
	finalScore int
	level      int
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	return &GameOverState{
		sm:         sm,
		finished:   finished,
		finalScore: finished.game.Score(),
		level:      finished.game.Level(),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(screenW, screenH int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.restart()
	}
}

// restart начинает новый забег на том же экране игры.
func (s *GameOverState) restart() {
	s.finished.game.Restart()
	s.sm.SetState(s.finished)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	// Последний кадр забега остаётся под затемнением.
	s.finished.Draw(screen)

	p := render.NewEbitenPainter(screen, nil)
	w, h := p.Size()
	p.FillRect(0, 0, float32(w), float32(h), config.OverlayColor)
	drawCentered(p, fmt.Sprintf("Game Over! Score: %d", s.finalScore), w, h/2-config.DebugLineHeight)
	drawCentered(p, fmt.Sprintf("Level reached: %d", s.level), w, h/2)
	drawCentered(p, "Press R or click to play again", w, h/2+2*config.DebugLineHeight)
}

func (s *GameOverState) Exit() {}
