package input

import "github.com/hajimehoshi/ebiten/v2"

// Sample reads the keyboard and cursor from ebiten. screenW/screenH are the
// logical surface size reported by Layout for this frame.
func Sample(screenW, screenH int) State {
	x, y := ebiten.CursorPosition()
	return State{
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		PointerX: float64(x),
		PointerY: float64(y),
		ScreenW:  screenW,
		ScreenH:  screenH,
	}
}
