// Package input holds the per-frame snapshot of player controls.
package input

// State — снимок ввода на один кадр. Нулевое значение означает
// «ничего не нажато, курсор в (0,0)».
type State struct {
	Up, Down, Left, Right bool

	// Курсор в координатах холста.
	PointerX, PointerY float64

	// Текущий размер холста; перечитывается каждый кадр.
	ScreenW, ScreenH int
}

// Centered returns a state with the pointer in the middle of a w×h surface.
func Centered(w, h int) State {
	return State{
		PointerX: float64(w) / 2,
		PointerY: float64(h) / 2,
		ScreenW:  w,
		ScreenH:  h,
	}
}

// AimVector returns the pointer offset from the surface centre, where the
// player is always drawn.
func (s State) AimVector() (dx, dy float64) {
	return s.PointerX - float64(s.ScreenW)/2, s.PointerY - float64(s.ScreenH)/2
}
