package render

// Camera maps world coordinates to the screen, keeping Center in the middle
// of a ScreenW×ScreenH surface.
type Camera struct {
	CenterX, CenterY float64
	ScreenW, ScreenH int
}

func NewCamera(centerX, centerY float64, screenW, screenH int) Camera {
	return Camera{CenterX: centerX, CenterY: centerY, ScreenW: screenW, ScreenH: screenH}
}

// ToScreen converts a world point to screen coordinates.
func (c Camera) ToScreen(x, y float64) (float32, float32) {
	sx := x - c.CenterX + float64(c.ScreenW)/2
	sy := y - c.CenterY + float64(c.ScreenH)/2
	return float32(sx), float32(sy)
}
