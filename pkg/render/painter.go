package render

import "image/color"

// Painter is an immediate-mode drawing surface in screen coordinates.
type Painter interface {
	Clear(c color.Color)
	FillCircle(x, y, radius float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
	Text(s string, x, y int, c color.Color)
	Size() (w, h int)
}
