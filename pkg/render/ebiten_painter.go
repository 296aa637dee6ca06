package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// EbitenPainter draws onto an ebiten image with anti-aliased vector shapes.
type EbitenPainter struct {
	screen *ebiten.Image
	face   font.Face
}

// NewEbitenPainter wraps screen. A nil face falls back to basicfont 7x13.
func NewEbitenPainter(screen *ebiten.Image, face font.Face) *EbitenPainter {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &EbitenPainter{screen: screen, face: face}
}

func (p *EbitenPainter) Clear(c color.Color) {
	p.screen.Fill(c)
}

func (p *EbitenPainter) FillCircle(x, y, radius float32, c color.Color) {
	vector.DrawFilledCircle(p.screen, x, y, radius, c, true)
}

func (p *EbitenPainter) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(p.screen, x0, y0, x1, y1, width, c, true)
}

func (p *EbitenPainter) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(p.screen, x, y, w, h, c, true)
}

func (p *EbitenPainter) StrokeRect(x, y, w, h, width float32, c color.Color) {
	vector.StrokeRect(p.screen, x, y, w, h, width, c, true)
}

// Text draws s with its top-left corner near (x, y).
func (p *EbitenPainter) Text(s string, x, y int, c color.Color) {
	text.Draw(p.screen, s, p.face, x, y+p.face.Metrics().Ascent.Ceil(), c)
}

func (p *EbitenPainter) Size() (int, int) {
	b := p.screen.Bounds()
	return b.Dx(), b.Dy()
}
