// internal/ui/button.go
package ui

import (
	"go-survivor/internal/config"
	"go-survivor/pkg/render"
	"image/color"
)

// Button — прямоугольная кнопка с текстом по центру.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	BgColor             color.RGBA
	HoverColor          color.RGBA
	TextColor           color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, text string) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       text,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		TextColor:  config.TextLightColor,
	}
}

// Contains проверяет, попадает ли точка (например, курсор) в кнопку.
func (b *Button) Contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Draw отрисовывает кнопку; под курсором она подсвечивается.
func (b *Button) Draw(p render.Painter, mouseX, mouseY float32) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	p.FillRect(b.X, b.Y, b.Width, b.Height, bg)
	p.StrokeRect(b.X, b.Y, b.Width, b.Height, config.StrokeWidth, render.DarkenColor(bg))

	textWidth := float32(len(b.Text) * config.TextCharWidth)
	tx := b.X + (b.Width-textWidth)/2
	ty := b.Y + (b.Height-config.TextLineHeight)/2
	p.Text(b.Text, int(tx), int(ty), b.TextColor)
}
