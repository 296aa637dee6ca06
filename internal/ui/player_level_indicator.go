// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"go-survivor/internal/config"
	"go-survivor/internal/utils"
	"go-survivor/pkg/render"
	"image/color"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = 200
	xpBarHeight = 12
	borderWidth = 1
)

var borderColor = color.RGBA{255, 255, 255, 255}

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает полосу опыта (ratio в [0, 1]) и номер уровня под ней.
func (i *PlayerLevelIndicator) Draw(p render.Painter, level int, ratio float64) {
	// 1. Обводка полосы опыта
	p.StrokeRect(i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor)

	// 2. Заполненная часть
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * utils.Clamp01(ratio))
	if fillWidth > 0 {
		p.FillRect(i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarFillColor)
	}

	// 3. Уровень
	p.Text(fmt.Sprintf("Level: %d", level), int(i.X), int(i.Y)+xpBarHeight+4, config.TextLightColor)
}
