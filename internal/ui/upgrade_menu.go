package ui

import (
	"fmt"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/pkg/render"
)

// UpgradeMenu is the level-up overlay: one button per offered upgrade,
// stacked in the middle of the screen.
type UpgradeMenu struct {
	Level   int
	Options []defs.UpgradeDefinition
	Buttons []*Button
}

// NewUpgradeMenu lays out the offered upgrades for a screenW×screenH surface.
func NewUpgradeMenu(level int, offered []defs.UpgradeDefinition, screenW, screenH int) *UpgradeMenu {
	m := &UpgradeMenu{Level: level, Options: offered}

	total := len(offered)*config.UpgradeButtonHeight + (len(offered)-1)*config.UpgradeButtonGap
	x := float32(screenW-config.UpgradeButtonWidth) / 2
	y := float32(screenH-total) / 2
	for i, def := range offered {
		b := NewButton(x, y, config.UpgradeButtonWidth, config.UpgradeButtonHeight, fmt.Sprintf("%d. %s", i+1, def.Label))
		if def.Special {
			b.BgColor = config.SpecialButtonColor
		}
		m.Buttons = append(m.Buttons, b)
		y += config.UpgradeButtonHeight + config.UpgradeButtonGap
	}
	return m
}

// HitTest returns the upgrade under (x, y), if any.
func (m *UpgradeMenu) HitTest(x, y float32) (component.UpgradeID, bool) {
	for i, b := range m.Buttons {
		if b.Contains(x, y) {
			return m.Options[i].ID, true
		}
	}
	return "", false
}

// ByIndex maps a 0-based hotkey index to an upgrade.
func (m *UpgradeMenu) ByIndex(i int) (component.UpgradeID, bool) {
	if i < 0 || i >= len(m.Options) {
		return "", false
	}
	return m.Options[i].ID, true
}

func (m *UpgradeMenu) Draw(p render.Painter, mouseX, mouseY float32) {
	w, h := p.Size()
	p.FillRect(0, 0, float32(w), float32(h), config.OverlayColor)

	title := fmt.Sprintf("LEVEL %d - choose an upgrade", m.Level)
	titleY := 0
	if len(m.Buttons) > 0 {
		titleY = int(m.Buttons[0].Y) - 3*config.TextLineHeight
	}
	p.Text(title, (w-len(title)*config.TextCharWidth)/2, titleY, config.TextLightColor)

	for i, b := range m.Buttons {
		b.Draw(p, mouseX, mouseY)
		hint := m.Options[i].Hint
		p.Text(hint, int(b.X+b.Width)+config.UpgradeButtonGap, int(b.Y+(b.Height-config.TextLineHeight)/2), config.TextLightColor)
	}
}
