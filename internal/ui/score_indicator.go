package ui

import (
	"fmt"
	"go-survivor/internal/config"
	"go-survivor/pkg/render"
)

// ScoreIndicator shows the kill count in the top-right corner.
type ScoreIndicator struct {
	Margin int
}

func NewScoreIndicator(margin int) *ScoreIndicator {
	return &ScoreIndicator{Margin: margin}
}

func (s *ScoreIndicator) Draw(p render.Painter, score int) {
	w, _ := p.Size()
	label := fmt.Sprintf("Score: %d", score)
	p.Text(label, w-s.Margin-len(label)*config.TextCharWidth, s.Margin, config.TextLightColor)
}
