package system

import (
	"fmt"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/pkg/render"
	"math"
	"time"
)

// RenderView carries per-frame inputs of the renderer that are not part of the run.
type RenderView struct {
	Now   time.Time
	Debug bool
}

// RenderSystem рисует кадр. Состояние забега только читается.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Draw(p render.Painter, w *entity.World, view RenderView) {
	screenW, screenH := p.Size()
	cam := render.NewCamera(w.Player.X, w.Player.Y, screenW, screenH)

	p.Clear(config.BackgroundColor)

	// Игрок всегда в центре экрана
	px, py := cam.ToScreen(w.Player.X, w.Player.Y)
	p.FillCircle(px, py, float32(w.Player.Size/2), config.PlayerColor)

	for i := range w.Bullets {
		b := &w.Bullets[i]
		bx, by := cam.ToScreen(b.X, b.Y)
		p.FillCircle(bx, by, float32(b.Size), config.BulletColor)
		tx, ty := cam.ToScreen(
			b.X-math.Cos(b.Angle)*config.BulletTrailLength,
			b.Y-math.Sin(b.Angle)*config.BulletTrailLength,
		)
		p.StrokeLine(bx, by, tx, ty, config.StrokeWidth, config.BulletTrailColor)
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		ex, ey := cam.ToScreen(e.X, e.Y)
		p.FillCircle(ex, ey, float32(e.Size), config.EnemyColor)

		barX := ex - config.HealthBarWidth/2
		barY := ey - float32(e.Size) - config.HealthBarOffsetY
		p.FillRect(barX, barY, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBack)
		p.FillRect(barX, barY, config.HealthBarWidth*float32(e.HealthRatio()), config.HealthBarHeight, config.HealthBarFill)
	}

	s.drawCrosshair(p, float32(w.PointerX), float32(w.PointerY))

	if view.Debug {
		s.drawDebug(p, w, view.Now)
	}
}

// drawCrosshair рисует прицел в экранных координатах курсора.
func (s *RenderSystem) drawCrosshair(p render.Painter, x, y float32) {
	const h = config.CrosshairHalfSize
	p.StrokeLine(x-h, y, x+h, y, config.StrokeWidth, config.CrosshairColor)
	p.StrokeLine(x, y-h, x, y+h, config.StrokeWidth, config.CrosshairColor)
}

func (s *RenderSystem) drawDebug(p render.Painter, w *entity.World, now time.Time) {
	sinceShot := now.Sub(w.Player.LastShot)
	if w.Player.LastShot.IsZero() {
		sinceShot = 0
	}
	lines := []string{
		fmt.Sprintf("Score: %d", w.Score),
		fmt.Sprintf("Run time: %.1fs", runTime(w, now).Seconds()),
		fmt.Sprintf("Mouse: (%.0f, %.0f)", w.PointerX, w.PointerY),
		fmt.Sprintf("Player: (%.0f, %.0f)", w.Player.X, w.Player.Y),
		fmt.Sprintf("Bullets: %d", len(w.Bullets)),
		fmt.Sprintf("Enemies: %d", len(w.Enemies)),
		fmt.Sprintf("Time since last shot: %dms", sinceShot.Milliseconds()),
		fmt.Sprintf("Attack speed: %dms", w.Player.AttackInterval.Milliseconds()),
		fmt.Sprintf("Should fire: %t", sinceShot >= w.Player.AttackInterval),
		fmt.Sprintf("Difficulty: %d", w.DifficultyTimer),
	}
	if len(w.Bullets) > 0 {
		first := w.Bullets[0]
		lines = append(lines,
			fmt.Sprintf("First bullet: (%.0f, %.0f)", first.X, first.Y),
			fmt.Sprintf("Bullet angle: %.2f", first.Angle),
		)
	}
	for i, line := range lines {
		p.Text(line, config.DebugTextX, config.DebugTextY+i*config.DebugLineHeight, config.TextLightColor)
	}
}

// runTime — сколько длится забег; до старта ноль.
func runTime(w *entity.World, now time.Time) time.Duration {
	if w.StartedAt.IsZero() || now.Before(w.StartedAt) {
		return 0
	}
	return now.Sub(w.StartedAt)
}
