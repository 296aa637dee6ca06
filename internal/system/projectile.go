// internal/system/projectile.go
package system

import (
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"math"
)

// ProjectileSystem двигает пули и убирает улетевшие слишком далеко от игрока
type ProjectileSystem struct {
	tuning config.Tuning
}

func NewProjectileSystem(tuning config.Tuning) *ProjectileSystem {
	return &ProjectileSystem{tuning: tuning}
}

func (s *ProjectileSystem) Update(w *entity.World) {
	radius := s.tuning.Bullet.CullRadius
	player := w.Player.Position

	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Dead {
			continue
		}
		b.Advance()

		// Отсечение по каждой оси отдельно относительно текущей позиции игрока.
		if math.Abs(b.X-player.X) > radius || math.Abs(b.Y-player.Y) > radius {
			b.Dead = true
		}
	}
	w.CompactBullets()
}
