// internal/system/player_system.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/input"
	"math"
	"time"
)

// PlayerSystem двигает игрока по вводу и стреляет автоматически.
type PlayerSystem struct {
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(tuning config.Tuning, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{tuning: tuning, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(w *entity.World, in input.State, now time.Time) {
	p := &w.Player

	// Диагональ не нормализуется: две клавиши двигают быстрее одной.
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}
	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}

	w.PointerX, w.PointerY = in.PointerX, in.PointerY
	w.ScreenW, w.ScreenH = in.ScreenW, in.ScreenH

	if now.Sub(p.LastShot) >= p.AttackInterval {
		dx, dy := in.AimVector()
		s.fire(w, math.Atan2(dy, dx), now)
	}
}

func (s *PlayerSystem) fire(w *entity.World, aim float64, now time.Time) {
	p := &w.Player
	for _, angle := range VolleyAngles(aim, p.BulletCount, s.tuning.Bullet.SpreadRange) {
		w.Bullets = append(w.Bullets, component.Bullet{
			Position:  p.Position,
			Speed:     s.tuning.Bullet.Speed,
			Angle:     angle,
			Power:     p.AttackPower,
			Size:      p.BulletSize,
			CreatedAt: now,
		})
	}
	p.LastShot = now

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.VolleyFired,
		Data: event.VolleyFiredData{Bullets: p.BulletCount, Angle: aim},
	})
}

// VolleyAngles spreads count bullets evenly over a window of spread radians
// centred on aim. A single bullet flies exactly along aim.
func VolleyAngles(aim float64, count int, spread float64) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{aim}
	}
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = aim + (float64(i)/float64(count-1)-0.5)*spread
	}
	return angles
}
