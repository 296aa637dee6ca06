// internal/entity/world.go
package entity

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"time"

	"github.com/google/uuid"
)

// World — всё состояние одного забега. Системы получают его явно
// и меняют на месте; никто другой его не трогает.
type World struct {
	RunID     uuid.UUID
	StartedAt time.Time

	Phase           component.Phase
	Score           int
	DifficultyTimer uint64 // тиков в фазе Running
	LastSpawn       time.Time

	Player  component.Player
	Bullets []component.Bullet
	Enemies []component.Enemy

	// Последний ввод, увиденный контроллером (для отладочного оверлея).
	PointerX, PointerY float64
	ScreenW, ScreenH   int
}

// NewWorld creates a clean run with the player at the origin.
func NewWorld(t config.Tuning) *World {
	return &World{
		RunID: uuid.New(),
		Phase: component.NotStarted,
		Player: component.Player{
			Size:             t.Player.Size,
			Speed:            t.Player.Speed,
			Level:            config.PlayerStartLevel,
			ExperienceToNext: t.Player.ExperienceToNext,
			AttackInterval:   t.Player.AttackInterval(),
			AttackPower:      t.Player.AttackPower,
			BulletCount:      t.Player.BulletCount,
			BulletSize:       t.Player.BulletSize,
		},
		Bullets: make([]component.Bullet, 0, 64),
		Enemies: make([]component.Enemy, 0, 32),
	}
}

// CompactBullets drops every bullet marked Dead, keeping the order of the rest.
func (w *World) CompactBullets() {
	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		if !b.Dead {
			live = append(live, b)
		}
	}
	clear(w.Bullets[len(live):])
	w.Bullets = live
}

// CompactEnemies drops every enemy marked Dead, keeping the order of the rest.
func (w *World) CompactEnemies() {
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Dead {
			live = append(live, e)
		}
	}
	clear(w.Enemies[len(live):])
	w.Enemies = live
}
