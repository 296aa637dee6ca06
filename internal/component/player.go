// internal/component/player.go
package component

import "time"

// Player — единственный управляемый игроком объект забега.
type Player struct {
	Position
	Size  float64
	Speed float64

	// Прогрессия
	Level            int
	Experience       float64
	ExperienceToNext float64

	// Атака
	AttackInterval time.Duration // пауза между залпами
	AttackPower    int
	LastShot       time.Time
	BulletCount    int // пуль в одном залпе
	BulletSize     float64
}
