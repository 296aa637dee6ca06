// internal/component/projectile.go
package component

import "time"

// Bullet представляет летящую пулю игрока.
type Bullet struct {
	Position
	Speed     float64
	Angle     float64
	Power     int
	Size      float64
	CreatedAt time.Time
	// Traveled is the total path length covered so far; it never decreases.
	Traveled float64
	// Dead marks the bullet for removal at the end of the current pass.
	Dead bool
}

// Advance moves the bullet one tick along its heading.
func (b *Bullet) Advance() {
	b.Step(b.Angle, b.Speed)
	b.Traveled += b.Speed
}
