// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность, преследующую игрока.
type Enemy struct {
	Position
	Size      float64
	Speed     float64
	Health    float64
	MaxHealth float64
	Dead      bool
}

// HealthRatio returns Health/MaxHealth clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	r := e.Health / e.MaxHealth
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
