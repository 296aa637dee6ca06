// internal/component/movement.go
package component

import "math"

// Position — позиция в мировых координатах (мир не ограничен)
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// AngleTo returns the heading from p towards o in radians.
func (p Position) AngleTo(o Position) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

// Step moves the position by speed along angle.
func (p *Position) Step(angle, speed float64) {
	p.X += math.Cos(angle) * speed
	p.Y += math.Sin(angle) * speed
}
