package game

import "github.com/shardbreak/shardbreak/internal/geom"

type Ball struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

func NewBall(pos, vel geom.Vec, radius float64) *Ball {
	return &Ball{Pos: pos, Vel: vel, Radius: radius}
}

// Move advances the ball by its velocity. Velocity is a per-tick
// displacement; there is no sub-stepping.
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Deflect reflects the ball's velocity off the given unit normal.
func (b *Ball) Deflect(n geom.Vec) {
	b.Vel = geom.Reflect(b.Vel, n)
}

// Speed returns the ball's current speed.
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}
