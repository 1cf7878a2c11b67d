package game

import "github.com/shardbreak/shardbreak/internal/geom"

// Paddle is the player-controlled bat at the bottom of the playfield,
// an axis-aligned rectangle anchored by its top-left corner.
type Paddle struct {
	Pos  geom.Vec
	Size geom.Vec
}

func NewPaddle(pos, size geom.Vec) *Paddle {
	return &Paddle{Pos: pos, Size: size}
}

// Translate moves the paddle horizontally by dx, keeping it fully
// inside [0, fieldWidth].
func (p *Paddle) Translate(dx, fieldWidth float64) {
	p.Pos.X = geom.Clamp(p.Pos.X+dx, 0, fieldWidth-p.Size.X)
}

// Min returns the paddle's top-left corner.
func (p *Paddle) Min() geom.Vec {
	return p.Pos
}

// Max returns the paddle's bottom-right corner.
func (p *Paddle) Max() geom.Vec {
	return p.Pos.Add(p.Size)
}
