package game

import "github.com/shardbreak/shardbreak/internal/geom"

// Kind distinguishes how an obstacle is drawn; the collision detector
// treats every obstacle as the same convex polygon.
type Kind int

const (
	KindBrick Kind = iota
	KindShard
)

// Obstacle is a destructible convex polygon. Vertices are stored in
// counter-clockwise order. An obstacle with HP < 1 is inert: it is
// skipped by collision tests and rendering but keeps its slot for the
// whole session.
type Obstacle struct {
	Kind  Kind
	Verts []geom.Vec
	HP    int
	MaxHP int
}

// NewBrick builds a rectangular obstacle from its top-left corner and
// size, stored as four counter-clockwise corners.
func NewBrick(x, y, w, h float64, hp int) Obstacle {
	return Obstacle{
		Kind: KindBrick,
		Verts: []geom.Vec{
			{X: x, Y: y + h},
			{X: x + w, Y: y + h},
			{X: x + w, Y: y},
			{X: x, Y: y},
		},
		HP:    hp,
		MaxHP: hp,
	}
}

// NewShard builds a polygonal obstacle from its boundary vertices.
func NewShard(verts []geom.Vec, hp int) Obstacle {
	return Obstacle{Kind: KindShard, Verts: verts, HP: hp, MaxHP: hp}
}

// Alive reports whether the obstacle still takes part in play.
func (o *Obstacle) Alive() bool {
	return o.HP >= 1
}

// Damage removes one hit point, never going below zero.
func (o *Obstacle) Damage() {
	if o.HP > 0 {
		o.HP--
	}
}

// Centroid returns the vertex average, used to place hit-point labels.
func (o *Obstacle) Centroid() geom.Vec {
	var c geom.Vec
	if len(o.Verts) == 0 {
		return c
	}
	for _, v := range o.Verts {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(o.Verts)))
}
