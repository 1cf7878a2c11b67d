package game

import "github.com/shardbreak/shardbreak/internal/geom"

// World-unit dimensions taken from the classic layout.
const (
	PaddleWidth  = 60.0
	PaddleHeight = 10.0
	BallRadius   = 10.0

	BallSpeedX = 8.0
	BallSpeedY = -5.0
)

// World owns the complete simulation state. It is written by Step and
// read by the renderer through Snapshot, strictly in that order within
// a frame, so no locking is involved.
type World struct {
	Width  float64
	Height float64

	Ball      *Ball
	Paddle    *Paddle
	Obstacles []Obstacle
	Tick      int
}

// StepEvents reports what happened during one tick so the platform
// layer can key sound effects off it.
type StepEvents struct {
	WallBounce   bool
	PaddleHit    bool
	ObstacleHits int
	Destroyed    int
}

// NewWorld places the paddle centered at the bottom and the ball just
// above it, launched up and to the right.
func NewWorld(width, height float64, obstacles []Obstacle) *World {
	paddle := NewPaddle(
		geom.Vec{X: (width - PaddleWidth) / 2, Y: height - PaddleHeight},
		geom.Vec{X: PaddleWidth, Y: PaddleHeight},
	)
	ball := NewBall(
		geom.Vec{X: width / 2, Y: height - PaddleHeight - BallRadius - 1},
		geom.Vec{X: BallSpeedX, Y: BallSpeedY},
		BallRadius,
	)
	return &World{
		Width:     width,
		Height:    height,
		Ball:      ball,
		Paddle:    paddle,
		Obstacles: obstacles,
	}
}

// Step advances the simulation one tick: paddle translation, ball
// integration, boundary bounce, paddle contact, then every live
// obstacle in slice order. Each contact is resolved independently, so
// a ball overlapping several obstacles reflects once per obstacle
// within the same tick. That is deliberate; batching the contacts
// would change the game feel.
func (w *World) Step(paddleDX float64) StepEvents {
	var ev StepEvents
	w.Tick++

	w.Paddle.Translate(paddleDX, w.Width)

	b := w.Ball
	b.Move()

	if b.Pos.X <= b.Radius || b.Pos.X >= w.Width-b.Radius {
		b.Vel.X = -b.Vel.X
		ev.WallBounce = true
	}
	if b.Pos.Y <= b.Radius || b.Pos.Y >= w.Height-b.Radius {
		b.Vel.Y = -b.Vel.Y
		ev.WallBounce = true
	}

	if n, ok := CircleRect(b.Pos, b.Radius, w.Paddle.Min(), w.Paddle.Max()); ok {
		b.Deflect(n)
		ev.PaddleHit = true
	}

	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if !o.Alive() {
			continue
		}
		n, ok := CirclePolygon(b.Pos, b.Radius, o.Verts)
		if !ok {
			continue
		}
		b.Deflect(n)
		o.Damage()
		ev.ObstacleHits++
		if !o.Alive() {
			ev.Destroyed++
		}
	}

	return ev
}

// LiveObstacles counts obstacles still in play.
func (w *World) LiveObstacles() int {
	n := 0
	for i := range w.Obstacles {
		if w.Obstacles[i].Alive() {
			n++
		}
	}
	return n
}
