package game

import "github.com/shardbreak/shardbreak/internal/geom"

// Snapshot is the read-only view of the world handed to the renderer
// each frame. The renderer never touches World directly.
type Snapshot struct {
	Tick      int
	Width     float64
	Height    float64
	Ball      BallState
	Paddle    RectState
	Obstacles []ObstacleState
	Remaining int
}

type BallState struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

type RectState struct {
	Min, Max geom.Vec
}

// ObstacleState carries only live obstacles; inert slots are filtered
// out before rendering.
type ObstacleState struct {
	Kind     Kind
	Verts    []geom.Vec
	Centroid geom.Vec
	HP       int
	MaxHP    int
}

// Snapshot copies the render-relevant state out of the world.
func (w *World) Snapshot() Snapshot {
	obstacles := make([]ObstacleState, 0, len(w.Obstacles))
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if !o.Alive() {
			continue
		}
		obstacles = append(obstacles, ObstacleState{
			Kind:     o.Kind,
			Verts:    o.Verts,
			Centroid: o.Centroid(),
			HP:       o.HP,
			MaxHP:    o.MaxHP,
		})
	}

	return Snapshot{
		Tick:   w.Tick,
		Width:  w.Width,
		Height: w.Height,
		Ball: BallState{
			Pos:    w.Ball.Pos,
			Vel:    w.Ball.Vel,
			Radius: w.Ball.Radius,
		},
		Paddle: RectState{
			Min: w.Paddle.Min(),
			Max: w.Paddle.Max(),
		},
		Obstacles: obstacles,
		Remaining: len(obstacles),
	}
}
