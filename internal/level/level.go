// Package level builds the destructible obstacle layout once at
// startup. Generation is deterministic for a given seed so layouts can
// be reproduced and tested.
package level

import (
	"fmt"
	"math/rand"

	"github.com/fogleman/delaunay"

	"github.com/shardbreak/shardbreak/internal/game"
	"github.com/shardbreak/shardbreak/internal/geom"
)

// Brick dimensions in world units.
const (
	BrickWidth  = 40.0
	BrickHeight = 20.0
)

// Config holds the layout tunables. Relaxation passes and the
// hit-point range are configuration, not constants: they shape game
// difficulty and have no single right value.
type Config struct {
	Width  float64
	Height float64
	Cells  int // shard seed points
	Relax  int // Lloyd relaxation passes over the seed points
	HPMin  int
	HPMax  int
	Seed   int64
}

func (c Config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}

func (c Config) rollHP(rng *rand.Rand) int {
	return c.HPMin + rng.Intn(c.HPMax-c.HPMin+1)
}

// Grid fills the upper half of the playfield with a uniform brick
// grid.
func Grid(cfg Config) ([]game.Obstacle, error) {
	cols := int(cfg.Width / BrickWidth)
	rows := int(cfg.Height / BrickHeight / 2)
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("playfield %gx%g too small for %gx%g bricks",
			cfg.Width, cfg.Height, BrickWidth, BrickHeight)
	}

	rng := cfg.rng()
	bricks := make([]game.Obstacle, 0, cols*rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			x := float64(col) * BrickWidth
			y := float64(row) * BrickHeight
			bricks = append(bricks, game.NewBrick(x, y, BrickWidth, BrickHeight, cfg.rollHP(rng)))
		}
	}
	return bricks, nil
}

// Shards scatters seed points in the upper third of the playfield,
// relaxes them toward their neighborhood centroids, triangulates and
// turns every triangle into a shard obstacle. A failed triangulation
// is fatal: the game never starts with a partial layout.
func Shards(cfg Config) ([]game.Obstacle, error) {
	if cfg.Cells < 3 {
		return nil, fmt.Errorf("tessellation needs at least 3 cells, got %d", cfg.Cells)
	}

	rng := cfg.rng()
	region := geom.Vec{X: cfg.Width, Y: cfg.Height / 3}

	points := make([]delaunay.Point, cfg.Cells)
	for i := range points {
		points[i] = delaunay.Point{
			X: rng.Float64() * region.X,
			Y: rng.Float64() * region.Y,
		}
	}

	for pass := 0; pass < cfg.Relax; pass++ {
		relaxed, err := relax(points, region)
		if err != nil {
			return nil, fmt.Errorf("relaxation pass %d: %w", pass+1, err)
		}
		points = relaxed
	}

	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("triangulate %d cells: %w", len(points), err)
	}
	if len(tri.Triangles) == 0 {
		return nil, fmt.Errorf("tessellation of %d cells produced no shards", len(points))
	}

	shards := make([]game.Obstacle, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		verts := orient([]geom.Vec{
			vec(points[tri.Triangles[i]]),
			vec(points[tri.Triangles[i+1]]),
			vec(points[tri.Triangles[i+2]]),
		})
		shards = append(shards, game.NewShard(verts, cfg.rollHP(rng)))
	}
	return shards, nil
}

// relax moves every seed point halfway toward the centroid of its
// Delaunay neighbors, evening out cell sizes. Points are clamped back
// into the region.
func relax(points []delaunay.Point, region geom.Vec) ([]delaunay.Point, error) {
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, err
	}

	sum := make([]delaunay.Point, len(points))
	count := make([]int, len(points))
	ts := tri.Triangles
	for i := 0; i+2 < len(ts); i += 3 {
		for _, e := range [3][2]int{{ts[i], ts[i+1]}, {ts[i+1], ts[i+2]}, {ts[i+2], ts[i]}} {
			a, b := e[0], e[1]
			sum[a].X += points[b].X
			sum[a].Y += points[b].Y
			count[a]++
			sum[b].X += points[a].X
			sum[b].Y += points[a].Y
			count[b]++
		}
	}

	out := make([]delaunay.Point, len(points))
	for i, p := range points {
		if count[i] == 0 {
			out[i] = p
			continue
		}
		cx := sum[i].X / float64(count[i])
		cy := sum[i].Y / float64(count[i])
		out[i] = delaunay.Point{
			X: geom.Clamp((p.X+cx)/2, 0, region.X),
			Y: geom.Clamp((p.Y+cy)/2, 0, region.Y),
		}
	}
	return out, nil
}

// orient reverses the vertex loop if needed so every shard winds the
// same way as the bricks (counter-clockwise on screen, where y grows
// downward).
func orient(verts []geom.Vec) []geom.Vec {
	if signedArea(verts) > 0 {
		for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
			verts[i], verts[j] = verts[j], verts[i]
		}
	}
	return verts
}

func signedArea(verts []geom.Vec) float64 {
	area := 0.0
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func vec(p delaunay.Point) geom.Vec {
	return geom.Vec{X: p.X, Y: p.Y}
}
