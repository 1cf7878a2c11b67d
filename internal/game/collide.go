package game

import "github.com/shardbreak/shardbreak/internal/geom"

// CircleRect tests a circle against an axis-aligned rectangle spanning
// min..max and returns the unit normal of the hit side. Only the four
// axis-aligned normals are produced; overlap confined to a corner
// region reports no contact. Touching at exactly radius distance is
// not a contact.
func CircleRect(center geom.Vec, r float64, min, max geom.Vec) (geom.Vec, bool) {
	closest := geom.Vec{
		X: geom.Clamp(center.X, min.X, max.X),
		Y: geom.Clamp(center.Y, min.Y, max.Y),
	}
	d := center.Sub(closest)
	if d.Dot(d) >= r*r {
		return geom.Vec{}, false
	}

	if closest.X == center.X {
		// Contact on the top or bottom side.
		if center.Y < (min.Y+max.Y)/2 {
			return geom.Vec{Y: -1}, true
		}
		return geom.Vec{Y: 1}, true
	}
	if closest.Y == center.Y {
		if center.X < (min.X+max.X)/2 {
			return geom.Vec{X: -1}, true
		}
		return geom.Vec{X: 1}, true
	}
	return geom.Vec{}, false
}

// CirclePolygon tests a circle against every edge of a closed vertex
// loop (two vertices form a single segment) and returns the unit
// normal at the deepest-penetrating edge, pointing from the edge
// toward the circle center. Ties keep the first edge in loop order.
// If the center lies exactly on the edge the normal degenerates and
// (1,0) is substituted. Inputs are not mutated.
func CirclePolygon(center geom.Vec, r float64, verts []geom.Vec) (geom.Vec, bool) {
	if len(verts) < 2 {
		return geom.Vec{}, false
	}

	var bestPoint geom.Vec
	bestPen := 0.0
	found := false
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		p := geom.ClosestPointOnSegment(a, b, center)
		dist := center.Sub(p).Length()
		if dist > r {
			continue
		}
		if pen := r - dist; !found || pen > bestPen {
			bestPen = pen
			bestPoint = p
			found = true
		}
	}
	if !found || bestPen <= 0 {
		return geom.Vec{}, false
	}

	n := center.Sub(bestPoint)
	if n.Length() == 0 {
		return geom.Vec{X: 1}, true
	}
	return n.Normalize(), true
}
