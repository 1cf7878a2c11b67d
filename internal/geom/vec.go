package geom

import "math"

// Vec is a 2D vector used for positions, sizes, velocities and normals.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Length() float64     { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in v's direction. The zero vector
// normalizes to the zero vector; callers needing a direction must check.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClosestPointOnSegment returns the point on segment a-b nearest to p.
// A zero-length segment yields a.
func ClosestPointOnSegment(a, b, p Vec) Vec {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/den, 0, 1)
	return a.Add(ab.Scale(t))
}

// Reflect mirrors v across the plane with unit normal n: v - 2(v·n)n.
// n must be unit length; the result keeps v's magnitude only then.
func Reflect(v, n Vec) Vec {
	d := v.Dot(n)
	return Vec{v.X - 2*n.X*d, v.Y - 2*n.Y*d}
}
