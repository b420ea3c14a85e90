package shapes

import (
	"math"

	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// Bounds returns the world-space bounding box of s placed by xf.
func Bounds(s Shape, xf Transform) gamemath.Rect {
	r := gamemath.EmptyRect()
	switch s := s.(type) {
	case Polygon:
		for _, p := range s.Points {
			r = r.Extend(xf.Apply(p))
		}
	case Box:
		for _, p := range s.corners() {
			r = r.Extend(xf.Apply(p))
		}
	case Circle:
		c, radius := worldCircle(s, xf)
		r = r.Extend(c.Sub(gamemath.V(radius, radius))).Extend(c.Add(gamemath.V(radius, radius)))
	case Compound:
		for _, part := range s.Parts {
			r = r.Union(Bounds(part.Shape, part.Transform.Then(xf)))
		}
	}
	return r
}

// Contains reports whether p lies inside or on the boundary of s.
func Contains(s Shape, xf Transform, p gamemath.Vec2) bool {
	switch s := s.(type) {
	case Polygon:
		return polygonContains(worldPoints(s.Points, xf), p)
	case Box:
		return polygonContains(worldPoints(s.corners(), xf), p)
	case Circle:
		c, radius := worldCircle(s, xf)
		return p.Sub(c).Length() <= radius+gamemath.Epsilon
	case Compound:
		for _, part := range s.Parts {
			if Contains(part.Shape, part.Transform.Then(xf), p) {
				return true
			}
		}
	}
	return false
}

// RayCast returns the distance along the unit direction dir from origin to
// the first point of s, if it is within maxDistance. A ray starting inside s
// hits at distance 0.
func RayCast(s Shape, xf Transform, origin, dir gamemath.Vec2, maxDistance float64) (float64, bool) {
	switch s := s.(type) {
	case Polygon:
		return rayPolygon(worldPoints(s.Points, xf), origin, dir, maxDistance)
	case Box:
		return rayPolygon(worldPoints(s.corners(), xf), origin, dir, maxDistance)
	case Circle:
		c, radius := worldCircle(s, xf)
		return rayCircle(c, radius, origin, dir, maxDistance)
	case Compound:
		best, hit := math.Inf(1), false
		for _, part := range s.Parts {
			if d, ok := RayCast(part.Shape, part.Transform.Then(xf), origin, dir, maxDistance); ok && d < best {
				best, hit = d, true
			}
		}
		return best, hit
	}
	return 0, false
}

// ClosestPoint returns p itself when p is inside s, otherwise the nearest
// point on its boundary.
func ClosestPoint(s Shape, xf Transform, p gamemath.Vec2) gamemath.Vec2 {
	switch s := s.(type) {
	case Polygon:
		return closestOnPolygon(worldPoints(s.Points, xf), p)
	case Box:
		return closestOnPolygon(worldPoints(s.corners(), xf), p)
	case Circle:
		c, radius := worldCircle(s, xf)
		offset := p.Sub(c)
		if offset.Length() <= radius {
			return p
		}
		dir, ok := offset.Unit()
		if !ok {
			return p
		}
		return c.Add(dir.Scale(radius))
	case Compound:
		best, bestDist := p, math.Inf(1)
		for _, part := range s.Parts {
			q := ClosestPoint(part.Shape, part.Transform.Then(xf), p)
			if q == p {
				return p
			}
			if d := q.Sub(p).Length(); d < bestDist {
				best, bestDist = q, d
			}
		}
		return best
	}
	return p
}

func worldPoints(local []gamemath.Vec2, xf Transform) []gamemath.Vec2 {
	out := make([]gamemath.Vec2, len(local))
	for i, p := range local {
		out[i] = xf.Apply(p)
	}
	return out
}

func worldCircle(c Circle, xf Transform) (gamemath.Vec2, float64) {
	return xf.Apply(c.Center), math.Abs(c.Radius * xf.scale())
}

func polygonContains(poly []gamemath.Vec2, p gamemath.Vec2) bool {
	n := len(poly)
	if n == 0 {
		return false
	}
	if n == 1 {
		return poly[0].ApproxEqual(p)
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if closestOnSegment(a, b, p).ApproxEqual(p) {
			return true
		}
		if (b.Y > p.Y) != (a.Y > p.Y) {
			x := (a.X-b.X)*(p.Y-b.Y)/(a.Y-b.Y) + b.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func rayPolygon(poly []gamemath.Vec2, origin, dir gamemath.Vec2, maxDistance float64) (float64, bool) {
	if polygonContains(poly, origin) {
		return 0, true
	}

	best, hit := math.Inf(1), false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		edge := b.Sub(a)
		denom := dir.Cross(edge)
		if math.Abs(denom) < gamemath.Epsilon {
			continue
		}
		ao := a.Sub(origin)
		t := ao.Cross(edge) / denom
		u := ao.Cross(dir) / denom
		if t < 0 || t > maxDistance || u < 0 || u > 1 {
			continue
		}
		if t < best {
			best, hit = t, true
		}
	}
	return best, hit
}

func rayCircle(c gamemath.Vec2, radius float64, origin, dir gamemath.Vec2, maxDistance float64) (float64, bool) {
	oc := origin.Sub(c)
	cc := oc.Dot(oc) - radius*radius
	if cc <= 0 {
		return 0, true
	}
	b := oc.Dot(dir)
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 || t > maxDistance {
		return 0, false
	}
	return t, true
}

func closestOnPolygon(poly []gamemath.Vec2, p gamemath.Vec2) gamemath.Vec2 {
	if polygonContains(poly, p) {
		return p
	}
	best, bestDist := p, math.Inf(1)
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		q := closestOnSegment(poly[j], poly[i], p)
		if d := q.Sub(p).Length(); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

func closestOnSegment(a, b, p gamemath.Vec2) gamemath.Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := gamemath.ClampFloat(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Scale(t))
}
