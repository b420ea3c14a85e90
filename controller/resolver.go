package controller

import (
	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// noConstraint is the distance reported for an axis nothing blocks.
const noConstraint = -1.0

// Resolve clamps intended against the obstacles in front of every sample
// point. Each axis is clamped on its own, so a character blocked on one axis
// keeps moving on the other. The result never exceeds intended on either
// axis, and the flags are the union over all points.
func Resolve(q SpatialQuery, points []gamemath.Vec2, intended gamemath.Vec2, s Settings) (gamemath.Vec2, CollisionFlags) {
	d := intended
	flags := None
	for _, p := range points {
		var f CollisionFlags
		d, f = clampFromPoint(q, p, d, s)
		flags |= f
	}
	return d, flags
}

func clampFromPoint(q SpatialQuery, p, d gamemath.Vec2, s Settings) (gamemath.Vec2, CollisionFlags) {
	flags := None

	if dist := measureDistance(q, p, gamemath.V(d.X, 0), s); dist >= 0 {
		d.X = gamemath.ClampMagnitude(d.X, dist)
		flags |= Sides
	}

	if dist := measureDistance(q, p, gamemath.V(0, d.Y), s); dist >= 0 {
		if d.Y > 0 {
			flags |= Above
		} else {
			flags |= Below
		}
		d.Y = gamemath.ClampMagnitude(d.Y, dist)
	}

	return d, flags
}

// measureDistance casts from p, pushed out by the skin, along d for |d|. It
// returns noConstraint when nothing is hit, when the first hit is on one of
// the character's own layers, or when d is zero.
func measureDistance(q SpatialQuery, p, d gamemath.Vec2, s Settings) float64 {
	dir, ok := d.Unit()
	if !ok {
		return noConstraint
	}

	origin := p.Add(dir.Scale(s.SkinThickness))
	hit, ok := q.Raycast(origin, d, d.Length(), s.rayLayers())
	if !ok || s.SelfLayers.Has(hit.Layer) {
		return noConstraint
	}

	if s.SlideRecalculation {
		return SlideDistance(q, p, d, s)
	}
	return hit.Distance
}
