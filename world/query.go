package world

import (
	"math"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// Hit describes the first body struck by a ray.
type Hit struct {
	Body     *Body
	Layer    Layer
	Distance float64
	Point    gamemath.Vec2
}

// Raycast returns the nearest enabled body on a layer in mask that the ray
// from origin along direction strikes within maxDistance. A zero direction
// never hits. Equal distances resolve to the oldest body.
func (w *World) Raycast(origin, direction gamemath.Vec2, maxDistance float64, mask LayerMask) (Hit, bool) {
	dir, ok := direction.Unit()
	if !ok || maxDistance < 0 || mask == NoLayers {
		return Hit{}, false
	}

	area := gamemath.EmptyRect().Extend(origin).Extend(origin.Add(dir.Scale(maxDistance)))
	best := Hit{Distance: math.Inf(1)}
	for _, b := range w.candidates(area) {
		if !mask.Has(b.Layer) {
			continue
		}
		d, ok := shapes.RayCast(b.Shape, b.Transform(), origin, dir, maxDistance)
		if !ok {
			continue
		}
		if d < best.Distance || (d == best.Distance && b.ID < best.Body.ID) {
			best = Hit{
				Body:     b,
				Layer:    b.Layer,
				Distance: d,
				Point:    origin.Add(dir.Scale(d)),
			}
		}
	}
	return best, best.Body != nil
}

// OverlapPoint returns an enabled body on a layer in mask containing p.
func (w *World) OverlapPoint(p gamemath.Vec2, mask LayerMask) (*Body, bool) {
	if mask == NoLayers {
		return nil, false
	}

	var found *Body
	area := gamemath.EmptyRect().Extend(p)
	for _, b := range w.candidates(area) {
		if !mask.Has(b.Layer) {
			continue
		}
		if found != nil && found.ID < b.ID {
			continue
		}
		if shapes.Contains(b.Shape, b.Transform(), p) {
			found = b
		}
	}
	return found, found != nil
}

// ClosestPoint returns p when it is inside b, else the nearest point on b's
// boundary.
func (w *World) ClosestPoint(b *Body, p gamemath.Vec2) gamemath.Vec2 {
	return shapes.ClosestPoint(b.Shape, b.Transform(), p)
}
