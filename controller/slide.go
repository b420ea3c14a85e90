package controller

import (
	"math"

	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// SlideDistance estimates how far the character could travel from p when
// sliding along an angled surface instead of stopping at it. It casts two
// rays rotated by +/- SlideAngleDegrees from direction, each |direction| long
// and pushed out by the skin, and returns the longer of the two distances.
// A ray that hits nothing counts as the full |direction|.
func SlideDistance(q SpatialQuery, p, direction gamemath.Vec2, s Settings) float64 {
	length := direction.Length()
	if length == 0 {
		return 0
	}

	best := 0.0
	for _, angle := range [2]float64{s.SlideAngleDegrees, -s.SlideAngleDegrees} {
		rotated := direction.Rotate(angle)
		dir, ok := rotated.Unit()
		if !ok {
			continue
		}

		dist := length
		origin := p.Add(dir.Scale(s.SkinThickness))
		if hit, ok := q.Raycast(origin, rotated, length, s.ObstacleLayers); ok {
			dist = hit.Distance
		}
		best = math.Max(best, dist)
	}
	return best
}
