package shapes

import (
	"fmt"
	"math"

	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// Sample returns world-space points on the boundary of s placed by xf.
func Sample(s Shape, xf Transform) ([]gamemath.Vec2, error) {
	return appendSamples(nil, s, xf)
}

// SampleAll concatenates the samples of every part, in order. An error in any
// part aborts the whole pass.
func SampleAll(parts []Placed) ([]gamemath.Vec2, error) {
	var points []gamemath.Vec2
	for i, p := range parts {
		var err error
		points, err = appendSamples(points, p.Shape, p.Transform)
		if err != nil {
			return nil, fmt.Errorf("sample shape %d: %w", i, err)
		}
	}
	return points, nil
}

func appendSamples(dst []gamemath.Vec2, s Shape, xf Transform) ([]gamemath.Vec2, error) {
	switch s := s.(type) {
	case Polygon:
		if len(s.Points) == 0 {
			return dst, fmt.Errorf("polygon: %w", ErrEmptyShape)
		}
		for _, p := range s.Points {
			dst = append(dst, xf.Apply(p))
		}
		return dst, nil

	case Circle:
		n := s.Segments
		if n <= 0 {
			n = DefaultCircleSegments
		}
		step := 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			sin, cos := math.Sincos(step * float64(i))
			local := s.Center.Add(gamemath.V(cos*s.Radius, sin*s.Radius))
			dst = append(dst, xf.Apply(local))
		}
		return dst, nil

	case Box:
		for _, p := range s.corners() {
			dst = append(dst, xf.Apply(p))
		}
		return dst, nil

	case Compound:
		if len(s.Parts) == 0 {
			return dst, fmt.Errorf("compound: %w", ErrEmptyShape)
		}
		var err error
		for _, part := range s.Parts {
			dst, err = appendSamples(dst, part.Shape, part.Transform.Then(xf))
			if err != nil {
				return dst, err
			}
		}
		return dst, nil

	default:
		return dst, fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
}
