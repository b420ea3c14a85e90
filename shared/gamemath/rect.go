package gamemath

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Vec2
}

// EmptyRect returns an inverted rect that any Extend call will overwrite.
func EmptyRect() Rect {
	return Rect{
		Min: Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows r to include p.
func (r Rect) Extend(p Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Vec2{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return r.Extend(o.Min).Extend(o.Max)
}

// Grow pads every side of r by d.
func (r Rect) Grow(d float64) Rect {
	return Rect{
		Min: Vec2{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Vec2{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}
