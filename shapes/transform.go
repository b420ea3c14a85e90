package shapes

import "github.com/automoto/tilemap-controller/shared/gamemath"

// Transform places local geometry in its parent space: scale, then rotate
// (radians, counter-clockwise), then translate. A zero Scale means 1.
type Transform struct {
	Position gamemath.Vec2
	Rotation float64
	Scale    float64
}

// At returns a translation-only Transform.
func At(x, y float64) Transform {
	return Transform{Position: gamemath.V(x, y)}
}

func (t Transform) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// Apply maps a local point into parent space.
func (t Transform) Apply(p gamemath.Vec2) gamemath.Vec2 {
	return p.Scale(t.scale()).RotateRad(t.Rotation).Add(t.Position)
}

// Then returns the transform equivalent to applying t and then parent.
func (t Transform) Then(parent Transform) Transform {
	return Transform{
		Position: parent.Apply(t.Position),
		Rotation: t.Rotation + parent.Rotation,
		Scale:    t.scale() * parent.scale(),
	}
}

// Translated returns t moved by d.
func (t Transform) Translated(d gamemath.Vec2) Transform {
	t.Position = t.Position.Add(d)
	return t
}
