// Package shapes defines the closed set of 2D collider shapes used by characters
// and obstacles, how to sample points on their boundary and how to query them
// with rays and points.
package shapes

import (
	"errors"
	"fmt"

	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// DefaultCircleSegments is the number of boundary samples used for a Circle
// with no Segments set.
const DefaultCircleSegments = 16

var (
	// ErrUnsupportedShape is returned for a shape variant that cannot be
	// sampled or queried.
	ErrUnsupportedShape = errors.New("unsupported shape kind")
	// ErrEmptyShape is returned for a shape with no geometry to sample.
	ErrEmptyShape = errors.New("shape has no geometry")
)

// Kind identifies a shape variant.
type Kind int

const (
	KindPolygon Kind = iota
	KindCircle
	KindBox
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindBox:
		return "box"
	case KindCompound:
		return "compound"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is one of Polygon, Circle, Box or Compound. Geometry is expressed in
// local space and placed in the world with a Transform on every use.
type Shape interface {
	Kind() Kind
	sealed()
}

// Polygon is a closed polygon. Vertices may wind either way.
type Polygon struct {
	Points []gamemath.Vec2
}

// Circle samples as Segments evenly spaced perimeter points.
type Circle struct {
	Center   gamemath.Vec2
	Radius   float64
	Segments int
}

// Box is a rectangle centred on Center before rotation.
type Box struct {
	Center        gamemath.Vec2
	Width, Height float64
}

// Compound groups child shapes, each with its own placement relative to the
// compound.
type Compound struct {
	Parts []Placed
}

// Placed is a shape together with its placement.
type Placed struct {
	Shape     Shape
	Transform Transform
}

func (Polygon) Kind() Kind  { return KindPolygon }
func (Circle) Kind() Kind   { return KindCircle }
func (Box) Kind() Kind      { return KindBox }
func (Compound) Kind() Kind { return KindCompound }

func (Polygon) sealed()  {}
func (Circle) sealed()   {}
func (Box) sealed()      {}
func (Compound) sealed() {}

// NewRect returns a Box spanning (x, y) to (x+w, y+h).
func NewRect(x, y, w, h float64) Box {
	return Box{Center: gamemath.V(x+w/2, y+h/2), Width: w, Height: h}
}

// NewPolygon builds a Polygon from flat x, y pairs. A trailing odd value is
// ignored.
func NewPolygon(coords ...float64) Polygon {
	points := make([]gamemath.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, gamemath.V(coords[i], coords[i+1]))
	}
	return Polygon{Points: points}
}

// Validate checks that s can be sampled and queried.
func Validate(s Shape) error {
	switch s := s.(type) {
	case Polygon:
		if len(s.Points) == 0 {
			return fmt.Errorf("polygon: %w", ErrEmptyShape)
		}
	case Circle:
		if s.Radius < 0 {
			return fmt.Errorf("circle radius %v: %w", s.Radius, ErrEmptyShape)
		}
	case Box:
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("box %vx%v: %w", s.Width, s.Height, ErrEmptyShape)
		}
	case Compound:
		if len(s.Parts) == 0 {
			return fmt.Errorf("compound: %w", ErrEmptyShape)
		}
		for i, p := range s.Parts {
			if err := Validate(p.Shape); err != nil {
				return fmt.Errorf("compound part %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedShape, s)
	}
	return nil
}

// corners returns the box outline in local space, counter-clockwise.
func (b Box) corners() []gamemath.Vec2 {
	hw, hh := b.Width/2, b.Height/2
	return []gamemath.Vec2{
		gamemath.V(b.Center.X-hw, b.Center.Y-hh),
		gamemath.V(b.Center.X+hw, b.Center.Y-hh),
		gamemath.V(b.Center.X+hw, b.Center.Y+hh),
		gamemath.V(b.Center.X-hw, b.Center.Y+hh),
	}
}
