package world

import (
	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Body is a shape placed in a World on one collision layer.
type Body struct {
	ID    uint64
	Shape shapes.Shape
	Local shapes.Transform
	Layer Layer

	// Data links the body back to its owner, e.g. an ECS entry.
	Data any

	origin  gamemath.Vec2
	object  *resolv.Object
	world   *World
	enabled bool
}

// Origin returns the world position the body's local transform is relative to.
func (b *Body) Origin() gamemath.Vec2 {
	return b.origin
}

// Transform returns the body's current world placement.
func (b *Body) Transform() shapes.Transform {
	return b.Local.Translated(b.origin)
}

// Bounds returns the body's world-space bounding box.
func (b *Body) Bounds() gamemath.Rect {
	return shapes.Bounds(b.Shape, b.Transform())
}

// Enabled reports whether queries can see the body.
func (b *Body) Enabled() bool {
	return b.enabled
}

// SetOrigin moves the body so its origin is at p.
func (b *Body) SetOrigin(p gamemath.Vec2) {
	b.origin = p
	if b.world == nil {
		return
	}
	b.world.syncObject(b)
	if b.enabled {
		b.object.Update()
	}
}

// Move translates the body by d.
func (b *Body) Move(d gamemath.Vec2) {
	b.SetOrigin(b.origin.Add(d))
}

// SetEnabled adds the body to or removes it from the query index.
func (b *Body) SetEnabled(enabled bool) {
	if b.world == nil || b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if enabled {
		b.world.syncObject(b)
		b.world.space.Add(b.object)
	} else {
		b.world.space.Remove(b.object)
	}
}
