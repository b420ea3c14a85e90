package controller

import (
	"time"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
)

// SpatialQuery answers ray and point queries against the physical world.
// *world.World implements it.
type SpatialQuery interface {
	Raycast(origin, direction gamemath.Vec2, maxDistance float64, mask world.LayerMask) (world.Hit, bool)
	OverlapPoint(p gamemath.Vec2, mask world.LayerMask) (*world.Body, bool)
	ClosestPoint(b *world.Body, p gamemath.Vec2) gamemath.Vec2
}

// Character is the moved object: its placement, its attached shapes at their
// current world placement and a switch for its own collisions. *world.Actor
// implements it.
type Character interface {
	Position() gamemath.Vec2
	Translate(delta gamemath.Vec2)
	Shapes() []shapes.Placed
	SetCollisionsEnabled(enabled bool)
}

// FrameTimer reports the duration of the current frame.
type FrameTimer interface {
	DeltaTime() time.Duration
}
