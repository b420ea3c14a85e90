package factory

import (
	"fmt"

	"github.com/automoto/tilemap-controller/archetypes"
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMover adds an obstacle that travels from xf.Position by offset and
// back again, taking duration seconds each way.
func CreateMover(ecs *ecs.ECS, shape shapes.Shape, xf shapes.Transform, layer world.Layer, offset gamemath.Vec2, duration float64) (*donburi.Entry, error) {
	dir, ok := offset.Unit()
	if !ok {
		return nil, fmt.Errorf("create mover: zero offset")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("create mover: duration must be positive, got %v", duration)
	}

	body, err := addBody(ecs, shape, xf, layer)
	if err != nil {
		return nil, err
	}

	mover := archetypes.Mover.Spawn(ecs)
	body.Data = mover
	components.Obstacle.SetValue(mover, components.ObstacleData{Body: body})

	// The mover travels using a *gween.Sequence of tweens, moving it back and forth.
	dist := float32(offset.Length())
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, dist, float32(duration), ease.Linear),
		gween.New(dist, 0, float32(duration), ease.Linear),
	)
	components.Tween.SetValue(mover, components.TweenData{
		Sequence:  tw,
		Start:     xf.Position,
		Direction: dir,
	})

	return mover, nil
}
