package factory

import (
	"fmt"

	"github.com/automoto/tilemap-controller/archetypes"
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle adds a static obstacle. The body's origin is
// xf.Position; the rest of xf places the shape around it.
func CreateObstacle(ecs *ecs.ECS, shape shapes.Shape, xf shapes.Transform, layer world.Layer) (*donburi.Entry, error) {
	body, err := addBody(ecs, shape, xf, layer)
	if err != nil {
		return nil, err
	}

	obstacle := archetypes.Obstacle.Spawn(ecs)
	body.Data = obstacle // Link for O(1) lookup
	components.Obstacle.SetValue(obstacle, components.ObstacleData{Body: body})

	return obstacle, nil
}

func addBody(ecs *ecs.ECS, shape shapes.Shape, xf shapes.Transform, layer world.Layer) (*world.Body, error) {
	w, err := worldOf(ecs)
	if err != nil {
		return nil, err
	}

	local := xf
	local.Position = gamemath.Vec2{}
	body, err := w.Add(shape, local, layer, xf.Position)
	if err != nil {
		return nil, fmt.Errorf("create obstacle: %w", err)
	}
	return body, nil
}
