package factory

import (
	"fmt"

	"github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/shared/leveldata"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel adds every obstacle and mover of level to the world. Layer
// names are resolved through layers.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, layers config.LayerConfig) error {
	for i, o := range level.Obstacles {
		layer, err := resolveLayer(layers, o.Layer)
		if err != nil {
			return fmt.Errorf("level %s obstacle %d: %w", level.Name, i, err)
		}
		if _, err := CreateObstacle(ecs, o.Shape, o.Transform, layer); err != nil {
			return fmt.Errorf("level %s obstacle %d: %w", level.Name, i, err)
		}
	}

	for i, m := range level.Movers {
		layer, err := resolveLayer(layers, m.Layer)
		if err != nil {
			return fmt.Errorf("level %s mover %d: %w", level.Name, i, err)
		}
		if _, err := CreateMover(ecs, m.Shape, m.Transform, layer, m.Offset, m.Duration); err != nil {
			return fmt.Errorf("level %s mover %d: %w", level.Name, i, err)
		}
	}

	return nil
}

func resolveLayer(layers config.LayerConfig, name string) (world.Layer, error) {
	if name == "" {
		name = layers.Default
	}
	idx, err := layers.Index(name)
	if err != nil {
		return 0, err
	}
	return world.Layer(idx), nil
}
