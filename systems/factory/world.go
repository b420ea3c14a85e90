package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/tilemap-controller/archetypes"
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ErrNoWorld is returned when an entity needs the world singleton before it
// has been created.
var ErrNoWorld = errors.New("no world entity")

// CreateWorld adds the world singleton. logger is shared by the systems; nil
// disables logging.
func CreateWorld(ecs *ecs.ECS, cfg config.WorldConfig, logger *zap.Logger) (*donburi.Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := world.New(world.Config{
		Bounds: gamemath.Rect{
			Min: gamemath.V(cfg.MinX, cfg.MinY),
			Max: gamemath.V(cfg.MaxX, cfg.MaxY),
		},
		CellSize: cfg.CellSize,
	}, logger.Named("world"))
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	entry := archetypes.World.Spawn(ecs)
	components.World.SetValue(entry, components.WorldData{World: w, Logger: logger})
	return entry, nil
}

func CreateClock(ecs *ecs.ECS, timer controller.FrameTimer) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.ClockData{FrameTimer: timer})
	return entry
}

func worldOf(ecs *ecs.ECS) (*world.World, error) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil, ErrNoWorld
	}
	return components.World.Get(entry).World, nil
}
