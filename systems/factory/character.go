package factory

import (
	"fmt"

	"github.com/automoto/tilemap-controller/archetypes"
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a controlled character with parts attached at
// position on layer. The clock singleton, when present, times SimpleMove;
// opts are applied after it.
func CreateCharacter(ecs *ecs.ECS, position gamemath.Vec2, parts []shapes.Placed, layer world.Layer, settings controller.Settings, opts ...controller.Option) (*donburi.Entry, error) {
	w, err := worldOf(ecs)
	if err != nil {
		return nil, err
	}

	actor, err := w.NewActor(position, parts, layer)
	if err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	if clock, ok := components.Clock.First(ecs.World); ok {
		timer := components.Clock.Get(clock).FrameTimer
		opts = append([]controller.Option{controller.WithFrameTimer(timer)}, opts...)
	}

	ctrl, err := controller.New(actor, w, settings, opts...)
	if err != nil {
		actor.Remove()
		return nil, fmt.Errorf("create character: %w", err)
	}

	character := archetypes.Character.Spawn(ecs)
	components.Controller.SetValue(character, components.ControllerData{
		Controller: ctrl,
		Actor:      actor,
	})
	components.Motion.SetValue(character, components.MotionData{Grounded: true})

	return character, nil
}
