package systems

import (
	"errors"

	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateMovement moves every character at its requested speed for one frame
// and records the outcome in its Motion component.
func UpdateMovement(ecs *ecs.ECS) {
	logger := systemLogger(ecs).Named("movement")

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		motion := components.Motion.Get(e)

		grounded, err := ctrl.SimpleMove(motion.Speed)
		motion.Grounded = grounded
		motion.Velocity = ctrl.Velocity()
		motion.Flags = ctrl.LastFlags()
		motion.Stuck = errors.Is(err, controller.ErrUnresolvablePenetration)

		switch {
		case motion.Stuck:
			logger.Warn("character stuck in obstacle",
				zap.Any("entity", e.Entity()),
				zap.Any("position", ctrl.Actor.Position()))
		case err != nil:
			logger.Error("character move failed",
				zap.Any("entity", e.Entity()),
				zap.Error(err))
		}
	})
}

// systemLogger returns the logger stored on the world singleton.
func systemLogger(ecs *ecs.ECS) *zap.Logger {
	if entry, ok := components.World.First(ecs.World); ok {
		if logger := components.World.Get(entry).Logger; logger != nil {
			return logger
		}
	}
	return zap.NewNop()
}
