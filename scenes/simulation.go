// Package scenes assembles runnable simulations from a level and the config
// globals.
package scenes

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/components"
	"github.com/automoto/tilemap-controller/controller"
	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/shared/leveldata"
	"github.com/automoto/tilemap-controller/systems"
	"github.com/automoto/tilemap-controller/systems/factory"
	"github.com/automoto/tilemap-controller/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Status is a snapshot of the simulated character after a step.
type Status struct {
	Step     int
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Flags    controller.CollisionFlags
	Stuck    bool
}

// SimulationScene runs one character through a level at a constant speed.
type SimulationScene struct {
	ecs       *ecs.ECS
	character *donburi.Entry
	step      int
	logger    *zap.Logger
}

// NewSimulationScene builds the world, clock, level and character. The
// character spawns at the level's first spawn point, or the level centre if
// it has none.
func NewSimulationScene(level *leveldata.Level, timer controller.FrameTimer, logger *zap.Logger) (*SimulationScene, error) {
	if level == nil {
		return nil, errors.New("simulation needs a level")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SimulationScene{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		logger: logger,
	}

	if _, err := factory.CreateWorld(s.ecs, cfg.World, logger); err != nil {
		return nil, err
	}
	factory.CreateClock(s.ecs, timer)
	if err := factory.CreateLevel(s.ecs, level, cfg.Layers); err != nil {
		return nil, err
	}

	settings, err := controller.SettingsFromConfig(cfg.Controller, cfg.Layers)
	if err != nil {
		return nil, err
	}
	selfLayer, err := cfg.Layers.Index(cfg.Layers.Self[0])
	if err != nil {
		return nil, err
	}

	spawn := gamemath.V(level.Width/2, level.Height/2)
	if len(level.Spawns) > 0 {
		spawn = level.Spawns[0].Position
	} else {
		logger.Warn("level has no spawn point, using its centre", zap.String("level", level.Name))
	}

	w, h := cfg.Simulation.CharacterWidth, cfg.Simulation.CharacterHeight
	parts := []shapes.Placed{{Shape: shapes.NewRect(-w/2, -h/2, w, h)}}
	s.character, err = factory.CreateCharacter(s.ecs, spawn, parts, world.Layer(selfLayer), settings,
		controller.WithLogger(logger.Named("controller")))
	if err != nil {
		return nil, fmt.Errorf("spawn character: %w", err)
	}
	components.Motion.Get(s.character).Speed = gamemath.V(cfg.Simulation.SpeedX, cfg.Simulation.SpeedY)

	// Movers first so the character resolves against where they are this step
	s.ecs.AddSystem(systems.UpdateMovers)
	s.ecs.AddSystem(systems.UpdateMovement)

	logger.Info("simulation ready",
		zap.String("level", level.Name),
		zap.Int("obstacles", len(level.Obstacles)),
		zap.Int("movers", len(level.Movers)),
		zap.Any("spawn", spawn))

	return s, nil
}

// Update advances the simulation by one step.
func (s *SimulationScene) Update() {
	s.ecs.Update()
	s.step++

	st := s.Status()
	s.logger.Debug("step",
		zap.Int("step", st.Step),
		zap.Any("position", st.Position),
		zap.Any("velocity", st.Velocity),
		zap.Stringer("flags", st.Flags),
		zap.Bool("stuck", st.Stuck))
}

func (s *SimulationScene) Status() Status {
	ctrl := components.Controller.Get(s.character)
	motion := components.Motion.Get(s.character)
	return Status{
		Step:     s.step,
		Position: ctrl.Actor.Position(),
		Velocity: motion.Velocity,
		Flags:    motion.Flags,
		Stuck:    motion.Stuck,
	}
}

// SetSpeed changes the character's requested speed in units per second.
func (s *SimulationScene) SetSpeed(speed gamemath.Vec2) {
	components.Motion.Get(s.character).Speed = speed
}
