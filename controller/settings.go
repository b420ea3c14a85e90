package controller

import (
	"fmt"
	"math"

	"github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/world"
)

// Settings are the controller tunables. They are passed explicitly to every
// stage of a movement call.
type Settings struct {
	SkinThickness      float64
	ObstacleLayers     world.LayerMask
	SelfLayers         world.LayerMask
	SlideRecalculation bool
	SlideAngleDegrees  float64
	EscapeStep         float64
	MaxEscapeSteps     int
}

// SettingsFromConfig builds Settings from the controller and layer sections.
func SettingsFromConfig(c config.ControllerConfig, l config.LayerConfig) (Settings, error) {
	obstacles, err := l.ObstacleMask()
	if err != nil {
		return Settings{}, fmt.Errorf("obstacle layers: %w", err)
	}
	self, err := l.SelfMask()
	if err != nil {
		return Settings{}, fmt.Errorf("self layers: %w", err)
	}

	s := Settings{
		SkinThickness:      c.SkinThickness,
		ObstacleLayers:     world.LayerMask(obstacles),
		SelfLayers:         world.LayerMask(self),
		SlideRecalculation: c.SlideRecalculation,
		SlideAngleDegrees:  c.SlideAngleDegrees,
		EscapeStep:         c.EscapeStep,
		MaxEscapeSteps:     c.MaxEscapeSteps,
	}
	return s, s.Validate()
}

// DefaultSettings returns SettingsFromConfig for the current config globals.
func DefaultSettings() (Settings, error) {
	return SettingsFromConfig(config.Controller, config.Layers)
}

func (s Settings) Validate() error {
	switch {
	case s.SkinThickness < 0 || math.IsNaN(s.SkinThickness):
		return fmt.Errorf("skin thickness must be >= 0, got %v", s.SkinThickness)
	case math.IsNaN(s.SlideAngleDegrees) || math.IsInf(s.SlideAngleDegrees, 0):
		return fmt.Errorf("slide angle must be finite, got %v", s.SlideAngleDegrees)
	case s.EscapeStep <= 0:
		return fmt.Errorf("escape step must be > 0, got %v", s.EscapeStep)
	case s.MaxEscapeSteps <= 0:
		return fmt.Errorf("max escape steps must be > 0, got %d", s.MaxEscapeSteps)
	case s.ObstacleLayers&s.SelfLayers != 0:
		return fmt.Errorf("layers %v are both obstacle and self layers", s.ObstacleLayers&s.SelfLayers)
	}
	return nil
}

// rayLayers is the mask used by the resolver: obstacles plus the character's
// own layers so self hits can be recognised and ignored.
func (s Settings) rayLayers() world.LayerMask {
	return s.ObstacleLayers.Union(s.SelfLayers)
}
