package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// ControllerConfig contains the character controller tunables
type ControllerConfig struct {
	// Ray padding outside the character boundary, in world units
	SkinThickness float64 `yaml:"skin_thickness"`

	// Slide along angled surfaces instead of stopping at the axis hit
	SlideRecalculation bool    `yaml:"slide_recalculation"`
	SlideAngleDegrees  float64 `yaml:"slide_angle_degrees"`

	// Penetration escape
	EscapeStep     float64 `yaml:"escape_step"`      // Distance moved per escape iteration
	MaxEscapeSteps int     `yaml:"max_escape_steps"` // Iterations before giving up on one sample point
}

// LayerConfig names collision layers and picks which of them block characters
type LayerConfig struct {
	Names     map[string]int `yaml:"names"`     // Layer name to index in [0, 32)
	Obstacles []string       `yaml:"obstacles"` // Layers that block the character
	Self      []string       `yaml:"self"`      // The character's own layers
	Default   string         `yaml:"default"`   // Layer for obstacles with no layer property
}

// WorldConfig contains the query index configuration
type WorldConfig struct {
	MinX     float64 `yaml:"min_x"`
	MinY     float64 `yaml:"min_y"`
	MaxX     float64 `yaml:"max_x"`
	MaxY     float64 `yaml:"max_y"`
	CellSize float64 `yaml:"cell_size"` // World units per index cell

	// Level files are authored in pixels with Y down; divide by this and flip Y
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// ShapeConfig contains boundary sampling configuration
type ShapeConfig struct {
	CircleSegments int `yaml:"circle_segments"`
}

// SimulationConfig drives the headless simulation command
type SimulationConfig struct {
	Steps         int           `yaml:"steps"`
	FixedTimestep time.Duration `yaml:"fixed_timestep"`
	SpeedX        float64       `yaml:"speed_x"` // Units per second
	SpeedY        float64       `yaml:"speed_y"`

	// Character collider, a box centred on the character position
	CharacterWidth  float64 `yaml:"character_width"`
	CharacterHeight float64 `yaml:"character_height"`
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json or console
}

// File is the shape of a YAML configuration file. Sections that are left out
// keep their current values.
type File struct {
	Controller ControllerConfig `yaml:"controller"`
	Layers     LayerConfig      `yaml:"layers"`
	World      WorldConfig      `yaml:"world"`
	Shapes     ShapeConfig      `yaml:"shapes"`
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
}

var Controller ControllerConfig
var Layers LayerConfig
var World WorldConfig
var Shapes ShapeConfig
var Simulation SimulationConfig
var Log LogConfig

// Layer names used by the defaults
const (
	LayerDefault   = "default"
	LayerSolid     = "solid"
	LayerPlatform  = "platform"
	LayerCharacter = "character"
)

func init() {
	Reset()
}

// Defaults returns the built-in configuration.
func Defaults() File {
	return File{
		Controller: ControllerConfig{
			SkinThickness:      0.01,
			SlideRecalculation: false,
			SlideAngleDegrees:  30,
			EscapeStep:         0.01,
			MaxEscapeSteps:     1000,
		},
		Layers: LayerConfig{
			Names: map[string]int{
				LayerDefault:   0,
				LayerSolid:     1,
				LayerPlatform:  2,
				LayerCharacter: 8,
			},
			Obstacles: []string{LayerSolid, LayerPlatform},
			Self:      []string{LayerCharacter},
			Default:   LayerSolid,
		},
		World: WorldConfig{
			MinX:          -64,
			MinY:          -64,
			MaxX:          64,
			MaxY:          64,
			CellSize:      1,
			PixelsPerUnit: 16,
		},
		Shapes: ShapeConfig{
			CircleSegments: 16,
		},
		Simulation: SimulationConfig{
			Steps:           120,
			FixedTimestep:   time.Second / 60,
			SpeedX:          4,
			SpeedY:          0,
			CharacterWidth:  1,
			CharacterHeight: 1,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Reset restores the package globals to Defaults.
func Reset() {
	Apply(Defaults())
}

// Current returns a copy of the package globals as a File.
func Current() File {
	layers := Layers
	layers.Names = maps.Clone(Layers.Names)
	layers.Obstacles = slices.Clone(Layers.Obstacles)
	layers.Self = slices.Clone(Layers.Self)

	return File{
		Controller: Controller,
		Layers:     layers,
		World:      World,
		Shapes:     Shapes,
		Simulation: Simulation,
		Log:        Log,
	}
}

// Apply replaces the package globals with f without validating it.
func Apply(f File) {
	Controller = f.Controller
	Layers = f.Layers
	World = f.World
	Shapes = f.Shapes
	Simulation = f.Simulation
	Log = f.Log
}

// Load decodes a YAML overlay on top of the current globals, validates the
// result and applies it. Nothing is applied on error.
func Load(r io.Reader) error {
	f := Current()
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	Apply(f)
	return nil
}

// LoadFile is Load for a file on disk.
func LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	if err := Load(file); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section for values the controller cannot run with.
func (f File) Validate() error {
	c := f.Controller
	switch {
	case c.SkinThickness < 0 || math.IsNaN(c.SkinThickness):
		return fmt.Errorf("controller.skin_thickness must be >= 0, got %v", c.SkinThickness)
	case math.IsNaN(c.SlideAngleDegrees) || math.IsInf(c.SlideAngleDegrees, 0):
		return fmt.Errorf("controller.slide_angle_degrees must be finite")
	case c.EscapeStep <= 0:
		return fmt.Errorf("controller.escape_step must be > 0, got %v", c.EscapeStep)
	case c.MaxEscapeSteps <= 0:
		return fmt.Errorf("controller.max_escape_steps must be > 0, got %d", c.MaxEscapeSteps)
	}

	w := f.World
	if w.MaxX <= w.MinX || w.MaxY <= w.MinY {
		return fmt.Errorf("world bounds are empty: (%v,%v)-(%v,%v)", w.MinX, w.MinY, w.MaxX, w.MaxY)
	}
	if w.CellSize <= 0 {
		return fmt.Errorf("world.cell_size must be > 0, got %v", w.CellSize)
	}
	if w.PixelsPerUnit <= 0 {
		return fmt.Errorf("world.pixels_per_unit must be > 0, got %v", w.PixelsPerUnit)
	}

	if f.Shapes.CircleSegments < 3 {
		return fmt.Errorf("shapes.circle_segments must be >= 3, got %d", f.Shapes.CircleSegments)
	}

	if f.Simulation.FixedTimestep <= 0 {
		return fmt.Errorf("simulation.fixed_timestep must be > 0, got %v", f.Simulation.FixedTimestep)
	}

	return f.Layers.Validate()
}
