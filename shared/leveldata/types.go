// Package leveldata loads obstacle layouts from Tiled TMX files. Coordinates
// are converted from Tiled pixels (Y down) to world units (Y up).
package leveldata

import (
	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// Level holds every collision-relevant item parsed from a TMX file.
type Level struct {
	Name      string
	Obstacles []Obstacle
	Movers    []Mover
	Spawns    []SpawnPoint
	Width     float64 // World units
	Height    float64
}

// Obstacle is a static collider on a named collision layer.
type Obstacle struct {
	Shape     shapes.Shape
	Transform shapes.Transform
	Layer     string
}

// Mover is an obstacle that travels to Start+Offset and back, taking
// Duration seconds each way.
type Mover struct {
	Obstacle
	Offset   gamemath.Vec2
	Duration float64
}

// SpawnPoint is a character start position.
type SpawnPoint struct {
	Position gamemath.Vec2
	Index    int
}

// Options controls unit conversion and defaults.
type Options struct {
	PixelsPerUnit  float64
	DefaultLayer   string
	CircleSegments int
}
