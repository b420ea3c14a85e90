package controller

import (
	"testing"
	"time"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
	"github.com/stretchr/testify/require"
)

const (
	solidLayer     world.Layer = 1
	characterLayer world.Layer = 8
)

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(world.Config{
		Bounds:   gamemath.Rect{Min: gamemath.V(-32, -32), Max: gamemath.V(32, 32)},
		CellSize: 1,
	}, nil)
	require.NoError(t, err)
	return w
}

func testSettings() Settings {
	return Settings{
		SkinThickness:     0.01,
		ObstacleLayers:    world.MaskOf(solidLayer),
		SelfLayers:        world.MaskOf(characterLayer),
		SlideAngleDegrees: 30,
		EscapeStep:        0.01,
		MaxEscapeSteps:    1000,
	}
}

func unitSquare() shapes.Polygon {
	return shapes.NewPolygon(-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5)
}

func squareCorners(center gamemath.Vec2) []gamemath.Vec2 {
	points, err := shapes.Sample(unitSquare(), shapes.Transform{Position: center})
	if err != nil {
		panic(err)
	}
	return points
}

func addSolid(t *testing.T, w *world.World, s shapes.Shape) *world.Body {
	t.Helper()
	b, err := w.Add(s, shapes.Transform{}, solidLayer, gamemath.Vec2{})
	require.NoError(t, err)
	return b
}

func newActor(t *testing.T, w *world.World, at gamemath.Vec2, parts ...shapes.Placed) *world.Actor {
	t.Helper()
	if len(parts) == 0 {
		parts = []shapes.Placed{{Shape: unitSquare()}}
	}
	a, err := w.NewActor(at, parts, characterLayer)
	require.NoError(t, err)
	return a
}

type stubTimer time.Duration

func (s stubTimer) DeltaTime() time.Duration { return time.Duration(s) }

// countingQuery records how often the world is queried.
type countingQuery struct {
	SpatialQuery
	rays, overlaps int
}

func (c *countingQuery) Raycast(origin, direction gamemath.Vec2, maxDistance float64, mask world.LayerMask) (world.Hit, bool) {
	c.rays++
	return c.SpatialQuery.Raycast(origin, direction, maxDistance, mask)
}

func (c *countingQuery) OverlapPoint(p gamemath.Vec2, mask world.LayerMask) (*world.Body, bool) {
	c.overlaps++
	return c.SpatialQuery.OverlapPoint(p, mask)
}
