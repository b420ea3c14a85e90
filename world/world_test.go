package world

import (
	"testing"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	solid     Layer = 1
	character Layer = 8
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(Config{
		Bounds:   gamemath.Rect{Min: gamemath.V(-32, -32), Max: gamemath.V(32, 32)},
		CellSize: 1,
	}, nil)
	require.NoError(t, err)
	return w
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{CellSize: 1}, nil)
	assert.Error(t, err)

	_, err = New(Config{Bounds: gamemath.Rect{Max: gamemath.V(1, 1)}}, nil)
	assert.Error(t, err)
}

func TestAddRejectsInvalidShape(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.Add(shapes.Polygon{}, shapes.Transform{}, solid, gamemath.Vec2{})
	assert.ErrorIs(t, err, shapes.ErrEmptyShape)

	_, err = w.Add(shapes.Circle{Radius: 1}, shapes.Transform{}, MaxLayers, gamemath.Vec2{})
	assert.Error(t, err)
	assert.Zero(t, w.Len())
}

func TestAddRejectsOutOfBounds(t *testing.T) {
	w := newTestWorld(t)

	_, err := w.Add(shapes.NewRect(30, 0, 4, 1), shapes.Transform{}, solid, gamemath.Vec2{})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = w.Add(shapes.Circle{Radius: 1}, shapes.Transform{}, solid, gamemath.V(-31.5, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, w.Len())

	// Touching the bounds is allowed
	_, err = w.Add(shapes.NewRect(31, 31, 1, 1), shapes.Transform{}, solid, gamemath.Vec2{})
	assert.NoError(t, err)
}

func TestRaycastNearestMatchingLayer(t *testing.T) {
	w := newTestWorld(t)
	near, err := w.Add(shapes.NewRect(0, -1, 1, 2), shapes.Transform{}, character, gamemath.V(2, 0))
	require.NoError(t, err)
	far, err := w.Add(shapes.NewRect(0, -1, 1, 2), shapes.Transform{}, solid, gamemath.V(5, 0))
	require.NoError(t, err)

	hit, ok := w.Raycast(gamemath.Vec2{}, gamemath.V(10, 0), 10, MaskOf(solid, character))
	require.True(t, ok)
	assert.Same(t, near, hit.Body)
	assert.Equal(t, character, hit.Layer)
	assert.InDelta(t, 2.0, hit.Distance, 1e-9)
	assert.InDelta(t, 2.0, hit.Point.X, 1e-9)

	hit, ok = w.Raycast(gamemath.Vec2{}, gamemath.V(1, 0), 10, MaskOf(solid))
	require.True(t, ok)
	assert.Same(t, far, hit.Body)
	assert.InDelta(t, 5.0, hit.Distance, 1e-9)

	_, ok = w.Raycast(gamemath.Vec2{}, gamemath.V(1, 0), 4, MaskOf(solid))
	assert.False(t, ok, "out of range")

	_, ok = w.Raycast(gamemath.Vec2{}, gamemath.Vec2{}, 10, AllLayers)
	assert.False(t, ok, "zero direction")
}

func TestRaycastAcrossManyCells(t *testing.T) {
	w := newTestWorld(t)
	_, err := w.Add(shapes.Circle{Radius: 1}, shapes.Transform{}, solid, gamemath.V(-20, -20))
	require.NoError(t, err)

	hit, ok := w.Raycast(gamemath.V(20, 20), gamemath.V(-1, -1), 60, AllLayers)
	require.True(t, ok)
	assert.InDelta(t, gamemath.V(40, 40).Length()-1, hit.Distance, 1e-9)
}

func TestOverlapPointAndClosestPoint(t *testing.T) {
	w := newTestWorld(t)
	b, err := w.Add(shapes.NewRect(0, 0, 2, 2), shapes.Transform{}, solid, gamemath.V(1, 1))
	require.NoError(t, err)

	got, ok := w.OverlapPoint(gamemath.V(2, 2), MaskOf(solid))
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = w.OverlapPoint(gamemath.V(2, 2), MaskOf(character))
	assert.False(t, ok)

	_, ok = w.OverlapPoint(gamemath.V(0, 0), AllLayers)
	assert.False(t, ok)

	assert.Equal(t, gamemath.V(2, 2), w.ClosestPoint(b, gamemath.V(2, 2)))
	q := w.ClosestPoint(b, gamemath.V(5, 2))
	assert.InDelta(t, 3.0, q.X, 1e-9)
	assert.InDelta(t, 2.0, q.Y, 1e-9)
}

func TestBodyMoveUpdatesIndex(t *testing.T) {
	w := newTestWorld(t)
	b, err := w.Add(shapes.Circle{Radius: 0.5}, shapes.Transform{}, solid, gamemath.V(0, 0))
	require.NoError(t, err)

	b.Move(gamemath.V(10, 0))
	_, ok := w.OverlapPoint(gamemath.V(0, 0), AllLayers)
	assert.False(t, ok)
	_, ok = w.OverlapPoint(gamemath.V(10, 0), AllLayers)
	assert.True(t, ok)
}

func TestDisabledAndRemovedBodiesAreInvisible(t *testing.T) {
	w := newTestWorld(t)
	b, err := w.Add(shapes.NewRect(-1, -1, 2, 2), shapes.Transform{}, solid, gamemath.Vec2{})
	require.NoError(t, err)

	b.SetEnabled(false)
	_, ok := w.OverlapPoint(gamemath.Vec2{}, AllLayers)
	assert.False(t, ok)

	b.Move(gamemath.V(3, 0))
	b.SetEnabled(true)
	_, ok = w.OverlapPoint(gamemath.V(3, 0), AllLayers)
	assert.True(t, ok)

	w.Remove(b)
	assert.Zero(t, w.Len())
	_, ok = w.OverlapPoint(gamemath.V(3, 0), AllLayers)
	assert.False(t, ok)
}

func TestActorMovesBodiesTogether(t *testing.T) {
	w := newTestWorld(t)
	a, err := w.NewActor(gamemath.V(1, 1), []shapes.Placed{
		{Shape: shapes.NewPolygon(-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5)},
		{Shape: shapes.Circle{Radius: 0.25}, Transform: shapes.At(0, 1)},
	}, character)
	require.NoError(t, err)
	require.Len(t, a.Bodies(), 2)

	a.Translate(gamemath.V(2, 0))
	assert.Equal(t, gamemath.V(3, 1), a.Position())

	placed := a.Shapes()
	require.Len(t, placed, 2)
	assert.Equal(t, gamemath.V(3, 1), placed[0].Transform.Position)
	assert.Equal(t, gamemath.V(3, 2), placed[1].Transform.Position)

	_, ok := w.OverlapPoint(gamemath.V(3, 2), MaskOf(character))
	assert.True(t, ok)

	a.SetCollisionsEnabled(false)
	assert.False(t, a.CollisionsEnabled())
	_, ok = w.OverlapPoint(gamemath.V(3, 1), AllLayers)
	assert.False(t, ok)

	a.SetCollisionsEnabled(true)
	a.Teleport(gamemath.V(-5, -5))
	_, ok = w.OverlapPoint(gamemath.V(-5, -5), MaskOf(character))
	assert.True(t, ok)

	a.Remove()
	assert.Zero(t, w.Len())
}

func TestLayerMask(t *testing.T) {
	m := MaskOf(solid, character)
	assert.True(t, m.Has(solid))
	assert.False(t, m.Has(0))
	assert.Equal(t, []Layer{solid, character}, m.Layers())
	assert.Equal(t, "{1,8}", m.String())
	assert.Equal(t, AllLayers, m.Union(AllLayers))
}
