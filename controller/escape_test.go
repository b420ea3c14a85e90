package controller

import (
	"errors"
	"testing"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceOutPushesPointsClear(t *testing.T) {
	w := newTestWorld(t)
	addSolid(t, w, shapes.NewRect(0.3, -2, 2, 4))

	s := testSettings()
	points := squareCorners(gamemath.Vec2{})
	correction, err := ForceOut(w, points, gamemath.Vec2{}, gamemath.Vec2{}, s)
	require.NoError(t, err)

	assert.Less(t, correction.X, 0.0)
	for _, p := range points {
		_, inside := w.OverlapPoint(p.Add(correction), s.ObstacleLayers)
		assert.False(t, inside, "point %v still inside", p)
	}
}

func TestForceOutAccountsForAppliedDisplacement(t *testing.T) {
	w := newTestWorld(t)
	addSolid(t, w, shapes.NewRect(1.3, -2, 2, 4))

	s := testSettings()
	points := squareCorners(gamemath.Vec2{})
	applied := gamemath.V(1, 0)

	correction, err := ForceOut(w, points, gamemath.Vec2{}, applied, s)
	require.NoError(t, err)
	assert.Less(t, correction.X, 0.0)
	for _, p := range points {
		_, inside := w.OverlapPoint(p.Add(applied).Add(correction), s.ObstacleLayers)
		assert.False(t, inside)
	}
}

func TestForceOutLeavesClearPointsAlone(t *testing.T) {
	w := newTestWorld(t)
	addSolid(t, w, shapes.NewRect(5, 5, 1, 1))

	correction, err := ForceOut(w, squareCorners(gamemath.Vec2{}), gamemath.Vec2{}, gamemath.V(1, 1), testSettings())
	require.NoError(t, err)
	assert.Equal(t, gamemath.Vec2{}, correction)
}

func TestForceOutIsBounded(t *testing.T) {
	w := newTestWorld(t)
	addSolid(t, w, shapes.NewRect(-10, -10, 20, 20))

	s := testSettings()
	s.MaxEscapeSteps = 5

	correction, err := ForceOut(w, squareCorners(gamemath.V(3, 0)), gamemath.V(-5, 0), gamemath.Vec2{}, s)
	assert.ErrorIs(t, err, ErrUnresolvablePenetration)
	assert.Less(t, correction.X, 0.0, "best effort correction is still reported")
}

func TestForceOutSkipsDegenerateDirection(t *testing.T) {
	w := newTestWorld(t)
	addSolid(t, w, shapes.NewRect(-1, -1, 2, 2))

	center := gamemath.V(0.25, 0.25)
	correction, err := ForceOut(w, []gamemath.Vec2{center}, center, gamemath.Vec2{}, testSettings())
	assert.ErrorIs(t, err, ErrDegenerateDirection)
	assert.False(t, errors.Is(err, ErrUnresolvablePenetration))
	assert.Equal(t, gamemath.Vec2{}, correction)
}

func assertPointsClear(t *testing.T, q SpatialQuery, points []gamemath.Vec2, offset gamemath.Vec2, s Settings) {
	t.Helper()
	for i, p := range points {
		body, inside := q.OverlapPoint(p.Add(offset), s.ObstacleLayers)
		if inside {
			assert.Fail(t, "point still inside obstacle", "point %d at %v inside body %d", i, p.Add(offset), body.ID)
		}
	}
}

func TestForceOutRechecksPointsPushedBackIn(t *testing.T) {
	w := newTestWorld(t)
	// Floor top at y=-0.4 and an overhang whose left face is at x=0.58. The
	// diagonal escape out of the floor lands the top right corner in the
	// overhang, and escaping that pushes the bottom corners back down.
	addSolid(t, w, shapes.NewRect(-10, -10, 20, 9.6))
	addSolid(t, w, shapes.NewRect(0.58, 0.3, 10, 9))

	s := testSettings()
	points := squareCorners(gamemath.Vec2{})
	correction, err := ForceOut(w, points, gamemath.Vec2{}, gamemath.Vec2{}, s)
	require.NoError(t, err)

	assert.Greater(t, correction.Y, 0.1)
	assertPointsClear(t, w, points, correction, s)
}

func TestForceOutCornerPocket(t *testing.T) {
	w := newTestWorld(t)
	addSolid(t, w, shapes.NewRect(-10, -10, 20, 9.6))  // floor, top at y=-0.4
	addSolid(t, w, shapes.NewRect(-10, -10, 9.55, 20)) // wall, right face at x=-0.45

	s := testSettings()
	points := squareCorners(gamemath.Vec2{})
	correction, err := ForceOut(w, points, gamemath.Vec2{}, gamemath.Vec2{}, s)
	require.NoError(t, err)

	assert.Greater(t, correction.X, 0.0)
	assert.Greater(t, correction.Y, 0.0)
	assertPointsClear(t, w, points, correction, s)
}
