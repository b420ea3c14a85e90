package controller

import (
	"errors"
	"fmt"

	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/world"
)

// maxEscapePasses bounds how often ForceOut re-walks the sample points. Each
// pass starts from the correction left by the previous one.
const maxEscapePasses = 8

// ForceOut returns the translation that pushes every sample point out of the
// obstacles it overlaps once applied has been added to it. Each overlapping
// point walks away from center in EscapeStep increments until it leaves the
// obstacle, then is checked again against whatever it landed in.
//
// Moving one point can push another back in, so the points are re-checked
// until a full pass finds none inside. From the second pass on, a point may
// also escape along either axis of its outward direction; the escape that
// leaves the fewest points inside wins.
//
// Points sitting on center have no escape direction and are skipped with
// ErrDegenerateDirection. Points still inside after maxEscapePasses, each
// allowed MaxEscapeSteps per escape, yield ErrUnresolvablePenetration; the
// correction found so far is still returned.
func ForceOut(q SpatialQuery, points []gamemath.Vec2, center, applied gamemath.Vec2, s Settings) (gamemath.Vec2, error) {
	var (
		correction gamemath.Vec2
		errs       []error
	)

	outward := make([]gamemath.Vec2, len(points))
	degenerate := make([]bool, len(points))
	for i, p := range points {
		u, ok := center.Sub(p).Unit()
		outward[i], degenerate[i] = u, !ok
	}
	reported := make([]bool, len(points))

	inside := func(i int, c gamemath.Vec2) (*world.Body, bool) {
		return q.OverlapPoint(points[i].Add(applied).Add(c), s.ObstacleLayers)
	}
	countInside := func(c gamemath.Vec2) int {
		n := 0
		for i := range points {
			if degenerate[i] {
				continue
			}
			if _, ok := inside(i, c); ok {
				n++
			}
		}
		return n
	}

	for pass := 0; pass < maxEscapePasses; pass++ {
		settled := true
		for i := range points {
			body, ok := inside(i, correction)
			if !ok {
				continue
			}
			if degenerate[i] {
				if !reported[i] {
					reported[i] = true
					errs = append(errs, fmt.Errorf("sample point %d at %v: %w", i, points[i], ErrDegenerateDirection))
				}
				continue
			}
			settled = false

			start := points[i].Add(applied).Add(correction)
			dirs := []gamemath.Vec2{outward[i]}
			if pass > 0 {
				dirs = append(dirs, axisDirections(outward[i])...)
			}

			var (
				best      gamemath.Vec2
				bestCount = -1
			)
			for _, dir := range dirs {
				delta, escaped := escapeAlong(q, body, start, dir, s)
				if !escaped {
					continue
				}
				n := countInside(correction.Add(delta))
				if bestCount < 0 || n < bestCount || (n == bestCount && delta.Length() < best.Length()) {
					best, bestCount = delta, n
				}
			}
			if bestCount < 0 {
				// Best effort along the outward direction.
				best, _ = escapeAlong(q, body, start, outward[i], s)
			}
			correction = correction.Add(best)
		}
		if settled {
			return correction, errors.Join(errs...)
		}
	}

	for i := range points {
		if degenerate[i] {
			continue
		}
		if body, ok := inside(i, correction); ok {
			errs = append(errs, fmt.Errorf("sample point %d still inside body %d after %d passes: %w",
				i, body.ID, maxEscapePasses, ErrUnresolvablePenetration))
		}
	}
	return correction, errors.Join(errs...)
}

// escapeAlong steps start along dir until it is outside every obstacle or the
// step budget runs out. It reports the distance walked and whether it got out.
func escapeAlong(q SpatialQuery, body *world.Body, start, dir gamemath.Vec2, s Settings) (gamemath.Vec2, bool) {
	step := dir.Scale(s.EscapeStep)
	candidate := start
	steps := 0
	ok := true
	for ok && steps < s.MaxEscapeSteps {
		moved := false
		for steps < s.MaxEscapeSteps && q.ClosestPoint(body, candidate).ApproxEqual(candidate) {
			candidate = candidate.Add(step)
			steps++
			moved = true
		}
		body, ok = q.OverlapPoint(candidate, s.ObstacleLayers)
		if ok && !moved {
			break
		}
	}
	return candidate.Sub(start), !ok
}

// axisDirections splits dir into its non-zero axis-aligned unit parts.
func axisDirections(dir gamemath.Vec2) []gamemath.Vec2 {
	var out []gamemath.Vec2
	if dir.Y != 0 {
		out = append(out, gamemath.V(0, gamemath.Sign(dir.Y)))
	}
	if dir.X != 0 {
		out = append(out, gamemath.V(gamemath.Sign(dir.X), 0))
	}
	return out
}
