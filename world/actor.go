package world

import (
	"fmt"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
)

// Actor is a character rig: a position with one body per attached shape, all
// on the character's own layer. It moves its bodies along with it.
type Actor struct {
	world    *World
	position gamemath.Vec2
	bodies   []*Body
	enabled  bool
}

// NewActor attaches parts to a new actor at position.
func (w *World) NewActor(position gamemath.Vec2, parts []shapes.Placed, layer Layer) (*Actor, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("new actor: %w", shapes.ErrEmptyShape)
	}

	a := &Actor{world: w, position: position, enabled: true}
	for i, part := range parts {
		b, err := w.Add(part.Shape, part.Transform, layer, position)
		if err != nil {
			a.Remove()
			return nil, fmt.Errorf("new actor part %d: %w", i, err)
		}
		b.Data = a
		a.bodies = append(a.bodies, b)
	}
	return a, nil
}

func (a *Actor) Position() gamemath.Vec2 {
	return a.position
}

// Translate moves the actor and its bodies by delta in world space.
func (a *Actor) Translate(delta gamemath.Vec2) {
	if delta.IsZero() {
		return
	}
	a.position = a.position.Add(delta)
	for _, b := range a.bodies {
		b.SetOrigin(a.position)
	}
}

// Teleport places the actor at p.
func (a *Actor) Teleport(p gamemath.Vec2) {
	a.Translate(p.Sub(a.position))
}

// Shapes returns the attached shapes at their current world placement.
func (a *Actor) Shapes() []shapes.Placed {
	out := make([]shapes.Placed, len(a.bodies))
	for i, b := range a.bodies {
		out[i] = shapes.Placed{Shape: b.Shape, Transform: b.Transform()}
	}
	return out
}

// Bodies returns the actor's bodies.
func (a *Actor) Bodies() []*Body {
	return a.bodies
}

// SetCollisionsEnabled toggles whether the actor's bodies are visible to
// queries.
func (a *Actor) SetCollisionsEnabled(enabled bool) {
	a.enabled = enabled
	for _, b := range a.bodies {
		b.SetEnabled(enabled)
	}
}

func (a *Actor) CollisionsEnabled() bool {
	return a.enabled
}

// Remove detaches every body from the world.
func (a *Actor) Remove() {
	for _, b := range a.bodies {
		a.world.Remove(b)
	}
	a.bodies = nil
}
