// Package controller moves a kinematic character through a world of
// obstacles. Motion is checked by raycasting from points on the character's
// own boundary, clamped per axis so the character slides along walls, and
// finally corrected so no boundary point is left inside an obstacle.
package controller

import (
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/timing"
	"go.uber.org/zap"
)

// State is the controller's position in a movement call.
type State int

const (
	Idle State = iota
	Resolving
)

func (s State) String() string {
	if s == Resolving {
		return "Resolving"
	}
	return "Idle"
}

// Controller moves one character. Calls are serialised by an internal lock,
// so a controller may be driven from any goroutine, one call at a time.
type Controller struct {
	mu sync.Mutex

	character Character
	query     SpatialQuery
	timer     FrameTimer
	settings  Settings
	logger    *zap.Logger

	state     State
	velocity  gamemath.Vec2
	lastFlags CollisionFlags
}

type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFrameTimer sets the frame timer used by Move and SimpleMove. The default
// is a fixed 60 ticks per second.
func WithFrameTimer(timer FrameTimer) Option {
	return func(c *Controller) {
		if timer != nil {
			c.timer = timer
		}
	}
}

// New returns a controller for character querying q.
func New(character Character, q SpatialQuery, settings Settings, opts ...Option) (*Controller, error) {
	if character == nil || q == nil {
		return nil, errors.New("controller needs a character and a spatial query")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("controller settings: %w", err)
	}

	c := &Controller{
		character: character,
		query:     q,
		timer:     timing.FromTPS(60),
		settings:  settings,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Move attempts to move the character by intended, sliding along whatever
// blocks it, and reports which sides were blocked.
//
// A zero intended displacement on a frame with elapsed time does nothing. On
// ErrUnresolvablePenetration the character has still been moved to its
// best-effort position and the flags are valid.
func (c *Controller) Move(intended gamemath.Vec2) (CollisionFlags, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if intended.IsZero() && c.timer.DeltaTime() > 0 {
		c.velocity = gamemath.Vec2{}
		c.lastFlags = None
		return None, nil
	}

	c.state = Resolving
	defer func() { c.state = Idle }()

	start := c.character.Position()
	points, err := shapes.SampleAll(c.character.Shapes())
	if err != nil {
		return None, fmt.Errorf("sample character: %w", err)
	}

	applied, flags := Resolve(c.query, points, intended, c.settings)

	correction, escapeErr := ForceOut(c.query, points, start, applied, c.settings)
	c.character.Translate(applied.Add(correction))

	c.velocity = c.character.Position().Sub(start)
	c.lastFlags = flags

	if escapeErr != nil {
		if errors.Is(escapeErr, ErrUnresolvablePenetration) {
			c.logger.Warn("character left inside obstacle",
				zap.Any("position", c.character.Position()),
				zap.Error(escapeErr))
			return flags, escapeErr
		}
		c.logger.Debug("skipped escape for sample points", zap.Error(escapeErr))
	}

	return flags, nil
}

// SimpleMove moves the character at speed units per second for the current
// frame. It always reports the character as grounded; the controller has no
// falling state.
func (c *Controller) SimpleMove(speed gamemath.Vec2) (bool, error) {
	dt := c.timer.DeltaTime()
	_, err := c.Move(speed.Scale(dt.Seconds()))
	return true, err
}

// DisableCollisions hides the character's own shapes from spatial queries.
func (c *Controller) DisableCollisions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.character.SetCollisionsEnabled(false)
}

// EnableCollisions makes the character's own shapes visible to spatial
// queries again.
func (c *Controller) EnableCollisions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.character.SetCollisionsEnabled(true)
}

// Velocity is the position change produced by the last movement call.
func (c *Controller) Velocity() gamemath.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.velocity
}

// LastFlags are the flags returned by the last movement call.
func (c *Controller) LastFlags() CollisionFlags {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFlags
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// SetSettings replaces the tunables for subsequent calls.
func (c *Controller) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = s
	return nil
}

// SetSlideRecalculation toggles slide-distance refinement.
func (c *Controller) SetSlideRecalculation(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.SlideRecalculation = enabled
}
