// Package world is the spatial query service the controller runs against: a
// set of bodies on collision layers, indexed by a resolv.Space and queried
// with rays and points.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/automoto/tilemap-controller/tags"
	"github.com/solarlune/resolv"
	"go.uber.org/zap"
)

// cellPixels is the resolv cell size in space units. World coordinates are
// scaled so that one cell covers Config.CellSize world units.
const cellPixels = 16

// Config describes the region indexed by the world.
type Config struct {
	Bounds   gamemath.Rect
	CellSize float64
}

// ErrOutOfBounds is returned when a body is added outside Config.Bounds.
var ErrOutOfBounds = errors.New("body outside world bounds")

// World owns every body that can be hit by a query. The resolv space only
// covers Config.Bounds: Add rejects bodies outside it, and the parts of a body
// later moved past the bounds are invisible to queries.
type World struct {
	space  *resolv.Space
	bounds gamemath.Rect
	unit   float64
	nextID uint64
	count  int
	logger *zap.Logger
}

// New builds an empty world. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) (*World, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Bounds.Empty() || cfg.Bounds.Width() == 0 || cfg.Bounds.Height() == 0 {
		return nil, errors.New("world bounds are empty")
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %v", cfg.CellSize)
	}

	cellsX := int(math.Ceil(cfg.Bounds.Width() / cfg.CellSize))
	cellsY := int(math.Ceil(cfg.Bounds.Height() / cfg.CellSize))

	return &World{
		space:  resolv.NewSpace(cellsX*cellPixels, cellsY*cellPixels, cellPixels, cellPixels),
		bounds: cfg.Bounds,
		unit:   cellPixels / cfg.CellSize,
		logger: logger,
	}, nil
}

// Bounds returns the indexed region.
func (w *World) Bounds() gamemath.Rect {
	return w.bounds
}

// Len returns the number of bodies currently in the world, enabled or not.
func (w *World) Len() int {
	return w.count
}

// Add places shape at origin, offset by local, on the given layer. The body is
// enabled.
func (w *World) Add(shape shapes.Shape, local shapes.Transform, layer Layer, origin gamemath.Vec2) (*Body, error) {
	if err := shapes.Validate(shape); err != nil {
		return nil, fmt.Errorf("add body: %w", err)
	}
	if layer >= MaxLayers {
		return nil, fmt.Errorf("add body: layer %d out of range", layer)
	}

	if bounds := shapes.Bounds(shape, local.Translated(origin)); !w.inBounds(bounds) {
		return nil, fmt.Errorf("add %s body at %v: %w", shape.Kind(), bounds, ErrOutOfBounds)
	}

	w.nextID++
	b := &Body{
		ID:      w.nextID,
		Shape:   shape,
		Local:   local,
		Layer:   layer,
		origin:  origin,
		world:   w,
		enabled: true,
	}
	b.object = resolv.NewObject(0, 0, 1, 1, tags.ResolvBody)
	b.object.Data = b
	w.syncObject(b)
	w.space.Add(b.object)
	w.count++

	w.logger.Debug("body added",
		zap.Uint64("body", b.ID),
		zap.Stringer("kind", shape.Kind()),
		zap.Uint8("layer", uint8(layer)))

	return b, nil
}

// Remove takes b out of the world permanently.
func (w *World) Remove(b *Body) {
	if b == nil || b.world != w {
		return
	}
	if b.enabled {
		w.space.Remove(b.object)
	}
	b.enabled = false
	b.world = nil
	w.count--
}

func (w *World) inBounds(r gamemath.Rect) bool {
	return r.Min.X >= w.bounds.Min.X && r.Min.Y >= w.bounds.Min.Y &&
		r.Max.X <= w.bounds.Max.X && r.Max.Y <= w.bounds.Max.Y
}

func (w *World) toSpace(p gamemath.Vec2) gamemath.Vec2 {
	return p.Sub(w.bounds.Min).Scale(w.unit)
}

// spaceRect converts a world rect to resolv space, padded by one space unit on
// every side so touching edges land in the same cells.
func (w *World) spaceRect(r gamemath.Rect) (x, y, width, height float64) {
	lo := w.toSpace(r.Min)
	hi := w.toSpace(r.Max)
	return lo.X - 1, lo.Y - 1, hi.X - lo.X + 2, hi.Y - lo.Y + 2
}

func (w *World) syncObject(b *Body) {
	x, y, width, height := w.spaceRect(b.Bounds())
	b.object.X, b.object.Y = x, y
	b.object.W, b.object.H = width, height
}

// candidates returns the bodies whose cells overlap r.
func (w *World) candidates(r gamemath.Rect) []*Body {
	x, y, width, height := w.spaceRect(r)
	probe := resolv.NewObject(x, y, width, height, tags.ResolvProbe)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvBody)
	if check == nil {
		return nil
	}

	bodies := make([]*Body, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if b, ok := obj.Data.(*Body); ok && b.enabled {
			bodies = append(bodies, b)
		}
	}
	return bodies
}
