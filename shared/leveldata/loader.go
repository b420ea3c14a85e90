package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Names of the TMX layers and object groups read by the loader.
const (
	CollisionLayer = "Collision"
	ObstacleGroup  = "Obstacles"
	MoverGroup     = "Movers"
	SpawnGroup     = "CharacterSpawn"

	// defaultMoverDuration is the one-way travel time when a mover has none.
	defaultMoverDuration = 2.0
)

// LoadLevel parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	if opts.PixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixels per unit must be positive", tmxPath)
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	conv := converter{
		ppu:      opts.PixelsPerUnit,
		heightPx: float64(levelMap.Height * levelMap.TileHeight),
	}
	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width*levelMap.TileWidth) / conv.ppu,
		Height: conv.heightPx / conv.ppu,
	}

	// Solid tiles, one box each
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		collisionLayer := layer.Properties.GetString("layer")
		if collisionLayer == "" {
			collisionLayer = opts.DefaultLayer
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Obstacles = append(level.Obstacles, Obstacle{
					Shape:     shapes.NewRect(0, 0, tileW/conv.ppu, tileH/conv.ppu),
					Transform: shapes.Transform{Position: conv.point(float64(x)*tileW, float64(y+1)*tileH)},
					Layer:     collisionLayer,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case ObstacleGroup:
			for _, o := range og.Objects {
				obstacle, err := conv.obstacle(o, opts)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
				}
				level.Obstacles = append(level.Obstacles, obstacle)
			}

		case MoverGroup:
			for _, o := range og.Objects {
				obstacle, err := conv.obstacle(o, opts)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: mover %d: %w", tmxPath, o.ID, err)
				}
				duration := o.Properties.GetFloat("duration")
				if duration <= 0 {
					duration = defaultMoverDuration
				}
				level.Movers = append(level.Movers, Mover{
					Obstacle: obstacle,
					Offset:   conv.vector(o.Properties.GetFloat("dx"), o.Properties.GetFloat("dy")),
					Duration: duration,
				})
			}

		case SpawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					Position: conv.point(o.X, o.Y),
					Index:    o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns by index for consistent assignment
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})

	return level, nil
}

// LoadAllLevels loads every .tmx file in levelsDir, keyed by stem name, plus
// the sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts Options) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path, opts)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

type converter struct {
	ppu      float64
	heightPx float64
}

// point converts a Tiled pixel position to world space.
func (c converter) point(x, y float64) gamemath.Vec2 {
	return gamemath.V(x/c.ppu, (c.heightPx-y)/c.ppu)
}

// vector converts a Tiled pixel offset to world space.
func (c converter) vector(dx, dy float64) gamemath.Vec2 {
	return gamemath.V(dx/c.ppu, -dy/c.ppu)
}

// obstacle builds the shape for a Tiled object. Geometry is local to the
// object's origin, its top-left corner in Tiled, which is also the pivot for
// Tiled's clockwise rotation.
func (c converter) obstacle(o *tiled.Object, opts Options) (Obstacle, error) {
	layer := o.Properties.GetString("layer")
	if layer == "" {
		layer = opts.DefaultLayer
	}

	w, h := o.Width/c.ppu, o.Height/c.ppu
	xf := shapes.Transform{
		Position: c.point(o.X, o.Y),
		Rotation: -gamemath.DegToRad(o.Rotation),
	}

	var shape shapes.Shape
	switch {
	case len(o.Polygons) > 0:
		poly := o.Polygons[0]
		if poly.Points == nil || len(*poly.Points) < 3 {
			return Obstacle{}, fmt.Errorf("polygon needs at least 3 points")
		}
		points := make([]gamemath.Vec2, 0, len(*poly.Points))
		for _, pt := range *poly.Points {
			points = append(points, c.vector(pt.X, pt.Y))
		}
		shape = shapes.Polygon{Points: points}

	case len(o.Ellipses) > 0:
		if w <= 0 || h <= 0 {
			return Obstacle{}, fmt.Errorf("ellipse has no size")
		}
		shape = shapes.Circle{
			Center:   gamemath.V(w/2, -h/2),
			Radius:   (w + h) / 4,
			Segments: opts.CircleSegments,
		}

	default:
		if w <= 0 || h <= 0 {
			return Obstacle{}, fmt.Errorf("rectangle has no size")
		}
		shape = shapes.Box{Center: gamemath.V(w/2, -h/2), Width: w, Height: h}
	}

	return Obstacle{Shape: shape, Transform: xf, Layer: layer}, nil
}
