// Package assets embeds the bundled demo levels.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelOptions converts level files using the current config globals.
func LevelOptions() leveldata.Options {
	return leveldata.Options{
		PixelsPerUnit:  config.World.PixelsPerUnit,
		DefaultLayer:   config.Layers.Default,
		CircleSegments: config.Shapes.CircleSegments,
	}
}

// LoadLevels loads every embedded level, keyed by name, plus the sorted names.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, "levels", LevelOptions())
}

// LoadLevel loads the embedded level with the given name.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.LoadLevel(assetFS, "levels/"+name+".tmx", LevelOptions())
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return level, nil
}
