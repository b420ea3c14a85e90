package assets

import (
	"testing"

	"github.com/automoto/tilemap-controller/config"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels(t *testing.T) {
	config.Reset()

	levels, names, err := LoadLevels()
	require.NoError(t, err)
	assert.Contains(t, names, "corridor")
	assert.Len(t, levels, len(names))
}

func TestLoadCorridor(t *testing.T) {
	config.Reset()

	level, err := LoadLevel("corridor")
	require.NoError(t, err)

	assert.InDelta(t, 20.0, level.Width, 1e-9)
	assert.InDelta(t, 8.0, level.Height, 1e-9)
	require.Len(t, level.Spawns, 1)
	assert.True(t, level.Spawns[0].Position.ApproxEqual(gamemath.V(3, 2)))
	require.Len(t, level.Movers, 1)
	assert.True(t, level.Movers[0].Offset.ApproxEqual(gamemath.V(0, 1)))

	// 20 floor tiles, 7 left wall tiles, 4 right wall tiles and 3 objects
	assert.Len(t, level.Obstacles, 34)

	_, err = LoadLevel("missing")
	assert.Error(t, err)
}
