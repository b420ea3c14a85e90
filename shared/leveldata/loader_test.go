package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/tilemap-controller/shapes"
	"github.com/automoto/tilemap-controller/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="6">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="walls.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="Collision" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,0
</data>
 </layer>
 <objectgroup id="2" name="Obstacles">
  <object id="1" x="32" y="0" width="16" height="16">
   <properties>
    <property name="layer" value="platform"/>
   </properties>
  </object>
  <object id="2" x="48" y="16">
   <polygon points="0,0 16,0 16,16"/>
  </object>
  <object id="3" x="0" y="0" width="16" height="16">
   <ellipse/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Movers">
  <object id="4" x="0" y="16" width="16" height="8">
   <properties>
    <property name="dy" type="float" value="-16"/>
    <property name="duration" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="CharacterSpawn">
  <object id="5" x="24" y="24">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func testOptions() Options {
	return Options{PixelsPerUnit: 16, DefaultLayer: "solid", CircleSegments: 8}
}

func loadTestLevel(t *testing.T) *Level {
	t.Helper()
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}
	level, err := LoadLevel(fsys, "levels/test.tmx", testOptions())
	require.NoError(t, err)
	return level
}

func TestLoadLevelDimensions(t *testing.T) {
	level := loadTestLevel(t)

	assert.Equal(t, "test", level.Name)
	assert.InDelta(t, 4.0, level.Width, 1e-9)
	assert.InDelta(t, 3.0, level.Height, 1e-9)
}

func TestLoadLevelTiles(t *testing.T) {
	level := loadTestLevel(t)
	require.Len(t, level.Obstacles, 5)

	// Bottom row tiles end up on y = 0 after the flip
	for i, x := range []float64{0, 1} {
		o := level.Obstacles[i]
		assert.Equal(t, "solid", o.Layer)
		assert.Equal(t, gamemath.V(x, 0), o.Transform.Position)
		bounds := shapes.Bounds(o.Shape, o.Transform)
		assert.InDelta(t, x, bounds.Min.X, 1e-9)
		assert.InDelta(t, x+1, bounds.Max.X, 1e-9)
		assert.InDelta(t, 0, bounds.Min.Y, 1e-9)
		assert.InDelta(t, 1, bounds.Max.Y, 1e-9)
	}
}

func TestLoadLevelObjects(t *testing.T) {
	level := loadTestLevel(t)
	require.Len(t, level.Obstacles, 5)

	rect := level.Obstacles[2]
	assert.Equal(t, "platform", rect.Layer)
	bounds := shapes.Bounds(rect.Shape, rect.Transform)
	assert.InDelta(t, 2, bounds.Min.X, 1e-9)
	assert.InDelta(t, 2, bounds.Min.Y, 1e-9)
	assert.InDelta(t, 3, bounds.Max.X, 1e-9)
	assert.InDelta(t, 3, bounds.Max.Y, 1e-9)

	poly := level.Obstacles[3]
	assert.Equal(t, "solid", poly.Layer)
	points, err := shapes.Sample(poly.Shape, poly.Transform)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.True(t, points[0].ApproxEqual(gamemath.V(3, 2)))
	assert.True(t, points[1].ApproxEqual(gamemath.V(4, 2)))
	assert.True(t, points[2].ApproxEqual(gamemath.V(4, 1)))

	circle, ok := level.Obstacles[4].Shape.(shapes.Circle)
	require.True(t, ok)
	assert.InDelta(t, 0.5, circle.Radius, 1e-9)
	assert.Equal(t, 8, circle.Segments)
	assert.True(t, level.Obstacles[4].Transform.Apply(circle.Center).ApproxEqual(gamemath.V(0.5, 2.5)))
}

func TestLoadLevelMoversAndSpawns(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.Movers, 1)
	m := level.Movers[0]
	assert.True(t, m.Offset.ApproxEqual(gamemath.V(0, 1)))
	assert.InDelta(t, 1.0, m.Duration, 1e-9)
	assert.Equal(t, gamemath.V(0, 2), m.Transform.Position)

	require.Len(t, level.Spawns, 1)
	assert.Equal(t, 0, level.Spawns[0].Index)
	assert.True(t, level.Spawns[0].Position.ApproxEqual(gamemath.V(1.5, 1.5)))
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	_, err := LoadLevel(fsys, "levels/missing.tmx", testOptions())
	assert.Error(t, err)

	_, err = LoadLevel(fsys, "levels/test.tmx", Options{})
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels", testOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels", testOptions())
	assert.Error(t, err)
}
