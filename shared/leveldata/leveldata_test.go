package leveldata

import (
	"image/color"
	"os"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eman41/red-headband-prototype/shared/aabb"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/platform"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
)

const smallCSV = `Small,128,96,0,12;34;56
0,2,Tile,0,Tile 1
1,2,Tile,90,Tile 2
2,2,Spikes,0,Spikes
0,1,Player,0,
3,0,Ladder,0,Ladder
3,1,ladder,0,Ladder
`

func TestParseCSV(t *testing.T) {
	level, err := ParseCSV("small", strings.NewReader(smallCSV))
	require.NoError(t, err)

	assert.Equal(t, "Small", level.Name)
	assert.Equal(t, 4, level.Width)
	assert.Equal(t, 3, level.Height)
	assert.Equal(t, color.RGBA{R: 12, G: 34, B: 56, A: 255}, level.Background)
	require.Len(t, level.Tiles, 6)
	assert.Equal(t, tilemap.Placement{X: 1, Y: 2, Type: tilemap.TypeTile, Rotation: 90, Sprite: "Tile 2"}, level.Tiles[1])
	assert.Equal(t, tilemap.TypePlayer, level.Tiles[3].Type)
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "missing header"},
		{"short header", "a,32,32\n", "line 1"},
		{"bad colour", "a,32,32,0,1;2\n", "colour"},
		{"bad width", "a,wide,32,0,1;2;3\n", "width"},
		{"short row", "a,64,64,0,1;2;3\n0,0,Tile\n", "line 2"},
		{"bad coordinate", "a,64,64,0,1;2;3\n0,0,Tile,0,x\nq,1,Tile,0,x\n", "line 3"},
		{"out of range", "a,64,64,0,1;2;3\n2,0,Tile,0,x\n", "out of bounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV("bad", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseCSVOutOfRangeIsSentinel(t *testing.T) {
	_, err := ParseCSV("bad", strings.NewReader("a,64,64,0,1;2;3\n0,5,Tile,0,x\n"))
	assert.ErrorIs(t, err, tilemap.ErrOutOfBounds)
}

func TestParseScriptYAML(t *testing.T) {
	s, err := ParseScriptYAML([]byte(`
gravity: 6
cameraHolds: [59, 90]
platforms:
  - start: [26, 22]
    stop: [36, 22]
    speed: -5
    hold: 1s
    width: 128
    height: 20
  - start: [13, 6]
    stop: [27, 6]
    speed: 8
    hold: 1s
    width: 32
    height: 64
    lethal:
      sensor: [13, 7]
      bias: [20, 20]
      facing: [radial]
      kill: [left, right]
`))
	require.NoError(t, err)

	assert.Equal(t, 6.0, s.Gravity)
	assert.Equal(t, []int{59, 90}, s.CameraHolds)
	require.Len(t, s.Platforms, 2)
	assert.Equal(t, PlatformSpec{
		Start: [2]float64{26, 22}, Stop: [2]float64{36, 22},
		Speed: -5, Hold: time.Second, Width: 128, Height: 20,
	}, s.Platforms[0])
	require.NotNil(t, s.Platforms[1].Lethal)
	assert.Equal(t, [2]int{20, 20}, s.Platforms[1].Lethal.Bias)
	assert.Equal(t, []string{"left", "right"}, s.Platforms[1].Lethal.Kill)
}

func TestRunScriptTengo(t *testing.T) {
	s, err := RunScriptTengo([]byte(`
camera_hold(59)
camera_hold(90)
gravity(7.5)

platform({start: [26, 22], stop: [36, 22], speed: -5, hold: "1s"})
platform({start: [103, 24], stop: [103, 8], speed: -5, hold: 3, one_time: true})

for i := 0; i < 2; i++ {
	kill_platform({
		start: [13, 6 + i*5], stop: [27, 6 + i*5], speed: 8, hold: 1,
		width: 32, height: 64,
		sensor: [13, 7 + i*5], bias: [20, 20], facing: ["radial"], kill: "left,right"})
}
`))
	require.NoError(t, err)

	assert.Equal(t, []int{59, 90}, s.CameraHolds)
	assert.Equal(t, 7.5, s.Gravity)
	require.Len(t, s.Platforms, 4)

	assert.Equal(t, PlatformSpec{
		Start: [2]float64{26, 22}, Stop: [2]float64{36, 22},
		Speed: -5, Hold: time.Second, Width: 128, Height: 20,
	}, s.Platforms[0])
	assert.True(t, s.Platforms[1].OneTime)
	assert.Equal(t, 3*time.Second, s.Platforms[1].Hold)

	killer := s.Platforms[3]
	require.NotNil(t, killer.Lethal)
	assert.Equal(t, [2]float64{13, 11}, killer.Start)
	assert.Equal(t, [2]int{13, 12}, killer.Lethal.Sensor)
	assert.Equal(t, []string{"radial"}, killer.Lethal.Facing)
	assert.Equal(t, []string{"left", "right"}, killer.Lethal.Kill)
}

func TestRunScriptTengoErrors(t *testing.T) {
	_, err := RunScriptTengo([]byte(`platform(3)`))
	assert.Error(t, err)

	_, err = RunScriptTengo([]byte(`platform({start: [1]})`))
	assert.Error(t, err)

	_, err = RunScriptTengo([]byte(`camera_hold(`))
	assert.Error(t, err)
}

func TestLoadDispatchesAndMergesScript(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/small.csv":   {Data: []byte(smallCSV)},
		"levels/small.yaml":  {Data: []byte("gravity: 5\ncameraHolds: [3]\n")},
		"levels/other.csv":   {Data: []byte(smallCSV)},
		"levels/other.tengo": {Data: []byte(`platform({start: [0, 0], stop: [2, 0], speed: 2, hold: 1})`)},
		"levels/notes.txt":   {Data: []byte("hello")},
	}

	level, err := Load(fsys, "levels/small.csv")
	require.NoError(t, err)
	assert.Equal(t, 5.0, level.Script.Gravity)
	assert.Equal(t, []int{3}, level.Script.CameraHolds)

	level, err = Load(fsys, "levels/other.csv")
	require.NoError(t, err)
	assert.Len(t, level.Script.Platforms, 1)

	_, err = Load(fsys, "levels/notes.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(fsys, "levels/missing.csv")
	assert.Error(t, err)

	paths, err := List(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"levels/other.csv", "levels/small.csv"}, paths)
}

func TestBuildMap(t *testing.T) {
	level, err := ParseCSV("small", strings.NewReader(smallCSV))
	require.NoError(t, err)
	level.Script = Script{
		Gravity:     6,
		CameraHolds: []int{2},
		Platforms: []PlatformSpec{
			{Start: [2]float64{0, 0}, Stop: [2]float64{2, 0}, Speed: 2, Hold: time.Second, Width: 64, Height: 16},
			{
				Start: [2]float64{1, 0}, Stop: [2]float64{1, 1}, Speed: 2, Hold: time.Second, Width: 32, Height: 32,
				Lethal: &LethalSpec{Sensor: [2]int{1, 1}, Bias: [2]int{2, 2}, Facing: []string{"down"}, Kill: []string{"top"}},
			},
		},
	}

	m, err := level.BuildMap()
	require.NoError(t, err)

	assert.Equal(t, 6.0, m.Gravity)
	assert.Equal(t, []int{2}, m.CameraHolds)
	assert.Equal(t, level.Background, m.Background)
	assert.Equal(t, gamemath.Vec2{X: 0, Y: 32}, m.PlayerStart)
	assert.Equal(t, []aabb.Rect{aabb.NewRect(96, 0, 32, 64)}, m.Ladders)
	assert.Equal(t, []aabb.Rect{aabb.NewRect(64, 64, 32, 32)}, m.KillRects)

	require.Len(t, m.Platforms, 2)
	_, lethal := m.Platforms[0].AsLethal()
	assert.False(t, lethal)
	l, ok := m.Platforms[1].AsLethal()
	require.True(t, ok)
	assert.Equal(t, aabb.FromTop, l.KillMask)
	assert.Equal(t, platform.FacingDown, l.Sensor.Facing)
	assert.Equal(t, aabb.NewRect(32, 0, 32, 32), m.Platforms[1].Bounds())
}

func TestLoadTMX(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "tower.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tower", level.Name)
	assert.Equal(t, 4, level.Width)
	assert.Equal(t, 3, level.Height)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, level.Background)
	assert.Equal(t, 6.0, level.Script.Gravity)

	m, err := level.BuildMap()
	require.NoError(t, err)
	assert.Equal(t, []aabb.Rect{aabb.NewRect(32, 0, 32, 64)}, m.Ladders)
	assert.Equal(t, []aabb.Rect{aabb.NewRect(96, 32, 32, 32)}, m.KillRects)
	assert.Equal(t, gamemath.Vec2{X: 0, Y: 32}, m.PlayerStart)
	for x := 0; x < 4; x++ {
		assert.True(t, m.Tiles[2][x].Collidable())
	}

	require.Len(t, level.Script.Platforms, 1)
	spec := level.Script.Platforms[0]
	assert.Equal(t, [2]float64{2, 0}, spec.Start)
	assert.Equal(t, [2]float64{2, 1}, spec.Stop)
	assert.Equal(t, 1500*time.Millisecond, spec.Hold)
	assert.True(t, spec.OneTime)
	require.NotNil(t, spec.Lethal)
	assert.Equal(t, []string{"left", "right"}, spec.Lethal.Kill)
	assert.Equal(t, []string{"radial"}, spec.Lethal.Facing)
}
