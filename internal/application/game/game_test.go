package game

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/apputils/internal/application/manager"
	"github.com/younwookim/apputils/internal/application/scene"
	"github.com/younwookim/apputils/internal/application/system"
	"github.com/younwookim/apputils/internal/domain/geom"
	"github.com/younwookim/apputils/internal/domain/timer"
	"github.com/younwookim/apputils/internal/domain/warp"
	"github.com/younwookim/apputils/internal/infrastructure/config"
)

// scriptedInput replays a fixed list of frames and then reports done.
type scriptedInput struct {
	frames []system.InputState
	next   int
}

func (s *scriptedInput) GetInput() (system.InputState, bool) {
	if s.next >= len(s.frames) {
		return system.InputState{}, false
	}
	in := s.frames[s.next]
	s.next++
	return in, true
}

func (s *scriptedInput) push(in ...system.InputState) {
	s.frames = append(s.frames, in...)
}

type testScene struct {
	scene.Base
	keys    []ebiten.Key
	presses [][2]float64
}

func (s *testScene) KeyPressed(key ebiten.Key) { s.keys = append(s.keys, key) }

func (s *testScene) PointerPressed(x, y float64) {
	s.presses = append(s.presses, [2]float64{x, y})
}

func (s *testScene) PointerDragged(x, y float64)  {}
func (s *testScene) PointerReleased(x, y float64) {}

type fixture struct {
	game   *Game
	input  *scriptedInput
	first  *testScene
	second *testScene
	reload chan struct{}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	cfg.Display.ScreenWidth = 640
	cfg.Display.ScreenHeight = 480
	cfg.Scenes.Start = "first"
	cfg.Warp.SettingsFile = filepath.Join(t.TempDir(), "quad.xml")

	m := manager.New(timer.NewManualClock(), nil)
	m.SetMinChangeInterval(0)
	f := &fixture{
		input:  &scriptedInput{},
		first:  &testScene{Base: scene.Base{SceneName: "first"}},
		second: &testScene{Base: scene.Base{SceneName: "second"}},
		reload: make(chan struct{}, 1),
	}
	require.True(t, m.Add(f.first))
	require.True(t, m.Add(f.second))

	f.game = New(Options{
		Config:  cfg,
		Manager: m,
		Input:   f.input,
		Reload:  f.reload,
	})
	require.True(t, f.game.Start())
	return f
}

func keys(k ...ebiten.Key) system.InputState {
	return system.InputState{Keys: k}
}

func TestGame_Start(t *testing.T) {
	f := newFixture(t)
	f.input.push(system.InputState{})

	require.NoError(t, f.game.Update())
	assert.Equal(t, "first", f.game.Manager().CurrentName())
}

func TestGame_TerminatesWhenInputEnds(t *testing.T) {
	f := newFixture(t)
	f.input.push(system.InputState{})

	assert.NoError(t, f.game.Update())
	assert.ErrorIs(t, f.game.Update(), ebiten.Termination)
}

func TestGame_Layout(t *testing.T) {
	f := newFixture(t)

	w, h := f.game.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGame_ForwardsKeysToScene(t *testing.T) {
	f := newFixture(t)
	f.input.push(system.InputState{}, keys(ebiten.KeySpace))

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	assert.Equal(t, []ebiten.Key{ebiten.KeySpace}, f.first.keys)
}

func TestGame_NextAndPrev(t *testing.T) {
	f := newFixture(t)
	f.input.push(
		system.InputState{},
		keys(KeyNext),
		system.InputState{},
		keys(KeyPrev),
		system.InputState{},
	)

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	assert.Equal(t, "second", f.game.Manager().CurrentName())

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	assert.Equal(t, "first", f.game.Manager().CurrentName())
}

func TestGame_NoneAndLast(t *testing.T) {
	f := newFixture(t)
	f.input.push(system.InputState{}, keys(KeyNone), system.InputState{}, keys(KeyLast), system.InputState{})

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	assert.Equal(t, manager.NoScene, f.game.Manager().CurrentIndex())

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	assert.Equal(t, "second", f.game.Manager().CurrentName())
}

func TestGame_ToggleKeys(t *testing.T) {
	f := newFixture(t)
	fullscreen := 0
	f.game.toggleFullscreen = func() { fullscreen++ }
	f.input.push(system.InputState{}, keys(KeyOverlap, KeyRun, KeyFullscreen))

	require.NoError(t, f.game.Update())
	require.True(t, f.game.Manager().IsRunning())
	require.NoError(t, f.game.Update())
	assert.True(t, f.game.Manager().Overlap())
	assert.False(t, f.game.Manager().IsRunning())
	assert.Equal(t, 1, fullscreen)
}

func TestGame_EditRequiresDebugAndWarp(t *testing.T) {
	f := newFixture(t)
	f.game.SetDebug(false)
	f.input.push(keys(KeyEditWarp), keys(KeyDebug), keys(KeyEditWarp))

	require.NoError(t, f.game.Update())
	assert.False(t, f.game.Editor().IsEditing())

	require.NoError(t, f.game.Update())
	assert.True(t, f.game.IsDebug())

	require.NoError(t, f.game.Update())
	assert.True(t, f.game.Editor().IsEditing())
}

func TestGame_DisablingWarpLeavesEditMode(t *testing.T) {
	f := newFixture(t)
	f.game.SetDebug(true)
	f.game.Editor().SetEditing(true)
	f.input.push(keys(KeyWarp))

	require.NoError(t, f.game.Update())
	assert.False(t, f.game.WarpEnabled())
	assert.False(t, f.game.Editor().IsEditing())
}

func TestGame_EditorConsumesPointer(t *testing.T) {
	f := newFixture(t)
	f.game.SetDebug(true)
	f.game.Editor().SetEditing(true)
	f.input.push(
		system.InputState{MouseX: 0, MouseY: 0, MousePressed: true, MouseDown: true},
		system.InputState{MouseX: 64, MouseY: 48, MouseDown: true},
		system.InputState{MouseX: 64, MouseY: 48, MouseReleased: true},
	)

	for range 3 {
		require.NoError(t, f.game.Update())
	}
	p := f.game.Warper().Point(warp.UpperLeft)
	assert.InDelta(t, 0.1, p.X, 1e-9)
	assert.InDelta(t, 0.1, p.Y, 1e-9)
	assert.Empty(t, f.first.presses)
	assert.Equal(t, -1, f.game.Editor().Selected())
}

func TestGame_PointerMappedToSurface(t *testing.T) {
	f := newFixture(t)
	f.game.Warper().SetPoint(warp.UpperLeft, geom.Point{X: 0.1, Y: 0.1})
	f.input.push(system.InputState{}, system.InputState{MouseX: 64, MouseY: 48, MousePressed: true})

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	require.Len(t, f.first.presses, 1)
	assert.InDelta(t, 0, f.first.presses[0][0], 1e-6)
	assert.InDelta(t, 0, f.first.presses[0][1], 1e-6)
}

func TestGame_ToSurfaceInvertsWarp(t *testing.T) {
	f := newFixture(t)
	w := f.game.Warper()
	w.SetPoint(warp.UpperRight, geom.Point{X: 0.9, Y: 0.05})
	w.SetPoint(warp.LowerLeft, geom.Point{X: 0.05, Y: 0.8})

	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 320, Y: 240}, {X: 100, Y: 400}} {
		x, y, ok := w.MapPoint(p.X, p.Y)
		require.True(t, ok)
		sx, sy := f.game.ToSurface(x, y)
		assert.InDelta(t, p.X, sx, 1e-6)
		assert.InDelta(t, p.Y, sy, 1e-6)
	}

	f.game.SetWarp(false)
	sx, sy := f.game.ToSurface(12, 34)
	assert.Equal(t, 12.0, sx)
	assert.Equal(t, 34.0, sy)
}

func TestGame_SaveAndReload(t *testing.T) {
	f := newFixture(t)
	f.game.Warper().SetPoint(warp.LowerRight, geom.Point{X: 0.7, Y: 0.6})
	f.input.push(keys(KeySaveWarp), system.InputState{})

	require.NoError(t, f.game.Update())

	f.game.Warper().Reset()
	f.reload <- struct{}{}
	require.NoError(t, f.game.Update())
	assert.Equal(t, geom.Point{X: 0.7, Y: 0.6}, f.game.Warper().Point(warp.LowerRight))
}

func TestGame_LoadMissingSettingsKeepsPoints(t *testing.T) {
	f := newFixture(t)
	f.game.Warper().SetPoint(warp.UpperLeft, geom.Point{X: 0.2, Y: 0.2})
	f.input.push(keys(KeyLoadWarp))

	require.NoError(t, f.game.Update())
	assert.Equal(t, geom.Point{X: 0.2, Y: 0.2}, f.game.Warper().Point(warp.UpperLeft))
}
