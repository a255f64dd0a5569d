// Package game provides the main loop that drives the scene manager, the
// quad warp and its editor.
package game

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/apputils/internal/application/manager"
	"github.com/younwookim/apputils/internal/application/system"
	"github.com/younwookim/apputils/internal/domain/homography"
	"github.com/younwookim/apputils/internal/domain/warp"
	"github.com/younwookim/apputils/internal/infrastructure/config"
	"github.com/younwookim/apputils/internal/infrastructure/render"
)

// Key bindings.
const (
	KeyDebug      = ebiten.KeyD
	KeyWarp       = ebiten.KeyQ
	KeyEditWarp   = ebiten.KeyE
	KeySaveWarp   = ebiten.KeyS
	KeyLoadWarp   = ebiten.KeyL
	KeyOverlap    = ebiten.KeyO
	KeyRun        = ebiten.KeyR
	KeyFullscreen = ebiten.KeyF
	KeyNext       = ebiten.KeyArrowRight
	KeyPrev       = ebiten.KeyArrowLeft
	KeyNone       = ebiten.KeyN
	KeyLast       = ebiten.KeyEnd
)

var colorRenderEdge = color.RGBA{255, 255, 255, 255}

// Options configures a Game.
type Options struct {
	Config  *config.AppConfig
	Manager *manager.Manager
	Input   system.InputSource
	Logger  *slog.Logger

	// Reload triggers a warp settings reload on the next Update.
	Reload <-chan struct{}
}

// Game implements ebiten.Game. Scenes draw into an offscreen surface that
// is presented through the quad warp.
type Game struct {
	cfg     *config.AppConfig
	logger  *slog.Logger
	manager *manager.Manager
	input   system.InputSource
	reload  <-chan struct{}

	stack  *render.MatrixStack
	warper *warp.Warper
	editor *warp.Editor
	mesh   *render.WarpMesh

	surface *ebiten.Image
	screenW int
	screenH int

	debug       bool
	warpEnabled bool

	toggleFullscreen func()
}

// New creates a Game. Config defaults to config.Default(); Manager and
// Input are required.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:         cfg,
		logger:      logger.With("component", "game"),
		manager:     opts.Manager,
		input:       opts.Input,
		reload:      opts.Reload,
		stack:       render.NewMatrixStack(logger),
		mesh:        render.NewWarpMesh(cfg.Warp.GridCols, cfg.Warp.GridRows),
		screenW:     cfg.Display.ScreenWidth,
		screenH:     cfg.Display.ScreenHeight,
		debug:       cfg.Debug,
		warpEnabled: cfg.Warp.Enabled,
		toggleFullscreen: func() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		},
	}

	g.warper = warp.New(g.stack, logger)
	g.warper.SetSize(float64(g.screenW), float64(g.screenH))
	g.editor = warp.NewEditor(g.warper, logger)
	g.editor.SetViewSize(float64(g.screenW), float64(g.screenH))

	return g
}

// Start goes to the configured start scene, or the first scene.
func (g *Game) Start() bool {
	now := g.cfg.Scenes.StartImmediately
	if name := g.cfg.Scenes.Start; name != "" {
		return g.manager.GotoName(name, now)
	}
	return g.manager.Goto(0, now)
}

// Update reads input, applies app keys and updates the scenes.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	select {
	case <-g.reload:
		if err := g.LoadWarpSettings(); err != nil {
			g.logger.Warn("warp settings reload failed", "error", err)
		}
	default:
	}

	input, ok := g.input.GetInput()
	if !ok {
		g.logger.Info("input finished")
		return ebiten.Termination
	}

	for _, key := range input.Keys {
		g.manager.KeyPressed(key)
		g.handleKey(key)
	}
	g.handlePointer(input)

	g.manager.Update()
	return nil
}

func (g *Game) handleKey(key ebiten.Key) {
	switch key {
	case KeyDebug:
		g.debug = !g.debug
		if !g.debug {
			g.editor.SetEditing(false)
		}
	case KeyWarp:
		g.SetWarp(!g.warpEnabled)
	case KeyEditWarp:
		if g.debug && g.warpEnabled {
			g.editor.SetEditing(!g.editor.IsEditing())
		}
	case KeySaveWarp:
		if err := g.SaveWarpSettings(); err != nil {
			g.logger.Warn("could not save warp settings", "error", err)
		}
	case KeyLoadWarp:
		if err := g.LoadWarpSettings(); err != nil {
			g.logger.Warn("could not load warp settings", "error", err)
		}
	case KeyOverlap:
		g.manager.SetOverlap(!g.manager.Overlap())
	case KeyRun:
		g.manager.RunToggle()
	case KeyFullscreen:
		g.toggleFullscreen()
	case KeyNext:
		g.manager.Next(false)
	case KeyPrev:
		g.manager.Prev(false)
	case KeyNone:
		g.manager.None(false)
	case KeyLast:
		g.manager.Goto(g.manager.Len()-1, false)
	}
}

func (g *Game) handlePointer(input system.InputState) {
	x, y := float64(input.MouseX), float64(input.MouseY)
	dragged := input.MouseDragged()

	if g.editor.IsEditing() {
		switch {
		case input.MousePressed:
			g.editor.PointerPressed(x, y)
		case dragged:
			g.editor.PointerDragged(x, y)
		}
		if input.MouseReleased {
			g.editor.PointerReleased()
		}
		return
	}

	sx, sy := g.ToSurface(x, y)
	switch {
	case input.MousePressed:
		g.manager.PointerPressed(sx, sy)
	case dragged:
		g.manager.PointerDragged(sx, sy)
	}
	if input.MouseReleased {
		g.manager.PointerReleased(sx, sy)
	}
}

// ToSurface maps a window position back onto the render surface through
// the inverse warp. Positions the warp cannot map are returned unchanged.
func (g *Game) ToSurface(x, y float64) (float64, float64) {
	if !g.warpEnabled {
		return x, y
	}
	inv, det := homography.Adjoint(g.warper.Homography())
	if det == 0 {
		return x, y
	}
	sx, sy, ok := inv.Apply(x, y)
	if !ok {
		return x, y
	}
	return sx, sy
}

// Draw renders the scenes into the surface and presents it, warped if
// enabled. Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = ebiten.NewImage(g.screenW, g.screenH)
	}
	g.surface.Clear()

	if g.debug {
		w, h := float64(g.screenW), float64(g.screenH)
		ebitenutil.DrawRect(g.surface, 0, 0, w, 1, colorRenderEdge)
		ebitenutil.DrawRect(g.surface, 0, h-1, w, 1, colorRenderEdge)
		ebitenutil.DrawRect(g.surface, 0, 0, 1, h, colorRenderEdge)
		ebitenutil.DrawRect(g.surface, w-1, 0, 1, h, colorRenderEdge)
	}
	g.manager.Draw(g.surface)

	if g.warpEnabled {
		g.warper.Push()
		g.mesh.Draw(screen, g.surface, g.stack.Top())
		g.warper.Pop()
	} else {
		screen.DrawImage(g.surface, nil)
	}

	if g.debug {
		g.editor.Draw(screen)
		ebitenutil.DebugPrintAt(screen, g.status(), 4, g.screenH-48)
	}
}

func (g *Game) status() string {
	name := g.manager.CurrentName()
	if name == "" {
		name = "none"
	}
	return fmt.Sprintf("scene: %s (%d/%d)  overlap: %v  running: %v\nwarp: %v  fps: %.0f",
		name, g.manager.CurrentIndex()+1, g.manager.Len(), g.manager.Overlap(),
		g.manager.IsRunning(), g.warpEnabled, ebiten.ActualFPS())
}

// Layout returns the render surface dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetWarp enables or disables the quad warp. Disabling it leaves edit mode.
func (g *Game) SetWarp(enabled bool) {
	g.warpEnabled = enabled
	if !enabled {
		g.editor.SetEditing(false)
	}
}

// WarpEnabled reports whether the quad warp is applied.
func (g *Game) WarpEnabled() bool { return g.warpEnabled }

// SetDebug shows or hides the debug overlay.
func (g *Game) SetDebug(debug bool) { g.debug = debug }

// IsDebug reports whether the debug overlay is shown.
func (g *Game) IsDebug() bool { return g.debug }

// LoadWarpSettings reads the warp points from the configured file.
func (g *Game) LoadWarpSettings() error {
	return g.warper.LoadSettings(g.cfg.Warp.SettingsFile)
}

// SaveWarpSettings writes the warp points to the configured file.
func (g *Game) SaveWarpSettings() error {
	return g.warper.SaveSettings(g.cfg.Warp.SettingsFile)
}

// Manager returns the scene manager.
func (g *Game) Manager() *manager.Manager { return g.manager }

// Warper returns the quad warp.
func (g *Game) Warper() *warp.Warper { return g.warper }

// Editor returns the warp point editor.
func (g *Game) Editor() *warp.Editor { return g.editor }

// Stack returns the transform stack the warp is pushed onto.
func (g *Game) Stack() *render.MatrixStack { return g.stack }
