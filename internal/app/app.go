//go:build ebiten

package app

import (
	"time"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

type sectorRaiser interface {
	RaiseSector(cx, cy int) error
}

// Game adapts a core terrain to the ebiten.Game interface.
type Game struct {
	terrain core.Terrain
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	seed     int64
	gray     bool

	log *zap.Logger
}

// New constructs a Game for the provided terrain, which must already have
// been Reset.
func New(t core.Terrain, cfg *Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	size := t.Size()
	g := &Game{
		terrain:  t,
		overlay:  ui.NewOverlay(t, cfg.Scale),
		hud:      ui.NewHUD(t, cfg.HUDWidth),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     t.Seed(),
		gray:     cfg.Gray,
		log:      log,
	}
	g.painter = render.NewGridPainter(size.W, size.H, g.gradient())
	return g
}

// Reset regenerates the terrain with the provided seed and remembers the seed
// the terrain settled on, so R reproduces the map on screen.
func (g *Game) Reset(seed int64) {
	if err := g.terrain.Reset(seed); err != nil {
		g.log.Error("reset failed", zap.Int64("seed", seed), zap.Error(err))
		return
	}
	g.seed = g.terrain.Seed()
	g.log.Info("map regenerated", zap.Int64("seed", g.seed))
}

func (g *Game) gradient() render.Gradient {
	if g.gray {
		return render.Grayscale()
	}
	return render.TerrainGradient()
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.gray = !g.gray
		g.painter.SetGradient(g.gradient())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	viewWidth := g.terrain.Size().W * g.scale
	if g.hud != nil {
		g.hud.Update(viewWidth)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < viewWidth {
			g.raiseAt(mx/g.scale, my/g.scale)
		}
	}
	return nil
}

func (g *Game) raiseAt(cx, cy int) {
	raiser, ok := g.terrain.(sectorRaiser)
	if !ok {
		return
	}
	if err := raiser.RaiseSector(cx, cy); err != nil {
		g.log.Debug("sector edit rejected", zap.Int("x", cx), zap.Int("y", cy), zap.Error(err))
	}
}

// Draw renders the current map, overlay and parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.terrain.Cells(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.terrain.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.terrain.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
