//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface and wires the
// interactive brush when the simulation supports painting.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	brush   core.Brush
	pacing  *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, tps int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		pacing:  core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
	if brush, ok := sim.(core.Brush); ok {
		g.brush = brush
		g.overlay = ui.NewOverlay(brush.BrushMaterials(), scale)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.applyBrush()

	if (!g.paused && g.pacing.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// applyBrush paints or erases under the cursor while a mouse button is held.
func (g *Game) applyBrush() {
	if g.brush == nil || g.overlay == nil {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := cx/g.scale, cy/g.scale
	size := g.sim.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.brush.Paint(x, y, g.overlay.Radius(), g.overlay.Selected())
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.brush.Erase(x, y, g.overlay.Radius())
	}
}

// Draw renders the current simulation state and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if provider, ok := g.sim.(core.ColorCellsProvider); ok {
		g.painter.BlitColors(screen, provider.ColorCells(), g.scale)
	} else if provider, ok := g.sim.(paletteProvider); ok {
		g.painter.BlitPalette(screen, g.sim.Cells(), provider.Palette(), g.scale)
	} else {
		g.painter.BlitPalette(screen, g.sim.Cells(), nil, g.scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	fps := ebiten.ActualFPS()
	if fps < 1 {
		fps = 1
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %.0f fps  %.2f ms", g.sim.Name(), fps, 1000/fps))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
