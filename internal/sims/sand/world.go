package sand

import (
	"image/color"

	"sandfall/internal/core"
)

// World is the falling-material simulation: a dense grid of cells updated
// once per Step according to per-material movement and reaction rules.
type World struct {
	cfg   Config
	specs [materialCount]materialSpec

	grid   *Grid
	colors []color.RGBA
	mats   []uint8

	rng *core.RNG
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:    cfg,
		specs:  buildSpecs(cfg.Params),
		grid:   NewGrid(cfg.Width, cfg.Height),
		colors: make([]color.RGBA, cfg.Width*cfg.Height),
		mats:   make([]uint8, cfg.Width*cfg.Height),
		rng:    core.NewRNG(cfg.Seed),
	}
	w.clear()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Grid exposes the cell field for direct inspection and scenario setup.
func (w *World) Grid() *Grid { return w.grid }

// RNG exposes the world's random stream so external operations (painting
// from the UI) share the single ordered stream the tick uses.
func (w *World) RNG() *core.RNG { return w.rng }

// Cells returns the material code of every cell in row-major order.
func (w *World) Cells() []uint8 {
	for i := range w.grid.cells {
		w.mats[i] = uint8(w.grid.cells[i].Material)
	}
	return w.mats
}

// Reset rebuilds the initial canvas using deterministic randomness: all Air,
// then the optional per-material sprinkle for headless runs.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.clear()
	w.sprinkle()
}

func (w *World) clear() {
	air := w.newCell(Air, w.rng)
	for i := range w.grid.cells {
		w.grid.cells[i] = air
	}
}

func (w *World) sprinkle() {
	p := w.cfg.Params
	if p.SandFillChance <= 0 && p.WaterFillChance <= 0 && p.WoodFillChance <= 0 {
		return
	}
	for i := range w.grid.cells {
		switch {
		case w.rng.Chance(p.SandFillChance):
			w.grid.cells[i] = w.newCell(Sand, w.rng)
		case w.rng.Chance(p.WaterFillChance):
			w.grid.cells[i] = w.newCell(Water, w.rng)
		case w.rng.Chance(p.WoodFillChance):
			w.grid.cells[i] = w.newCell(Wood, w.rng)
		}
	}
}

// Step advances the simulation by one tick. Rows are walked bottom-to-top
// twice: the first pass visits odd columns in descending x, the second even
// columns in ascending x. Alternating the scan direction removes the
// left/right bias a single fixed order would give cells competing for the
// same destination. A cell whose moved flag is already set is skipped, which
// bounds every cell to one movement decision per tick; all flags are cleared
// once both passes are done.
func (w *World) Step() {
	for pass := 0; pass <= 1; pass++ {
		for y := w.grid.H - 1; y >= 0; y-- {
			if pass == 1 {
				for x := 0; x < w.grid.W; x++ {
					w.updateCell(pass, x, y)
				}
			} else {
				for x := w.grid.W - 1; x >= 0; x-- {
					w.updateCell(pass, x, y)
				}
			}
		}
	}

	for i := range w.grid.cells {
		w.grid.cells[i].Moved = false
	}
}

func (w *World) updateCell(pass, x, y int) {
	if x%2 == pass {
		return
	}
	cell := &w.grid.cells[w.grid.Index(x, y)]
	if cell.Moved {
		return
	}
	if fn := updateFns[cell.Material]; fn != nil {
		fn(w, x, y, w.rng)
	}
}

// Paint fills the circle of the given radius around (x, y) with the
// material. Trickle-gated materials land on a random fraction of the covered
// cells per call; solids fill every covered cell. Only Air, Water and Smoke
// are ever overwritten. An out-of-range center is a caller bug and panics.
func (w *World) Paint(x, y, radius int, material uint8) {
	w.grid.check(x, y)
	m := Material(material)
	if int(m) >= materialCount {
		return
	}
	chance := w.specs[m].paintChance
	w.forEachInCircle(x, y, radius, func(idx int) {
		if chance < 1 && !w.rng.Chance(chance) {
			return
		}
		if paintableOver.Has(w.grid.cells[idx].Material) {
			w.grid.cells[idx] = w.newCell(m, w.rng)
		}
	})
}

// Erase unconditionally converts the circle around (x, y) to Air.
func (w *World) Erase(x, y, radius int) {
	w.grid.check(x, y)
	w.forEachInCircle(x, y, radius, func(idx int) {
		w.grid.cells[idx] = w.newCell(Air, w.rng)
	})
}

func (w *World) forEachInCircle(cx, cy, radius int, fn func(idx int)) {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		x := cx + dx
		if x < 0 || x >= w.grid.W {
			continue
		}
		for dy := -radius; dy <= radius; dy++ {
			y := cy + dy
			if y < 0 || y >= w.grid.H {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			fn(w.grid.Index(x, y))
		}
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
