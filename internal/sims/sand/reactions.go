package sand

import "sandfall/internal/core"

// fireNeighborOffsets is the fixed evaluation order for combustion:
// left, right, up, down, up-left, down-left, up-right, down-right.
var fireNeighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

func (w *World) updateSand(x, y int, rng *core.RNG) {
	spec := w.specs[Sand]
	w.resolveFall(x, y, spec.moveThrough, spec.maxVelocity, spec.acceleration, spec.inverted, rng)
}

func (w *World) updateWater(x, y int, rng *core.RNG) {
	idx := w.grid.Index(x, y)
	if rng.Chance(w.cfg.Params.WaterShimmerChance) && w.grid.cells[idx].Velocity < 0.1 {
		w.grid.cells[idx].Color = sampleColor(Water, rng)
	}
	spec := w.specs[Water]
	w.resolveFluid(x, y, spec.moveThrough, spec.maxVelocity, spec.acceleration, spec.inverted, rng)
}

// updateFire spreads combustion and reacts with water. One spread-gate roll
// happens per tick; wood ignition and the fire's own burn-out both hang off
// it, while the water check is deliberately ungated so water always
// extinguishes adjacent fire.
func (w *World) updateFire(x, y int, rng *core.RNG) {
	shouldSpread := rng.Chance(w.cfg.Params.FireSpreadChance)
	idx := w.grid.Index(x, y)

	for _, off := range fireNeighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if !w.grid.InBounds(nx, ny) {
			continue
		}
		nIdx := w.grid.Index(nx, ny)
		switch {
		case burnable.Has(w.grid.cells[nIdx].Material):
			if shouldSpread {
				w.grid.cells[idx].Color = sampleColor(Fire, rng)
				w.grid.cells[nIdx] = w.newCell(Fire, rng)
				w.grid.cells[nIdx].Moved = true
				w.grid.cells[idx].Moved = true
			}
		case w.grid.cells[nIdx].Material == Water:
			w.grid.cells[idx] = w.newCell(Steam, rng)
			return
		}
	}

	if !shouldSpread {
		return
	}
	if rng.Chance(w.cfg.Params.FireSmokeChance) {
		w.grid.cells[idx] = w.newCell(Smoke, rng)
	} else {
		w.grid.cells[idx] = w.newCell(Air, rng)
	}
}

func (w *World) updateSmoke(x, y int, rng *core.RNG) {
	idx := w.grid.Index(x, y)
	if w.grid.cells[idx].Lifetime == 0 {
		w.grid.cells[idx] = w.newCell(Air, rng)
		return
	}
	w.grid.cells[idx].Lifetime--

	spec := w.specs[Smoke]
	if spec.lifetime > 0 {
		w.grid.cells[idx].Color = interpolateColor(smokeColorLight, smokeColorDark,
			float32(w.grid.cells[idx].Lifetime)/float32(spec.lifetime))
	}

	w.resolveFluid(x, y, spec.moveThrough, spec.maxVelocity, spec.acceleration, spec.inverted, rng)
}

func (w *World) updateSteam(x, y int, rng *core.RNG) {
	idx := w.grid.Index(x, y)
	if w.grid.cells[idx].Lifetime == 0 {
		if rng.Chance(w.cfg.Params.SteamCondenseChance) {
			w.grid.cells[idx] = w.newCell(Water, rng)
		} else {
			w.grid.cells[idx] = w.newCell(Air, rng)
		}
		return
	}
	w.grid.cells[idx].Lifetime--

	spec := w.specs[Steam]
	if spec.lifetime > 0 {
		w.grid.cells[idx].Color = interpolateColor(steamColorLight, steamColorDark,
			float32(w.grid.cells[idx].Lifetime)/float32(spec.lifetime))
	}

	w.resolveFluid(x, y, spec.moveThrough, spec.maxVelocity, spec.acceleration, spec.inverted, rng)
}

// updateFns dispatches the per-material behavior. Air and Wood are inert.
var updateFns = [materialCount]func(*World, int, int, *core.RNG){
	Sand:  (*World).updateSand,
	Water: (*World).updateWater,
	Fire:  (*World).updateFire,
	Smoke: (*World).updateSmoke,
	Steam: (*World).updateSteam,
}
