package sand

import "sandfall/internal/core"

// resolveFall drops the cell at (x, y) along gravity: straight first, then
// diagonally with a uniform random tie-break when both diagonals qualify.
// The scan reach is bounded by the cell's current velocity. Returns true iff
// the cell moved; a cell that finds no destination has its velocity halved,
// which is what makes resting grains settle.
func (w *World) resolveFall(x, y int, through MaterialSet, maxVelocity, acceleration float32, inverted bool, rng *core.RNG) bool {
	down := 1
	if inverted {
		down = -1
	}

	idx := w.grid.Index(x, y)
	steps := int(w.grid.cells[idx].Velocity)

	if tx, ty, ok := w.farthestByVector(x, y, steps, through, 0, down); ok {
		w.accelerate(idx, acceleration, maxVelocity)
		w.grid.Swap(x, y, tx, ty)
		return true
	}

	lx, ly, okL := w.farthestByVector(x, y, steps, through, -1, down)
	rx, ry, okR := w.farthestByVector(x, y, steps, through, 1, down)

	switch {
	case okL && okR:
		if rng.Bool() {
			lx, ly = rx, ry
		}
	case okR:
		lx, ly = rx, ry
	case !okL:
		w.grid.cells[idx].Velocity /= 2
		return false
	}

	w.accelerate(idx, acceleration, maxVelocity)
	w.grid.Swap(x, y, lx, ly)
	return true
}

// resolveFluid falls first; a cell that fell does not also spread this tick.
// Otherwise it runs the lateral spread: farthest reachable slot left or
// right within the velocity-derived spread factor, uniform tie-break, no
// velocity change on a sideways move.
func (w *World) resolveFluid(x, y int, empty MaterialSet, maxVelocity, acceleration float32, inverted bool, rng *core.RNG) bool {
	if w.resolveFall(x, y, empty, maxVelocity, acceleration, inverted, rng) {
		return true
	}

	spread := int(w.grid.cells[w.grid.Index(x, y)].Velocity + 1)

	lx, ly, okL := w.farthestByVector(x, y, spread, empty, -1, 0)
	rx, ry, okR := w.farthestByVector(x, y, spread, empty, 1, 0)

	switch {
	case okL && okR:
		if rng.Bool() {
			lx, ly = rx, ry
		}
	case okR:
		lx, ly = rx, ry
	case !okL:
		return false
	}

	w.grid.Swap(x, y, lx, ly)
	return true
}

func (w *World) accelerate(idx int, acceleration, maxVelocity float32) {
	v := w.grid.cells[idx].Velocity + acceleration
	if v > maxVelocity {
		v = maxVelocity
	}
	w.grid.cells[idx].Velocity = v
}
