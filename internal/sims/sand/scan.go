package sand

// farthestByVector walks from (x, y) along the unit step vector (dx, dy) and
// returns the farthest in-bounds cell whose material is in accept, scanning
// one step beyond maxSteps so fractional velocities are not short-changed by
// truncation. The scan keeps going past non-qualifying cells on purpose: a
// blocked intermediate cell does not stop a farther match from winning, which
// lets fast cells jump over obstructions. Reported false when no step
// qualified.
func (w *World) farthestByVector(x, y, maxSteps int, accept MaterialSet, dx, dy int) (int, int, bool) {
	bestX, bestY := 0, 0
	found := false
	for i := 1; i <= maxSteps+1; i++ {
		cx := x + dx*i
		cy := y + dy*i
		if !w.grid.InBounds(cx, cy) {
			continue
		}
		if accept.Has(w.grid.cells[w.grid.Index(cx, cy)].Material) {
			bestX, bestY = cx, cy
			found = true
		}
	}
	return bestX, bestY, found
}
