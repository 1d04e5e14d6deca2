package sand

import (
	"image/color"

	"sandfall/internal/core"
)

// Cell is one grid slot. Cells are never destroyed, only overwritten in
// place; Air is the empty sentinel, not a missing entry.
type Cell struct {
	Material Material
	Velocity float32
	Lifetime int
	Moved    bool
	Color    color.RGBA
}

// newCell constructs a fresh cell of the given material: unit velocity, the
// material's lifetime constant, and a color sampled from its palette.
func (w *World) newCell(m Material, rng *core.RNG) Cell {
	return Cell{
		Material: m,
		Velocity: 1.0,
		Lifetime: w.specs[m].lifetime,
		Color:    sampleColor(m, rng),
	}
}
