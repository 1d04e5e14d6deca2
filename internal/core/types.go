package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// ColorCellsProvider is implemented by simulations whose cells carry
// individual colors instead of palette indices.
type ColorCellsProvider interface {
	ColorCells() []color.RGBA
}

// BrushMaterial describes one material the user can paint with.
type BrushMaterial struct {
	ID    uint8
	Label string
	Color color.RGBA
}

// Brush is implemented by simulations that accept interactive painting.
// Coordinates are grid cells; the affected region is the filled circle of
// the given radius around the center.
type Brush interface {
	BrushMaterials() []BrushMaterial
	Paint(x, y, radius int, material uint8)
	Erase(x, y, radius int)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
