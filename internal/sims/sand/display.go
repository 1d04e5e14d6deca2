package sand

import (
	"image/color"

	"sandfall/internal/core"
)

var airColor = color.RGBA{A: 0xff}

var sandColors = [...]color.RGBA{
	{R: 0xf6, G: 0xd7, B: 0xb0, A: 0xff},
	{R: 0xf2, G: 0xd2, B: 0xa9, A: 0xff},
	{R: 0xec, G: 0xcc, B: 0xa2, A: 0xff},
	{R: 0xe7, G: 0xc4, B: 0x96, A: 0xff},
}

var waterColors = [...]color.RGBA{
	{R: 0x18, G: 0x56, B: 0xdc, A: 0xff},
	{R: 0x1f, G: 0x59, B: 0xd6, A: 0xff},
	{R: 0x25, G: 0x5b, B: 0xd0, A: 0xff},
	{R: 0x27, G: 0x5c, B: 0xcd, A: 0xff},
}

var woodColors = [...]color.RGBA{
	{R: 0x77, G: 0x4f, B: 0x3c, A: 0xff},
	{R: 0x71, G: 0x4b, B: 0x39, A: 0xff},
	{R: 0x6b, G: 0x47, B: 0x36, A: 0xff},
	{R: 0x65, G: 0x43, B: 0x33, A: 0xff},
}

// Red tones are repeated so the sampler leans red over yellow.
var fireColors = [...]color.RGBA{
	{R: 0xc3, G: 0x3e, B: 0x05, A: 0xff},
	{R: 0xc3, G: 0x3e, B: 0x05, A: 0xff},
	{R: 0xc2, G: 0x34, B: 0x05, A: 0xff},
	{R: 0xc2, G: 0x34, B: 0x05, A: 0xff},
	{R: 0xf9, G: 0x61, B: 0x1f, A: 0xff},
	{R: 0xf0, G: 0xa1, B: 0x2b, A: 0xff},
}

var (
	smokeColorLight = color.RGBA{R: 0x47, G: 0x47, B: 0x47, A: 0xff}
	smokeColorDark  = color.RGBA{A: 0xff}
	steamColorLight = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	steamColorDark  = color.RGBA{A: 0xff}
)

// sampleColor draws a palette entry for the material. Materials with a fixed
// tone consume no randomness, which keeps factory calls for Air (erasing,
// burn-out) deterministic.
func sampleColor(m Material, rng *core.RNG) color.RGBA {
	switch m {
	case Sand:
		return sandColors[rng.IntN(len(sandColors))]
	case Water:
		return waterColors[rng.IntN(len(waterColors))]
	case Wood:
		return woodColors[rng.IntN(len(woodColors))]
	case Fire:
		return fireColors[rng.IntN(len(fireColors))]
	case Smoke:
		return smokeColorLight
	case Steam:
		return steamColorLight
	default:
		return airColor
	}
}

// fixedColor is the representative tone used for picker swatches.
func fixedColor(m Material) color.RGBA {
	switch m {
	case Sand:
		return sandColors[0]
	case Water:
		return waterColors[0]
	case Wood:
		return woodColors[0]
	case Fire:
		return fireColors[0]
	case Smoke:
		return smokeColorLight
	case Steam:
		return steamColorLight
	default:
		return airColor
	}
}

// interpolateColor blends from dark toward light as factor goes 0 to 1.
func interpolateColor(light, dark color.RGBA, factor float32) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8((float32(a)-float32(b))*factor + float32(b))
	}
	return color.RGBA{
		R: lerp(light.R, dark.R),
		G: lerp(light.G, dark.G),
		B: lerp(light.B, dark.B),
		A: 0xff,
	}
}

// ColorCells rebuilds and returns the per-cell RGBA display buffer.
func (w *World) ColorCells() []color.RGBA {
	for i := range w.grid.cells {
		w.colors[i] = w.grid.cells[i].Color
	}
	return w.colors
}

// BrushMaterials lists the paintable materials for the picker overlay, in
// selection-key order. Air is excluded; erasing is its own brush.
func (w *World) BrushMaterials() []core.BrushMaterial {
	out := make([]core.BrushMaterial, 0, materialCount-1)
	for m := Sand; m <= Steam; m++ {
		out = append(out, core.BrushMaterial{
			ID:    uint8(m),
			Label: m.String(),
			Color: fixedColor(m),
		})
	}
	return out
}
