//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	swatchSize    = 15
	swatchSpacing = 3
	swatchMargin  = 3

	brushRadiusMin  = 3
	brushRadiusStep = 3
)

// Overlay owns the brush state (selected material, radius) and draws the
// material picker plus the cursor outline on top of the simulation view.
type Overlay struct {
	materials []core.BrushMaterial
	selected  int
	radius    int
	scale     int

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the given paintable materials.
func NewOverlay(materials []core.BrushMaterial, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{materials: materials, radius: brushRadiusMin, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Selected returns the material id of the active brush.
func (o *Overlay) Selected() uint8 {
	if len(o.materials) == 0 {
		return 0
	}
	return o.materials[o.selected].ID
}

// Radius returns the current brush radius in grid cells.
func (o *Overlay) Radius() int { return o.radius }

// Update handles material selection keys and the scroll-wheel radius.
func (o *Overlay) Update() {
	keys := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
		ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, key := range keys {
		if i >= len(o.materials) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			o.selected = i
		}
	}

	_, dy := ebiten.Wheel()
	if dy != 0 {
		o.radius += int(dy) * brushRadiusStep
		if o.radius < brushRadiusMin {
			o.radius = brushRadiusMin
		}
	}
}

// Draw renders the picker swatches and the brush outline.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for i, mat := range o.materials {
		x := swatchMargin + swatchSpacing
		y := swatchMargin + (swatchSpacing+swatchSize)*i
		if i == o.selected {
			o.drawSquare(screen, x-1, y-1, swatchSize+2, color.RGBA{R: 0xff, G: 0xea, A: 0xff}, mat.Color)
		} else {
			o.drawSquare(screen, x, y, swatchSize, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, mat.Color)
		}
	}

	cx, cy := ebiten.CursorPosition()
	o.drawCircle(screen, float64(cx), float64(cy), float64(o.radius*o.scale),
		color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff})
}

func (o *Overlay) drawSquare(screen *ebiten.Image, x, y, size int, border, fill color.RGBA) {
	o.drawRect(screen, float64(x), float64(y), float64(size), float64(size), border)
	if size > 2 {
		o.drawRect(screen, float64(x+1), float64(y+1), float64(size-2), float64(size-2), fill)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawCircle(screen *ebiten.Image, cx, cy, radius float64, col color.RGBA) {
	if o.pixel == nil || radius <= 0 {
		return
	}
	steps := int(2 * math.Pi * radius)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + radius*math.Cos(theta)
		y := cy + radius*math.Sin(theta)
		o.drawRect(screen, x, y, 1, 1, col)
	}
}
