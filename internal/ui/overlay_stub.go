//go:build !ebiten

package ui

import "sandfall/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay([]core.BrushMaterial, int) *Overlay { return &Overlay{} }

// Selected returns zero in headless builds.
func (o *Overlay) Selected() uint8 { return 0 }

// Radius returns zero in headless builds.
func (o *Overlay) Radius() int { return 0 }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
