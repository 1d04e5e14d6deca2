package sand

import (
	"slices"
	"testing"
)

func TestPaintWoodFillsCircleExactly(t *testing.T) {
	w := New(21, 21)
	const cx, cy, r = 10, 10, 5

	w.Paint(cx, cy, r, uint8(Wood))

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx, dy := x-cx, y-cy
			inside := dx*dx+dy*dy <= r*r
			isWood := w.Grid().At(x, y).Material == Wood
			if inside && !isWood {
				t.Fatalf("(%d,%d) inside the brush circle should be wood", x, y)
			}
			if !inside && isWood {
				t.Fatalf("(%d,%d) outside the brush circle was painted", x, y)
			}
		}
	}
}

func TestPaintClipsToGridBounds(t *testing.T) {
	w := New(8, 8)
	w.Paint(0, 0, 6, uint8(Wood))

	// The call must not panic and must only touch in-bounds cells inside
	// the circle.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x*x+y*y <= 36
			if inside != (w.Grid().At(x, y).Material == Wood) {
				t.Fatalf("clip mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestPaintTricklesSparseMaterials(t *testing.T) {
	w := New(41, 41)
	const r = 15

	w.Paint(20, 20, r, uint8(Sand))

	covered, painted := 0, 0
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			dx, dy := x-20, y-20
			if dx*dx+dy*dy > r*r {
				if w.Grid().At(x, y).Material != Air {
					t.Fatalf("(%d,%d) outside the circle was painted", x, y)
				}
				continue
			}
			covered++
			if w.Grid().At(x, y).Material == Sand {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("trickle paint should land on some cells")
	}
	if painted >= covered/2 {
		t.Fatalf("trickle paint landed on %d of %d cells, expected a sparse fraction", painted, covered)
	}
}

func TestPaintNeverOverwritesSolids(t *testing.T) {
	w := New(5, 5)
	w.Grid().Set(2, 2, Cell{Material: Wood})
	w.Grid().Set(2, 1, Cell{Material: Sand, Velocity: 1})
	w.Grid().Set(2, 3, Cell{Material: Fire, Velocity: 1})

	w.Paint(2, 2, 2, uint8(Steam))

	if w.Grid().At(2, 2).Material != Wood {
		t.Fatal("painting must not overwrite wood")
	}
	if w.Grid().At(2, 1).Material != Sand {
		t.Fatal("painting must not overwrite sand")
	}
	if w.Grid().At(2, 3).Material != Fire {
		t.Fatal("painting must not overwrite fire")
	}
	if w.Grid().At(2, 0).Material != Steam {
		t.Fatal("air inside the circle should take the paint")
	}
}

func TestPaintOverwritesFluids(t *testing.T) {
	w := New(3, 3)
	w.Grid().Set(1, 1, Cell{Material: Water, Velocity: 1})
	w.Grid().Set(1, 0, Cell{Material: Smoke, Velocity: 1, Lifetime: 5})

	w.Paint(1, 1, 1, uint8(Wood))

	if w.Grid().At(1, 1).Material != Wood {
		t.Fatal("water should be paintable over")
	}
	if w.Grid().At(1, 0).Material != Wood {
		t.Fatal("smoke should be paintable over")
	}
}

func TestEraseIdempotence(t *testing.T) {
	w := NewWithConfig(soupConfig(5))
	w.Reset(0)

	w.Erase(20, 15, 8)
	first := slices.Clone(w.Grid().Cells())

	w.Erase(20, 15, 8)
	if !slices.Equal(first, w.Grid().Cells()) {
		t.Fatal("erasing the same region twice must be a no-op the second time")
	}
}

func TestBrushCenterOutOfRangePanics(t *testing.T) {
	w := New(4, 4)
	for _, fn := range []func(){
		func() { w.Paint(-1, 0, 2, uint8(Sand)) },
		func() { w.Paint(0, 4, 2, uint8(Sand)) },
		func() { w.Erase(4, 0, 2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("out-of-range brush center should panic")
				}
			}()
			fn()
		}()
	}
}
