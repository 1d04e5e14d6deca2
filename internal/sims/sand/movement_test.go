package sand

import (
	"math"
	"testing"
)

func TestSandSettlingProgression(t *testing.T) {
	w := New(1, 3)
	w.Grid().Set(0, 0, Cell{Material: Sand, Velocity: 1.0})

	// Unit velocity scans floor(1.0)+1 = 2 steps, so the grain covers both
	// empty rows in the first tick and lands on the floor.
	w.Step()
	if w.Grid().At(0, 2).Material != Sand {
		t.Fatalf("sand should be at the bottom row, grid: %v", w.Cells())
	}
	got := w.Grid().At(0, 2).Velocity
	if math.Abs(float64(got)-1.2) > 1e-6 {
		t.Fatalf("velocity after a successful fall = %f, want 1.2", got)
	}

	// Grounded now: every further tick halves the velocity toward rest.
	want := float32(1.2)
	for i := 0; i < 4; i++ {
		w.Step()
		want /= 2
		if w.Grid().At(0, 2).Material != Sand {
			t.Fatalf("settled sand must not move on tick %d", i+2)
		}
		got = w.Grid().At(0, 2).Velocity
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Fatalf("velocity after failed tick %d = %f, want %f", i+2, got, want)
		}
	}
}

func TestSandFallsDiagonallyAroundBlock(t *testing.T) {
	w := New(2, 3)
	w.Grid().Set(1, 0, Cell{Material: Sand, Velocity: 1.0})
	w.Grid().Set(1, 1, Cell{Material: Wood})
	w.Grid().Set(1, 2, Cell{Material: Wood})

	w.Step()

	if w.Grid().At(0, 1).Material != Sand {
		t.Fatalf("sand should slide down-left to (0,1), grid: %v", w.Cells())
	}
}

func TestMovedCellSkippedWithinTick(t *testing.T) {
	// The diagonal slide lands the grain on an even column that the second
	// parity pass walks again from the bottom; without the moved flag it
	// would fall a second time in the same tick.
	w := New(2, 3)
	w.Grid().Set(1, 0, Cell{Material: Sand, Velocity: 1.0})
	w.Grid().Set(1, 1, Cell{Material: Wood})
	w.Grid().Set(1, 2, Cell{Material: Wood})

	w.Step()

	if w.Grid().At(0, 1).Material != Sand {
		t.Fatalf("sand must stop at (0,1) for this tick, grid: %v", w.Cells())
	}
	if w.Grid().At(0, 2).Material == Sand {
		t.Fatal("sand moved twice within one tick")
	}

	w.Step()
	if w.Grid().At(0, 2).Material != Sand {
		t.Fatal("sand should continue falling on the next tick")
	}
}

func TestSandSinksThroughWater(t *testing.T) {
	w := New(1, 2)
	w.Grid().Set(0, 0, Cell{Material: Sand, Velocity: 1.0})
	w.Grid().Set(0, 1, Cell{Material: Water, Velocity: 0.0})

	w.Step()

	if w.Grid().At(0, 1).Material != Sand {
		t.Fatal("sand should displace the water below")
	}
	if w.Grid().At(0, 0).Material != Water {
		t.Fatal("displaced water should occupy the vacated slot")
	}
}

func TestWaterSpreadsSideways(t *testing.T) {
	// Water on a one-row floor with no room below must move laterally.
	w := New(5, 1)
	w.Grid().Set(2, 0, Cell{Material: Water, Velocity: 1.0})

	w.Step()

	if w.Grid().At(2, 0).Material == Water {
		t.Fatalf("water should have spread left or right, grid: %v", w.Cells())
	}
	count := 0
	for x := 0; x < 5; x++ {
		if w.Grid().At(x, 0).Material == Water {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("exactly one water cell expected, got %d", count)
	}
}

func TestFluidDoesNotSpreadAfterFalling(t *testing.T) {
	w := New(3, 2)
	w.Grid().Set(1, 0, Cell{Material: Water, Velocity: 1.0})

	w.Step()

	if w.Grid().At(1, 1).Material != Water {
		t.Fatalf("water should fall straight down, grid: %v", w.Cells())
	}
}

func TestGasRisesWithInvertedGravity(t *testing.T) {
	w := New(1, 4)
	w.Grid().Set(0, 3, Cell{Material: Smoke, Velocity: 1.0, Lifetime: 10})

	w.Step()

	found := -1
	for y := 0; y < 4; y++ {
		if w.Grid().At(0, y).Material == Smoke {
			found = y
		}
	}
	if found == -1 {
		t.Fatal("smoke vanished")
	}
	if found >= 3 {
		t.Fatalf("smoke should rise, still at y=%d", found)
	}
}

func TestVelocityClampsAtMaximum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1
	cfg.Height = 200
	w := NewWithConfig(cfg)
	w.Grid().Set(0, 0, Cell{Material: Sand, Velocity: 1.0})

	for i := 0; i < 100; i++ {
		w.Step()
		found := false
		for y := 0; y < cfg.Height; y++ {
			c := w.Grid().At(0, y)
			if c.Material != Sand {
				continue
			}
			found = true
			if c.Velocity < 0 || float64(c.Velocity) > cfg.Params.MaxVelocity {
				t.Fatalf("tick %d: velocity %f outside [0, %f]", i+1, c.Velocity, cfg.Params.MaxVelocity)
			}
		}
		if !found {
			t.Fatalf("tick %d: sand cell disappeared", i+1)
		}
	}
}
