package sand

import "testing"

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d, %d) should panic", dims[0], dims[1])
				}
			}()
			NewGrid(dims[0], dims[1])
		}()
	}
}

func TestGridAccessOutOfRangePanics(t *testing.T) {
	g := NewGrid(4, 3)
	for _, pos := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) should panic", pos[0], pos[1])
				}
			}()
			g.At(pos[0], pos[1])
		}()
	}
}

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid(5, 4)
	if got := g.Index(3, 2); got != 2*5+3 {
		t.Fatalf("Index(3,2) = %d, want %d", got, 2*5+3)
	}
	g.Set(3, 2, Cell{Material: Wood})
	if g.Cells()[2*5+3].Material != Wood {
		t.Fatal("Set did not write the row-major slot")
	}
	if g.At(3, 2).Material != Wood {
		t.Fatal("At did not read back the written cell")
	}
}

func TestGridSwapMarksDestinationMoved(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Cell{Material: Sand, Velocity: 1.5})
	g.Set(1, 1, Cell{Material: Water, Velocity: 0.5})

	g.Swap(0, 0, 1, 1)

	src := g.At(0, 0)
	dst := g.At(1, 1)
	if src.Material != Water || dst.Material != Sand {
		t.Fatalf("swap did not exchange cells: src=%v dst=%v", src.Material, dst.Material)
	}
	if src.Moved {
		t.Fatal("source slot must not be marked moved")
	}
	if !dst.Moved {
		t.Fatal("destination slot must be marked moved")
	}
}
