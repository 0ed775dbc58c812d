package dungeon

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.want {
			t.Errorf("%s.Opposite() = %s, want %s", tc.dir, got, tc.want)
		}
	}
}

func TestCellKindString(t *testing.T) {
	if CellHallway.String() != "hallway" || CellRoom.String() != "room" || CellEmpty.String() != "empty" {
		t.Error("unexpected CellKind strings")
	}
	if CellKind(99).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 3, Height: 3}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"inside", Rect{X: 1, Y: 1, Width: 1, Height: 1}, true},
		{"corner overlap", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching east", Rect{X: 3, Y: 0, Width: 2, Height: 2}, false},
		{"touching south", Rect{X: 0, Y: 3, Width: 2, Height: 2}, false},
		{"far away", Rect{X: 10, Y: 10, Width: 2, Height: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(a); got != tc.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{X: 2, Y: 3, Width: 2, Height: 2}.Union(Rect{X: 5, Y: 1, Width: 1, Height: 1})
	want := Rect{X: 2, Y: 1, Width: 4, Height: 4}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestSharedEdge(t *testing.T) {
	a := Rect{X: 5, Y: 5, Width: 3, Height: 3}

	tests := []struct {
		name   string
		b      Rect
		dir    Direction
		lo, hi int
		ok     bool
	}{
		{"north", Rect{X: 6, Y: 2, Width: 4, Height: 3}, North, 6, 7, true},
		{"south", Rect{X: 3, Y: 8, Width: 3, Height: 2}, South, 5, 5, true},
		{"east", Rect{X: 8, Y: 4, Width: 2, Height: 2}, East, 5, 5, true},
		{"west", Rect{X: 3, Y: 5, Width: 2, Height: 3}, West, 5, 7, true},
		{"diagonal", Rect{X: 8, Y: 8, Width: 2, Height: 2}, 0, 0, 0, false},
		{"gap", Rect{X: 9, Y: 5, Width: 2, Height: 2}, 0, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, lo, hi, ok := sharedEdge(a, tc.b)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if dir != tc.dir || lo != tc.lo || hi != tc.hi {
				t.Errorf("sharedEdge = %s [%d, %d], want %s [%d, %d]", dir, lo, hi, tc.dir, tc.lo, tc.hi)
			}
		})
	}
}

func TestDoorCellsAreAdjacent(t *testing.T) {
	a := Rect{X: 5, Y: 5, Width: 3, Height: 3}
	others := []Rect{
		{X: 6, Y: 2, Width: 4, Height: 3},
		{X: 3, Y: 8, Width: 3, Height: 2},
		{X: 8, Y: 4, Width: 2, Height: 2},
		{X: 3, Y: 5, Width: 2, Height: 3},
	}

	for _, b := range others {
		dir, lo, hi, ok := sharedEdge(a, b)
		if !ok {
			t.Fatalf("%+v should share an edge", b)
		}
		for offset := lo; offset <= hi; offset++ {
			cells := doorCells(a, b, dir, offset)
			if !contains(a, cells[0]) || !contains(b, cells[1]) {
				t.Errorf("%s door cells %v not inside their rooms", dir, cells)
			}
			dx, dy := cells[1].X-cells[0].X, cells[1].Y-cells[0].Y
			if dx*dx+dy*dy != 1 {
				t.Errorf("%s door cells %v are not orthogonal neighbours", dir, cells)
			}
		}
	}
}

func TestGridFitsAndStamp(t *testing.T) {
	g := NewGrid(10, 8)
	r := Rect{X: 2, Y: 2, Width: 3, Height: 2}

	if !g.Fits(r) {
		t.Fatal("empty grid should fit rect")
	}
	g.Stamp(r, 1, CellRoom)

	if g.Occupied() != 6 {
		t.Errorf("Occupied = %d, want 6", g.Occupied())
	}
	if c := g.At(3, 3); c.Room != 1 || c.Kind != CellRoom {
		t.Errorf("At(3,3) = %+v", c)
	}
	if g.Fits(Rect{X: 4, Y: 3, Width: 2, Height: 2}) {
		t.Error("overlapping rect should not fit")
	}
	if !g.Fits(Rect{X: 5, Y: 2, Width: 2, Height: 2}) {
		t.Error("adjacent rect should fit")
	}

	outOfBounds := []Rect{
		{X: -1, Y: 0, Width: 2, Height: 2},
		{X: 9, Y: 0, Width: 2, Height: 2},
		{X: 0, Y: 7, Width: 2, Height: 2},
		{X: 0, Y: 0, Width: 0, Height: 2},
	}
	for _, r := range outOfBounds {
		if g.Fits(r) {
			t.Errorf("%+v should not fit", r)
		}
	}
}

func TestGridCrop(t *testing.T) {
	g := NewGrid(10, 10)
	g.Stamp(Rect{X: 4, Y: 5, Width: 2, Height: 1}, 3, CellHallway)

	c := g.Crop(Rect{X: 4, Y: 5, Width: 2, Height: 1})
	if c.Width != 2 || c.Height != 1 {
		t.Fatalf("cropped size %dx%d", c.Width, c.Height)
	}
	if c.At(1, 0).Room != 3 || c.At(1, 0).Kind != CellHallway {
		t.Errorf("cropped cell = %+v", c.At(1, 0))
	}
	if c.At(2, 0) != (Cell{}) {
		t.Error("off-grid cell should be empty")
	}
}

func contains(r Rect, p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
