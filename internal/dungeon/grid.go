package dungeon

// CellKind classifies what occupies a grid cell
type CellKind int

const (
	CellEmpty   CellKind = iota // No room
	CellRoom                    // Ordinary room
	CellHallway                 // Hallway
)

// String returns the string representation of a CellKind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellRoom:
		return "room"
	case CellHallway:
		return "hallway"
	default:
		return "unknown"
	}
}

// Direction represents a cardinal direction in the grid
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the direction by name
func (d Direction) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// Point is a cell coordinate, origin at the top left
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Rect is the footprint of a placed room
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Intersects returns true if the two rects share any cell
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Union returns the smallest rect covering both
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1 := max(r.X+r.Width, o.X+o.Width)
	y1 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate shifts the rect by dx, dy
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// sharedEdge reports the side of a that b sits against and the range of
// cells along that side the two rects share. ok is false when they do
// not touch along an edge.
func sharedEdge(a, b Rect) (dir Direction, lo, hi int, ok bool) {
	switch {
	case b.Y+b.Height == a.Y:
		dir = North
		lo, hi = max(a.X, b.X), min(a.X+a.Width, b.X+b.Width)-1
	case b.Y == a.Y+a.Height:
		dir = South
		lo, hi = max(a.X, b.X), min(a.X+a.Width, b.X+b.Width)-1
	case b.X == a.X+a.Width:
		dir = East
		lo, hi = max(a.Y, b.Y), min(a.Y+a.Height, b.Y+b.Height)-1
	case b.X+b.Width == a.X:
		dir = West
		lo, hi = max(a.Y, b.Y), min(a.Y+a.Height, b.Y+b.Height)-1
	default:
		return 0, 0, 0, false
	}
	return dir, lo, hi, lo <= hi
}

// doorCells returns the cell on each side of a door at offset along the
// shared edge of a and b.
func doorCells(a, b Rect, dir Direction, offset int) [2]Point {
	switch dir {
	case North:
		return [2]Point{{offset, a.Y}, {offset, b.Y + b.Height - 1}}
	case South:
		return [2]Point{{offset, a.Y + a.Height - 1}, {offset, b.Y}}
	case East:
		return [2]Point{{a.X + a.Width - 1, offset}, {b.X, offset}}
	default:
		return [2]Point{{a.X, offset}, {b.X + b.Width - 1, offset}}
	}
}

// Cell is a single grid square
type Cell struct {
	Room int // 0 when empty
	Kind CellKind
}

// Grid is the 2-D map of placed rooms, indexed [y][x]
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}

// NewGrid creates an empty grid
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	g.Cells = make([][]Cell, height)
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, width)
	}
	return g
}

// InBounds returns true if x, y lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at x, y, or an empty cell off the grid
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.Cells[y][x]
}

// Fits returns true if rect is on the grid and every cell under it is empty
func (g *Grid) Fits(rect Rect) bool {
	if rect.Width <= 0 || rect.Height <= 0 {
		return false
	}
	if !g.InBounds(rect.X, rect.Y) || !g.InBounds(rect.X+rect.Width-1, rect.Y+rect.Height-1) {
		return false
	}
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			if g.Cells[y][x].Kind != CellEmpty {
				return false
			}
		}
	}
	return true
}

// Stamp marks every cell under rect as belonging to a room
func (g *Grid) Stamp(rect Rect, roomNumber int, kind CellKind) {
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			g.Cells[y][x] = Cell{Room: roomNumber, Kind: kind}
		}
	}
}

// Crop returns a new grid holding only the cells inside rect
func (g *Grid) Crop(rect Rect) *Grid {
	out := NewGrid(rect.Width, rect.Height)
	for y := 0; y < rect.Height; y++ {
		for x := 0; x < rect.Width; x++ {
			out.Cells[y][x] = g.At(rect.X+x, rect.Y+y)
		}
	}
	return out
}

// Occupied counts the non-empty cells
func (g *Grid) Occupied() int {
	count := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Kind != CellEmpty {
				count++
			}
		}
	}
	return count
}
