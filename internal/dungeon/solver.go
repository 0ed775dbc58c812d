package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/room"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// AttemptsPerRoom is the placement budget for a single room
const AttemptsPerRoom = 40

// outcome is the result of trying to place one room
type outcome int

const (
	outcomePlaced outcome = iota
	outcomeExhausted
)

// placement is a room and where it sits on the working grid
type placement struct {
	room *room.Room
	rect Rect
}

// placer lays rooms onto a grid one at a time, each touching an earlier one
type placer struct {
	rooms    *room.Generator
	rules    *Rules
	settings settings.Settings
	rng      *dice.Roller
	grid     *Grid

	placed []placement
	doors  []Door

	attempts    int
	maxAttempts int
}

func newPlacer(g *Generator, s settings.Settings, r *dice.Roller, grid *Grid) *placer {
	return &placer{
		rooms:       g.rooms,
		rules:       g.rules,
		settings:    s,
		rng:         r,
		grid:        grid,
		placed:      make([]placement, 0, s.RoomCount),
		maxAttempts: s.RoomCount * AttemptsPerRoom,
	}
}

// run places up to RoomCount rooms. Rooms that exhaust their budget are dropped.
func (p *placer) run() {
	for i := 0; i < p.settings.RoomCount && p.attempts < p.maxAttempts; i++ {
		p.placeNext()
	}
}

// placeNext proposes dimensions and an origin for the next room until one
// fits or the room's budget runs out.
func (p *placer) placeNext() outcome {
	resolved := room.ResolveSettings(p.settings, p.rng)
	horizontal := p.rng.Bool()

	for attempt := 0; attempt < AttemptsPerRoom && p.attempts < p.maxAttempts; attempt++ {
		p.attempts++

		size := degrade(resolved.RoomSize, attempt)
		dims, err := room.ResolveDimensions(size, room.DimensionOptions{
			IsHallway:    resolved.RoomType.IsHallway(),
			IsHorizontal: horizontal,
		}, p.rng)
		if err != nil {
			return outcomeExhausted
		}

		rect, anchor := p.propose(dims)
		if !p.grid.Fits(rect) {
			continue
		}

		p.accept(resolved.WithRoomSize(size), dims, rect, anchor)
		return outcomePlaced
	}

	return outcomeExhausted
}

// degrade shrinks size one step for each quarter of the budget used past
// the halfway mark.
func degrade(size settings.RoomSize, attempt int) settings.RoomSize {
	half, quarter := AttemptsPerRoom/2, AttemptsPerRoom/4
	if attempt < half {
		return size
	}
	for i := 0; i <= (attempt-half)/quarter; i++ {
		size = size.Smaller()
	}
	return size
}

// propose returns a candidate rect and the index of the room it is placed
// against. The first room goes in the centre with no anchor (-1).
func (p *placer) propose(dims room.Dimensions) (Rect, int) {
	w, h := dims.Width, dims.Height
	if len(p.placed) == 0 {
		return Rect{X: (p.grid.Width - w) / 2, Y: (p.grid.Height - h) / 2, Width: w, Height: h}, -1
	}

	anchor := p.rng.Intn(len(p.placed))
	a := p.placed[anchor].rect
	rect := Rect{Width: w, Height: h}

	// Slide along the chosen side keeping at least one shared edge cell
	switch dice.Pick(p.rng, AllDirections()) {
	case North:
		rect.X = p.rng.Range(a.X-w+1, a.X+a.Width-1)
		rect.Y = a.Y - h
	case South:
		rect.X = p.rng.Range(a.X-w+1, a.X+a.Width-1)
		rect.Y = a.Y + a.Height
	case East:
		rect.X = a.X + a.Width
		rect.Y = p.rng.Range(a.Y-h+1, a.Y+a.Height-1)
	case West:
		rect.X = a.X - w
		rect.Y = p.rng.Range(a.Y-h+1, a.Y+a.Height-1)
	}

	return rect, anchor
}

// accept furnishes and stamps the room, then records its doors
func (p *placer) accept(s settings.Settings, dims room.Dimensions, rect Rect, anchor int) {
	rm := p.rooms.Furnish(s, dims, p.rng)
	// Numbers follow placement order so doors can reference them as they are recorded
	rm.RoomNumber = len(p.placed) + 1
	rm.HasMap = p.rng.Chance(s.MapChance)

	kind := CellRoom
	if rm.IsHallway() {
		kind = CellHallway
	}
	p.grid.Stamp(rect, rm.RoomNumber, kind)
	p.placed = append(p.placed, placement{room: rm, rect: rect})

	if anchor < 0 {
		return
	}

	newest := len(p.placed) - 1
	p.connect(anchor, newest)

	for i := 0; i < newest; i++ {
		if i == anchor {
			continue
		}
		if _, _, _, ok := sharedEdge(p.placed[i].rect, rect); ok && p.rng.Chance(s.ConnectionChance) {
			p.connect(i, newest)
		}
	}
}

// connect records a door between two placed rooms that share an edge.
// from must be placed before to.
func (p *placer) connect(from, to int) bool {
	a, b := p.placed[from], p.placed[to]
	dir, lo, hi, ok := sharedEdge(a.rect, b.rect)
	if !ok {
		return false
	}

	doorType, locked := p.rules.Choose(a.room.Type, b.room.Type, p.settings, p.rng)
	door := Door{
		Connects:  [2]int{a.room.RoomNumber, b.room.RoomNumber},
		Type:      doorType,
		Locked:    locked,
		Secret:    p.rules.IsSecret(doorType),
		Direction: dir,
		Cells:     doorCells(a.rect, b.rect, dir, p.rng.Range(lo, hi)),
	}
	p.doors = append(p.doors, door)

	if locked {
		// Keys go in a room that was reachable before this door existed
		holder := p.placed[p.rng.Intn(to)].room
		holder.AddKey(room.Key{DoorType: string(doorType), Connects: door.Connects})
	}

	return true
}

// bounds returns the smallest rect covering every placed room
func (p *placer) bounds() Rect {
	b := p.placed[0].rect
	for _, pl := range p.placed[1:] {
		b = b.Union(pl.rect)
	}
	return b
}

// finish crops the grid to the placed rooms and assembles the dungeon
func (p *placer) finish() *Dungeon {
	b := p.bounds()
	grid := p.grid.Crop(b)

	rooms := make([]*room.Room, 0, len(p.placed))
	layout := make(map[int]Rect, len(p.placed))
	for _, pl := range p.placed {
		rooms = append(rooms, pl.room)
		layout[pl.room.RoomNumber] = pl.rect.Translate(-b.X, -b.Y)
	}

	doors := make([]Door, 0, len(p.doors))
	for _, d := range p.doors {
		doors = append(doors, d.translate(-b.X, -b.Y))
	}

	return &Dungeon{
		Grid:   grid,
		Rooms:  rooms,
		Doors:  NewDoorMap(doors),
		Layout: layout,
		MapDimensions: MapDimensions{
			GridWidth:  grid.Width,
			GridHeight: grid.Height,
		},
	}
}
