// Package dungeon lays generated rooms onto a shared grid and joins them with doors.
package dungeon

import (
	"errors"
	"fmt"
	"math"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/room"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// ErrDungeonUnplaceable is returned when not even one room fits the grid.
var ErrDungeonUnplaceable = errors.New("dungeon: no room could be placed")

// MapDimensions is the realized size of the cropped grid
type MapDimensions struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
}

// Dungeon is the output of one generation call
type Dungeon struct {
	Grid          *Grid
	Rooms         []*room.Room
	Doors         DoorMap
	Layout        map[int]Rect // room number to its footprint on Grid
	MapDimensions MapDimensions
}

// Room returns the room with the given number, or nil
func (d *Dungeon) Room(number int) *room.Room {
	if number < 1 || number > len(d.Rooms) {
		return nil
	}
	return d.Rooms[number-1]
}

// Generator builds dungeons from a room generator and door rules
type Generator struct {
	rooms *room.Generator
	rules *Rules
}

// NewGenerator creates a dungeon generator. nil arguments use the defaults.
func NewGenerator(rooms *room.Generator, rules *Rules) *Generator {
	if rooms == nil {
		rooms = room.DefaultGenerator()
	}
	if rules == nil {
		rules = DefaultRules()
	}
	return &Generator{
		rooms: rooms,
		rules: rules,
	}
}

// Generate builds a dungeon with the default room tables and door rules
func Generate(s settings.Settings, r *dice.Roller) (*Dungeon, error) {
	return NewGenerator(nil, nil).Generate(s, r)
}

// Generate places up to s.RoomCount rooms. Fewer rooms are returned when
// the grid fills up; every returned room is reachable through doors.
func (g *Generator) Generate(s settings.Settings, r *dice.Roller) (*Dungeon, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	width, height := GridSize(s)
	p := newPlacer(g, s, r, NewGrid(width, height))
	p.run()

	if len(p.placed) == 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrDungeonUnplaceable, width, height)
	}

	return p.finish(), nil
}

// GridSize returns the working grid dimensions for the requested rooms
func GridSize(s settings.Settings) (width, height int) {
	// Leave about half the grid empty so rooms have space to branch
	side := int(math.Ceil(math.Sqrt(float64(s.RoomCount) * averageFootprint(s.RoomSize) * 2)))
	if side < settings.MinGridSide {
		side = settings.MinGridSide
	}
	return min(side, s.MaxGridWidth), min(side, s.MaxGridHeight)
}

// averageFootprint is the mean area of a room of the given size, or of
// all sizes when random.
func averageFootprint(size settings.RoomSize) float64 {
	sizes := settings.RoomSizes
	if size != settings.SizeRandom {
		sizes = []settings.RoomSize{size}
	}

	total := 0.0
	for _, sz := range sizes {
		bounds := room.DimensionRanges[sz]
		mean := float64(bounds[0]+bounds[1]) / 2
		total += mean * mean
	}
	return total / float64(len(sizes))
}
