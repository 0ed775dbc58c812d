package room

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
	"github.com/lawnchairsociety/dungeongen/internal/trap"
)

// ErrInvalidRoomType is returned when a room type cannot be resolved.
var ErrInvalidRoomType = errors.New("invalid room type")

// Generator assembles rooms from dimensions, features, items and traps
type Generator struct {
	items *items.Populator
	traps *trap.Table
}

// NewGenerator creates a room generator over the given tables
func NewGenerator(populator *items.Populator, traps *trap.Table) *Generator {
	return &Generator{
		items: populator,
		traps: traps,
	}
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// DefaultGenerator returns a generator over the built-in tables
func DefaultGenerator() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = NewGenerator(items.DefaultPopulator(), trap.DefaultTable())
	})
	return defaultGenerator
}

// GenerateRooms generates rooms with the default generator
func GenerateRooms(s settings.Settings, r *dice.Roller) ([]*Room, error) {
	return DefaultGenerator().GenerateRooms(s, r)
}

// GenerateRooms produces s.RoomCount independent, unnumbered rooms.
// Callers assign numbers with AssignRoomNumbers.
func (g *Generator) GenerateRooms(s settings.Settings, r *dice.Roller) ([]*Room, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	rooms := make([]*Room, 0, s.RoomCount)
	for i := 0; i < s.RoomCount; i++ {
		rm, err := g.GenerateRoom(s, r)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", i+1, err)
		}
		rooms = append(rooms, rm)
	}
	return rooms, nil
}

// GenerateRoom builds one room, resolving any random knobs first
func (g *Generator) GenerateRoom(s settings.Settings, r *dice.Roller) (*Room, error) {
	resolved := ResolveSettings(s, r)
	if resolved.RoomType == settings.TypeRandom || !resolved.RoomType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomType, s.RoomType)
	}

	dims, err := ResolveDimensions(resolved.RoomSize, DimensionOptions{
		IsHallway:    resolved.RoomType.IsHallway(),
		IsHorizontal: r.Bool(),
	}, r)
	if err != nil {
		return nil, err
	}

	return g.Furnish(resolved, dims, r), nil
}

// Furnish fills a room of known type, size and dimensions with its
// features, items and traps. s must already be resolved.
func (g *Generator) Furnish(s settings.Settings, dims Dimensions, r *dice.Roller) *Room {
	rm := &Room{
		Type:       s.RoomType,
		Size:       s.RoomSize,
		Dimensions: dims,
		Features:   SelectFeatures(s, r),
		Items:      []items.Item{},
	}

	if g.items != nil {
		rm.Items = g.items.PopulateItems(s, r)
	}
	if g.traps != nil {
		rm.Traps = g.traps.Populate(s, r)
	}

	return rm
}

// ResolveSettings returns a copy of s with random room type and size
// replaced by concrete rolls.
func ResolveSettings(s settings.Settings, r *dice.Roller) settings.Settings {
	if s.RoomType == settings.TypeRandom {
		s = s.WithRoomType(RollRoomType(s.HallwayChance, r))
	}
	if s.RoomSize == settings.SizeRandom {
		s = s.WithRoomSize(dice.Pick(r, settings.RoomSizes))
	}
	return s
}

// RollRoomType returns a hallway with hallwayChance percent, otherwise any
// other room type uniformly.
func RollRoomType(hallwayChance int, r *dice.Roller) settings.RoomType {
	if r.Chance(hallwayChance) {
		return settings.TypeHallway
	}
	return dice.Pick(r, chamberTypes)
}

// chamberTypes is every room type except hallway
var chamberTypes = func() []settings.RoomType {
	var types []settings.RoomType
	for _, t := range settings.RoomTypes {
		if !t.IsHallway() {
			types = append(types, t)
		}
	}
	return types
}()
