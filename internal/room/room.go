// Package room builds individual rooms: dimensions, features, items and traps.
package room

import (
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/optional"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
	"github.com/lawnchairsociety/dungeongen/internal/trap"
)

// Room is a generated room or hallway
type Room struct {
	// RoomNumber is 1-based and assigned after generation; 0 means unnumbered.
	RoomNumber int                         `yaml:"room_number"`
	Type       settings.RoomType           `yaml:"type"`
	Size       settings.RoomSize           `yaml:"size"`
	Dimensions Dimensions                  `yaml:"dimensions"`
	Features   []Feature                   `yaml:"features,omitempty"`
	Items      []items.Item                `yaml:"items"`
	Keys       optional.Value[[]Key]       `yaml:"keys,omitempty"`
	Traps      optional.Value[[]trap.Trap] `yaml:"traps,omitempty"`
	HasMap     bool                        `yaml:"map,omitempty"`
}

// Key opens a locked door between two rooms
type Key struct {
	DoorType string `yaml:"door_type"`
	Connects [2]int `yaml:"connects,flow"`
}

// IsHallway returns true for hallway rooms
func (r *Room) IsHallway() bool {
	return r.Type.IsHallway()
}

// AddKey appends a key, making Keys present
func (r *Room) AddKey(k Key) {
	keys, _ := r.Keys.Get()
	r.Keys = optional.Some(append(keys, k))
}

// AssignRoomNumbers numbers rooms 1..N in slice order
func AssignRoomNumbers(rooms []*Room) {
	for i, rm := range rooms {
		rm.RoomNumber = i + 1
	}
}
