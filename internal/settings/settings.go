// Package settings holds the knobs that drive room and dungeon generation.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned for malformed or missing knobs.
var ErrInvalidSettings = errors.New("invalid settings")

const (
	// MaxRoomCount caps the room_count knob.
	MaxRoomCount = 100

	// MinGridSide is the smallest grid width or height the layout will use.
	MinGridSide = 8

	// MaxGridSide caps max_grid_width and max_grid_height.
	MaxGridSide = 200
)

// Settings is the immutable input to every generation call.
type Settings struct {
	// RoomCount is the number of rooms to generate. Dungeons may place fewer.
	RoomCount int `yaml:"room_count"`

	RoomSize     RoomSize     `yaml:"room_size"`
	RoomType     RoomType     `yaml:"room_type"`
	ItemQuantity ItemQuantity `yaml:"item_quantity"`
	ItemRarity   ItemRarity   `yaml:"item_rarity"`

	// Percent chances (0-100)
	TrapChance       int `yaml:"trap_chance"`
	LockedDoorChance int `yaml:"locked_door_chance"`
	SecretDoorChance int `yaml:"secret_door_chance"`
	ConnectionChance int `yaml:"connection_chance"`
	MapChance        int `yaml:"map_chance"`

	// HallwayChance is the share of hallways when room_type is random.
	HallwayChance int `yaml:"hallway_chance"`

	MaxGridWidth  int `yaml:"max_grid_width"`
	MaxGridHeight int `yaml:"max_grid_height"`
}

// DefaultSettings returns settings for a modest, fully random dungeon.
func DefaultSettings() Settings {
	return Settings{
		RoomCount:        12,
		RoomSize:         SizeRandom,
		RoomType:         TypeRandom,
		ItemQuantity:     QuantityRandom,
		ItemRarity:       RarityRandom,
		TrapChance:       20,
		LockedDoorChance: 15,
		SecretDoorChance: 5,
		ConnectionChance: 25,
		MapChance:        5,
		HallwayChance:    30,
		MaxGridWidth:     60,
		MaxGridHeight:    60,
	}
}

// LoadSettings loads settings from a YAML file on top of the defaults.
// If the file doesn't exist, returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	s = s.Clamp()
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// FromValues builds settings from a flat key/value mapping such as submitted
// form data. Unrecognized keys are ignored; missing keys keep their defaults.
func FromValues(values map[string]string) (Settings, error) {
	return DefaultSettings().Apply(values)
}

// Apply returns a copy with the knobs named in values replaced, then
// clamped and validated.
func (s Settings) Apply(values map[string]string) (Settings, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{"room_count", &s.RoomCount},
		{"trap_chance", &s.TrapChance},
		{"locked_door_chance", &s.LockedDoorChance},
		{"secret_door_chance", &s.SecretDoorChance},
		{"connection_chance", &s.ConnectionChance},
		{"map_chance", &s.MapChance},
		{"hallway_chance", &s.HallwayChance},
		{"max_grid_width", &s.MaxGridWidth},
		{"max_grid_height", &s.MaxGridHeight},
	}
	for _, knob := range ints {
		raw, ok := values[knob.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return s, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidSettings, knob.key, raw)
		}
		*knob.dst = n
	}

	if v, ok := values["room_size"]; ok {
		s.RoomSize = RoomSize(v)
	}
	if v, ok := values["room_type"]; ok {
		s.RoomType = RoomType(v)
	}
	if v, ok := values["item_quantity"]; ok {
		s.ItemQuantity = ItemQuantity(v)
	}
	if v, ok := values["item_rarity"]; ok {
		s.ItemRarity = ItemRarity(v)
	}

	s = s.Clamp()
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Clamp returns a copy with percentages pinned to 0-100 and the room count
// and grid limits capped.
func (s Settings) Clamp() Settings {
	s.TrapChance = clampPercent(s.TrapChance)
	s.LockedDoorChance = clampPercent(s.LockedDoorChance)
	s.SecretDoorChance = clampPercent(s.SecretDoorChance)
	s.ConnectionChance = clampPercent(s.ConnectionChance)
	s.MapChance = clampPercent(s.MapChance)
	s.HallwayChance = clampPercent(s.HallwayChance)

	if s.RoomCount > MaxRoomCount {
		s.RoomCount = MaxRoomCount
	}
	if s.MaxGridWidth > MaxGridSide {
		s.MaxGridWidth = MaxGridSide
	}
	if s.MaxGridHeight > MaxGridSide {
		s.MaxGridHeight = MaxGridSide
	}
	return s
}

// Validate checks the knobs the generators consume.
func (s Settings) Validate() error {
	if s.RoomCount < 1 {
		return fmt.Errorf("%w: room_count must be at least 1, got %d", ErrInvalidSettings, s.RoomCount)
	}
	if s.RoomSize == "" {
		return fmt.Errorf("%w: room_size is required", ErrInvalidSettings)
	}
	if !s.RoomSize.IsValid() {
		return fmt.Errorf("%w: unknown room_size %q", ErrInvalidSettings, s.RoomSize)
	}
	if s.RoomType == "" {
		return fmt.Errorf("%w: room_type is required", ErrInvalidSettings)
	}
	if !s.RoomType.IsValid() {
		return fmt.Errorf("%w: unknown room_type %q", ErrInvalidSettings, s.RoomType)
	}
	if s.ItemQuantity == "" || !s.ItemQuantity.IsValid() {
		return fmt.Errorf("%w: unknown item_quantity %q", ErrInvalidSettings, s.ItemQuantity)
	}
	if s.ItemRarity == "" || !s.ItemRarity.IsValid() {
		return fmt.Errorf("%w: unknown item_rarity %q", ErrInvalidSettings, s.ItemRarity)
	}
	if s.MaxGridWidth < 1 || s.MaxGridHeight < 1 {
		return fmt.Errorf("%w: grid limits must be positive, got %dx%d", ErrInvalidSettings, s.MaxGridWidth, s.MaxGridHeight)
	}
	return nil
}

// With helpers return modified copies so callers never mutate shared settings.

// WithRoomType returns a copy with the room type replaced.
func (s Settings) WithRoomType(t RoomType) Settings {
	s.RoomType = t
	return s
}

// WithRoomSize returns a copy with the room size replaced.
func (s Settings) WithRoomSize(size RoomSize) Settings {
	s.RoomSize = size
	return s
}

func clampPercent(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
