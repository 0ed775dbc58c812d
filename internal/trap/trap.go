// Package trap rolls the traps guarding a room.
package trap

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/optional"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// CountDice is the number of traps rolled when a room is trapped.
const CountDice = "1d3"

// ErrEmptyTable is returned when a trap table has no entries.
var ErrEmptyTable = errors.New("trap table has no entries")

//go:embed data/traps.yaml
var defaultTableYAML []byte

// Trap is a hazard placed in a room
type Trap struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Trigger     string `yaml:"trigger"`
	Weight      int    `yaml:"weight,omitempty"`
}

// Table is a weighted list of traps
type Table struct {
	Traps []Trap `yaml:"traps"`
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the built-in trap table. It panics if the embedded
// data is malformed.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t, err := ParseTable(defaultTableYAML)
		if err != nil {
			panic(fmt.Sprintf("trap: embedded table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadTable loads a trap table from a YAML file
func LoadTable(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read traps file: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parses a trap table from YAML
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse traps YAML: %w", err)
	}
	if len(t.Traps) == 0 {
		return nil, ErrEmptyTable
	}
	for i := range t.Traps {
		if t.Traps[i].Weight <= 0 {
			t.Traps[i].Weight = 1
		}
	}
	return &t, nil
}

// PopulateTraps rolls a room's traps with the built-in table
func PopulateTraps(s settings.Settings, r *dice.Roller) optional.Value[[]Trap] {
	return DefaultTable().Populate(s, r)
}

// Populate returns None when the room is not trapped, otherwise a
// non-empty list of distinct traps.
func (t *Table) Populate(s settings.Settings, r *dice.Roller) optional.Value[[]Trap] {
	if !r.Chance(s.TrapChance) {
		return optional.None[[]Trap]()
	}

	count := r.ParseDice(CountDice)
	if count < 1 {
		count = 1
	}
	if count > len(t.Traps) {
		count = len(t.Traps)
	}

	remaining := make([]dice.Weighted[int], len(t.Traps))
	for i, trap := range t.Traps {
		remaining[i] = dice.Weighted[int]{Value: i, Weight: trap.Weight}
	}

	traps := make([]Trap, 0, count)
	for len(traps) < count {
		idx, ok := dice.PickWeighted(r, remaining)
		if !ok {
			break
		}
		traps = append(traps, t.Traps[idx])
		remaining[idx].Weight = 0
	}

	if len(traps) == 0 {
		return optional.None[[]Trap]()
	}
	return optional.Some(traps)
}
