package items

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

var (
	ErrEmptyTable     = errors.New("item table has no entries")
	ErrInvalidRarity  = errors.New("invalid item rarity")
	ErrUnknownSection = errors.New("unknown item category")
)

//go:embed data/items.yaml
var defaultTablesYAML []byte

// CategoryTable is one category's defaults plus its entry overrides
type CategoryTable struct {
	Defaults Config             `yaml:"defaults"`
	Items    map[string]*Config `yaml:"items"`
}

// TablesConfig represents the structure of an items YAML file
type TablesConfig struct {
	Base       Config                     `yaml:"base"`
	Categories map[Category]CategoryTable `yaml:"categories"`
}

// Tables holds merged item records grouped by rarity
type Tables struct {
	entries  []Config
	byRarity map[settings.ItemRarity][]Config
}

// DefaultTables returns the built-in tables. It panics if the embedded
// data is malformed.
func DefaultTables() *Tables {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("items: embedded tables: %v", err))
	}
	return t
}

// LoadTables loads item tables from a YAML file
func LoadTables(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables parses and merges item tables from YAML
func ParseTables(data []byte) (*Tables, error) {
	var cfg TablesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}
	return NewTables(cfg)
}

// NewTables merges every entry over its category and base defaults
func NewTables(cfg TablesConfig) (*Tables, error) {
	t := &Tables{byRarity: make(map[settings.ItemRarity][]Config)}

	categories := make([]Category, 0, len(cfg.Categories))
	for c := range cfg.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	for _, category := range categories {
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, category)
		}
		table := cfg.Categories[category]

		names := make([]string, 0, len(table.Items))
		for name := range table.Items {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			var entry Config
			if override := table.Items[name]; override != nil {
				entry = *override
			}
			entry.Name = name
			merged := Merge(cfg.Base, Config{Category: category}, table.Defaults, entry)

			if merged.Rarity.Rank() < 0 {
				return nil, fmt.Errorf("%w: %q on %q", ErrInvalidRarity, merged.Rarity, name)
			}
			t.entries = append(t.entries, merged)
			t.byRarity[merged.Rarity] = append(t.byRarity[merged.Rarity], merged)
		}
	}

	if len(t.entries) == 0 {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// Entries returns every merged record, sorted by category then name
func (t *Tables) Entries() []Config {
	out := make([]Config, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the merged record for an item name
func (t *Tables) Lookup(name string) (Config, bool) {
	for _, entry := range t.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Config{}, false
}

// RandomItem returns a random item of the given rarity. If no items exist
// for the rarity, falls back to lower rarities, then higher ones.
func (t *Tables) RandomItem(rarity settings.ItemRarity, r *dice.Roller) (Item, bool) {
	rank := rarity.Rank()
	if rank < 0 {
		return Item{}, false
	}

	for i := rank; i >= 0; i-- {
		if item, ok := t.pick(settings.ItemRarities[i], r); ok {
			return item, true
		}
	}
	for i := rank + 1; i < len(settings.ItemRarities); i++ {
		if item, ok := t.pick(settings.ItemRarities[i], r); ok {
			return item, true
		}
	}
	return Item{}, false
}

func (t *Tables) pick(rarity settings.ItemRarity, r *dice.Roller) (Item, bool) {
	candidates := t.byRarity[rarity]
	if len(candidates) == 0 {
		return Item{}, false
	}

	cfg := dice.Pick(r, candidates)
	variant := ""
	if len(cfg.Variants) > 0 {
		variant = dice.Pick(r, cfg.Variants)
	}
	return NewItem(cfg, variant), true
}
