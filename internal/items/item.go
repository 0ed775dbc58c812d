package items

import (
	"fmt"

	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// Config is one layer of an item table record. Zero fields are unset and
// leave the value from the layer below in place.
type Config struct {
	Name     string              `yaml:"name,omitempty"`
	Category Category            `yaml:"type,omitempty"`
	Rarity   settings.ItemRarity `yaml:"rarity,omitempty"`
	Size     Size                `yaml:"size,omitempty"`
	Variants []string            `yaml:"variants,omitempty"`
}

// Merge layers configs from lowest to highest precedence: typically the
// base default, the category default, then the entry override.
func Merge(layers ...Config) Config {
	var merged Config
	for _, layer := range layers {
		if layer.Name != "" {
			merged.Name = layer.Name
		}
		if layer.Category != "" {
			merged.Category = layer.Category
		}
		if layer.Rarity != "" {
			merged.Rarity = layer.Rarity
		}
		if layer.Size != "" {
			merged.Size = layer.Size
		}
		if len(layer.Variants) > 0 {
			merged.Variants = append([]string(nil), layer.Variants...)
		}
	}
	return merged
}

// Item is a generated item placed in a room
type Item struct {
	Name     string              `yaml:"name"`
	Category Category            `yaml:"type"`
	Rarity   settings.ItemRarity `yaml:"rarity"`
	Size     Size                `yaml:"size,omitempty"`
	Variant  string              `yaml:"variant,omitempty"`
	Count    int                 `yaml:"count"`
}

// NewItem creates a single item from a merged table record
func NewItem(cfg Config, variant string) Item {
	return Item{
		Name:     cfg.Name,
		Category: cfg.Category,
		Rarity:   cfg.Rarity,
		Size:     cfg.Size,
		Variant:  variant,
		Count:    1,
	}
}

// Label returns the display name including variant and count
func (i Item) Label() string {
	label := i.Name
	if i.Variant != "" {
		label = fmt.Sprintf("%s (%s)", label, i.Variant)
	}
	if i.Count > 1 {
		label = fmt.Sprintf("%s x%d", label, i.Count)
	}
	return label
}
