package items

import (
	"sync"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// rarityWeights drives per-item rarity rolls when item_rarity is random
var rarityWeights = []dice.Weighted[settings.ItemRarity]{
	{Value: settings.RarityAbundant, Weight: 30},
	{Value: settings.RarityCommon, Weight: 25},
	{Value: settings.RarityAverage, Weight: 18},
	{Value: settings.RarityUncommon, Weight: 12},
	{Value: settings.RarityRare, Weight: 8},
	{Value: settings.RarityExotic, Weight: 5},
	{Value: settings.RarityLegendary, Weight: 2},
}

// Populator fills rooms with items drawn from item tables
type Populator struct {
	tables *Tables
}

// NewPopulator creates a populator over the given tables
func NewPopulator(tables *Tables) *Populator {
	return &Populator{tables: tables}
}

var (
	defaultPopulator     *Populator
	defaultPopulatorOnce sync.Once
)

// DefaultPopulator returns a shared populator over the built-in tables
func DefaultPopulator() *Populator {
	defaultPopulatorOnce.Do(func() {
		defaultPopulator = NewPopulator(DefaultTables())
	})
	return defaultPopulator
}

// PopulateItems generates a room's items with the built-in tables
func PopulateItems(s settings.Settings, r *dice.Roller) []Item {
	return DefaultPopulator().PopulateItems(s, r)
}

// PopulateItems generates the items for one room. The result is never nil
// and may be empty. Identical items are stacked.
func (p *Populator) PopulateItems(s settings.Settings, r *dice.Roller) []Item {
	result := []Item{}
	if p.tables == nil {
		return result
	}

	count := ItemCount(s.ItemQuantity, r)
	for i := 0; i < count; i++ {
		item, ok := p.tables.RandomItem(RollRarity(s.ItemRarity, r), r)
		if ok {
			result = append(result, item)
		}
	}

	return Stack(result)
}

// ItemCount resolves a quantity knob to a concrete number of items
func ItemCount(q settings.ItemQuantity, r *dice.Roller) int {
	if q == settings.QuantityRandom {
		q = dice.Pick(r, settings.ItemQuantities)
	}
	min, max, ok := q.CountRange()
	if !ok {
		return 0
	}
	return r.Range(min, max)
}

// RollRarity returns the configured rarity, or a weighted roll when random
func RollRarity(rarity settings.ItemRarity, r *dice.Roller) settings.ItemRarity {
	if rarity != settings.RarityRandom {
		return rarity
	}
	rolled, ok := dice.PickWeighted(r, rarityWeights)
	if !ok {
		return settings.RarityAverage
	}
	return rolled
}
