package items

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

func TestMergePrecedence(t *testing.T) {
	base := Config{Rarity: settings.RarityAverage, Size: SizeSmall}
	category := Config{Category: CategorySurvival, Rarity: settings.RarityUncommon}
	entry := Config{Name: "Tent", Variants: []string{"one-person"}}

	merged := Merge(base, category, entry)

	if merged.Name != "Tent" {
		t.Errorf("Name = %q, want Tent", merged.Name)
	}
	if merged.Rarity != settings.RarityUncommon {
		t.Errorf("Rarity = %q, want category default uncommon", merged.Rarity)
	}
	if merged.Size != SizeSmall {
		t.Errorf("Size = %q, want base default small", merged.Size)
	}
	if merged.Category != CategorySurvival {
		t.Errorf("Category = %q, want survival", merged.Category)
	}

	override := Merge(base, category, Config{Name: "Bedroll", Rarity: settings.RarityCommon})
	if override.Rarity != settings.RarityCommon {
		t.Errorf("entry rarity should win, got %q", override.Rarity)
	}
}

func TestMergeCopiesVariants(t *testing.T) {
	variants := []string{"a", "b"}
	merged := Merge(Config{Variants: variants})
	merged.Variants[0] = "changed"

	if variants[0] != "a" {
		t.Error("Merge aliased the variants slice of its input")
	}
}

func TestDefaultTablesSurvival(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name     string
		rarity   settings.ItemRarity
		size     Size
		variants int
	}{
		{"Bedroll", settings.RarityCommon, SizeSmall, 0},
		{"Firewood", settings.RarityAbundant, SizeSmall, 0},
		{"Crampons", settings.RarityUncommon, SizeSmall, 0},
		{"Fishing net, large", settings.RarityUncommon, SizeLarge, 0},
		{"Fishing net", settings.RarityUncommon, SizeSmall, 2},
		{"Tent", settings.RarityUncommon, SizeSmall, 3},
		{"Climber’s kit", settings.RarityUncommon, SizeSmall, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := tables.Lookup(tt.name)
			if !ok {
				t.Fatalf("%q missing from default tables", tt.name)
			}
			if cfg.Category != CategorySurvival {
				t.Errorf("Category = %q, want survival", cfg.Category)
			}
			if cfg.Rarity != tt.rarity {
				t.Errorf("Rarity = %q, want %q", cfg.Rarity, tt.rarity)
			}
			if cfg.Size != tt.size {
				t.Errorf("Size = %q, want %q", cfg.Size, tt.size)
			}
			if len(cfg.Variants) != tt.variants {
				t.Errorf("Variants = %v, want %d entries", cfg.Variants, tt.variants)
			}
		})
	}
}

func TestDefaultTablesEveryRarityValid(t *testing.T) {
	for _, cfg := range DefaultTables().Entries() {
		if cfg.Rarity.Rank() < 0 {
			t.Errorf("%q has invalid rarity %q", cfg.Name, cfg.Rarity)
		}
		if !cfg.Category.IsValid() {
			t.Errorf("%q has invalid category %q", cfg.Name, cfg.Category)
		}
	}
}

func TestParseTablesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "categories: {}\n", ErrEmptyTable},
		{"bad rarity", "categories:\n  tool:\n    items:\n      Saw: { rarity: shiny }\n", ErrInvalidRarity},
		{"no rarity anywhere", "categories:\n  tool:\n    items:\n      Saw:\n", ErrInvalidRarity},
		{"unknown category", "base: {rarity: common}\ncategories:\n  spaceship:\n    items:\n      Saw:\n", ErrUnknownSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseTables error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadTablesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	content := `
base:
  rarity: common
categories:
  tool:
    items:
      Saw:
      Chisel: { rarity: rare }
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if got := len(tables.Entries()); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}

	if _, err := LoadTables(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRandomItemFallback(t *testing.T) {
	tables, err := ParseTables([]byte(`
categories:
  tool:
    defaults: { rarity: common }
    items:
      Saw:
  treasure:
    items:
      Crown: { rarity: legendary }
`))
	if err != nil {
		t.Fatal(err)
	}
	r := dice.NewSeededRoller(12345)

	// Nothing at rare: falls back down to common
	item, ok := tables.RandomItem(settings.RarityRare, r)
	if !ok || item.Name != "Saw" {
		t.Errorf("RandomItem(rare) = %+v, %v; want Saw", item, ok)
	}

	// Nothing at or below abundant: falls forward to the next rarity up
	item, ok = tables.RandomItem(settings.RarityAbundant, r)
	if !ok || item.Name != "Saw" {
		t.Errorf("RandomItem(abundant) = %+v, %v; want Saw", item, ok)
	}

	item, ok = tables.RandomItem(settings.RarityLegendary, r)
	if !ok || item.Name != "Crown" {
		t.Errorf("RandomItem(legendary) = %+v, %v; want Crown", item, ok)
	}

	if _, ok := tables.RandomItem(settings.RarityRandom, r); ok {
		t.Error("RandomItem should reject a non-concrete rarity")
	}
}

func TestRandomItemPicksVariant(t *testing.T) {
	tables := DefaultTables()
	r := dice.NewSeededRoller(8)
	tent, _ := tables.Lookup("Tent")

	for i := 0; i < 50; i++ {
		item, ok := tables.RandomItem(settings.RarityUncommon, r)
		if !ok {
			t.Fatal("expected an uncommon item")
		}
		if item.Name != "Tent" {
			continue
		}
		found := false
		for _, v := range tent.Variants {
			if v == item.Variant {
				found = true
			}
		}
		if !found {
			t.Errorf("Tent variant %q not in %v", item.Variant, tent.Variants)
		}
	}
}

func TestPopulateItemsQuantity(t *testing.T) {
	tests := []struct {
		quantity settings.ItemQuantity
		min, max int
	}{
		{settings.QuantityZero, 0, 0},
		{settings.QuantityOne, 1, 1},
		{settings.QuantityCouple, 2, 2},
		{settings.QuantityFew, 3, 4},
		{settings.QuantityNumerous, 20, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.quantity), func(t *testing.T) {
			s := settings.DefaultSettings()
			s.ItemQuantity = tt.quantity
			r := dice.NewSeededRoller(12345)

			for i := 0; i < 20; i++ {
				got := PopulateItems(s, r)
				if got == nil {
					t.Fatal("PopulateItems returned nil")
				}
				total := TotalCount(got)
				if total < tt.min || total > tt.max {
					t.Errorf("item count = %d, want %d-%d", total, tt.min, tt.max)
				}
			}
		})
	}
}

func TestPopulateItemsFixedRarity(t *testing.T) {
	s := settings.DefaultSettings()
	s.ItemQuantity = settings.QuantitySeveral
	s.ItemRarity = settings.RarityLegendary
	r := dice.NewSeededRoller(5)

	for _, item := range PopulateItems(s, r) {
		if item.Rarity != settings.RarityLegendary {
			t.Errorf("%q has rarity %q, want legendary", item.Name, item.Rarity)
		}
	}
}

func TestPopulatorWithoutTables(t *testing.T) {
	p := NewPopulator(nil)
	got := p.PopulateItems(settings.DefaultSettings(), dice.NewSeededRoller(1))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestRollRarity(t *testing.T) {
	r := dice.NewSeededRoller(77)

	if got := RollRarity(settings.RarityExotic, r); got != settings.RarityExotic {
		t.Errorf("RollRarity(exotic) = %q", got)
	}
	for i := 0; i < 100; i++ {
		if got := RollRarity(settings.RarityRandom, r); got.Rank() < 0 {
			t.Fatalf("RollRarity(random) = %q, not a concrete rarity", got)
		}
	}
}

func TestStack(t *testing.T) {
	in := []Item{
		{Name: "Torch", Count: 1},
		{Name: "Rope", Variant: "silk", Count: 1},
		{Name: "Torch", Count: 2},
		{Name: "Rope", Variant: "hempen", Count: 1},
	}

	got := Stack(in)
	if len(got) != 3 {
		t.Fatalf("Stack produced %d entries, want 3: %+v", len(got), got)
	}
	if got[0].Name != "Torch" || got[0].Count != 3 {
		t.Errorf("first entry = %+v, want Torch x3", got[0])
	}
	if TotalCount(got) != 5 {
		t.Errorf("TotalCount = %d, want 5", TotalCount(got))
	}
}

func TestItemLabel(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Name: "Torch", Count: 1}, "Torch"},
		{Item{Name: "Tent", Variant: "pavilion", Count: 1}, "Tent (pavilion)"},
		{Item{Name: "Coins", Variant: "gold", Count: 4}, "Coins (gold) x4"},
	}
	for _, tt := range tests {
		if got := tt.item.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
