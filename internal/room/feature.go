package room

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// ErrInvalidFeature is returned when describing an unknown feature.
var ErrInvalidFeature = errors.New("invalid room feature")

// Feature is a qualitative trait of a room
type Feature string

const (
	FeatureAltar       Feature = "altar"
	FeatureBeams       Feature = "beams"
	FeatureCobwebs     Feature = "cobwebs"
	FeatureDampWalls   Feature = "dampWalls"
	FeatureFireplace   Feature = "fireplace"
	FeatureHighCeiling Feature = "highCeiling"
	FeatureLowCeiling  Feature = "lowCeiling"
	FeaturePillars     Feature = "pillars"
	FeaturePit         Feature = "pit"
	FeatureRubble      Feature = "rubble"
	FeatureStatue      Feature = "statue"
	FeatureWell        Feature = "well"
)

// Features lists every feature in selection order.
var Features = []Feature{
	FeatureAltar, FeatureBeams, FeatureCobwebs, FeatureDampWalls,
	FeatureFireplace, FeatureHighCeiling, FeatureLowCeiling, FeaturePillars,
	FeaturePit, FeatureRubble, FeatureStatue, FeatureWell,
}

// featureRule is the inclusion chance and smallest room size for a feature
type featureRule struct {
	chance  int
	minSize settings.RoomSize
}

var featureRules = map[Feature]featureRule{
	FeatureAltar:       {chance: 4, minSize: settings.SizeSmall},
	FeatureBeams:       {chance: 10, minSize: settings.SizeTiny},
	FeatureCobwebs:     {chance: 15, minSize: settings.SizeTiny},
	FeatureDampWalls:   {chance: 12, minSize: settings.SizeTiny},
	FeatureFireplace:   {chance: 6, minSize: settings.SizeSmall},
	FeatureHighCeiling: {chance: 8, minSize: settings.SizeMedium},
	FeatureLowCeiling:  {chance: 8, minSize: settings.SizeTiny},
	FeaturePillars:     {chance: 8, minSize: settings.SizeMedium},
	FeaturePit:         {chance: 4, minSize: settings.SizeSmall},
	FeatureRubble:      {chance: 10, minSize: settings.SizeTiny},
	FeatureStatue:      {chance: 5, minSize: settings.SizeSmall},
	FeatureWell:        {chance: 3, minSize: settings.SizeMedium},
}

// typeBoosts adds percent to a feature's chance for fitting room types
var typeBoosts = map[settings.RoomType]map[Feature]int{
	settings.TypeShrine:    {FeatureAltar: 60, FeatureStatue: 25},
	settings.TypeThrone:    {FeatureHighCeiling: 30, FeaturePillars: 30, FeatureStatue: 15},
	settings.TypeGreatHall: {FeatureHighCeiling: 30, FeaturePillars: 25, FeatureFireplace: 20},
	settings.TypeBallroom:  {FeatureHighCeiling: 25, FeaturePillars: 20},
	settings.TypeAtrium:    {FeatureHighCeiling: 20, FeatureStatue: 15, FeatureWell: 10},
	settings.TypeKitchen:   {FeatureFireplace: 40},
	settings.TypeSmithy:    {FeatureFireplace: 40},
	settings.TypeParlour:   {FeatureFireplace: 25},
	settings.TypePrison:    {FeatureDampWalls: 30, FeatureLowCeiling: 20},
	settings.TypeTorture:   {FeatureDampWalls: 20, FeaturePit: 15},
	settings.TypeStorage:   {FeatureCobwebs: 20, FeatureBeams: 15},
	settings.TypePantry:    {FeatureCobwebs: 20},
	settings.TypeBathhouse: {FeatureDampWalls: 40, FeatureWell: 10},
}

// exclusions holds features that cannot appear alongside an earlier one
var exclusions = map[Feature]Feature{
	FeatureLowCeiling: FeatureHighCeiling,
}

//go:embed locale/features.po
var featureCatalogPO []byte

var (
	featureCatalog     *gotext.Po
	featureCatalogOnce sync.Once
)

// lookup calls through a variable so msgids built at runtime are not
// treated as format strings.
var lookup = (*gotext.Po).Get

func catalog() *gotext.Po {
	featureCatalogOnce.Do(func() {
		featureCatalog = gotext.NewPo()
		featureCatalog.Parse(featureCatalogPO)
	})
	return featureCatalog
}

// IsValid returns true for a known feature
func (f Feature) IsValid() bool {
	_, ok := featureRules[f]
	return ok
}

// String returns the string representation of the feature
func (f Feature) String() string {
	return string(f)
}

// DescribeFeature returns the text for a feature, or its alternate phrasing
// when variation is set.
func DescribeFeature(f Feature, variation bool) (string, error) {
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFeature, f)
	}

	key := "feature." + string(f)
	if variation {
		key += ".variation"
	}

	desc := lookup(catalog(), key)
	if desc == "" || desc == key {
		// Catalog missing an entry still yields readable text
		return fmt.Sprintf("The room has %s", f), nil
	}
	return desc, nil
}

// SelectFeatures rolls the features for a room described by s. Hallways
// never have features. Order follows Features.
func SelectFeatures(s settings.Settings, r *dice.Roller) []Feature {
	selected := []Feature{}
	if s.RoomType.IsHallway() {
		return selected
	}

	sizeRank := s.RoomSize.Rank()
	if sizeRank < 0 {
		sizeRank = settings.SizeMedium.Rank()
	}
	boosts := typeBoosts[s.RoomType]
	has := make(map[Feature]bool)

	for _, f := range Features {
		rule := featureRules[f]
		if sizeRank < rule.minSize.Rank() {
			continue
		}
		if excluded, ok := exclusions[f]; ok && has[excluded] {
			continue
		}
		if r.Chance(rule.chance + boosts[f]) {
			selected = append(selected, f)
			has[f] = true
		}
	}

	return selected
}
