package room

import (
	"errors"
	"strings"
	"testing"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

func TestDescribeFeature(t *testing.T) {
	for _, f := range Features {
		t.Run(string(f), func(t *testing.T) {
			base, err := DescribeFeature(f, false)
			if err != nil {
				t.Fatalf("DescribeFeature(%s, false): %v", f, err)
			}
			if base == "" {
				t.Error("baseline description is empty")
			}

			variation, err := DescribeFeature(f, true)
			if err != nil {
				t.Fatalf("DescribeFeature(%s, true): %v", f, err)
			}
			if variation == "" {
				t.Error("variation description is empty")
			}
			if variation == base {
				t.Errorf("variation should differ from baseline: %q", base)
			}
			for _, desc := range []string{base, variation} {
				if desc == "The room has "+string(f) {
					t.Errorf("%q came from the fallback, not the catalog", desc)
				}
				if strings.Contains(desc, "%!") {
					t.Errorf("%q was formatted as a printf string", desc)
				}
			}
		})
	}
}

func TestDescribeFeatureInvalid(t *testing.T) {
	for _, variation := range []bool{false, true} {
		_, err := DescribeFeature(Feature("captain jim jam"), variation)
		if !errors.Is(err, ErrInvalidFeature) {
			t.Errorf("expected ErrInvalidFeature, got %v", err)
		}
	}
}

func TestEveryFeatureHasRule(t *testing.T) {
	if len(Features) != len(featureRules) {
		t.Errorf("Features has %d entries, rules has %d", len(Features), len(featureRules))
	}
	for _, f := range Features {
		if !f.IsValid() {
			t.Errorf("%s has no rule", f)
		}
	}
}

func TestSelectFeaturesHallway(t *testing.T) {
	r := dice.NewSeededRoller(12345)

	for _, size := range settings.RoomSizes {
		s := settings.DefaultSettings().WithRoomType(settings.TypeHallway).WithRoomSize(size)
		for i := 0; i < 50; i++ {
			got := SelectFeatures(s, r)
			if got == nil || len(got) != 0 {
				t.Fatalf("hallway features = %v, want empty", got)
			}
		}
	}
}

func TestSelectFeaturesOrderAndSize(t *testing.T) {
	r := dice.NewSeededRoller(99)
	order := make(map[Feature]int)
	for i, f := range Features {
		order[f] = i
	}

	s := settings.DefaultSettings().WithRoomType(settings.TypeThrone).WithRoomSize(settings.SizeTiny)
	for i := 0; i < 200; i++ {
		got := SelectFeatures(s, r)
		for j := 1; j < len(got); j++ {
			if order[got[j-1]] >= order[got[j]] {
				t.Fatalf("features out of declared order: %v", got)
			}
		}
		for _, f := range got {
			if featureRules[f].minSize.Rank() > settings.SizeTiny.Rank() {
				t.Errorf("tiny room got %s which needs %s", f, featureRules[f].minSize)
			}
		}
	}
}

func TestSelectFeaturesExclusions(t *testing.T) {
	r := dice.NewSeededRoller(5)
	s := settings.DefaultSettings().WithRoomType(settings.TypeGreatHall).WithRoomSize(settings.SizeMassive)

	for i := 0; i < 500; i++ {
		has := map[Feature]bool{}
		for _, f := range SelectFeatures(s, r) {
			has[f] = true
		}
		if has[FeatureHighCeiling] && has[FeatureLowCeiling] {
			t.Fatal("room has both high and low ceiling")
		}
	}
}

func TestSelectFeaturesTypeBoost(t *testing.T) {
	r := dice.NewSeededRoller(21)
	shrine := settings.DefaultSettings().WithRoomType(settings.TypeShrine).WithRoomSize(settings.SizeLarge)

	altars := 0
	for i := 0; i < 200; i++ {
		for _, f := range SelectFeatures(shrine, r) {
			if f == FeatureAltar {
				altars++
			}
		}
	}
	// 64% per shrine; far above the 4% baseline
	if altars < 80 {
		t.Errorf("shrines rolled %d altars in 200 rooms, expected the boost to apply", altars)
	}
}
