package dungeon

import (
	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// DoorType is the construction of a door
type DoorType string

const (
	DoorArchway    DoorType = "archway"
	DoorPassageway DoorType = "passageway"
	DoorHole       DoorType = "hole"
	DoorWooden     DoorType = "wooden"
	DoorStone      DoorType = "stone"
	DoorIron       DoorType = "iron"
	DoorBrass      DoorType = "brass"
	DoorPortcullis DoorType = "portcullis"
	DoorMechanical DoorType = "mechanical"
	DoorSecret     DoorType = "secret"
	DoorConcealed  DoorType = "concealed"
)

// DoorTypes lists every door type
var DoorTypes = []DoorType{
	DoorArchway, DoorPassageway, DoorHole, DoorWooden, DoorStone, DoorIron,
	DoorBrass, DoorPortcullis, DoorMechanical, DoorSecret, DoorConcealed,
}

// Rules defines how doors are typed when two rooms are joined
type Rules struct {
	// Weights is the relative chance of each door type. Types with no
	// weight are only reached through promotion.
	Weights map[DoorType]int

	// Open types are doorless openings, the only kind between two hallways
	Open map[DoorType]bool

	// Secret types replace the rolled type when the secret chance hits
	Secret []DoorType

	// Lockable types can be locked
	Lockable map[DoorType]bool
}

// DefaultRules returns the standard door rules
func DefaultRules() *Rules {
	r := &Rules{
		Weights:  make(map[DoorType]int),
		Open:     make(map[DoorType]bool),
		Lockable: make(map[DoorType]bool),
		Secret:   []DoorType{DoorSecret, DoorConcealed},
	}

	r.Weights[DoorArchway] = 8
	r.Weights[DoorPassageway] = 10
	r.Weights[DoorHole] = 2
	r.Weights[DoorWooden] = 20
	r.Weights[DoorStone] = 8
	r.Weights[DoorIron] = 5
	r.Weights[DoorBrass] = 2
	r.Weights[DoorPortcullis] = 3
	r.Weights[DoorMechanical] = 2

	for _, t := range []DoorType{DoorArchway, DoorPassageway, DoorHole} {
		r.Open[t] = true
	}
	for _, t := range []DoorType{DoorWooden, DoorStone, DoorIron, DoorBrass, DoorPortcullis, DoorMechanical} {
		r.Lockable[t] = true
	}

	return r
}

// IsOpen returns true for a doorless opening
func (r *Rules) IsOpen(t DoorType) bool {
	return r.Open[t]
}

// IsLockable returns true if the door type can be locked
func (r *Rules) IsLockable(t DoorType) bool {
	return r.Lockable[t]
}

// IsSecret returns true if the door type is hidden
func (r *Rules) IsSecret(t DoorType) bool {
	for _, s := range r.Secret {
		if s == t {
			return true
		}
	}
	return false
}

// Choose rolls the type of a door between rooms of type a and b and
// whether it is locked.
func (r *Rules) Choose(a, b settings.RoomType, s settings.Settings, rng *dice.Roller) (DoorType, bool) {
	bothHalls := a.IsHallway() && b.IsHallway()

	var options []dice.Weighted[DoorType]
	for _, t := range DoorTypes {
		w := r.Weights[t]
		if w <= 0 || (bothHalls && !r.Open[t]) {
			continue
		}
		options = append(options, dice.Weighted[DoorType]{Value: t, Weight: w})
	}

	doorType, ok := dice.PickWeighted(rng, options)
	if !ok {
		doorType = DoorArchway
	}

	// Hallways stay open to each other
	if !bothHalls && len(r.Secret) > 0 && rng.Chance(s.SecretDoorChance) {
		doorType = dice.Pick(rng, r.Secret)
	}

	locked := r.Lockable[doorType] && rng.Chance(s.LockedDoorChance)
	return doorType, locked
}
