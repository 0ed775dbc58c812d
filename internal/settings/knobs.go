package settings

// Random is accepted by every enumerated knob and means "roll per room/item".
const Random = "random"

// RoomSize is a size category bounding a room's dimensions.
type RoomSize string

const (
	SizeRandom  RoomSize = Random
	SizeTiny    RoomSize = "tiny"
	SizeSmall   RoomSize = "small"
	SizeMedium  RoomSize = "medium"
	SizeLarge   RoomSize = "large"
	SizeMassive RoomSize = "massive"
)

// RoomSizes lists the concrete size categories, smallest first.
var RoomSizes = []RoomSize{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeMassive}

// String returns the string representation of the size.
func (s RoomSize) String() string {
	return string(s)
}

// IsValid returns true for a concrete size or random.
func (s RoomSize) IsValid() bool {
	return s == SizeRandom || s.Rank() >= 0
}

// Rank returns the index of the size in RoomSizes, or -1.
func (s RoomSize) Rank() int {
	for i, size := range RoomSizes {
		if size == s {
			return i
		}
	}
	return -1
}

// Smaller returns the next size down, or the same size when already smallest.
func (s RoomSize) Smaller() RoomSize {
	rank := s.Rank()
	if rank <= 0 {
		return s
	}
	return RoomSizes[rank-1]
}

// RoomType is the purpose of a room.
type RoomType string

const (
	TypeRandom     RoomType = Random
	TypeRoom       RoomType = "room"
	TypeHallway    RoomType = "hallway"
	TypeArmory     RoomType = "armory"
	TypeAtrium     RoomType = "atrium"
	TypeBallroom   RoomType = "ballroom"
	TypeBathhouse  RoomType = "bathhouse"
	TypeBedroom    RoomType = "bedroom"
	TypeChamber    RoomType = "chamber"
	TypeDining     RoomType = "dining"
	TypeDormitory  RoomType = "dormitory"
	TypeGreatHall  RoomType = "greatHall"
	TypeKitchen    RoomType = "kitchen"
	TypeLaboratory RoomType = "laboratory"
	TypeLibrary    RoomType = "library"
	TypePantry     RoomType = "pantry"
	TypeParlour    RoomType = "parlour"
	TypePrison     RoomType = "prison"
	TypeShrine     RoomType = "shrine"
	TypeSmithy     RoomType = "smithy"
	TypeStorage    RoomType = "storage"
	TypeStudy      RoomType = "study"
	TypeThrone     RoomType = "throne"
	TypeTorture    RoomType = "torture"
	TypeTreasury   RoomType = "treasury"
)

// RoomTypes lists every concrete room type.
var RoomTypes = []RoomType{
	TypeRoom, TypeHallway, TypeArmory, TypeAtrium, TypeBallroom, TypeBathhouse,
	TypeBedroom, TypeChamber, TypeDining, TypeDormitory, TypeGreatHall, TypeKitchen,
	TypeLaboratory, TypeLibrary, TypePantry, TypeParlour, TypePrison, TypeShrine,
	TypeSmithy, TypeStorage, TypeStudy, TypeThrone, TypeTorture, TypeTreasury,
}

// String returns the string representation of the room type.
func (t RoomType) String() string {
	return string(t)
}

// IsValid returns true for a concrete room type or random.
func (t RoomType) IsValid() bool {
	if t == TypeRandom {
		return true
	}
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// IsHallway returns true for hallway rooms.
func (t RoomType) IsHallway() bool {
	return t == TypeHallway
}

// ItemQuantity controls how many items a room holds.
type ItemQuantity string

const (
	QuantityRandom   ItemQuantity = Random
	QuantityZero     ItemQuantity = "zero"
	QuantityOne      ItemQuantity = "one"
	QuantityCouple   ItemQuantity = "couple"
	QuantityFew      ItemQuantity = "few"
	QuantitySome     ItemQuantity = "some"
	QuantitySeveral  ItemQuantity = "several"
	QuantityMany     ItemQuantity = "many"
	QuantityNumerous ItemQuantity = "numerous"
)

// ItemQuantities lists the concrete quantities, fewest first.
var ItemQuantities = []ItemQuantity{
	QuantityZero, QuantityOne, QuantityCouple, QuantityFew,
	QuantitySome, QuantitySeveral, QuantityMany, QuantityNumerous,
}

// quantityRanges maps each quantity to an inclusive item count range.
var quantityRanges = map[ItemQuantity][2]int{
	QuantityZero:     {0, 0},
	QuantityOne:      {1, 1},
	QuantityCouple:   {2, 2},
	QuantityFew:      {3, 4},
	QuantitySome:     {5, 8},
	QuantitySeveral:  {8, 12},
	QuantityMany:     {12, 20},
	QuantityNumerous: {20, 30},
}

// String returns the string representation of the quantity.
func (q ItemQuantity) String() string {
	return string(q)
}

// IsValid returns true for a concrete quantity or random.
func (q ItemQuantity) IsValid() bool {
	if q == QuantityRandom {
		return true
	}
	_, ok := quantityRanges[q]
	return ok
}

// CountRange returns the inclusive item count range for a concrete quantity.
func (q ItemQuantity) CountRange() (min, max int, ok bool) {
	r, ok := quantityRanges[q]
	return r[0], r[1], ok
}

// ItemRarity is the scarcity tier of an item.
type ItemRarity string

const (
	RarityRandom    ItemRarity = Random
	RarityAbundant  ItemRarity = "abundant"
	RarityCommon    ItemRarity = "common"
	RarityAverage   ItemRarity = "average"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityExotic    ItemRarity = "exotic"
	RarityLegendary ItemRarity = "legendary"
)

// ItemRarities lists the concrete rarities, most plentiful first.
var ItemRarities = []ItemRarity{
	RarityAbundant, RarityCommon, RarityAverage, RarityUncommon,
	RarityRare, RarityExotic, RarityLegendary,
}

// String returns the string representation of the rarity.
func (r ItemRarity) String() string {
	return string(r)
}

// Rank returns the index of the rarity in ItemRarities, or -1.
func (r ItemRarity) Rank() int {
	for i, rarity := range ItemRarities {
		if rarity == r {
			return i
		}
	}
	return -1
}

// IsValid returns true for a concrete rarity or random.
func (r ItemRarity) IsValid() bool {
	return r == RarityRandom || r.Rank() >= 0
}
