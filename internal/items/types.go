package items

// Category groups item table entries
type Category string

const (
	CategorySurvival  Category = "survival"
	CategoryContainer Category = "container"
	CategoryTool      Category = "tool"
	CategoryTreasure  Category = "treasure"
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryPotion    Category = "potion"
)

// Categories lists every category the default tables provide
var Categories = []Category{
	CategorySurvival, CategoryContainer, CategoryTool, CategoryTreasure,
	CategoryWeapon, CategoryArmor, CategoryPotion,
}

// String returns the string representation of a Category
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is known
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Size is the physical bulk of an item
type Size string

const (
	SizeTiny   Size = "tiny"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)
