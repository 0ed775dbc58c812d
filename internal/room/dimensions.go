package room

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
)

// ErrInvalidSizeCategory is returned for an unknown size category.
var ErrInvalidSizeCategory = errors.New("invalid room size category")

// Hallway bounds. The short axis is always narrower than the long axis.
const (
	HallWidthMin  = 1
	HallWidthMax  = 2
	HallLengthMin = 3

	// MinDimension is the smallest width or height of an ordinary room.
	MinDimension = 2
)

// hallRerolls bounds how often the short axis is re-rolled before clamping.
const hallRerolls = 10

// DimensionRanges maps each size category to its [min, max] span.
var DimensionRanges = map[settings.RoomSize][2]int{
	settings.SizeTiny:    {2, 3},
	settings.SizeSmall:   {2, 4},
	settings.SizeMedium:  {2, 5},
	settings.SizeLarge:   {3, 10},
	settings.SizeMassive: {5, 15},
}

// Dimensions is a room's footprint in grid cells.
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Area returns the number of cells covered
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// DimensionOptions selects between ordinary rooms and hallways.
type DimensionOptions struct {
	IsHallway    bool
	IsHorizontal bool // hallway runs east-west
}

// ResolveDimensions draws a width and height for the size category.
func ResolveDimensions(size settings.RoomSize, opts DimensionOptions, r *dice.Roller) (Dimensions, error) {
	bounds, ok := DimensionRanges[size]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidSizeCategory, size)
	}

	if opts.IsHallway {
		return hallwayDimensions(bounds, opts.IsHorizontal, r), nil
	}

	min := bounds[0]
	if min < MinDimension {
		min = MinDimension
	}
	return Dimensions{
		Width:  r.Range(min, bounds[1]),
		Height: r.Range(min, bounds[1]),
	}, nil
}

func hallwayDimensions(bounds [2]int, isHorizontal bool, r *dice.Roller) Dimensions {
	lengthMin := bounds[0]
	if lengthMin < HallLengthMin {
		lengthMin = HallLengthMin
	}
	lengthMax := bounds[1]
	if lengthMax < lengthMin {
		lengthMax = lengthMin
	}

	length := r.Range(lengthMin, lengthMax)
	width := r.Range(HallWidthMin, HallWidthMax)
	for i := 0; i < hallRerolls && width >= length; i++ {
		width = r.Range(HallWidthMin, HallWidthMax)
	}
	if width >= length {
		width = length - 1
		if width < HallWidthMin {
			width = HallWidthMin
			length = HallWidthMin + 1
		}
	}

	if isHorizontal {
		return Dimensions{Width: length, Height: width}
	}
	return Dimensions{Width: width, Height: length}
}
