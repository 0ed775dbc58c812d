package legend

import (
	"sort"

	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
)

// MapRows draws the dungeon grid one rune per cell. Doors are drawn on
// both of their cells and each room's markers run along its top row.
func MapRows(d *dungeon.Dungeon) [][]rune {
	rows := make([][]rune, d.Grid.Height)
	for y := range rows {
		rows[y] = make([]rune, d.Grid.Width)
		for x := range rows[y] {
			switch d.Grid.At(x, y).Kind {
			case dungeon.CellRoom:
				rows[y][x] = SymbolRoom
			case dungeon.CellHallway:
				rows[y][x] = SymbolHallway
			default:
				rows[y][x] = SymbolEmpty
			}
		}
	}

	for _, door := range d.Doors.All() {
		symbol := SymbolDoor
		switch {
		case door.Secret:
			symbol = SymbolSecret
		case door.Locked:
			symbol = SymbolLocked
		}
		for _, c := range door.Cells {
			rows[c.Y][c.X] = symbol
		}
	}

	numbers := make([]int, 0, len(d.Layout))
	for n := range d.Layout {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	for _, n := range numbers {
		rm := d.Room(n)
		if rm == nil {
			continue
		}
		rect := d.Layout[n]
		x := rect.X
		for _, m := range markers(rm.Traps.IsPresent(), rm.Keys.IsPresent(), rm.HasMap) {
			if x >= rect.X+rect.Width {
				break
			}
			rows[rect.Y][x] = m
			x++
		}
	}

	return rows
}

func markers(trap, key, hasMap bool) []rune {
	var out []rune
	if trap {
		out = append(out, SymbolTrap)
	}
	if key {
		out = append(out, SymbolKey)
	}
	if hasMap {
		out = append(out, SymbolMap)
	}
	return out
}
