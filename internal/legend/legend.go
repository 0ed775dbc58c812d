// Package legend builds the symbol key and plain text map for a dungeon.
package legend

import (
	"strings"

	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
)

// Map symbols, one character per grid cell
const (
	SymbolEmpty   = ' '
	SymbolRoom    = '#'
	SymbolHallway = '.'
	SymbolDoor    = '+'
	SymbolLocked  = '='
	SymbolSecret  = 's'
	SymbolTrap    = '^'
	SymbolKey     = 'k'
	SymbolMap     = 'm'
)

// entrySeparator sits between entries on one row
const entrySeparator = "  "

// Entry is one symbol and what it means
type Entry struct {
	Symbol rune
	Label  string
}

// String renders the entry as it appears in the legend
func (e Entry) String() string {
	return "[" + string(e.Symbol) + "] " + e.Label
}

// Entries lists every legend entry in display order
var Entries = []Entry{
	{SymbolRoom, "Room"},
	{SymbolHallway, "Hallway"},
	{SymbolDoor, "Door"},
	{SymbolLocked, "Locked door"},
	{SymbolSecret, "Secret door"},
	{SymbolTrap, "Trap"},
	{SymbolKey, "Key"},
	{SymbolMap, "Map"},
}

// Legend is the symbol key laid out in rows
type Legend struct {
	Rows [][]Entry
}

// Build lays out the legend so no row is wider than the map. A row always
// holds at least one entry, even when that entry alone is wider.
func Build(dims dungeon.MapDimensions) Legend {
	var rows [][]Entry
	var row []Entry
	width := 0

	for _, e := range Entries {
		w := len(e.String())
		if len(row) > 0 && width+len(entrySeparator)+w > dims.GridWidth {
			rows = append(rows, row)
			row, width = nil, 0
		}
		if len(row) > 0 {
			width += len(entrySeparator)
		}
		row = append(row, e)
		width += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return Legend{Rows: rows}
}

// Lines renders each row of the legend
func (l Legend) Lines() []string {
	lines := make([]string, 0, len(l.Rows))
	for _, row := range l.Rows {
		parts := make([]string, 0, len(row))
		for _, e := range row {
			parts = append(parts, e.String())
		}
		lines = append(lines, strings.Join(parts, entrySeparator))
	}
	return lines
}

// String renders the legend with a heading
func (l Legend) String() string {
	return "Legend:\n" + strings.Join(l.Lines(), "\n") + "\n"
}
