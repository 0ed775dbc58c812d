package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
	"github.com/lawnchairsociety/dungeongen/internal/legend"
)

// symbolStyles colors each map symbol. Unlisted symbols print plain.
var symbolStyles = map[rune]color.Style{
	legend.SymbolRoom:    {color.FgGray},
	legend.SymbolHallway: {color.FgBlue},
	legend.SymbolDoor:    {color.FgYellow, color.OpBold},
	legend.SymbolLocked:  {color.FgRed, color.OpBold},
	legend.SymbolSecret:  {color.FgMagenta, color.OpBold},
	legend.SymbolTrap:    {color.FgRed},
	legend.SymbolKey:     {color.FgGreen, color.OpBold},
	legend.SymbolMap:     {color.FgCyan, color.OpBold},
}

func colorize(symbol rune) string {
	style, ok := symbolStyles[symbol]
	if !ok {
		return string(symbol)
	}
	return style.Sprint(string(symbol))
}

// RenderMap draws the dungeon grid in a border followed by the legend
func RenderMap(d *dungeon.Dungeon) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Dungeon Map (%d rooms, %dx%d)\n",
		len(d.Rooms), d.MapDimensions.GridWidth, d.MapDimensions.GridHeight))

	border := "+" + strings.Repeat("-", d.MapDimensions.GridWidth) + "+\n"
	output.WriteString(border)
	for _, row := range legend.MapRows(d) {
		output.WriteString("|")
		for _, symbol := range row {
			output.WriteString(colorize(symbol))
		}
		output.WriteString("|\n")
	}
	output.WriteString(border)

	l := legend.Build(d.MapDimensions)
	output.WriteString("\nLegend:\n")
	for _, row := range l.Rows {
		parts := make([]string, 0, len(row))
		for _, e := range row {
			parts = append(parts, "["+colorize(e.Symbol)+"] "+e.Label)
		}
		output.WriteString("  " + strings.Join(parts, "  ") + "\n")
	}

	output.WriteString("\nRooms:\n")
	for _, rm := range d.Rooms {
		output.WriteString("  " + roomSummary(d, rm.RoomNumber) + "\n")
	}

	return output.String()
}

// roomSummary is a one-line description of a room's contents and exits
func roomSummary(d *dungeon.Dungeon, number int) string {
	rm := d.Room(number)
	line := fmt.Sprintf("%d %s %s %dx%d", rm.RoomNumber, rm.Type, rm.Size, rm.Dimensions.Width, rm.Dimensions.Height)

	if len(rm.Items) > 0 {
		labels := make([]string, 0, len(rm.Items))
		for _, item := range rm.Items {
			labels = append(labels, item.Label())
		}
		line += "; items: " + strings.Join(labels, ", ")
	}
	if traps := rm.Traps.OrElse(nil); len(traps) > 0 {
		line += fmt.Sprintf("; traps: %d", len(traps))
	}

	var exits []string
	for _, door := range d.Doors[number] {
		exit := fmt.Sprintf("%s to %d (%s", door.Side(number), door.Other(number), door.Type)
		if door.Locked {
			exit += ", locked"
		}
		exits = append(exits, exit+")")
	}
	if len(exits) > 0 {
		line += "; doors: " + strings.Join(exits, ", ")
	}
	return line
}
