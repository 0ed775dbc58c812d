package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/dungeongen/internal/dice"
	"github.com/lawnchairsociety/dungeongen/internal/dungeon"
	"github.com/lawnchairsociety/dungeongen/internal/items"
	"github.com/lawnchairsociety/dungeongen/internal/optional"
	"github.com/lawnchairsociety/dungeongen/internal/room"
	"github.com/lawnchairsociety/dungeongen/internal/settings"
	"github.com/lawnchairsociety/dungeongen/internal/trap"
)

// outputHeader is written as a comment block and a settings section
type outputHeader struct {
	Mode     string
	Seed     int64
	Settings settings.Settings
}

// featureYAML is a feature with its description text
type featureYAML struct {
	Name        room.Feature `yaml:"name"`
	Description string       `yaml:"description"`
}

// roomYAML is the written form of a room
type roomYAML struct {
	RoomNumber int                         `yaml:"room_number"`
	Type       settings.RoomType           `yaml:"type"`
	Size       settings.RoomSize           `yaml:"size"`
	Dimensions room.Dimensions             `yaml:"dimensions,flow"`
	Features   []featureYAML               `yaml:"features,omitempty"`
	Items      []items.Item                `yaml:"items"`
	Keys       optional.Value[[]room.Key]  `yaml:"keys,omitempty"`
	Traps      optional.Value[[]trap.Trap] `yaml:"traps,omitempty"`
	HasMap     bool                        `yaml:"map,omitempty"`
	Position   *dungeon.Rect               `yaml:"position,omitempty,flow"`
	Doors      []dungeon.Door              `yaml:"doors,omitempty"`
}

// WriteItemsYAML writes one room's worth of items on their own
func WriteItemsYAML(w io.Writer, header outputHeader, list []items.Item) error {
	writeHeader(w, header, fmt.Sprintf("Item count: %d", items.TotalCount(list)))

	doc := yaml.Node{Kind: yaml.MappingNode}
	if err := addEncodedField(&doc, "settings", header.Settings); err != nil {
		return err
	}
	if list == nil {
		list = []items.Item{}
	}
	if err := addEncodedField(&doc, "items", list); err != nil {
		return err
	}

	return encode(w, &doc)
}

// WriteRoomsYAML writes standalone rooms
func WriteRoomsYAML(w io.Writer, header outputHeader, rooms []*room.Room, r *dice.Roller) error {
	writeHeader(w, header, roomCountLine(len(rooms), header))

	doc := yaml.Node{Kind: yaml.MappingNode}
	if err := addEncodedField(&doc, "settings", header.Settings); err != nil {
		return err
	}

	roomsNode := yaml.Node{Kind: yaml.SequenceNode}
	for _, rm := range rooms {
		view, err := newRoomYAML(rm, r)
		if err != nil {
			return err
		}
		if err := appendEncoded(&roomsNode, view); err != nil {
			return err
		}
	}
	addNodeField(&doc, "rooms", &roomsNode)

	return encode(w, &doc)
}

// WriteDungeonYAML writes a dungeon: its map size, grid and rooms with their doors
func WriteDungeonYAML(w io.Writer, header outputHeader, d *dungeon.Dungeon, r *dice.Roller) error {
	writeHeader(w, header, roomCountLine(len(d.Rooms), header))

	doc := yaml.Node{Kind: yaml.MappingNode}
	if err := addEncodedField(&doc, "settings", header.Settings); err != nil {
		return err
	}
	if err := addEncodedField(&doc, "map_dimensions", d.MapDimensions); err != nil {
		return err
	}
	addNodeField(&doc, "grid", gridNode(d.Grid))

	roomsNode := yaml.Node{Kind: yaml.SequenceNode}
	for _, rm := range d.Rooms {
		view, err := newRoomYAML(rm, r)
		if err != nil {
			return err
		}
		if rect, ok := d.Layout[rm.RoomNumber]; ok {
			view.Position = &rect
		}
		view.Doors = d.Doors[rm.RoomNumber]

		if err := appendEncoded(&roomsNode, view); err != nil {
			return err
		}
	}
	addNodeField(&doc, "rooms", &roomsNode)

	return encode(w, &doc)
}

func writeHeader(w io.Writer, header outputHeader, summary string) {
	fmt.Fprintf(w, "# Generated %s\n", header.Mode)
	fmt.Fprintf(w, "# Generated with seed: %d\n", header.Seed)
	fmt.Fprintf(w, "# %s\n\n", summary)
}

func roomCountLine(count int, header outputHeader) string {
	return fmt.Sprintf("Room count: %d of %d requested", count, header.Settings.RoomCount)
}

// newRoomYAML converts a room, describing each feature. Each description
// picks the baseline or variation text at random.
func newRoomYAML(rm *room.Room, r *dice.Roller) (roomYAML, error) {
	view := roomYAML{
		RoomNumber: rm.RoomNumber,
		Type:       rm.Type,
		Size:       rm.Size,
		Dimensions: rm.Dimensions,
		Items:      rm.Items,
		Keys:       rm.Keys,
		Traps:      rm.Traps,
		HasMap:     rm.HasMap,
	}

	for _, f := range rm.Features {
		desc, err := room.DescribeFeature(f, r.Bool())
		if err != nil {
			return view, fmt.Errorf("room %d: %w", rm.RoomNumber, err)
		}
		view.Features = append(view.Features, featureYAML{Name: f, Description: desc})
	}

	return view, nil
}

// gridNode writes each grid row as a flow sequence of room numbers
func gridNode(g *dungeon.Grid) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for y := 0; y < g.Height; y++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for x := 0; x < g.Width; x++ {
			row.Content = append(row.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.Itoa(g.At(x, y).Room),
			})
		}
		node.Content = append(node.Content, row)
	}
	return node
}

func addNodeField(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		value,
	)
}

func addEncodedField(node *yaml.Node, key string, value any) error {
	var valueNode yaml.Node
	if err := valueNode.Encode(value); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	addNodeField(node, key, &valueNode)
	return nil
}

func appendEncoded(seq *yaml.Node, value any) error {
	var valueNode yaml.Node
	if err := valueNode.Encode(value); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	seq.Content = append(seq.Content, &valueNode)
	return nil
}

func encode(w io.Writer, doc *yaml.Node) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
