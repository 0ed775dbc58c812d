package dungeon

import "sort"

// Door joins two rooms
type Door struct {
	// Connects holds the room numbers, the earlier placed room first
	Connects [2]int   `yaml:"connects,flow"`
	Type     DoorType `yaml:"type"`
	Locked   bool     `yaml:"locked"`
	Secret   bool     `yaml:"secret,omitempty"`

	// Direction is the side of Connects[0] the door is on
	Direction Direction `yaml:"direction"`

	// Cells is the grid cell on each side, matching Connects
	Cells [2]Point `yaml:"cells,flow"`
}

// Other returns the room on the far side of the door from roomNumber
func (d Door) Other(roomNumber int) int {
	if d.Connects[0] == roomNumber {
		return d.Connects[1]
	}
	return d.Connects[0]
}

// Side returns the wall of roomNumber's room the door is set in
func (d Door) Side(roomNumber int) Direction {
	if d.Connects[0] == roomNumber {
		return d.Direction
	}
	return d.Direction.Opposite()
}

// translate shifts both door cells by dx, dy
func (d Door) translate(dx, dy int) Door {
	for i := range d.Cells {
		d.Cells[i].X += dx
		d.Cells[i].Y += dy
	}
	return d
}

// DoorMap maps a room number to the doors touching it, in the order they
// were recorded.
type DoorMap map[int][]Door

// NewDoorMap indexes doors by both of their rooms
func NewDoorMap(doors []Door) DoorMap {
	m := make(DoorMap)
	for _, d := range doors {
		m.add(d)
	}
	return m
}

func (m DoorMap) add(d Door) {
	m[d.Connects[0]] = append(m[d.Connects[0]], d)
	if d.Connects[1] != d.Connects[0] {
		m[d.Connects[1]] = append(m[d.Connects[1]], d)
	}
}

// Neighbors returns the rooms reachable through one door from roomNumber
func (m DoorMap) Neighbors(roomNumber int) []int {
	doors := m[roomNumber]
	out := make([]int, 0, len(doors))
	for _, d := range doors {
		out = append(out, d.Other(roomNumber))
	}
	return out
}

// All returns each door once, ordered by its first room
func (m DoorMap) All() []Door {
	numbers := make([]int, 0, len(m))
	for n := range m {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var out []Door
	for _, n := range numbers {
		for _, d := range m[n] {
			if d.Connects[0] == n {
				out = append(out, d)
			}
		}
	}
	return out
}
