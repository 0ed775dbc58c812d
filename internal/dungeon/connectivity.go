package dungeon

import "github.com/zyedidia/generic/mapset"

// IsConnected returns true if every room is reachable from room 1 through doors
func (d *Dungeon) IsConnected() bool {
	if len(d.Rooms) == 0 {
		return true
	}

	visited := mapset.New[int]()
	visited.Put(1)
	queue := []int{1}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range d.Doors.Neighbors(current) {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return visited.Size() == len(d.Rooms)
}

// Overlaps returns true if any two rooms in the layout share a cell
func (d *Dungeon) Overlaps() bool {
	return Overlaps(d.Layout)
}

// Overlaps returns true if any two rects share a cell
func Overlaps(layout map[int]Rect) bool {
	rects := make([]Rect, 0, len(layout))
	for _, r := range layout {
		rects = append(rects, r)
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				return true
			}
		}
	}
	return false
}
