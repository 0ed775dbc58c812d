package items

// Stack combines identical items (same name and variant) into a single
// entry with a summed count. First-seen order is preserved.
func Stack(items []Item) []Item {
	stacked := make([]Item, 0, len(items))
	index := make(map[string]int)

	for _, item := range items {
		key := item.Name + "\x00" + item.Variant
		if i, ok := index[key]; ok {
			stacked[i].Count += item.Count
			continue
		}
		index[key] = len(stacked)
		stacked = append(stacked, item)
	}
	return stacked
}

// TotalCount sums the counts of every item in a collection
func TotalCount(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Count
	}
	return total
}
