package domain

// DropdownEntry is one choice in a parent picker. Key is nil for the
// leading "no parent" entry.
type DropdownEntry struct {
	Label string
	Key   *Key
	Depth int
}

// DropdownEntries lists a blank "no parent" choice followed by every
// category in ordered, in the same order.
func DropdownEntries(ordered []Record) []DropdownEntry {
	entries := make([]DropdownEntry, 0, len(ordered)+1)
	entries = append(entries, DropdownEntry{})

	depth := make(map[Key]int, len(ordered))
	for _, r := range ordered {
		d := 0
		if r.ParentID != nil {
			d = depth[*r.ParentID] + 1
		}
		depth[r.ID] = d
		entries = append(entries, DropdownEntry{
			Label: r.Name,
			Key:   ParentKey(r.ID),
			Depth: d,
		})
	}
	return entries
}
