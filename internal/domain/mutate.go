package domain

// NextKey returns a key not used by any record
func NextKey(records []Record) Key {
	var maxKey Key
	for _, r := range records {
		if r.ID > maxKey {
			maxKey = r.ID
		}
	}
	return maxKey + 1
}

// AddPending returns records plus a new category with a fresh key. parentID
// must be nil or name an existing record. records is not modified.
func AddPending(records []Record, name string, parentID *Key) ([]Record, error) {
	id := NextKey(records)
	if parentID != nil {
		if _, ok := Find(records, *parentID); !ok {
			return nil, &HierarchyError{Kind: ErrBrokenReference, ID: id, ParentID: parentID}
		}
	}

	out := cloneRecords(records)
	added := Record{ID: id, Name: name}
	if parentID != nil {
		added.ParentID = ParentKey(*parentID)
	}
	return append(out, added), nil
}

// RemoveCascade returns records without id and without every descendant
// of id. records is not modified.
func RemoveCascade(records []Record, id Key) ([]Record, error) {
	if _, ok := Find(records, id); !ok {
		return nil, &HierarchyError{Kind: ErrUnknownKey, ID: id}
	}

	drop := map[Key]bool{id: true}
	for _, d := range Descendants(records, id) {
		drop[d] = true
	}

	out := make([]Record, 0, len(records)-len(drop))
	for _, r := range records {
		if !drop[r.ID] {
			out = append(out, r.clone())
		}
	}
	return out, nil
}
