package domain

import "strconv"

// Key is the primary key of a category record
type Key int64

func (k Key) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// Record is one flat category row: (id, name, parent id)
type Record struct {
	ID       Key
	Name     string
	ParentID *Key // nil for top-level categories
}

// ParentKey returns a pointer suitable for Record.ParentID
func ParentKey(k Key) *Key {
	return &k
}

// IsRoot reports whether the record has no parent
func (r Record) IsRoot() bool {
	return r.ParentID == nil
}

// HasParent reports whether the record's parent is p
func (r Record) HasParent(p *Key) bool {
	if r.ParentID == nil || p == nil {
		return r.ParentID == nil && p == nil
	}
	return *r.ParentID == *p
}

// clone returns a copy that shares no pointers with r
func (r Record) clone() Record {
	out := Record{ID: r.ID, Name: r.Name}
	if r.ParentID != nil {
		out.ParentID = ParentKey(*r.ParentID)
	}
	return out
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}

// Find returns the record with the given id
func Find(records []Record, id Key) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
