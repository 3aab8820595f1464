package domain

// Session holds the state of one editing interaction: the flat records as
// last loaded, their ordered sequence and the display tree built from it.
// Label edits live only in the tree until Flatten is called. Add and Remove
// fold pending label edits into the records and rebuild from scratch.
type Session struct {
	records []Record
	ordered []Record
	tree    *Tree
	dirty   bool
}

// NewSession returns an empty session
func NewSession() *Session {
	return &Session{
		tree: &Tree{Root: NewRoot(), Index: map[Key]*Node{}},
	}
}

// Load replaces the session contents with a fresh snapshot. On error the
// previous contents are kept.
func (s *Session) Load(records []Record) error {
	if err := s.rebuild(records); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *Session) rebuild(records []Record) error {
	ordered, err := Order(records)
	if err != nil {
		return err
	}
	tree, err := Build(ordered)
	if err != nil {
		return err
	}

	// Carry collapsed rows over so a rebuild doesn't reset the view.
	if s.tree != nil {
		s.tree.Root.Walk(func(n *Node) {
			if n.IsExpanded {
				return
			}
			if fresh, ok := tree.Lookup(n.ID); ok && len(fresh.Children) > 0 {
				fresh.Collapse()
			}
		})
	}

	s.records = cloneRecords(records)
	s.ordered = ordered
	s.tree = tree
	return nil
}

// Records returns the records as last loaded or mutated
func (s *Session) Records() []Record {
	return cloneRecords(s.records)
}

// Ordered returns the ordered sequence the current tree was built from
func (s *Session) Ordered() []Record {
	return cloneRecords(s.ordered)
}

// Tree returns the live display tree
func (s *Session) Tree() *Tree {
	return s.tree
}

// Dropdown returns parent picker entries for the current ordering,
// labelled with any pending renames
func (s *Session) Dropdown() []DropdownEntry {
	if current, err := s.Flatten(); err == nil {
		return DropdownEntries(current)
	}
	return DropdownEntries(s.ordered)
}

// Dirty reports whether there are edits not yet reloaded from storage
func (s *Session) Dirty() bool {
	return s.dirty
}

// Label returns the current display label of a category
func (s *Session) Label(id Key) (string, error) {
	node, ok := s.tree.Lookup(id)
	if !ok {
		return "", &HierarchyError{Kind: ErrUnknownKey, ID: id}
	}
	return node.Label, nil
}

// Rename changes a category's display label
func (s *Session) Rename(id Key, label string) error {
	node, ok := s.tree.Lookup(id)
	if !ok {
		return &HierarchyError{Kind: ErrUnknownKey, ID: id}
	}
	if node.Label != label {
		node.Label = label
		s.dirty = true
	}
	return nil
}

// Flatten returns the ordered records with names taken from the tree
func (s *Session) Flatten() ([]Record, error) {
	return Flatten(s.tree.Root, s.ordered)
}

// Add appends a new category and rebuilds. It returns the added record.
func (s *Session) Add(name string, parentID *Key) (Record, error) {
	current, err := s.Flatten()
	if err != nil {
		return Record{}, err
	}
	next, err := AddPending(current, name, parentID)
	if err != nil {
		return Record{}, err
	}
	if err := s.rebuild(next); err != nil {
		return Record{}, err
	}
	s.dirty = true
	return next[len(next)-1].clone(), nil
}

// Remove deletes a category with its whole subtree and rebuilds. It
// returns the removed keys, id first.
func (s *Session) Remove(id Key) ([]Key, error) {
	current, err := s.Flatten()
	if err != nil {
		return nil, err
	}
	removed := append([]Key{id}, Descendants(current, id)...)
	next, err := RemoveCascade(current, id)
	if err != nil {
		return nil, err
	}
	if err := s.rebuild(next); err != nil {
		return nil, err
	}
	s.dirty = true
	return removed, nil
}
