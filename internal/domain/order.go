package domain

// Order arranges records parent-before-child in depth-first pre-order.
// Siblings keep the relative order they have in records. The input is
// checked for duplicate ids, dangling parent ids and parent cycles first;
// on error nothing is returned.
func Order(records []Record) ([]Record, error) {
	children, roots, err := indexChildren(records)
	if err != nil {
		return nil, err
	}

	ordered := make([]Record, 0, len(records))
	emitted := make([]bool, len(records))

	// Explicit stack so deep chains don't grow the goroutine stack.
	stack := make([]int, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ordered = append(ordered, records[i].clone())
		emitted[i] = true

		kids := children[records[i].ID]
		for j := len(kids) - 1; j >= 0; j-- {
			stack = append(stack, kids[j])
		}
	}

	// Every reference resolves, so anything unreachable from a root hangs off a cycle.
	if len(ordered) != len(records) {
		for i, r := range records {
			if !emitted[i] {
				return nil, &HierarchyError{Kind: ErrCyclicReference, ID: r.ID, ParentID: r.ParentID}
			}
		}
	}

	return ordered, nil
}

// Validate checks the record set invariants without ordering it
func Validate(records []Record) error {
	_, err := Order(records)
	return err
}

// indexChildren builds the parent -> child positions index in one pass.
// Child lists hold positions into records, in input order.
func indexChildren(records []Record) (map[Key][]int, []int, error) {
	ids := make(map[Key]struct{}, len(records))
	for _, r := range records {
		if _, dup := ids[r.ID]; dup {
			return nil, nil, &HierarchyError{Kind: ErrDuplicateKey, ID: r.ID}
		}
		ids[r.ID] = struct{}{}
	}

	children := make(map[Key][]int)
	var roots []int
	for i, r := range records {
		if r.ParentID == nil {
			roots = append(roots, i)
			continue
		}
		if _, ok := ids[*r.ParentID]; !ok {
			return nil, nil, &HierarchyError{Kind: ErrBrokenReference, ID: r.ID, ParentID: r.ParentID}
		}
		children[*r.ParentID] = append(children[*r.ParentID], i)
	}
	return children, roots, nil
}

// Descendants returns the ids of every record below id, transitively.
// id itself is not included.
func Descendants(records []Record, id Key) []Key {
	children := make(map[Key][]Key)
	for _, r := range records {
		if r.ParentID != nil {
			children[*r.ParentID] = append(children[*r.ParentID], r.ID)
		}
	}

	var out []Key
	seen := map[Key]bool{id: true}
	queue := []Key{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range children[cur] {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
			queue = append(queue, c)
		}
	}
	return out
}
