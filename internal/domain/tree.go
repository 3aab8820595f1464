package domain

import "fmt"

// Node is one row of the display tree. Non-root nodes carry the key of the
// record they were built from, so edits can be mapped back by identity.
type Node struct {
	ID         Key
	Label      string
	Children   []*Node
	Parent     *Node
	IsExpanded bool

	root bool
}

// NewRoot returns the synthetic, invisible root that owns the top-level categories
func NewRoot() *Node {
	return &Node{root: true, IsExpanded: true}
}

// IsRoot reports whether n is the synthetic root
func (n *Node) IsRoot() bool {
	return n.root
}

// Visible returns the rows a tree view shows: every node reachable through
// expanded ancestors, in depth-first order. The synthetic root is omitted.
func (n *Node) Visible() []*Node {
	var result []*Node
	if !n.root {
		result = append(result, n)
		if !n.IsExpanded {
			return result
		}
	}
	for _, child := range n.Children {
		child.visibleRecursive(&result)
	}
	return result
}

func (n *Node) visibleRecursive(result *[]*Node) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.visibleRecursive(result)
		}
	}
}

// Walk visits every node below n in depth-first pre-order, ignoring
// expansion state. n itself is visited unless it is the synthetic root.
func (n *Node) Walk(fn func(*Node)) {
	if !n.root {
		fn(n)
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Depth returns the nesting level; top-level categories are at depth 0
func (n *Node) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil && !current.root {
		depth++
		current = current.Parent
	}
	return depth
}

// Path returns the labels from the top-level ancestor down to n
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur != nil && !cur.root; cur = cur.Parent {
		path = append([]string{cur.Label}, path...)
	}
	return path
}

// Toggle expands or collapses the node
func (n *Node) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *Node) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *Node) Collapse() {
	n.IsExpanded = false
}

// Tree is a built display tree plus the key -> node lookup used to place
// children during the build. The index does not own the nodes.
type Tree struct {
	Root  *Node
	Index map[Key]*Node
}

// Lookup returns the node built for id
func (t *Tree) Lookup(id Key) (*Node, bool) {
	n, ok := t.Index[id]
	return n, ok
}

// Len returns the number of category nodes
func (t *Tree) Len() int {
	return len(t.Index)
}

// Build turns an ordered sequence into a display tree. Each record is
// appended as the last child of its already placed parent, so walking the
// result reproduces ordered exactly.
func Build(ordered []Record) (*Tree, error) {
	tree := &Tree{
		Root:  NewRoot(),
		Index: make(map[Key]*Node, len(ordered)),
	}

	for _, r := range ordered {
		if _, dup := tree.Index[r.ID]; dup {
			return nil, &HierarchyError{Kind: ErrDuplicateKey, ID: r.ID}
		}

		owner := tree.Root
		if r.ParentID != nil {
			parent, ok := tree.Index[*r.ParentID]
			if !ok {
				return nil, &HierarchyError{
					Kind:     ErrBrokenReference,
					ID:       r.ID,
					ParentID: r.ParentID,
					Detail:   "parent not placed before child",
				}
			}
			owner = parent
		}

		node := &Node{
			ID:         r.ID,
			Label:      r.Name,
			Parent:     owner,
			IsExpanded: true,
		}
		owner.Children = append(owner.Children, node)
		tree.Index[r.ID] = node
	}

	return tree, nil
}

// Flatten reads the current labels back out of root and returns
// lastOrdered with each name replaced by its node's label. The tree must
// still have the shape it was built with: the same keys under the same
// parents. Anything else is ErrStructuralMismatch.
func Flatten(root *Node, lastOrdered []Record) ([]Record, error) {
	type seen struct {
		label  string
		parent *Key
	}

	nodes := make(map[Key]seen, len(lastOrdered))
	count := 0
	var dup *Node
	root.Walk(func(n *Node) {
		count++
		if _, ok := nodes[n.ID]; ok && dup == nil {
			dup = n
		}
		var parent *Key
		if n.Parent != nil && !n.Parent.root {
			parent = ParentKey(n.Parent.ID)
		}
		nodes[n.ID] = seen{label: n.Label, parent: parent}
	})

	if dup != nil {
		return nil, &HierarchyError{Kind: ErrStructuralMismatch, ID: dup.ID, Detail: "key appears twice in tree"}
	}
	if count != len(lastOrdered) {
		return nil, &HierarchyError{
			Kind:      ErrStructuralMismatch,
			Detail:    fmt.Sprintf("tree has %d nodes, ordered records have %d", count, len(lastOrdered)),
			Aggregate: true,
		}
	}

	out := cloneRecords(lastOrdered)
	for i := range out {
		n, ok := nodes[out[i].ID]
		if !ok {
			return nil, &HierarchyError{Kind: ErrStructuralMismatch, ID: out[i].ID, Detail: "record has no node"}
		}
		if !out[i].HasParent(n.parent) {
			return nil, &HierarchyError{
				Kind:     ErrStructuralMismatch,
				ID:       out[i].ID,
				ParentID: n.parent,
				Detail:   "node was moved",
			}
		}
		out[i].Name = n.label
	}
	return out, nil
}
