package bstree

import "fmt"

// Check validates structural tree invariants:
//
//   - every value in the left subtree of a node is not greater than the node's value,
//   - every value in the right subtree of a node is not less than the node's value,
//   - the size of the tree equals the number of reachable nodes.
//
// Right subtrees are checked against "not less" rather than "greater", as
// removing a node with two children may pull a value up into its parent
// position while duplicates of it stay in the right subtree.
//
// Check is meant to be used in tests and for debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: tree has no comparison function", ErrInvariant)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvariant, t.size)
		}
		return nil
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes != size %d)", ErrInvariant, count, t.size)
	}
	return nil
}

// checkNode validates the subtree at n against optional bounds lo ≤ value ≤ hi
// and returns the number of nodes in it.
func (t *Tree[T]) checkNode(n *node[T], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cmp(n.value, *lo) < 0 {
		return 0, fmt.Errorf("%w: value %v in right subtree of %v", ErrInvariant, n.value, *lo)
	}
	if hi != nil && t.cmp(n.value, *hi) > 0 {
		return 0, fmt.Errorf("%w: value %v in left subtree of %v", ErrInvariant, n.value, *hi)
	}
	l, err := t.checkNode(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	r, err := t.checkNode(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
