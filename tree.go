package bstree

import "cmp"

// node is a single storage unit of a tree. Each node is referenced from
// exactly one slot: either the root field of a tree or a child field of its
// parent. There are no back-references.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an unbalanced binary search tree holding values of type T.
//
// Trees have to be created by one of the constructors New, NewFunc, From or
// FromFunc. The zero value of a Tree lacks a comparison function and is not
// usable.
type Tree[T any] struct {
	root *node[T]
	size int
	cmp  func(a, b T) int
}

// New creates an empty tree for naturally ordered values.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc creates an empty tree ordering its values by compare, which has to
// return a negative number for a < b, zero for a == b and a positive number
// for a > b. compare must implement a total order.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	mustHold(compare != nil, "bstree: comparison function is nil")
	return &Tree[T]{cmp: compare}
}

// From creates a tree and inserts all values, in order.
func From[T cmp.Ordered](values ...T) *Tree[T] {
	return FromFunc(cmp.Compare[T], values...)
}

// FromFunc creates a tree ordered by compare and inserts all values, in order.
func FromFunc[T any](compare func(a, b T) int, values ...T) *Tree[T] {
	t := NewFunc(compare)
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Len returns the number of values in the tree. Duplicates count separately.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty is true for a tree without any values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a deep copy of t. The copy has the same shape as t and shares
// no nodes with it.
func (t *Tree[T]) Clone() *Tree[T] {
	tracer().Debugf("clone tree of size %d", t.size)
	return &Tree[T]{
		root: copyNodes(t.root),
		size: t.size,
		cmp:  t.cmp,
	}
}

// Move returns a new tree taking over all nodes of src. src is left empty,
// but remains usable. No nodes are allocated.
func Move[T any](src *Tree[T]) *Tree[T] {
	t := &Tree[T]{
		root: src.root,
		size: src.size,
		cmp:  src.cmp,
	}
	src.root, src.size = nil, 0
	tracer().Debugf("moved tree of size %d", t.size)
	return t
}

// Assign drops all values of t and replaces them with a deep copy of other,
// adopting other's ordering. Assigning a tree to itself does nothing.
// A nil other just clears t.
func (t *Tree[T]) Assign(other *Tree[T]) {
	if t == other {
		return
	}
	t.Clear()
	if other == nil {
		return
	}
	t.root = copyNodes(other.root)
	t.size = other.size
	t.cmp = other.cmp
}

// MoveFrom drops all values of t and takes over the nodes of other, which is
// left empty. Moving a tree to itself does nothing. A nil other just clears t.
func (t *Tree[T]) MoveFrom(other *Tree[T]) {
	if t == other {
		return
	}
	t.Clear()
	if other == nil {
		return
	}
	t.root, t.size, t.cmp = other.root, other.size, other.cmp
	other.root, other.size = nil, 0
}

// Clear drops all values of t. Afterwards t is empty and has size 0.
func (t *Tree[T]) Clear() {
	if t.root != nil {
		tracer().Debugf("clear tree of size %d", t.size)
	}
	t.root = nil
	t.size = 0
}

func copyNodes[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value: n.value,
		left:  copyNodes(n.left),
		right: copyNodes(n.right),
	}
}

// --- Queries ---------------------------------------------------------------

// Find reports whether a value equal to value is in the tree.
func (t *Tree[T]) Find(value T) bool {
	n := t.root
	for n != nil {
		c := t.cmp(value, n.value)
		switch {
		case c == 0:
			return true
		case c > 0:
			n = n.right
		default:
			n = n.left
		}
	}
	return false
}

// Min returns the smallest value of the tree. For an empty tree it returns
// the zero value of T and ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return leftmost(t.root).value, nil
}

// Max returns the largest value of the tree. For an empty tree it returns
// the zero value of T and ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return rightmost(t.root).value, nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0, a single value has height 1.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}

// --- Mutation --------------------------------------------------------------

// Insert adds value to the tree. A value strictly greater than a node is
// placed in the node's right subtree, any other value in its left subtree.
// Insert never rejects a value; duplicates are kept.
func (t *Tree[T]) Insert(value T) {
	slot := &t.root
	for *slot != nil {
		if t.cmp(value, (*slot).value) > 0 {
			slot = &(*slot).right
		} else {
			slot = &(*slot).left
		}
	}
	*slot = &node[T]{value: value}
	t.size++
}

// Remove deletes one value equal to value from the tree, namely the first
// one on the search path. It returns false if no such value exists; removing
// from an empty tree is not an error.
func (t *Tree[T]) Remove(value T) bool {
	slot := t.locate(value)
	if slot == nil {
		return false
	}
	t.unlink(slot)
	t.size--
	return true
}

// locate returns the slot referencing the first node equal to value on the
// search path, or nil.
func (t *Tree[T]) locate(value T) **node[T] {
	return t.locateFrom(&t.root, value)
}

func (t *Tree[T]) locateFrom(slot **node[T], value T) **node[T] {
	for *slot != nil {
		c := t.cmp(value, (*slot).value)
		switch {
		case c > 0:
			slot = &(*slot).right
		case c < 0:
			slot = &(*slot).left
		default:
			return slot
		}
	}
	return nil
}

// unlink removes the node referenced by slot. A node with two children keeps
// its place and takes over the minimum value of its right subtree. That value
// is then removed from the right subtree by search, which with duplicates may
// hit an equal node above the minimum node.
func (t *Tree[T]) unlink(slot **node[T]) {
	for {
		n := *slot
		switch {
		case n.left == nil:
			*slot = n.right
		case n.right == nil:
			*slot = n.left
		default:
			n.value = leftmost(n.right).value
			tracer().Debugf("remove: two-child node takes successor %v", n.value)
			slot = t.locateFrom(&n.right, n.value)
			continue
		}
		n.left, n.right = nil, nil
		return
	}
}

// --- Equality --------------------------------------------------------------

// Equal reports whether t and other have identical shape and hold equal
// values in corresponding nodes. Values are compared with t's ordering.
// A nil tree is equal to an empty tree.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	var a, b *node[T]
	var compare func(a, b T) int
	if t != nil {
		a, compare = t.root, t.cmp
	}
	if other != nil {
		b = other.root
		if compare == nil {
			compare = other.cmp
		}
	}
	return identical(a, b, compare)
}

// NotEqual is the negation of Equal.
func (t *Tree[T]) NotEqual(other *Tree[T]) bool {
	return !t.Equal(other)
}

// identical compares two subtrees in pre-order, stopping at the first
// difference in shape or value.
func identical[T any](a, b *node[T], compare func(a, b T) int) bool {
	if a == nil || b == nil {
		return a == b
	}
	if compare(a.value, b.value) != 0 {
		return false
	}
	return identical(a.left, b.left, compare) && identical(a.right, b.right, compare)
}

// --- Internal traversal ----------------------------------------------------

// each visits the nodes of t in pre-order, stopping at the first error
// returned by f.
func (t *Tree[T]) each(f func(n *node[T], depth int) error) error {
	return eachNode(t.root, 0, f)
}

func eachNode[T any](n *node[T], depth int, f func(*node[T], int) error) error {
	if n == nil {
		return nil
	}
	if err := f(n, depth); err != nil {
		return err
	}
	if err := eachNode(n.left, depth+1, f); err != nil {
		return err
	}
	return eachNode(n.right, depth+1, f)
}

func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
