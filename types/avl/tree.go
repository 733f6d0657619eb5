package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for ordered Go types (numbers & strings),
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log t) operations on insertion, searching, and deletion.
//
// Every node keeps a balance factor (height of the right subtree minus height
// of the left one) which insertion and removal restore with rotations walking
// up the parent links.
//
// NOTE: Not thread-safe. Serialize whole-tree operations externally.
type Tree[K, V any] struct {
	compare   func(a, b K) int
	pool      *sync.Pool
	handler   Handler
	root      *Node[K, V]
	mostLeft  *Node[K, V]
	mostRight *Node[K, V]
	size      int
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

// SetHandler installs handler notified about every rotation. Nil disables notifications.
func (t *Tree[K, V]) SetHandler(handler Handler) {
	t.handler = handler
}

////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Root returns the root node or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Height returns the amount of levels in the tree, 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// Contains checks if node with given key exists in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find finds the node with given key in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Get returns value stored with given key.
func (t *Tree[K, V]) Get(key K) (value V, ok bool) {
	node := t.Find(key)
	if node == nil {
		return
	}
	return node.value, true
}

// Predecessor returns the node holding the greatest key less than given key.
// Key must be present in the tree.
func (t *Tree[K, V]) Predecessor(key K) (*Node[K, V], error) {
	node := t.Find(key)
	if node == nil {
		return nil, ErrorTreeNodeNotFound
	}
	prev := node.NextLeft()
	if prev == nil {
		return nil, &KeyError{Op: "predecessor", Key: key}
	}
	return prev, nil
}

// Successor returns the node holding the least key greater than given key.
// Key must be present in the tree.
func (t *Tree[K, V]) Successor(key K) (*Node[K, V], error) {
	node := t.Find(key)
	if node == nil {
		return nil, ErrorTreeNodeNotFound
	}
	next := node.NextRight()
	if next == nil {
		return nil, &KeyError{Op: "successor", Key: key}
	}
	return next, nil
}

// MostLeft returns most left node.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// MostRight returns most right node.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	return t.mostRight
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil && t.pool != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			t.releaseNode(node)
			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.mostRight = nil
	t.size = 0
}

// IteratePreOrder will iterate all values in this tree by first visiting each
// node's value, followed by the its left branch, and then its right branch.
// Iteration stops once f returns true.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *Tree[K, V]) IteratePreOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its own value, and then its right branch.
// Iteration stops once f returns true.
//
// This is useful when reading a tree's values in order, as this guarantees
// iterating them in a sorted order.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}

// IteratePostOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its right branch, and then its own value.
// Iteration stops once f returns true.
//
// This is useful when deleting values from a tree, as this guarantees to always
// delete leaf nodes.
func (t *Tree[K, V]) IteratePostOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}

////////////////////////////////////////////////////////////////

func (t *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if t.pool != nil {
		node := t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
		return node
	}
	return &Node[K, V]{
		key:   key,
		value: value,
	}
}

func (t *Tree[K, V]) releaseNode(node *Node[K, V]) {
	if t.pool == nil {
		return
	}
	*node = Node[K, V]{}
	t.pool.Put(node)
}

// replaceChild puts child into the slot old occupies under parent
// (or into the root slot when parent is nil).
func (t *Tree[K, V]) replaceChild(parent, old, child *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}
