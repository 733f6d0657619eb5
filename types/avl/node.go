package avl

const (
	balanceLeftHeavy  int8 = -1
	balanceBalanced   int8 = 0
	balanceRightHeavy int8 = 1
)

// Node is a tree node. Balance holds height(right) - height(left) of the subtree
// rooted at the node and is always in [-1, 1] between tree operations.
type Node[K, V any] struct {
	key     K
	value   V
	parent  *Node[K, V] // back link only, never owns
	left    *Node[K, V]
	right   *Node[K, V]
	balance int8
}

// Key returns key of the tree node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns value of the tree node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces value of the tree node in place.
func (n *Node[K, V]) SetValue(value V) {
	n.value = value
}

// Balance returns balance factor of the tree node.
func (n *Node[K, V]) Balance() int8 {
	return n.balance
}

func (n *Node[K, V]) MostLeft() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) MostRight() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// NextLeft returns in-order predecessor of the node or nil.
func (n *Node[K, V]) NextLeft() *Node[K, V] {
	if n.left != nil {
		return n.left.MostRight()
	}
	// Climb until we come up from a right subtree
	child, parent := n, n.parent
	for parent != nil && child == parent.left {
		child, parent = parent, parent.parent
	}
	return parent
}

// NextRight returns in-order successor of the node or nil.
func (n *Node[K, V]) NextRight() *Node[K, V] {
	if n.right != nil {
		return n.right.MostLeft()
	}
	// Climb until we come up from a left subtree
	child, parent := n, n.parent
	for parent != nil && child == parent.right {
		child, parent = parent, parent.parent
	}
	return parent
}

func (n *Node[K, V]) find(key K, compare func(a, b K) int) *Node[K, V] {
	current := n
	for current != nil {
		cmp := compare(key, current.key)
		switch {
		case cmp == 0:
			return current
		case cmp < 0:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

// lookup descends from n looking for key. It returns the matching node if any,
// otherwise the node under which key should be attached and the side
// (cmp < 0 for left, cmp > 0 for right).
func (n *Node[K, V]) lookup(key K, compare func(a, b K) int) (found, parent *Node[K, V], cmp int) {
	current := n
	for current != nil {
		cmp = compare(key, current.key)
		if cmp == 0 {
			return current, current.parent, 0
		}
		parent = current
		if cmp < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil, parent, cmp
}

// swapContent exchanges keys and values of two nodes. Links and balances stay
// where they are since both describe the position rather than the entry.
func (n *Node[K, V]) swapContent(other *Node[K, V]) {
	n.key, other.key = other.key, n.key
	n.value, other.value = other.value, n.value
}

func (n *Node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// The iterate functions stop as soon as f returns true and report whether
// they were stopped.

func (n *Node[K, V]) iteratePreOrder(f func(v *Node[K, V]) bool) bool {
	if f(n) {
		return true
	}
	if n.left != nil && n.left.iteratePreOrder(f) {
		return true
	}
	return n.right != nil && n.right.iteratePreOrder(f)
}

func (n *Node[K, V]) iterateInOrder(f func(v *Node[K, V]) bool) bool {
	if n.left != nil && n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	return n.right != nil && n.right.iterateInOrder(f)
}

func (n *Node[K, V]) iteratePostOrder(f func(v *Node[K, V]) bool) bool {
	if n.left != nil && n.left.iteratePostOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}
