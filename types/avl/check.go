package avl

import (
	"fmt"
)

// Validate checks parent links, key ordering and balance factors of the whole tree.
// The returned error wraps ErrorTreeInvariant and names the first offending key.
func (t *Tree[K, V]) Validate() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrorTreeInvariant, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent", ErrorTreeInvariant, t.root.key)
	}
	count := 0
	if _, err := t.validate(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d, counted %d nodes", ErrorTreeInvariant, t.size, count)
	}
	if t.mostLeft != t.root.MostLeft() || t.mostRight != t.root.MostRight() {
		return fmt.Errorf("%w: stale most left/right nodes", ErrorTreeInvariant)
	}
	return nil
}

// validate returns the height of the subtree rooted at n.
func (t *Tree[K, V]) validate(n *Node[K, V], count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++
	for _, child := range []*Node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, fmt.Errorf("%w: node %v has wrong parent", ErrorTreeInvariant, child.key)
		}
	}
	if n.left != nil && t.compare(n.left.key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: left child %v is not less than %v", ErrorTreeInvariant, n.left.key, n.key)
	}
	if n.right != nil && t.compare(n.right.key, n.key) <= 0 {
		return 0, fmt.Errorf("%w: right child %v is not greater than %v", ErrorTreeInvariant, n.right.key, n.key)
	}
	// Children order alone does not bound whole subtrees
	if n.left != nil && t.compare(n.left.MostRight().key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: left subtree of %v is out of order", ErrorTreeInvariant, n.key)
	}
	if n.right != nil && t.compare(n.right.MostLeft().key, n.key) <= 0 {
		return 0, fmt.Errorf("%w: right subtree of %v is out of order", ErrorTreeInvariant, n.key)
	}
	leftHeight, err := t.validate(n.left, count)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.validate(n.right, count)
	if err != nil {
		return 0, err
	}
	diff := rightHeight - leftHeight
	if diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: node %v is out of balance (%d)", ErrorTreeInvariant, n.key, diff)
	}
	if int(n.balance) != diff {
		return 0, fmt.Errorf("%w: node %v stores balance %d, actual %d", ErrorTreeInvariant, n.key, n.balance, diff)
	}
	return 1 + max(leftHeight, rightHeight), nil
}

// EqualPaths reports whether all leaves of the tree sit at the same depth.
// An empty tree trivially satisfies it.
func (t *Tree[K, V]) EqualPaths() bool {
	leafDepth := -1
	return equalPaths(t.root, 0, &leafDepth)
}

func equalPaths[K, V any](n *Node[K, V], depth int, leafDepth *int) bool {
	if n == nil {
		return true
	}
	if n.left == nil && n.right == nil {
		if *leafDepth == -1 {
			*leafDepth = depth
		}
		return depth == *leafDepth
	}
	return equalPaths(n.left, depth+1, leafDepth) && equalPaths(n.right, depth+1, leafDepth)
}
