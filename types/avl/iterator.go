package avl

import "iter"

// Iterator walks tree nodes in ascending key order.
// It must not be used across Remove calls on the same tree.
type Iterator[K, V any] struct {
	tree    *Tree[K, V]
	current *Node[K, V]
	started bool
}

// Creates iterator. Iterator is not valid until Next() call.
func NewIterator[K, V any](tree *Tree[K, V]) Iterator[K, V] {
	return Iterator[K, V]{
		tree: tree,
	}
}

func (it *Iterator[K, V]) Current() *Node[K, V] {
	return it.current
}

func (it *Iterator[K, V]) Next() bool {
	switch {
	case !it.started:
		// 1. start iteration
		it.started = true
		it.current = it.tree.mostLeft
	case it.current != nil:
		// 2. step to the successor
		it.current = it.current.NextRight()
	}
	return it.current != nil
}

func (it *Iterator[K, V]) Valid() bool {
	return it.current != nil
}

// Reset rewinds the iterator to the beginning.
func (it *Iterator[K, V]) Reset() {
	it.current = nil
	it.started = false
}

// All returns a lazy ascending sequence of key/value pairs.
// Every range over the sequence starts from the smallest key again.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for node := t.mostLeft; node != nil; node = node.NextRight() {
			if !yield(node.key, node.value) {
				return
			}
		}
	}
}

// Keys returns a lazy ascending sequence of keys.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for node := t.mostLeft; node != nil; node = node.NextRight() {
			if !yield(node.key) {
				return
			}
		}
	}
}
