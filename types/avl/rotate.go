package avl

// rotateRight lifts pivot (the left child of top) into top's position.
// Pivot's right subtree becomes top's left subtree and top becomes pivot's right child.
// Balance factors are left for the caller to assign.
//
//	    top          pivot
//	   /   \         /   \
//	pivot   c  =>   a    top
//	/   \               /   \
//	a    b             b     c
func (t *Tree[K, V]) rotateRight(pivot, top *Node[K, V]) {
	t.replaceChild(top.parent, top, pivot)
	top.left = pivot.right
	if top.left != nil {
		top.left.parent = top
	}
	pivot.right = top
	top.parent = pivot
	if t.handler != nil {
		t.handler.OnRotateRight(pivot.key, top.key)
	}
}

// rotateLeft is the mirror of rotateRight: pivot is the right child of top.
func (t *Tree[K, V]) rotateLeft(pivot, top *Node[K, V]) {
	t.replaceChild(top.parent, top, pivot)
	top.right = pivot.left
	if top.right != nil {
		top.right.parent = top
	}
	pivot.left = top
	top.parent = pivot
	if t.handler != nil {
		t.handler.OnRotateLeft(pivot.key, top.key)
	}
}
