package avl

// Insert stores value under given key. Value of an existing key is overwritten
// without any structural change. Returns the node holding the key.
func (t *Tree[K, V]) Insert(key K, value V) *Node[K, V] {
	found, parent, cmp := t.root.lookup(key, t.compare)
	if found != nil {
		found.value = value
		return found
	}
	node := t.newNode(key, value)
	t.attach(node, parent, cmp)
	return node
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (*Node[K, V], error) {
	found, parent, cmp := t.root.lookup(key, t.compare)
	if found != nil {
		return nil, ErrorTreeNodeDuplicate
	}
	node := t.newNode(key, value)
	t.attach(node, parent, cmp)
	return node, nil
}

// attach links a freshly created leaf under parent on the side given by cmp
// and restores balance along the path to the root.
func (t *Tree[K, V]) attach(node, parent *Node[K, V], cmp int) {
	node.balance = balanceBalanced
	t.size++

	// Update most left/right nodes
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) > 0 {
		t.mostRight = node
	}

	if parent == nil {
		t.root = node
		return
	}
	node.parent = parent
	if cmp < 0 {
		parent.left = node
	} else {
		parent.right = node
	}

	if parent.balance != balanceBalanced {
		// Parent had a single child on the other side, its height is unchanged
		parent.balance = balanceBalanced
		return
	}
	if parent.left == node {
		parent.balance = balanceLeftHeavy
	} else {
		parent.balance = balanceRightHeavy
	}
	t.insertFix(parent, node)
}

// insertFix walks up from p whose subtree just grew by one level on the side of n.
func (t *Tree[K, V]) insertFix(p, n *Node[K, V]) {
	for p.parent != nil {
		g := p.parent
		if p == g.left {
			g.balance--
		} else {
			g.balance++
		}

		switch g.balance {
		case balanceBalanced:
			return
		case balanceLeftHeavy, balanceRightHeavy:
			p, n = g, p
			continue
		}

		if g.balance < 0 {
			if n == p.left {
				// zig-zig
				t.rotateRight(p, g)
				p.balance = balanceBalanced
				g.balance = balanceBalanced
				return
			}
			// zig-zag
			t.rotateLeft(n, p)
			t.rotateRight(n, g)
			switch n.balance {
			case balanceLeftHeavy:
				p.balance, g.balance = balanceBalanced, balanceRightHeavy
			case balanceBalanced:
				p.balance, g.balance = balanceBalanced, balanceBalanced
			case balanceRightHeavy:
				p.balance, g.balance = balanceLeftHeavy, balanceBalanced
			}
			n.balance = balanceBalanced
			return
		}

		if n == p.right {
			// zig-zig
			t.rotateLeft(p, g)
			p.balance = balanceBalanced
			g.balance = balanceBalanced
			return
		}
		// zig-zag
		t.rotateRight(n, p)
		t.rotateLeft(n, g)
		switch n.balance {
		case balanceRightHeavy:
			p.balance, g.balance = balanceBalanced, balanceLeftHeavy
		case balanceBalanced:
			p.balance, g.balance = balanceBalanced, balanceBalanced
		case balanceLeftHeavy:
			p.balance, g.balance = balanceRightHeavy, balanceBalanced
		}
		n.balance = balanceBalanced
		return
	}
}
