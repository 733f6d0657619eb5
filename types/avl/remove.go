package avl

// Remove removes the node with given key from the tree and returns its value.
// Removing an absent key is a no-op reporting ok == false.
//
// A node with two children exchanges its entry with the in-order predecessor
// first, so previously returned handles of the predecessor become stale.
func (t *Tree[K, V]) Remove(key K) (value V, ok bool) {
	node := t.Find(key)
	if node == nil {
		return
	}
	value, ok = node.value, true

	if node.left != nil && node.right != nil {
		predecessor := node.left.MostRight()
		node.swapContent(predecessor)
		node = predecessor
	}

	// Node has at most one child now
	parent := node.parent
	var diff int8
	if parent != nil {
		if parent.left == node {
			diff = 1
		} else {
			diff = -1
		}
	}
	child := node.left
	if child == nil {
		child = node.right
	}
	t.replaceChild(parent, node, child)
	t.size--

	// Update most left/right nodes
	if t.mostLeft == node {
		t.mostLeft = nil
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		}
	}
	if t.mostRight == node {
		t.mostRight = nil
		if t.root != nil {
			t.mostRight = t.root.MostRight()
		}
	}

	// Release tree node if pool is used
	t.releaseNode(node)

	t.removeFix(parent, diff)
	return
}

// removeFix walks up from n whose subtree lost one level; diff is the balance
// change implied at n (+1 when its left side shrank, -1 for the right side).
func (t *Tree[K, V]) removeFix(n *Node[K, V], diff int8) {
	for n != nil {
		p := n.parent
		var ndiff int8
		if p != nil {
			if p.left == n {
				ndiff = 1
			} else {
				ndiff = -1
			}
		}

		switch balance := n.balance + diff; balance {
		case -2:
			c := n.left
			switch c.balance {
			case balanceLeftHeavy:
				t.rotateRight(c, n)
				n.balance = balanceBalanced
				c.balance = balanceBalanced
			case balanceBalanced:
				// Subtree keeps its height
				t.rotateRight(c, n)
				n.balance = balanceLeftHeavy
				c.balance = balanceRightHeavy
				return
			case balanceRightHeavy:
				g := c.right
				t.rotateLeft(g, c)
				t.rotateRight(g, n)
				switch g.balance {
				case balanceRightHeavy:
					n.balance, c.balance = balanceBalanced, balanceLeftHeavy
				case balanceBalanced:
					n.balance, c.balance = balanceBalanced, balanceBalanced
				case balanceLeftHeavy:
					n.balance, c.balance = balanceRightHeavy, balanceBalanced
				}
				g.balance = balanceBalanced
			}
		case 2:
			c := n.right
			switch c.balance {
			case balanceRightHeavy:
				t.rotateLeft(c, n)
				n.balance = balanceBalanced
				c.balance = balanceBalanced
			case balanceBalanced:
				// Subtree keeps its height
				t.rotateLeft(c, n)
				n.balance = balanceRightHeavy
				c.balance = balanceLeftHeavy
				return
			case balanceLeftHeavy:
				g := c.left
				t.rotateRight(g, c)
				t.rotateLeft(g, n)
				switch g.balance {
				case balanceLeftHeavy:
					n.balance, c.balance = balanceBalanced, balanceRightHeavy
				case balanceBalanced:
					n.balance, c.balance = balanceBalanced, balanceBalanced
				case balanceRightHeavy:
					n.balance, c.balance = balanceLeftHeavy, balanceBalanced
				}
				g.balance = balanceBalanced
			}
		case balanceLeftHeavy, balanceRightHeavy:
			// Height is unchanged, the shrink is absorbed here
			n.balance = balance
			return
		default:
			n.balance = balanceBalanced
		}

		n, diff = p, ndiff
	}
}
