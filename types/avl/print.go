package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Fprint draws the tree sideways (right subtree on top) with balance factors
// and returns the amount of levels drawn.
func (t *Tree[K, V]) Fprint(w io.Writer) int {
	return fprintNode(w, t.root, "", branchRoot)
}

func fprintNode[K, V any](w io.Writer, n *Node[K, V], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		rd = fprintNode(w, n.right, prefix+t, branchRight)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+d\n", n.key, n.balance)
	if n.left != nil {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		ld = fprintNode(w, n.left, prefix+t, branchLeft)
	}
	return 1 + max(rd, ld)
}
