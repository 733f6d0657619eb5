package avl

import (
	"testing"
)

type intNode = Node[int, int]

func newIntTree(root *intNode) *Tree[int, int] {
	tree := NewOrderedTree[int, int]()
	tree.root = root
	return &tree
}

func TestAVLNodeRotateRight(t *testing.T) {
	/*
		    4
		   /
		  2
		 / \
		1   3
	*/
	gotNode1 := &intNode{key: 1, value: 1}
	gotNode3 := &intNode{key: 3, value: 3}
	gotNode2 := &intNode{
		key:   2,
		value: 2,
		left:  gotNode1,
		right: gotNode3,
	}
	gotNode4 := &intNode{
		key:     4,
		value:   4,
		balance: -2,
		left:    gotNode2,
	}
	gotNode1.parent = gotNode2
	gotNode3.parent = gotNode2
	gotNode2.parent = gotNode4
	tree := newIntTree(gotNode4)

	/*
		  2
		 / \
		1   4
		   /
		  3
	*/
	wantNode3 := &intNode{key: 3, value: 3}
	wantNode1 := &intNode{key: 1, value: 1}
	wantNode4 := &intNode{
		key:     4,
		value:   4,
		balance: -2,
		left:    wantNode3,
	}
	wantNode2 := &intNode{
		key:   2,
		value: 2,
		left:  wantNode1,
		right: wantNode4,
	}
	wantNode3.parent = wantNode4
	wantNode1.parent = wantNode2
	wantNode4.parent = wantNode2
	tree.rotateRight(gotNode2, gotNode4)
	assertAVLNode(t, wantNode2, tree.root)
}

func TestAVLNodeRotateLeft(t *testing.T) {
	/*
		1
		 \
		  3
		 / \
		2   4
	*/
	gotNode2 := &intNode{key: 2, value: 2}
	gotNode4 := &intNode{key: 4, value: 4}
	gotNode3 := &intNode{
		key:   3,
		value: 3,
		left:  gotNode2,
		right: gotNode4,
	}
	gotNode1 := &intNode{
		key:     1,
		value:   1,
		balance: 2,
		right:   gotNode3,
	}
	gotNode2.parent = gotNode3
	gotNode4.parent = gotNode3
	gotNode3.parent = gotNode1
	tree := newIntTree(gotNode1)

	/*
		  3
		 / \
		1   4
		 \
		  2
	*/
	wantNode2 := &intNode{key: 2, value: 2}
	wantNode1 := &intNode{
		key:     1,
		value:   1,
		balance: 2,
		right:   wantNode2,
	}
	wantNode4 := &intNode{key: 4, value: 4}
	wantNode3 := &intNode{
		key:   3,
		value: 3,
		left:  wantNode1,
		right: wantNode4,
	}
	wantNode2.parent = wantNode1
	wantNode1.parent = wantNode3
	wantNode4.parent = wantNode3
	tree.rotateLeft(gotNode3, gotNode1)
	assertAVLNode(t, wantNode3, tree.root)
}

func TestAVLNodeRotateUnderGrandparent(t *testing.T) {
	/*
		    5
		   / \
		  3   6
		 /
		2
		/
		1
	*/
	gotNode1 := &intNode{key: 1, value: 1}
	gotNode2 := &intNode{key: 2, value: 2, left: gotNode1}
	gotNode3 := &intNode{key: 3, value: 3, left: gotNode2}
	gotNode6 := &intNode{key: 6, value: 6}
	gotNode5 := &intNode{key: 5, value: 5, left: gotNode3, right: gotNode6}
	gotNode1.parent = gotNode2
	gotNode2.parent = gotNode3
	gotNode3.parent = gotNode5
	gotNode6.parent = gotNode5
	tree := newIntTree(gotNode5)

	/*
		    5
		   / \
		  2   6
		 / \
		1   3
	*/
	wantNode1 := &intNode{key: 1, value: 1}
	wantNode3 := &intNode{key: 3, value: 3}
	wantNode2 := &intNode{key: 2, value: 2, left: wantNode1, right: wantNode3}
	wantNode6 := &intNode{key: 6, value: 6}
	wantNode5 := &intNode{key: 5, value: 5, left: wantNode2, right: wantNode6}
	wantNode1.parent = wantNode2
	wantNode3.parent = wantNode2
	wantNode2.parent = wantNode5
	wantNode6.parent = wantNode5
	tree.rotateRight(gotNode2, gotNode3)
	assertAVLNode(t, wantNode5, tree.root)
}

func TestAVLNodeNeighbors(t *testing.T) {
	tree := NewOrderedTree[int, int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 35, 45, 65} {
		tree.Insert(k, k)
	}
	want := []int{20, 30, 35, 40, 45, 50, 60, 65, 70, 80}

	var got []int
	for n := tree.root.MostLeft(); n != nil; n = n.NextRight() {
		got = append(got, n.key)
	}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}

	got = got[:0]
	for n := tree.root.MostRight(); n != nil; n = n.NextLeft() {
		got = append(got, n.key)
	}
	for i := range want {
		if got[len(got)-1-i] != want[i] {
			t.Fatalf("want reversed %v, got %v", want, got)
		}
	}
}

func TestAVLNodeSwapContent(t *testing.T) {
	a := &intNode{key: 1, value: 10, balance: -1}
	b := &intNode{key: 2, value: 20, balance: 1}
	a.swapContent(b)
	if a.key != 2 || a.value != 20 || a.balance != -1 {
		t.Errorf("unexpected a after swap: key=%d value=%d balance=%d", a.key, a.value, a.balance)
	}
	if b.key != 1 || b.value != 10 || b.balance != 1 {
		t.Errorf("unexpected b after swap: key=%d value=%d balance=%d", b.key, b.value, b.balance)
	}
}

func assertAVLNode[K, V comparable](t *testing.T, want, got *Node[K, V]) {
	t.Helper()
	if got.parent != nil {
		t.Errorf("want root.parent==nil, got root.parent.key==%v", got.parent.key)
	}
	assertAVLNodeRec(t, want, got, "root")
}

func assertAVLNodeRec[K, V comparable](t *testing.T, want, got *Node[K, V], path string) {
	t.Helper()
	if got.key != want.key {
		t.Errorf("want %[1]s.key==%[2]v, got %[1]s.key==%[3]v", path, want.key, got.key)
	}
	if got.value != want.value {
		t.Errorf("want %[1]s.value==%[2]v, got %[1]s.value==%[3]v", path, want.value, got.value)
	}
	if got.balance != want.balance {
		t.Errorf("want %[1]s.balance==%[2]v, got %[1]s.balance==%[3]v", path, want.balance, got.balance)
	}
	if got.parent == nil && want.parent != nil {
		t.Errorf("want %[1]s.parent!=nil, got %[1]s.parent==nil", path)
	} else if got.parent != nil && want.parent == nil {
		t.Errorf("want %[1]s.parent==nil, got %[1]s.parent!=nil", path)
	} else if got.parent != nil && want.parent != nil && got.parent.key != want.parent.key {
		t.Errorf("want %[1]s.parent.key==%[2]v, got %[1]s.parent.key==%[3]v", path, want.parent.key, got.parent.key)
	}
	if got.left == nil && want.left != nil {
		t.Errorf("want %[1]s.left!=nil, got %[1]s.left==nil", path)
	} else if got.left != nil && want.left == nil {
		t.Errorf("want %[1]s.left==nil, got %[1]s.left!=nil", path)
	} else if got.left != nil && want.left != nil {
		assertAVLNodeRec(t, want.left, got.left, path+".left")
	}
	if got.right == nil && want.right != nil {
		t.Errorf("want %[1]s.right!=nil, got %[1]s.right==nil", path)
	} else if got.right != nil && want.right == nil {
		t.Errorf("want %[1]s.right==nil, got %[1]s.right!=nil", path)
	} else if got.right != nil && want.right != nil {
		assertAVLNodeRec(t, want.right, got.right, path+".right")
	}
}
