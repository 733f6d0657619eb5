package main

import (
	"sync/atomic"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var _ avl.Handler = &Rotations{}

// Rotations counts rotations reported by a tree.
type Rotations struct {
	left  uint64
	right uint64
}

func (r *Rotations) OnRotateLeft(pivot any, top any) {
	atomic.AddUint64(&r.left, 1)
}

func (r *Rotations) OnRotateRight(pivot any, top any) {
	atomic.AddUint64(&r.right, 1)
}

func (r *Rotations) Left() uint64 {
	return atomic.LoadUint64(&r.left)
}

func (r *Rotations) Right() uint64 {
	return atomic.LoadUint64(&r.right)
}

func (r *Rotations) Reset() {
	atomic.StoreUint64(&r.left, 0)
	atomic.StoreUint64(&r.right, 0)
}
