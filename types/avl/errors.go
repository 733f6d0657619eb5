package avl

import (
	"errors"
	"fmt"
)

var (
	ErrorTreeNodeDuplicate  = errors.New("tree node is duplicated")
	ErrorTreeNodeNotFound   = errors.New("tree node is not found")
	ErrorTreeNodeNoNeighbor = errors.New("tree node has no such neighbor")
	ErrorTreeInvariant      = errors.New("tree invariant is violated")
)

// KeyError is returned by neighbor queries which have no answer,
// e.g. the predecessor of the smallest key. It signals a misuse of the query
// rather than a missing key.
type KeyError struct {
	Op  string
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Op, e.Key, ErrorTreeNodeNoNeighbor)
}

func (e *KeyError) Unwrap() error {
	return ErrorTreeNodeNoNeighbor
}
