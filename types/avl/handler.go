package avl

// Handler receives structural notifications from a tree. Keys are passed
// as the tree's key values boxed into any.
//
//go:generate mockgen -destination=mocks/interfaces.go -package=mockavl . Handler
type Handler interface {

	// Rotation handlers
	// NOTE: Called after links are updated but before balance factors are reassigned.
	OnRotateLeft(pivot any, top any)
	OnRotateRight(pivot any, top any)
}
