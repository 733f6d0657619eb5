package avl_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/cryptonstudio/crypton-avl/types/avl"
	mockavl "github.com/cryptonstudio/crypton-avl/types/avl/mocks"
)

func TestHandlerRotations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ascending insert", func(t *testing.T) {
		handler := mockavl.NewMockHandler(ctrl)
		handler.EXPECT().OnRotateLeft(2, 1).Times(1)

		tree := avl.NewOrderedTree[int, int]()
		tree.SetHandler(handler)
		for _, k := range []int{1, 2, 3} {
			tree.Insert(k, k)
		}
		require.Equal(t, 2, tree.Root().Key())
	})

	t.Run("zig-zag insert", func(t *testing.T) {
		handler := mockavl.NewMockHandler(ctrl)
		gomock.InOrder(
			handler.EXPECT().OnRotateLeft(2, 1),
			handler.EXPECT().OnRotateRight(2, 3),
		)

		tree := avl.NewOrderedTree[int, int]()
		tree.SetHandler(handler)
		for _, k := range []int{3, 1, 2} {
			tree.Insert(k, k)
		}
		require.Equal(t, 2, tree.Root().Key())
	})

	t.Run("overwrite does not rotate", func(t *testing.T) {
		handler := mockavl.NewMockHandler(ctrl)

		tree := avl.NewOrderedTree[int, int]()
		for _, k := range []int{2, 1, 3} {
			tree.Insert(k, k)
		}
		tree.SetHandler(handler)
		tree.Insert(1, 10)
		tree.Insert(3, 30)
		require.Equal(t, 3, tree.Size())
	})

	t.Run("remove without rotation", func(t *testing.T) {
		handler := mockavl.NewMockHandler(ctrl)

		tree := avl.NewOrderedTree[int, int]()
		for _, k := range []int{2, 1, 3} {
			tree.Insert(k, k)
		}
		tree.SetHandler(handler)
		tree.Remove(3)
		require.Equal(t, int8(-1), tree.Root().Balance())
	})

	t.Run("remove with double rotation", func(t *testing.T) {
		handler := mockavl.NewMockHandler(ctrl)

		tree := avl.NewOrderedTree[int, int]()
		for _, k := range []int{2, 1, 4, 3} {
			tree.Insert(k, k)
		}
		tree.SetHandler(handler)
		gomock.InOrder(
			handler.EXPECT().OnRotateRight(3, 4),
			handler.EXPECT().OnRotateLeft(3, 2),
		)
		tree.Remove(1)
		require.Equal(t, 3, tree.Root().Key())
		require.NoError(t, tree.Validate())
	})

	t.Run("long sequence", func(t *testing.T) {
		handler := mockavl.NewMockHandler(ctrl)
		handler.EXPECT().OnRotateLeft(gomock.Any(), gomock.Any()).AnyTimes()
		handler.EXPECT().OnRotateRight(gomock.Any(), gomock.Any()).AnyTimes()

		tree := avl.NewOrderedTree[int, int]()
		tree.SetHandler(handler)
		for k := 0; k < 500; k++ {
			tree.Insert(k, k)
		}
		for k := 0; k < 500; k += 2 {
			tree.Remove(k)
		}
		require.Equal(t, 250, tree.Size())
		require.NoError(t, tree.Validate())
	})
}
