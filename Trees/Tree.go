package Trees

import (
	"github.com/g-m-twostay/go-intrusive/Adapters"
	"github.com/g-m-twostay/go-intrusive/Ptrs"
)

// Tree is a BinTree whose edges are plain addresses, the common case. Elements embed a
// DirectLink[T].
type Tree[T any, A Adapters.Ordered[T, DirectLink[T]], S Adapters.Size[S]] struct {
	BinTree[T, Ptrs.Direct[T], A, S]
}

// DirectLink is the Link embedded by elements of a Tree.
type DirectLink[T any] = Link[Ptrs.Direct[T]]

// NewTree returns an empty Tree.
func NewTree[T any, A Adapters.Ordered[T, DirectLink[T]], S Adapters.Size[S]]() *Tree[T, A, S] {
	return new(Tree[T, A, S])
}
