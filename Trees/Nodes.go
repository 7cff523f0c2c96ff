package Trees

import "github.com/g-m-twostay/go-intrusive/Ptrs"

// Link is the relation record an element embeds to take part in a BinTree. P is the
// edge representation, see Ptrs.Pointer.
// The zero value is an unlinked Link. A linked Link always has a parent: the root
// refers to itself, every other element to its parent. left and right are the only
// edges that define the shape of the tree; parent is a back reference for traversal.
// parent is kept last so that it is never the first word of an element.
type Link[P comparable] struct {
	left, right, parent P
}

// IsLinked reports whether the element owning u is currently in a tree.
func (u *Link[P]) IsLinked() bool {
	return u.parent != *new(P)
}

func (u *Link[P]) unlink() {
	Ptrs.Clear(&u.left)
	Ptrs.Clear(&u.right)
	Ptrs.Clear(&u.parent)
}
