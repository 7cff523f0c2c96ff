package Trees

import (
	"github.com/g-m-twostay/go-intrusive/Adapters"
	"github.com/g-m-twostay/go-intrusive/Ptrs"
)

// BinTree is an intrusive binary search tree with no repeated elements. It doesn't
// balance itself, so the height D depends on the insertion order: O(log n) on average
// for random orders, O(n) for sorted ones.
// T is the element type, P the representation of edges between elements, A the
// adapter that finds the Link in a T and orders elements, S the size policy.
// The tree keeps a header Link whose left and right edges cache the smallest and
// largest elements, which makes Front, Back and the start of every iteration O(1).
// The zero value is an empty tree ready to use. A BinTree must not be copied after the
// first insertion, unless P is Ptrs.Offset and the elements are copied along with it in
// the same block.
type BinTree[T any, P Ptrs.Pointer[T, P], A Adapters.Ordered[T, Link[P]], S Adapters.Size[S]] struct {
	size   S
	root   P
	header Link[P] //left is the smallest element, right the largest; parent is unused.
}

// New returns an empty BinTree.
func New[T any, P Ptrs.Pointer[T, P], A Adapters.Ordered[T, Link[P]], S Adapters.Size[S]]() *BinTree[T, P, A, S] {
	return new(BinTree[T, P, A, S])
}

func (u *BinTree[T, P, A, S]) link(e *T) *Link[P] {
	var a A
	return a.Link(e)
}

func (u *BinTree[T, P, A, S]) left(e *T) *T {
	return Ptrs.Load[T](&u.link(e).left)
}

func (u *BinTree[T, P, A, S]) right(e *T) *T {
	return Ptrs.Load[T](&u.link(e).right)
}

// up returns the parent of a linked element, nil for the root.
func (u *BinTree[T, P, A, S]) up(e *T) *T {
	if p := Ptrs.Load[T](&u.link(e).parent); p != e {
		return p
	}
	return nil
}

// setUp makes p the parent of e; p==nil makes e the root.
func (u *BinTree[T, P, A, S]) setUp(e, p *T) {
	if p == nil {
		p = e
	}
	Ptrs.Store(&u.link(e).parent, p)
}

func (u *BinTree[T, P, A, S]) leftmost(e *T) *T {
	for l := u.left(e); l != nil; l = u.left(e) {
		e = l
	}
	return e
}

func (u *BinTree[T, P, A, S]) rightmost(e *T) *T {
	for r := u.right(e); r != nil; r = u.right(e) {
		e = r
	}
	return e
}

// Lookup [Container.Lookup]
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Lookup(key *T) *T {
	var a A
	for cur := Ptrs.Load[T](&u.root); cur != nil; {
		if c := a.Compare(key, cur); c < 0 {
			cur = u.left(cur)
		} else if c > 0 {
			cur = u.right(cur)
		} else {
			return cur
		}
	}
	return nil
}

// Has [Container.Has]
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Has(key *T) bool {
	return u.Lookup(key) != nil
}

// Insert [Container.Insert]
// Panics with LinkedError if e is already linked, into this tree or any other. A panic
// from the size policy, such as Adapters.OverflowError, leaves the tree and e unchanged.
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Insert(e *T) *T {
	el := u.link(e)
	if el.IsLinked() {
		panic(LinkedError{e})
	}
	cur := Ptrs.Load[T](&u.root)
	if cur == nil {
		u.size = u.size.Incr()
		Ptrs.Store(&u.root, e)
		u.setUp(e, nil)
		Ptrs.Store(&u.header.left, e)
		Ptrs.Store(&u.header.right, e)
		return nil
	}
	var a A
	// e is the new smallest element iff the descent never turns right, and the new
	// largest iff it never turns left.
	leftEnd, rightEnd := true, true
	for {
		cl := u.link(cur)
		var slot *P
		if c := a.Compare(e, cur); c < 0 {
			slot, rightEnd = &cl.left, false
		} else if c > 0 {
			slot, leftEnd = &cl.right, false
		} else {
			return e
		}
		if next := Ptrs.Load[T](slot); next != nil {
			cur = next
			continue
		}
		// the size changes first: a policy that panics leaves the tree untouched.
		u.size = u.size.Incr()
		Ptrs.Store(slot, e)
		u.setUp(e, cur)
		if leftEnd {
			Ptrs.Store(&u.header.left, e)
		} else if rightEnd {
			Ptrs.Store(&u.header.right, e)
		}
		return nil
	}
}

// InsertPinned is Insert for a pinned element. Returns (p, false) when p was rejected.
func (u *BinTree[T, P, A, S]) InsertPinned(p Ptrs.Pinned[T]) (Ptrs.Pinned[T], bool) {
	return p, u.Insert(p.Ptr()) == nil
}

// Front [Container.Front]
// Time: O(1); Space: O(1)
func (u *BinTree[T, P, A, S]) Front() *T {
	return Ptrs.Load[T](&u.header.left)
}

// Back [Container.Back]
// Time: O(1); Space: O(1)
func (u *BinTree[T, P, A, S]) Back() *T {
	return Ptrs.Load[T](&u.header.right)
}

// Next returns the element after e in ascending order, nil if e is the largest.
// e must be linked into u. Only parent back references are followed, no stack is kept.
// Time: O(D), amortized O(1) over a full traversal; Space: O(1)
func (u *BinTree[T, P, A, S]) Next(e *T) *T {
	if r := u.right(e); r != nil {
		return u.leftmost(r)
	}
	// climb until e is the left child of p.
	for p := u.up(e); p != nil; e, p = p, u.up(p) {
		if u.left(p) == e {
			return p
		}
	}
	return nil
}

// Prev returns the element before e in ascending order, nil if e is the smallest.
// Time: O(D), amortized O(1) over a full traversal; Space: O(1)
func (u *BinTree[T, P, A, S]) Prev(e *T) *T {
	if l := u.left(e); l != nil {
		return u.rightmost(l)
	}
	for p := u.up(e); p != nil; e, p = p, u.up(p) {
		if u.right(p) == e {
			return p
		}
	}
	return nil
}

// transplant replaces the subtree rooted at old with the one rooted at sub, which can be nil.
// old keeps its own links.
func (u *BinTree[T, P, A, S]) transplant(old, sub *T) {
	p := u.up(old)
	if p == nil {
		Ptrs.Store(&u.root, sub)
	} else if pl := u.link(p); Ptrs.Load[T](&pl.left) == old {
		Ptrs.Store(&pl.left, sub)
	} else {
		Ptrs.Store(&pl.right, sub)
	}
	if sub != nil {
		u.setUp(sub, p)
	}
}

// unlink a linked element from u, keeping the header valid.
// A node with two children is replaced by its in-order successor, which is spliced out
// of its own position first.
func (u *BinTree[T, P, A, S]) unlink(z *T) {
	u.size = u.size.Decr()
	if z == u.Front() {
		Ptrs.Store(&u.header.left, u.Next(z))
	}
	if z == u.Back() {
		Ptrs.Store(&u.header.right, u.Prev(z))
	}
	zl := u.link(z)
	if l, r := Ptrs.Load[T](&zl.left), Ptrs.Load[T](&zl.right); l == nil {
		u.transplant(z, r)
	} else if r == nil {
		u.transplant(z, l)
	} else {
		y := u.leftmost(r)
		if y != r {
			u.transplant(y, u.right(y))
			Ptrs.Store(&u.link(y).right, r)
			u.setUp(r, y)
		}
		u.transplant(z, y)
		Ptrs.Store(&u.link(y).left, l)
		u.setUp(l, y)
	}
	zl.unlink()
}

// PopFront [Container.PopFront]
// The smallest element has no left child, so at most its right subtree moves up.
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) PopFront() *T {
	e := u.Front()
	if e != nil {
		u.unlink(e)
	}
	return e
}

// PopBack [Container.PopBack]
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) PopBack() *T {
	e := u.Back()
	if e != nil {
		u.unlink(e)
	}
	return e
}

// Remove [Container.Remove]
// The returned element is the one that was linked, which needn't be key itself.
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Remove(key *T) *T {
	e := u.Lookup(key)
	if e != nil {
		u.unlink(e)
	}
	return e
}

// Unlink [Container.Unlink]
// No comparisons are made, so e is found even if its key was changed after insertion.
// Panics with UnlinkedError if e isn't linked and with ForeignError if e is linked into
// another tree.
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Unlink(e *T) {
	if !u.link(e).IsLinked() {
		panic(UnlinkedError{e})
	}
	r := e
	for p := u.up(r); p != nil; p = u.up(r) {
		r = p
	}
	if r != Ptrs.Load[T](&u.root) {
		panic(ForeignError{e})
	}
	u.unlink(e)
}

// Clear [Container.Clear]
// Every element is left unlinked and can be inserted again.
// Time: O(n); Space: O(1)
func (u *BinTree[T, P, A, S]) Clear() {
	for u.PopFront() != nil {
	}
}

// Predecessor [Container.Predecessor]
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Predecessor(key *T) *T {
	var a A
	var p *T
	for cur := Ptrs.Load[T](&u.root); cur != nil; {
		if a.Compare(key, cur) <= 0 {
			cur = u.left(cur)
		} else {
			p = cur
			cur = u.right(cur)
		}
	}
	return p
}

// Successor [Container.Successor]
// Time: O(D); Space: O(1)
func (u *BinTree[T, P, A, S]) Successor(key *T) *T {
	var a A
	var p *T
	for cur := Ptrs.Load[T](&u.root); cur != nil; {
		if a.Compare(key, cur) < 0 {
			p = cur
			cur = u.left(cur)
		} else {
			cur = u.right(cur)
		}
	}
	return p
}

// Len [Container.Len]
// Time: depends on S, see Adapters.Eager and Adapters.Lazy.
func (u *BinTree[T, P, A, S]) Len() uint {
	it := u.Iter()
	return u.size.Len(func() bool { return it.Next() != nil })
}

// Empty [Container.Empty]
// Time: O(1)
func (u *BinTree[T, P, A, S]) Empty() bool {
	it := u.Iter()
	return u.size.Empty(func() bool { return it.Next() != nil })
}
