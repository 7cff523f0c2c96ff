package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-intrusive/Adapters"
	"github.com/g-m-twostay/go-intrusive/Ptrs"
)

// Iter is a double-ended in-order iterator over a BinTree. Next walks up from the
// smallest element, NextBack down from the largest; once the two ends meet, or either
// end runs out, the iterator is exhausted for good and both return nil.
// The tree must not be modified while an Iter over it is in use.
type Iter[T any, P Ptrs.Pointer[T, P], A Adapters.Ordered[T, Link[P]], S Adapters.Size[S]] struct {
	tree        *BinTree[T, P, A, S]
	front, back *T //last element yielded at each end, nil before the first step.
	done        bool
}

// Iter returns a fresh iterator positioned before the first and after the last element.
func (u *BinTree[T, P, A, S]) Iter() *Iter[T, P, A, S] {
	return &Iter[T, P, A, S]{tree: u}
}

// Next element in ascending order.
// Time: amortized O(1); Space: O(1)
func (u *Iter[T, P, A, S]) Next() *T {
	if u.done {
		return nil
	}
	var e *T
	if u.front == nil {
		e = u.tree.Front()
	} else {
		e = u.tree.Next(u.front)
	}
	if e == nil || e == u.back {
		u.done = true
		return nil
	}
	u.front = e
	return e
}

// NextBack element in descending order.
// Time: amortized O(1); Space: O(1)
func (u *Iter[T, P, A, S]) NextBack() *T {
	if u.done {
		return nil
	}
	var e *T
	if u.back == nil {
		e = u.tree.Back()
	} else {
		e = u.tree.Prev(u.back)
	}
	if e == nil || e == u.front {
		u.done = true
		return nil
	}
	u.back = e
	return e
}

// All [Container.All]
func (u *BinTree[T, P, A, S]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := u.Iter(); ; {
			if e := it.Next(); e == nil || !yield(e) {
				return
			}
		}
	}
}

// Backward [Container.Backward]
func (u *BinTree[T, P, A, S]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := u.Iter(); ; {
			if e := it.NextBack(); e == nil || !yield(e) {
				return
			}
		}
	}
}
