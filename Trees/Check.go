package Trees

import "github.com/g-m-twostay/go-intrusive/Ptrs"

type visit[T any] struct {
	e *T
	d uint
}

// walk the tree in pre-order with an explicit stack, calling f with each element and
// its depth, the root being at depth 1. Stops when f returns false.
// Children of e are only visited after f(e) returned true.
func (u *BinTree[T, P, A, S]) walk(f func(e *T, d uint) bool) {
	root := Ptrs.Load[T](&u.root)
	if root == nil {
		return
	}
	for st := []visit[T]{{root, 1}}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.e, cur.d) {
			return
		}
		if r := u.right(cur.e); r != nil {
			st = append(st, visit[T]{r, cur.d + 1})
		}
		if l := u.left(cur.e); l != nil {
			st = append(st, visit[T]{l, cur.d + 1})
		}
	}
}

// MaxDepth of the tree, 0 when empty.
// Time: O(n); Space: O(D)
func (u *BinTree[T, P, A, S]) MaxDepth() (m uint) {
	u.walk(func(_ *T, d uint) bool {
		m = max(m, d)
		return true
	})
	return
}

// Corrupt [Container.Corrupt]
// Checks, in this order, that every child refers back to its parent, that the root
// refers to itself, that the in-order sequence is strictly increasing under A, that
// the header caches the first and last element, and that Len agrees with the number
// of elements reached.
// Time: O(n); Space: O(D)
func (u *BinTree[T, P, A, S]) Corrupt() bool {
	root := Ptrs.Load[T](&u.root)
	if root == nil {
		return u.Front() != nil || u.Back() != nil || u.Len() != 0
	}
	if Ptrs.Load[T](&u.link(root).parent) != root {
		return true
	}
	corrupt, count := false, uint(0)
	u.walk(func(e *T, _ uint) bool {
		count++
		for _, c := range [2]*T{u.left(e), u.right(e)} {
			if c != nil && Ptrs.Load[T](&u.link(c).parent) != e {
				corrupt = true
			}
		}
		return !corrupt
	})
	if corrupt {
		return true
	}
	var a A
	n := uint(0)
	for e, prev := u.leftmost(root), (*T)(nil); e != nil; prev, e = e, u.Next(e) {
		if n++; prev != nil && a.Compare(prev, e) >= 0 {
			return true
		}
	}
	return n != count || u.Front() != u.leftmost(root) || u.Back() != u.rightmost(root) || u.Len() != count
}
