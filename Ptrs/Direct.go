package Ptrs

import "unsafe"

// Direct is the default edge: a plain non-owning address. The slot address is ignored.
type Direct[T any] struct {
	p *T
}

func (Direct[T]) Of(raw *T, _ unsafe.Pointer) Direct[T] {
	return Direct[T]{raw}
}

func (u Direct[T]) Deref(_ unsafe.Pointer) *T {
	return u.p
}
