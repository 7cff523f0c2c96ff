package Adapters

import "golang.org/x/exp/constraints"

// Size is the counting policy of a container. It is a value type; Incr and Decr return
// the updated policy instead of mutating it.
// next advances a fresh forward traversal of the container and reports whether it
// produced an element. Policies that keep no state walk it, the others ignore it.
type Size[S any] interface {
	Incr() S
	Decr() S
	Len(next func() bool) uint
	Empty(next func() bool) bool
}

// Eager keeps a counter of type N. Len and Empty are O(1) and every mutation pays one write.
// N should be wide enough for the largest container it counts.
type Eager[N constraints.Unsigned] struct {
	n N
}

// Incr panics with OverflowError when N can't count one more element.
func (u Eager[N]) Incr() Eager[N] {
	if u.n+1 == 0 {
		panic(OverflowError{})
	}
	return Eager[N]{u.n + 1}
}

// Decr panics with UnderflowError when the counter is already 0.
func (u Eager[N]) Decr() Eager[N] {
	if u.n == 0 {
		panic(UnderflowError{})
	}
	return Eager[N]{u.n - 1}
}

func (u Eager[N]) Len(func() bool) uint {
	return uint(u.n)
}

func (u Eager[N]) Empty(func() bool) bool {
	return u.n == 0
}

// Lazy keeps nothing. Len is O(n) and Empty O(1); mutations cost nothing.
type Lazy struct{}

func (Lazy) Incr() Lazy {
	return Lazy{}
}

func (Lazy) Decr() Lazy {
	return Lazy{}
}

func (Lazy) Len(next func() bool) (n uint) {
	for next() {
		n++
	}
	return
}

func (Lazy) Empty(next func() bool) bool {
	return !next()
}

type OverflowError struct{}

func (OverflowError) Error() string {
	return "Adapters: size incremented past the counter's range"
}

type UnderflowError struct{}

func (UnderflowError) Error() string {
	return "Adapters: size decremented below zero"
}
