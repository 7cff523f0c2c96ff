package Ptrs

// Pinned certifies that the element it wraps has a stable address for as long as it is
// linked into any container. Go never relocates heap objects, so taking the address of
// an element that outlives the container is enough; what Pinned rules out is handing a
// container a value it could copy.
// The zero value is meaningless.
type Pinned[T any] struct {
	p *T
}

// Pin p. Panics if p is nil.
func Pin[T any](p *T) Pinned[T] {
	if p == nil {
		panic(NilPinError{})
	}
	return Pinned[T]{p}
}

// Ptr returns the pinned address.
func (u Pinned[T]) Ptr() *T {
	return u.p
}

type NilPinError struct{}

func (NilPinError) Error() string {
	return "Ptrs: cannot pin a nil element"
}
