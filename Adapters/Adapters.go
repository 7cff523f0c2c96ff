// Package Adapters holds the contracts a container needs from the application: how to
// find the link embedded in an element, how to order elements, and how to count them.
package Adapters

// Adapter maps an element to the link of type L embedded in it. Implementations are
// zero-sized types and Link must be a pure projection: the same element always yields
// the same link address.
type Adapter[T, L any] interface {
	Link(e *T) *L
}

// Ordered is an Adapter that also defines the total order of an ordered container.
// Compare returns a negative number when a<b, 0 when a==b, and a positive number
// otherwise. The order is independent of anything T defines itself, so one struct with
// two links can be indexed by two different keys through two adapters.
type Ordered[T, L any] interface {
	Adapter[T, L]
	Compare(a, b *T) int
}
