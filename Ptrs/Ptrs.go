// Package Ptrs decides how an intrusive container physically stores the edges between
// elements. A container never holds a *T directly; it holds a representation P and
// converts through Store and Load, so the same algorithm runs on plain addresses or on
// relative offsets inside a relocatable block.
package Ptrs

import "unsafe"

// Pointer is implemented by a comparable value type P that represents an edge to a *T.
// The zero value of P must be the empty edge.
//
// Of builds the representation that will be stored at slot for raw; raw==nil gives the
// empty edge. Deref resolves the representation that is stored at slot, and returns nil
// for the empty edge. Both are total: a container only dereferences what it stored.
type Pointer[T, P any] interface {
	comparable
	Of(raw *T, slot unsafe.Pointer) P
	Deref(slot unsafe.Pointer) *T
}

// Store raw into slot.
func Store[T any, P Pointer[T, P]](slot *P, raw *T) {
	*slot = (*slot).Of(raw, unsafe.Pointer(slot))
}

// Load the element slot refers to, nil if slot is empty.
func Load[T any, P Pointer[T, P]](slot *P) *T {
	return (*slot).Deref(unsafe.Pointer(slot))
}

// Clear slot to the empty edge.
func Clear[P any](slot *P) {
	*slot = *new(P)
}
