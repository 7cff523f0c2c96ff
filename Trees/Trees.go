// Package Trees implements the ordered intrusive binary search tree. Elements embed a
// Link, the tree threads them together through it and never allocates, copies or frees
// an element.
package Trees

import "iter"

// Container represents an ordered intrusive container over elements of type T.
// Receivers returning *T use nil for "nothing": an empty container, a key that isn't
// present, or an insertion that was accepted. None of them is an error.
// Misuse that would corrupt the structure, such as inserting a linked element, panics.
// Methods are implemented iteratively and never allocate or copy elements.
type Container[T any] interface {
	//Insert e. Returns nil if e was linked, or e itself when an element
	//comparing equal is already present, in which case e stays unlinked.
	Insert(e *T) *T
	//Remove the element comparing equal to key and return it unlinked.
	Remove(key *T) *T
	//Unlink e, which must be linked into this container.
	Unlink(e *T)
	//Lookup the element comparing equal to key.
	Lookup(key *T) *T
	//Has an element comparing equal to key.
	Has(key *T) bool
	//Front is the smallest element.
	Front() *T
	//Back is the largest element.
	Back() *T
	//PopFront unlinks and returns the smallest element.
	PopFront() *T
	//PopBack unlinks and returns the largest element.
	PopBack() *T
	//Predecessor returns the greatest element less than key.
	Predecessor(key *T) *T
	//Successor returns the smallest element greater than key.
	Successor(key *T) *T
	//All elements in ascending order. The container must not be
	//modified while the sequence is being ranged over.
	All() iter.Seq[*T]
	//Backward is All in descending order.
	Backward() iter.Seq[*T]
	//Len of the container.
	Len() uint
	//Empty reports whether Len()==0.
	Empty() bool
	//Clear unlinks every element.
	Clear()
	//Corrupt reports whether the links violate the container's invariants.
	Corrupt() bool
}
