package Ptrs

import "unsafe"

// Offset is an edge stored as the signed byte distance from the slot holding it to the
// target. When the slot and the target live in the same memory block, copying or
// relocating the whole block keeps every Offset valid, which Direct can't do.
//
// 0 is the empty edge, so an Offset must never be asked to point at its own address.
// Tree links satisfy this because the only self-reference they make is the root's
// parent slot, and that slot is never the first word of the element.
//
// Offset doesn't keep its target alive for the garbage collector. The block that holds
// slots and targets has to be reachable through ordinary pointers.
type Offset[T any] int

func (Offset[T]) Of(raw *T, slot unsafe.Pointer) Offset[T] {
	if raw == nil {
		return 0
	}
	return Offset[T](uintptr(unsafe.Pointer(raw)) - uintptr(slot))
}

func (u Offset[T]) Deref(slot unsafe.Pointer) *T {
	if u == 0 {
		return nil
	}
	return (*T)(unsafe.Add(slot, int(u)))
}
