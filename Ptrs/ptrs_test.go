package Ptrs

import "testing"

type cell struct {
	v    int
	next Offset[cell]
}

func TestDirect(t *testing.T) {
	var slot Direct[int]
	if Load(&slot) != nil {
		t.Errorf("zero Direct isn't empty")
	}
	x := 7
	Store(&slot, &x)
	if p := Load(&slot); p != &x {
		t.Errorf("got %p, want %p", p, &x)
	}
	Clear(&slot)
	if Load(&slot) != nil {
		t.Errorf("cleared Direct isn't empty")
	}
}

func TestOffset_Relocate(t *testing.T) {
	a := new([4]cell)
	for i := range a {
		a[i].v = i
	}
	// 0 -> 2 -> 1 -> 3, forward and backward distances.
	Store(&a[0].next, &a[2])
	Store(&a[2].next, &a[1])
	Store(&a[1].next, &a[3])
	b := new([4]cell)
	*b = *a
	want := []int{0, 2, 1, 3}
	got := []int{}
	for c := &b[0]; c != nil; c = Load(&c.next) {
		got = append(got, c.v)
		if c != &b[c.v] {
			t.Errorf("node %d still refers into the old block", c.v)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	Store(&b[3].next, nil)
	if b[3].next != 0 {
		t.Errorf("nil target stored as %d", b[3].next)
	}
}

func TestPin(t *testing.T) {
	x := 3
	if p := Pin(&x); p.Ptr() != &x {
		t.Errorf("got %p, want %p", p.Ptr(), &x)
	}
	defer func() {
		if _, ok := recover().(NilPinError); !ok {
			t.Errorf("pinning nil didn't panic with NilPinError")
		}
	}()
	Pin[int](nil)
}
