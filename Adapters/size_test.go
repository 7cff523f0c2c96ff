package Adapters

import "testing"

func counter(n int) (func() bool, *int) {
	calls := 0
	return func() bool {
		calls++
		if n == 0 {
			return false
		}
		n--
		return true
	}, &calls
}

func TestEager(t *testing.T) {
	var s Eager[uint8]
	if !s.Empty(nil) || s.Len(nil) != 0 {
		t.Errorf("zero Eager isn't empty")
	}
	for range 5 {
		s = s.Incr()
	}
	s = s.Decr()
	next, calls := counter(100)
	if s.Len(next) != 4 || s.Empty(next) {
		t.Errorf("Len is %d, want 4", s.Len(next))
	}
	if *calls != 0 {
		t.Errorf("Eager walked the traversal %d times", *calls)
	}
}

func TestEager_Underflow(t *testing.T) {
	defer func() {
		if _, ok := recover().(UnderflowError); !ok {
			t.Errorf("Decr on 0 didn't panic with UnderflowError")
		}
	}()
	Eager[uint]{}.Decr()
}

func TestEager_Overflow(t *testing.T) {
	var s Eager[uint8]
	for range 255 {
		s = s.Incr()
	}
	if s.Len(nil) != 255 {
		t.Errorf("Len is %d, want 255", s.Len(nil))
	}
	defer func() {
		if _, ok := recover().(OverflowError); !ok {
			t.Errorf("Incr on 255 didn't panic with OverflowError")
		}
	}()
	s.Incr()
}

func TestLazy(t *testing.T) {
	var s Lazy
	s = s.Incr().Incr().Decr()
	next, calls := counter(6)
	if n := s.Len(next); n != 6 {
		t.Errorf("Len is %d, want 6", n)
	}
	if *calls != 7 {
		t.Errorf("Len stepped %d times, want 7", *calls)
	}
	next, calls = counter(6)
	if s.Empty(next) {
		t.Errorf("Empty reported true for 6 elements")
	}
	if *calls != 1 {
		t.Errorf("Empty stepped %d times, want 1", *calls)
	}
	if next, _ = counter(0); !s.Empty(next) {
		t.Errorf("Empty reported false for 0 elements")
	}
}
