package cmps

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Ordered containers that allocate a node per element, compared against the intrusive
// tree which allocates nothing.

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkBTree_Get(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(i % (hits + misses))
	}
}

func BenchmarkBTree_DeleteMin(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, ok := t.DeleteMin(); ok; _, ok = t.DeleteMin() {
		}
	}
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkLLRB_Get(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(llrb.Int(i % (hits + misses)))
	}
}

func BenchmarkLLRB_DeleteMin(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for t.DeleteMin() != nil {
		}
	}
}

func setupRBTree(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, struct{}{})
	}
	return t
}

func BenchmarkRBTree_Insert(b *testing.B) {
	for range b.N {
		setupRBTree(b)
	}
}

func BenchmarkRBTree_Get(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for i := range b.N {
		_, sideEff = t.Get(i % (hits + misses))
	}
}

func BenchmarkRBTree_DeleteMin(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := setupRBTree(b)
		b.StartTimer()
		for n := t.Left(); n != nil; n = t.Left() {
			t.Remove(n.Key)
		}
	}
}
