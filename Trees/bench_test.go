package Trees

import (
	"testing"

	"github.com/g-m-twostay/go-intrusive/Adapters"
)

const bSize = 1 << 15

var sideEff *item

func fill(b *testing.B, tree Container[item], a []item) {
	b.Helper()
	for i := range a {
		tree.Insert(&a[i])
	}
}

func BenchmarkTree_Insert(b *testing.B) {
	a := items(rg.Perm(bSize)...)
	for range b.N {
		tree := NewTree[item, byKey, Adapters.Eager[uint]]()
		fill(b, tree, a)
		b.StopTimer()
		tree.Clear()
		b.StartTimer()
	}
}

func BenchmarkTree_Remove(b *testing.B) {
	a := items(rg.Perm(bSize)...)
	probes := items(rg.Perm(bSize)...)
	for range b.N {
		b.StopTimer()
		tree := NewTree[item, byKey, Adapters.Eager[uint]]()
		fill(b, tree, a)
		b.StartTimer()
		for i := range probes {
			sideEff = tree.Remove(&probes[i])
		}
	}
}

func BenchmarkTree_PopFront(b *testing.B) {
	a := items(rg.Perm(bSize)...)
	for range b.N {
		b.StopTimer()
		tree := NewTree[item, byKey, Adapters.Lazy]()
		fill(b, tree, a)
		b.StartTimer()
		for sideEff = tree.PopFront(); sideEff != nil; sideEff = tree.PopFront() {
		}
	}
}

func BenchmarkTree_Lookup(b *testing.B) {
	a := items(rg.Perm(bSize)...)
	tree := NewTree[item, byKey, Adapters.Eager[uint]]()
	fill(b, tree, a)
	probes := items(rg.Perm(bSize * 2)...)
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Lookup(&probes[i%len(probes)])
	}
}

func BenchmarkTree_All(b *testing.B) {
	a := items(rg.Perm(bSize)...)
	tree := NewTree[item, byKey, Adapters.Eager[uint]]()
	fill(b, tree, a)
	b.ResetTimer()
	for range b.N {
		for e := range tree.All() {
			sideEff = e
		}
	}
}

func BenchmarkTree_Len(b *testing.B) {
	a := items(rg.Perm(1024)...)
	eager, lazy := NewTree[item, byKey, Adapters.Eager[uint]](), NewTree[item, byKey, Adapters.Lazy]()
	fill(b, eager, a)
	fill(b, lazy, items(rg.Perm(1024)...))
	b.Run("eager", func(b *testing.B) {
		for range b.N {
			_ = eager.Len()
		}
	})
	b.Run("lazy", func(b *testing.B) {
		for range b.N {
			_ = lazy.Len()
		}
	})
}
