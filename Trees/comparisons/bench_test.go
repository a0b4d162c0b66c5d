package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/puzpuzpuz/xsync/v3"
)

const (
	bSize = 1 << 14
)

var sideEff int

func benchInsertRemove(b *testing.B, mk func() Trees.Ordered[int, int]) {
	keys := rand.New(rand.NewSource(0)).Perm(bSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o := mk()
		for _, k := range keys {
			o.Insert(k, k)
		}
		for _, k := range keys {
			o.Remove(k)
		}
	}
}

func benchGet(b *testing.B, o Trees.Ordered[int, int]) {
	keys := rand.New(rand.NewSource(0)).Perm(bSize)
	for _, k := range keys {
		o.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff, _ = o.Get(keys[i%bSize])
	}
}

func BenchmarkBSTree_InsertRemove(b *testing.B) {
	benchInsertRemove(b, func() Trees.Ordered[int, int] { return Trees.New[int, int]() })
}

func BenchmarkRBTree_InsertRemove(b *testing.B) {
	benchInsertRemove(b, func() Trees.Ordered[int, int] { return NewRBTree() })
}

func BenchmarkBTree_InsertRemove(b *testing.B) {
	benchInsertRemove(b, func() Trees.Ordered[int, int] { return NewBTree(32) })
}

func BenchmarkLLRB_InsertRemove(b *testing.B) {
	benchInsertRemove(b, func() Trees.Ordered[int, int] { return NewLLRB() })
}

func BenchmarkBSTree_Get(b *testing.B) {
	benchGet(b, Trees.New[int, int]())
}

func BenchmarkRBTree_Get(b *testing.B) {
	benchGet(b, NewRBTree())
}

func BenchmarkBTree_Get(b *testing.B) {
	benchGet(b, NewBTree(32))
}

func BenchmarkLLRB_Get(b *testing.B) {
	benchGet(b, NewLLRB())
}

// Hash maps give the lower bound a point lookup can reach without ordering.

func BenchmarkHaxMap_Get(b *testing.B) {
	keys := rand.New(rand.NewSource(0)).Perm(bSize)
	m := haxmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff, _ = m.Get(keys[i%bSize])
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	keys := rand.New(rand.NewSource(0)).Perm(bSize)
	m := hashmap.New[int, int]()
	for _, k := range keys {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff, _ = m.Get(keys[i%bSize])
	}
}

func BenchmarkXsyncMap_Get(b *testing.B) {
	keys := rand.New(rand.NewSource(0)).Perm(bSize)
	m := xsync.NewMapOf[int, int]()
	for _, k := range keys {
		m.Store(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff, _ = m.Load(keys[i%bSize])
	}
}
