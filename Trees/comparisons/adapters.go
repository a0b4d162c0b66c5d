// Package comparisons puts BSTree side by side with well known ordered
// containers. Each of them is adapted to Trees.Ordered so that the same
// workload runs against all of them.
package comparisons

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

func duplicate(k int) error {
	return fmt.Errorf("%w: %d", Trees.ErrDuplicateKey, k)
}

func notFound(k int) error {
	return fmt.Errorf("%w: %d", Trees.ErrKeyNotFound, k)
}

// RBTree is the red-black tree of github.com/emirpasic/gods.
type RBTree struct {
	t *redblacktree.Tree
}

func NewRBTree() *RBTree {
	return &RBTree{redblacktree.NewWithIntComparator()}
}

func (u *RBTree) Insert(k, v int) error {
	if _, found := u.t.Get(k); found {
		return duplicate(k)
	}
	u.t.Put(k, v)
	return nil
}

func (u *RBTree) Remove(k int) error {
	if _, found := u.t.Get(k); !found {
		return notFound(k)
	}
	u.t.Remove(k)
	return nil
}

func (u *RBTree) Get(k int) (int, error) {
	if v, found := u.t.Get(k); found {
		return v.(int), nil
	}
	return 0, notFound(k)
}

func (u *RBTree) Size() int {
	return u.t.Size()
}

func (u *RBTree) Keys() []int {
	ks := make([]int, 0, u.t.Size())
	for _, k := range u.t.Keys() {
		ks = append(ks, k.(int))
	}
	return ks
}

type entry struct {
	k, v int
}

// BTree is the generic B-tree of github.com/google/btree.
type BTree struct {
	t *btree.BTreeG[entry]
}

// NewBTree with nodes of the given degree.
func NewBTree(degree int) *BTree {
	return &BTree{btree.NewG(degree, func(a, b entry) bool {
		return a.k < b.k
	})}
}

func (u *BTree) Insert(k, v int) error {
	if u.t.Has(entry{k: k}) {
		return duplicate(k)
	}
	u.t.ReplaceOrInsert(entry{k, v})
	return nil
}

func (u *BTree) Remove(k int) error {
	if _, found := u.t.Delete(entry{k: k}); !found {
		return notFound(k)
	}
	return nil
}

func (u *BTree) Get(k int) (int, error) {
	if e, found := u.t.Get(entry{k: k}); found {
		return e.v, nil
	}
	return 0, notFound(k)
}

func (u *BTree) Size() int {
	return u.t.Len()
}

func (u *BTree) Keys() []int {
	ks := make([]int, 0, u.t.Len())
	u.t.Ascend(func(e entry) bool {
		ks = append(ks, e.k)
		return true
	})
	return ks
}

type llrbEntry entry

func (u llrbEntry) Less(than llrb.Item) bool {
	return u.k < than.(llrbEntry).k
}

// LLRB is the left-leaning red-black tree of github.com/petar/GoLLRB.
type LLRB struct {
	t *llrb.LLRB
}

func NewLLRB() *LLRB {
	return &LLRB{llrb.New()}
}

func (u *LLRB) Insert(k, v int) error {
	if u.t.Has(llrbEntry{k: k}) {
		return duplicate(k)
	}
	u.t.ReplaceOrInsert(llrbEntry{k, v})
	return nil
}

func (u *LLRB) Remove(k int) error {
	if u.t.Delete(llrbEntry{k: k}) == nil {
		return notFound(k)
	}
	return nil
}

func (u *LLRB) Get(k int) (int, error) {
	if i := u.t.Get(llrbEntry{k: k}); i != nil {
		return i.(llrbEntry).v, nil
	}
	return 0, notFound(k)
}

func (u *LLRB) Size() int {
	return u.t.Len()
}

func (u *LLRB) Keys() []int {
	ks := make([]int, 0, u.t.Len())
	if u.t.Len() == 0 {
		return ks
	}
	u.t.AscendGreaterOrEqual(u.t.Min(), func(i llrb.Item) bool {
		ks = append(ks, i.(llrbEntry).k)
		return true
	})
	return ks
}

var (
	_ Trees.Ordered[int, int] = (*RBTree)(nil)
	_ Trees.Ordered[int, int] = (*BTree)(nil)
	_ Trees.Ordered[int, int] = (*LLRB)(nil)
	_ Trees.Ordered[int, int] = (*Trees.BSTree[int, int])(nil)
)
