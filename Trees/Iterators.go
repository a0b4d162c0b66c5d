package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Iterator acts like the "Next()" of iterators: n, valid = f().
// n is meaningful only if valid is true. Once valid is false the iterator is
// exhausted and stays so.
// The tree must not be modified during the iteration, otherwise the iterator may
// skip or repeat nodes. There will be no panic in such cases.
type Iterator[K constraints.Integer, V any] func() (*Node[K, V], bool)

// Range calls f on every remaining node until f returns false.
func (it Iterator[K, V]) Range(f func(*Node[K, V]) bool) {
	for n, ok := it(); ok && f(n); n, ok = it() {
	}
}

// Collect the remaining nodes into a slice.
func (it Iterator[K, V]) Collect() []*Node[K, V] {
	var s []*Node[K, V]
	for n, ok := it(); ok; n, ok = it() {
		s = append(s, n)
	}
	return s
}

func popNode[K constraints.Integer, V any](st *arraystack.Stack) *Node[K, V] {
	a, _ := st.Pop()
	return a.(*Node[K, V])
}

// PreOrder returns a new Iterator walking the tree in pre-order: node, left, right.
// Each call starts over from the root.
// Time: amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K, V]) PreOrder() Iterator[K, V] {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (*Node[K, V], bool) {
		if st.Empty() {
			return nil, false
		}
		n := popNode[K, V](st)
		if n.r != nil {
			st.Push(n.r)
		}
		if n.l != nil {
			st.Push(n.l)
		}
		return n, true
	}
}

// All is the default iteration order of the tree, which is pre-order.
func (u *BSTree[K, V]) All() Iterator[K, V] {
	return u.PreOrder()
}

// InOrder returns a new Iterator giving nodes in ascending order of keys.
// Time: amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K, V]) InOrder() Iterator[K, V] {
	st, cur := arraystack.New(), u.root
	return func() (*Node[K, V], bool) {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		if st.Empty() {
			return nil, false
		}
		n := popNode[K, V](st)
		cur = n.r
		return n, true
	}
}

// PostOrder returns a new Iterator walking the tree in post-order: left, right, node.
// Time: amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K, V]) PostOrder() Iterator[K, V] {
	st, cur := arraystack.New(), u.root
	var last *Node[K, V] // last node given out.
	return func() (*Node[K, V], bool) {
		for {
			for ; cur != nil; cur = cur.l {
				st.Push(cur)
			}
			a, ok := st.Peek()
			if !ok {
				return nil, false
			}
			if top := a.(*Node[K, V]); top.r != nil && top.r != last {
				cur = top.r
			} else {
				st.Pop()
				last = top
				return top, true
			}
		}
	}
}

// LevelOrder returns a new Iterator walking the tree breadth first, left to right
// within a level.
// Time: O(1) at each call to the returned function. Space: O(width of the tree)
func (u *BSTree[K, V]) LevelOrder() Iterator[K, V] {
	q := Queues.MakeArrayQueue[*Node[K, V]](4)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (*Node[K, V], bool) {
		n, e := q.Pop()
		if e != nil {
			return nil, false
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
		return n, true
	}
}
