package Trees

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// BSTree is a plain binary search tree with no repeated keys. Every key carries
// a value that must not be absent. Nothing is done to keep it balanced, so the
// height D of the tree is O(n) in the worst case, for example when keys are
// inserted in sorted order.
// BSTree isn't safe for concurrent use. Nodes and iterators handed out by the
// tree are invalidated by the next Insert or Remove.
// The zero value is an empty tree ready to use.
type BSTree[K constraints.Integer, V any] struct {
	root *Node[K, V] // nil iff the tree is empty.
	size int
}

// New returns an empty BSTree.
func New[K constraints.Integer, V any]() *BSTree[K, V] {
	return &BSTree[K, V]{}
}

// NewWithRoot returns a BSTree holding a single node. Returns ErrNullValue if v is absent.
func NewWithRoot[K constraints.Integer, V any](k K, v V) (*BSTree[K, V], error) {
	if absent(v) {
		return nil, ErrNullValue
	}
	return &BSTree[K, V]{newNode(k, v, nil, nil, nil), 1}, nil
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[K, V]) Root() *Node[K, V] {
	return u.root
}

// Size returns the number of nodes in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[K, V]) Size() int {
	return u.size
}

// Height of the tree, 0 for an empty tree. Recursive.
// Time: O(n)
func (u *BSTree[K, V]) Height() int {
	return u.root.Height()
}

// Clear removes all the nodes. O(1).
func (u *BSTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// insert k under cur recursively. cur must not be nil.
func (u *BSTree[K, V]) insert(cur *Node[K, V], k K, v V) error {
	if k < cur.k {
		if cur.l == nil {
			cur.setLeft(newNode[K, V](k, v, nil, nil, cur))
			u.size++
			return nil
		}
		return u.insert(cur.l, k, v)
	} else if k == cur.k {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, k)
	} else {
		if cur.r == nil {
			cur.setRight(newNode[K, V](k, v, nil, nil, cur))
			u.size++
			return nil
		}
		return u.insert(cur.r, k, v)
	}
}

// Insert k with value v. Recursive. Fails with ErrNullValue if v is absent and
// with ErrDuplicateKey if k is already in the tree; the tree is left unchanged in
// both cases.
// Time: O(D)
func (u *BSTree[K, V]) Insert(k K, v V) error {
	if absent(v) {
		return ErrNullValue
	}
	if u.root == nil {
		u.root, u.size = newNode[K, V](k, v, nil, nil, nil), 1
		return nil
	}
	return u.insert(u.root, k, v)
}

// Put is Insert for keys of unknown type, see KeyOf.
func (u *BSTree[K, V]) Put(key any, v V) error {
	k, e := KeyOf[K](key)
	if e != nil {
		return e
	}
	return u.Insert(k, v)
}

// search k under cur recursively. Returns the node and its parent.
func (u *BSTree[K, V]) search(cur *Node[K, V], k K) (*Node[K, V], *Node[K, V]) {
	if cur == nil {
		return nil, nil
	} else if k < cur.k {
		return u.search(cur.l, k)
	} else if k == cur.k {
		return cur, cur.p
	} else {
		return u.search(cur.r, k)
	}
}

// Search returns the node with key k and its parent, which is nil when the node
// is the root. Recursive. Fails with ErrKeyNotFound.
// Time: O(D)
func (u *BSTree[K, V]) Search(k K) (n, parent *Node[K, V], e error) {
	if n, parent = u.search(u.root, k); n == nil {
		e = fmt.Errorf("%w: %d", ErrKeyNotFound, k)
	}
	return
}

// Find the node with key k. Recursive. Fails with ErrKeyNotFound.
// Time: O(D)
func (u *BSTree[K, V]) Find(k K) (*Node[K, V], error) {
	n, _, e := u.Search(k)
	return n, e
}

// Get the value with key k.
func (u *BSTree[K, V]) Get(k K) (V, error) {
	if n, e := u.Find(k); e != nil {
		return *new(V), e
	} else {
		return n.v, nil
	}
}

// At is Get for keys of unknown type, see KeyOf.
func (u *BSTree[K, V]) At(key any) (V, error) {
	k, e := KeyOf[K](key)
	if e != nil {
		return *new(V), e
	}
	return u.Get(k)
}

// Remove the node with key k. Fails with ErrKeyNotFound, leaving the tree unchanged.
// A node with two children takes the key and value of its successor, and the
// successor is unlinked instead.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Remove(k K) error {
	cur, p := u.root, (*Node[K, V])(nil)
	for cur != nil && cur.k != k {
		p = cur
		if k < cur.k {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if cur == nil {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, k)
	}

	if cur.l == nil || cur.r == nil {
		c := cur.l
		if c == nil {
			c = cur.r
		}
		u.replace(p, cur, c)
	} else {
		sp, s := cur, cur.r
		for s.l != nil {
			sp, s = s, s.l
		}
		cur.k, cur.v = s.k, s.v
		if sp == cur {
			sp.setRight(s.r)
		} else {
			sp.setLeft(s.r)
		}
		s.l, s.r, s.p = nil, nil, nil
	}
	u.size--
	return nil
}

// Delete is Remove for keys of unknown type, see KeyOf.
func (u *BSTree[K, V]) Delete(key any) error {
	k, e := KeyOf[K](key)
	if e != nil {
		return e
	}
	return u.Remove(k)
}

// replace child old of p by c, where p==nil means old is the root.
func (u *BSTree[K, V]) replace(p, old, c *Node[K, V]) {
	if p == nil {
		if u.root = c; c != nil {
			c.p = nil
		}
	} else if p.l == old {
		p.setLeft(c)
	} else {
		p.setRight(c)
	}
	old.l, old.r, old.p = nil, nil, nil
}

// Minimum returns the node with the smallest key, or nil if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Minimum() *Node[K, V] {
	cur := u.root
	if cur == nil {
		return nil
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur
}

// Maximum returns the node with the largest key, or nil if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Maximum() *Node[K, V] {
	cur := u.root
	if cur == nil {
		return nil
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur
}

// isValid checks the subtree rooting at cur against the open interval (lo, hi).
// hasLo and hasHi tell whether each bound exists.
func (u *BSTree[K, V]) isValid(cur *Node[K, V], lo, hi K, hasLo, hasHi bool) bool {
	if cur == nil {
		return true
	}
	if (hasLo && cur.k <= lo) || (hasHi && cur.k >= hi) {
		return false
	}
	return u.isValid(cur.l, lo, cur.k, hasLo, true) && u.isValid(cur.r, cur.k, hi, true, hasHi)
}

// IsValid reports whether every key satisfies the ordering of a binary search tree.
// An empty tree is valid. Recursive.
// Time: O(n)
func (u *BSTree[K, V]) IsValid() bool {
	return u.isValid(u.root, 0, 0, false, false)
}

// FindComparison counts the cost of looking up k in two ways. bst is the cost of
// descending the tree: 1 for every node examined, plus 1 for every branch taken.
// linear is the cost of scanning the keys of the whole tree in preorder: the
// 1-based position of k, or the number of keys when k is absent.
// Time: O(n)
func (u *BSTree[K, V]) FindComparison(k K) (linear, bst int) {
	for cur := u.root; cur != nil; {
		bst++
		if k < cur.k {
			bst++
			cur = cur.l
		} else if k == cur.k {
			break
		} else {
			bst++
			cur = cur.r
		}
	}
	next := u.PreOrder()
	for n, ok := next(); ok; n, ok = next() {
		linear++
		if n.k == k {
			return
		}
	}
	return
}

// Keys returns all the keys in ascending order.
func (u *BSTree[K, V]) Keys() []K {
	ks := make([]K, 0, u.size)
	u.InOrder().Range(func(n *Node[K, V]) bool {
		ks = append(ks, n.k)
		return true
	})
	return ks
}

// String lists the nodes in order.
func (u *BSTree[K, V]) String() string {
	var b strings.Builder
	b.WriteString("BSTree[")
	first := true
	u.InOrder().Range(func(n *Node[K, V]) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(n.String())
		return true
	})
	b.WriteByte(']')
	return b.String()
}
