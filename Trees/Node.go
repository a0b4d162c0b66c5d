package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node is a vertex of a BSTree.
// l and r are owned by the node. p points back to the structural parent and
// never owns it; it's nil for the root.
// A *Node obtained from a BSTree is only a view: it stays valid until the
// next Insert or Remove on that tree.
type Node[K constraints.Integer, V any] struct {
	k       K
	v       V
	l, r, p *Node[K, V]
}

// newNode doesn't validate anything, that's the job of BSTree.
func newNode[K constraints.Integer, V any](k K, v V, l, r, p *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{k, v, l, r, p}
}

func (u *Node[K, V]) Key() K {
	return u.k
}

func (u *Node[K, V]) Value() V {
	return u.v
}

func (u *Node[K, V]) Left() *Node[K, V] {
	return u.l
}

func (u *Node[K, V]) Right() *Node[K, V] {
	return u.r
}

// Parent returns nil for the root.
func (u *Node[K, V]) Parent() *Node[K, V] {
	return u.p
}

// IsExternal reports whether u is a leaf.
func (u *Node[K, V]) IsExternal() bool {
	return u.l == nil && u.r == nil
}

// IsInternal reports whether u has at least one child.
func (u *Node[K, V]) IsInternal() bool {
	return u.l != nil || u.r != nil
}

// FindNode searches k in the subtree rooting at u only. Returns nil if k isn't there.
// Recursive.
// Time: O(height of u)
func (u *Node[K, V]) FindNode(k K) *Node[K, V] {
	if u == nil {
		return nil
	} else if k < u.k {
		return u.l.FindNode(k)
	} else if k == u.k {
		return u
	} else {
		return u.r.FindNode(k)
	}
}

// Height of the subtree rooting at u; a leaf has height 1 and nil has 0.
// Recursive.
// Time: O(n) where n is the size of the subtree.
func (u *Node[K, V]) Height() int {
	if u == nil {
		return 0
	}
	return 1 + max(u.l.Height(), u.r.Height())
}

// Depth is the number of edges between u and the root, found through the
// parent links. The root has depth 0.
// Time: O(D); Space: O(1)
func (u *Node[K, V]) Depth() (d int) {
	for cur := u.p; cur != nil; cur = cur.p {
		d++
	}
	return
}

func (u *Node[K, V]) String() string {
	return fmt.Sprintf("Node(%d, %v)", u.k, u.v)
}

// setLeft links c as the left child of u and fixes c's parent.
func (u *Node[K, V]) setLeft(c *Node[K, V]) {
	if u.l = c; c != nil {
		c.p = u
	}
}

func (u *Node[K, V]) setRight(c *Node[K, V]) {
	if u.r = c; c != nil {
		c.p = u
	}
}
