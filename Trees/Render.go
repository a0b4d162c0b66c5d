package Trees

import (
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// Render draws the shape of the tree. The left child is listed before the right
// one; a missing child is drawn as <nil> when its sibling exists.
// Recursive.
func (u *BSTree[K, V]) Render() string {
	if u.root == nil {
		return treeprint.NewWithRoot("<empty>").String()
	}
	t := treeprint.NewWithRoot(u.root.String())
	render(u.root, t)
	return t.String()
}

func render[K constraints.Integer, V any](n *Node[K, V], t treeprint.Tree) {
	if n.IsExternal() {
		return
	}
	for _, c := range [2]*Node[K, V]{n.l, n.r} {
		if c == nil {
			t.AddNode("<nil>")
		} else if c.IsExternal() {
			t.AddNode(c.String())
		} else {
			render(c, t.AddBranch(c.String()))
		}
	}
}
