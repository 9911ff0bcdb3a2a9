package domain

import "iter"

// Visit is one step of a pre-order walk: the node, its position among its
// siblings and how many levels below the walked root it sits (0 for direct
// children).
type Visit struct {
	Node  *Node
	Index int
	Depth int
}

// Walk yields every descendant of n in pre-order. It never modifies the tree
// and can be ranged over any number of times.
func (n *Node) Walk() iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		n.walk(0, yield)
	}
}

func (n *Node) walk(depth int, yield func(Visit) bool) bool {
	for i, child := range n.Children {
		if !yield(Visit{Node: child, Index: i, Depth: depth}) {
			return false
		}
		if child.IsList() && !child.walk(depth+1, yield) {
			return false
		}
	}
	return true
}
