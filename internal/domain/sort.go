package domain

import "sort"

// Sort orders every level of the tree by date, earliest first, undated last.
// Nested lists are sorted before their parent level. Ties keep their order.
func (n *Node) Sort() {
	for _, child := range n.Children {
		if child.IsList() {
			child.Sort()
		}
	}
	sort.SliceStable(n.Children, func(i, j int) bool {
		return Compare(n.Children[i].Date, n.Children[j].Date) < 0
	})
}
