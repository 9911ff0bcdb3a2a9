package domain

import (
	"errors"
	"strconv"
	"strings"
)

// IndexPath addresses a node by repeated descent. Every segment but the last
// selects a child to descend into; the last selects a position in that level.
type IndexPath []int

// ParseIndexPath parses comma-separated non-negative integers such as "1,3,0".
func ParseIndexPath(s string) (IndexPath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &ParseError{Input: s, Format: "i,j,k", Err: errors.New("empty index")}
	}
	parts := strings.Split(s, ",")
	path := make(IndexPath, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, &ParseError{Input: s, Format: "i,j,k", Err: errors.New("segments must be non-negative integers")}
		}
		path = append(path, n)
	}
	return path, nil
}

func (p IndexPath) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// Add places item by append semantics. An exhausted path appends to the
// level reached; an entry addressed by the final segment is promoted to a
// list and receives the item.
func (n *Node) Add(item *Node, path IndexPath) error {
	return n.add(item, path, path, 0)
}

func (n *Node) add(item *Node, full, rest IndexPath, depth int) error {
	if len(rest) == 0 {
		n.Children = append(n.Children, item)
		return nil
	}
	i := rest[0]
	if i >= len(n.Children) {
		return indexErr(full, depth, ErrIndexTooBig)
	}
	child := n.Children[i]
	if !child.IsList() {
		if len(rest) > 1 {
			return indexErr(full, depth, ErrSubIndexLeaf)
		}
		child.Promote()
	}
	return child.add(item, full, rest[1:], depth+1)
}

// Insert places item before the position named by the last segment; a
// position equal to the level's length appends. An entry may be descended
// into only when a single segment follows it, in which case it is promoted.
func (n *Node) Insert(item *Node, path IndexPath) error {
	if len(path) == 0 {
		return indexErr(path, 0, ErrEmptyPath)
	}
	return n.insert(item, path, path, 0)
}

func (n *Node) insert(item *Node, full, rest IndexPath, depth int) error {
	i := rest[0]
	if len(rest) == 1 {
		if i > len(n.Children) {
			return indexErr(full, depth, ErrIndexTooBig)
		}
		n.Children = append(n.Children, nil)
		copy(n.Children[i+1:], n.Children[i:])
		n.Children[i] = item
		return nil
	}
	if i >= len(n.Children) {
		return indexErr(full, depth, ErrIndexTooBig)
	}
	child := n.Children[i]
	if !child.IsList() {
		if len(rest) != 2 {
			return indexErr(full, depth, ErrSubIndexLeaf)
		}
		if rest[1] > 0 {
			// Promotion would leave an empty list behind.
			return indexErr(full, depth+1, ErrIndexTooBig)
		}
		child.Promote()
	}
	return child.insert(item, full, rest[1:], depth+1)
}

// Remove detaches and returns the node at path. A list emptied by the
// removal is demoted to an entry.
func (n *Node) Remove(path IndexPath) (*Node, error) {
	if len(path) == 0 {
		return nil, indexErr(path, 0, ErrEmptyPath)
	}
	return n.remove(path, path, 0)
}

func (n *Node) remove(full, rest IndexPath, depth int) (*Node, error) {
	i := rest[0]
	if i >= len(n.Children) {
		return nil, indexErr(full, depth, ErrIndexTooBig)
	}
	if len(rest) == 1 {
		removed := n.Children[i]
		n.Children = append(n.Children[:i], n.Children[i+1:]...)
		return removed, nil
	}

	child := n.Children[i]
	if !child.IsList() {
		return nil, indexErr(full, depth, ErrSubIndexLeaf)
	}
	removed, err := child.remove(full, rest[1:], depth+1)
	if err != nil {
		return nil, err
	}
	if child.Len() == 0 {
		child.Demote()
	}
	return removed, nil
}

// At returns the node at path without modifying the tree.
func (n *Node) At(path IndexPath) (*Node, error) {
	if len(path) == 0 {
		return nil, indexErr(path, 0, ErrEmptyPath)
	}
	cur := n
	for depth, i := range path {
		if !cur.IsList() {
			return nil, indexErr(path, depth-1, ErrSubIndexLeaf)
		}
		if i >= len(cur.Children) {
			return nil, indexErr(path, depth, ErrIndexTooBig)
		}
		cur = cur.Children[i]
	}
	return cur, nil
}

// Edit replaces the title and date of the node at path.
func (n *Node) Edit(path IndexPath, info Info) error {
	target, err := n.At(path)
	if err != nil {
		return err
	}
	target.SetInfo(info)
	return nil
}

// Move removes the node at from and inserts it at to. If the insert fails
// the node goes back where it was and a *MoveError is returned.
func (n *Node) Move(from, to IndexPath) error {
	item, err := n.Remove(from)
	if err != nil {
		return err
	}
	if err := n.Insert(item, to); err != nil {
		if restoreErr := n.Insert(item, from); restoreErr != nil {
			return errors.Join(&MoveError{From: from, To: to, Err: err}, restoreErr)
		}
		return &MoveError{From: from, To: to, Err: err}
	}
	return nil
}
