package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

type NodeKind string

const (
	NodeEntry NodeKind = "entry"
	NodeList  NodeKind = "list"
)

// Info is the editable part of a node: what prompts collect and what edits
// replace.
type Info struct {
	Title string
	Date  *When
}

// Node is a to-do item. Entries are leaves; lists own an ordered slice of
// children. A list never persists with zero children unless it is a root.
type Node struct {
	Title    string
	Date     *When
	Kind     NodeKind
	Children []*Node
}

// NewEntry returns a leaf node.
func NewEntry(info Info) *Node {
	return &Node{Title: info.Title, Date: info.Date, Kind: NodeEntry}
}

// NewList returns an empty list node.
func NewList(info Info) *Node {
	return &Node{Title: info.Title, Date: info.Date, Kind: NodeList, Children: []*Node{}}
}

func (n *Node) IsList() bool { return n.Kind == NodeList }

// Info returns the node's title and date.
func (n *Node) Info() Info {
	return Info{Title: n.Title, Date: n.Date}
}

// SetInfo replaces title and date, leaving kind and children alone.
func (n *Node) SetInfo(info Info) {
	n.Title = info.Title
	n.Date = info.Date
}

// Promote turns an entry into an empty list with the same title and date.
func (n *Node) Promote() {
	if n.Kind == NodeList {
		return
	}
	n.Kind = NodeList
	n.Children = []*Node{}
}

// Demote turns a list back into an entry, dropping its (empty) children.
func (n *Node) Demote() {
	n.Kind = NodeEntry
	n.Children = nil
}

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.Children) }

// Equal reports structural equality: kind, title, date and children in order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Title != o.Title || len(n.Children) != len(o.Children) {
		return false
	}
	if (n.Date == nil) != (o.Date == nil) {
		return false
	}
	if n.Date != nil && !n.Date.Equal(*o.Date) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	c := &Node{Title: n.Title, Kind: n.Kind}
	if n.Date != nil {
		d := *n.Date
		c.Date = &d
	}
	if n.Kind == NodeList {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Stored shapes: a list root is {"title", "date", "list"}; a child item is
// wrapped as {"Entry": {...}} or {"List": {...}}.
type entryJSON struct {
	Title string `json:"title"`
	Date  *When  `json:"date"`
}

type listJSON struct {
	Title string     `json:"title"`
	Date  *When      `json:"date"`
	List  []itemJSON `json:"list"`
}

type itemJSON struct {
	Entry *entryJSON `json:"Entry,omitempty"`
	List  *listJSON  `json:"List,omitempty"`
}

// MarshalJSON encodes n in the list shape. Roots and sublists share it.
func (n *Node) MarshalJSON() ([]byte, error) {
	if !n.IsList() {
		return nil, fmt.Errorf("encoding %q: only lists encode as documents", n.Title)
	}
	return json.Marshal(toListJSON(n))
}

// UnmarshalJSON decodes the list shape into n.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in listJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	decoded, err := fromListJSON(&in)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

func toListJSON(n *Node) *listJSON {
	out := &listJSON{Title: n.Title, Date: n.Date, List: make([]itemJSON, 0, len(n.Children))}
	for _, child := range n.Children {
		if child.IsList() {
			out.List = append(out.List, itemJSON{List: toListJSON(child)})
		} else {
			out.List = append(out.List, itemJSON{Entry: &entryJSON{Title: child.Title, Date: child.Date}})
		}
	}
	return out
}

func fromListJSON(in *listJSON) (*Node, error) {
	n := NewList(Info{Title: in.Title, Date: in.Date})
	for i, item := range in.List {
		switch {
		case item.List != nil:
			child, err := fromListJSON(item.List)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		case item.Entry != nil:
			n.Children = append(n.Children, NewEntry(Info{Title: item.Entry.Title, Date: item.Entry.Date}))
		default:
			return nil, fmt.Errorf("decoding %q item %d: %w", in.Title, i, errors.New("expected Entry or List"))
		}
	}
	return n, nil
}
