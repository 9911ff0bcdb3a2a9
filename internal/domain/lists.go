package domain

import (
	"fmt"
	"sort"
	"time"
)

// DefaultList names the list used when no list is selected. It always exists
// once EnsureDefault has run and cannot be deleted.
const DefaultList = "to-do"

// Lists maps list names to their root nodes.
type Lists map[string]*Node

// NewDefaultList returns the starter list with one example entry due now.
func NewDefaultList(now time.Time) *Node {
	root := NewList(Info{Title: DefaultList})
	when := NewDateTime(now)
	root.Children = append(root.Children, NewEntry(Info{Title: "Hello, world!", Date: &when}))
	return root
}

// EnsureDefault creates the default list when it is missing and reports
// whether it did.
func (l Lists) EnsureDefault(now time.Time) bool {
	if _, ok := l[DefaultList]; ok {
		return false
	}
	l[DefaultList] = NewDefaultList(now)
	return true
}

// Get returns the named list.
func (l Lists) Get(name string) (*Node, error) {
	list, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("list '%s': %w", name, ErrListNotFound)
	}
	return list, nil
}

// Create adds an empty list titled info.Title.
func (l Lists) Create(info Info) (*Node, error) {
	if _, ok := l[info.Title]; ok {
		return nil, fmt.Errorf("list '%s': %w", info.Title, ErrDuplicateList)
	}
	list := NewList(info)
	l[info.Title] = list
	return list, nil
}

// Delete removes a named list. The default list is protected.
func (l Lists) Delete(name string) (*Node, error) {
	if name == DefaultList {
		return nil, ErrDefaultList
	}
	list, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	delete(l, name)
	return list, nil
}

// Rename replaces a list's title and date and re-keys it under the new title.
// A clash with another list leaves everything unchanged.
func (l Lists) Rename(name string, info Info) (*Node, error) {
	list, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	if info.Title != name {
		if _, taken := l[info.Title]; taken {
			return nil, fmt.Errorf("list '%s' (edit reverted): %w", info.Title, ErrDuplicateList)
		}
	}
	delete(l, name)
	list.SetInfo(info)
	l[info.Title] = list
	return list, nil
}

// Named returns every list except the default, ordered by name.
func (l Lists) Named() []*Node {
	names := make([]string, 0, len(l))
	for name := range l {
		if name != DefaultList {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]*Node, 0, len(names))
	for _, name := range names {
		out = append(out, l[name])
	}
	return out
}

// Equal reports whether both collections hold structurally equal lists.
func (l Lists) Equal(o Lists) bool {
	if len(l) != len(o) {
		return false
	}
	for name, list := range l {
		other, ok := o[name]
		if !ok || !list.Equal(other) {
			return false
		}
	}
	return true
}
