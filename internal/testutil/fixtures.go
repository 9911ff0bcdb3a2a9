package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/later/internal/domain"
)

// Now is the fixed clock used across tests: Sunday 2025-06-15 10:00 local.
var Now = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.Local)

// Clock returns a func that always reports Now.
func Clock() func() time.Time {
	return func() time.Time { return Now }
}

// Node options
type NodeOption func(*domain.Node)

// WithDate sets a date-only value the given number of days from Now.
func WithDate(days int) NodeOption {
	return func(n *domain.Node) {
		d := Now.AddDate(0, 0, days)
		w := domain.NewDate(d.Date())
		n.Date = &w
	}
}

// WithDateTime sets a date-time value offset from Now.
func WithDateTime(offset time.Duration) NodeOption {
	return func(n *domain.Node) {
		w := domain.NewDateTime(Now.Add(offset))
		n.Date = &w
	}
}

// Entry builds a leaf node.
func Entry(title string, opts ...NodeOption) *domain.Node {
	n := domain.NewEntry(domain.Info{Title: title})
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// List builds a list node holding children.
func List(title string, children []*domain.Node, opts ...NodeOption) *domain.Node {
	n := domain.NewList(domain.Info{Title: title})
	n.Children = append(n.Children, children...)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Groceries returns a small nested list:
//
//	groceries
//	0) milk
//	1---> party
//	   0) cake
//	   1) drinks
//	2) bread
func Groceries() *domain.Node {
	return List("groceries", []*domain.Node{
		Entry("milk"),
		List("party", []*domain.Node{
			Entry("cake"),
			Entry("drinks"),
		}),
		Entry("bread"),
	})
}

// Titles returns the titles of n's direct children.
func Titles(n *domain.Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Title
	}
	return out
}

// DataFile returns a path for a data file inside a fresh temp directory.
func DataFile(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "later", name)
}
