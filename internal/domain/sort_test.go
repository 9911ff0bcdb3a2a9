package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(title string, days int) *Node {
	w := dateOffset(days)
	return NewEntry(Info{Title: title, Date: &w})
}

func TestSort_OrdersByDateUndatedLast(t *testing.T) {
	root := list("root",
		entry("none-1"),
		dated("d5", 5),
		entry("none-2"),
		dated("d1", 1),
		dated("d-3", -3),
	)
	root.Sort()
	assert.Equal(t, []string{"d-3", "d1", "d5", "none-1", "none-2"}, titles(root))
}

func TestSort_StableForEqualKeys(t *testing.T) {
	root := list("root", dated("first", 2), dated("second", 2), dated("third", 2))
	root.Sort()
	assert.Equal(t, []string{"first", "second", "third"}, titles(root))
}

func TestSort_Recursive(t *testing.T) {
	inner := list("inner", dated("late", 9), dated("early", 1))
	w := dateOffset(3)
	inner.Date = &w
	root := list("root", entry("undated"), inner)

	root.Sort()

	require.Equal(t, []string{"inner", "undated"}, titles(root))
	assert.Equal(t, []string{"early", "late"}, titles(root.Children[0]))
	assert.True(t, root.Children[0].IsList(), "sorting never demotes")
}

func TestSort_Idempotent(t *testing.T) {
	root := list("root",
		dated("b", 4),
		list("l", dated("y", 2), entry("n"), dated("x", 1)),
		entry("u"),
		dated("a", -1),
	)
	root.Sort()
	once := root.Clone()
	root.Sort()
	assert.True(t, once.Equal(root))
}
