package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/later/internal/domain"
)

// indentUnit is the width of one nesting level and of the root title gutter.
const indentUnit = "   "

// RenderList renders a list and all of its descendants as an indented tree:
//
//	   groceries (Tomorrow)
//	0) milk
//	1---> party (upcoming Friday; in 4 days)
//	   0) cake
//
// Entries are numbered "i)" and sublists "i--->", so every line shows the
// index-path segment that addresses it.
func RenderList(list *domain.Node, now time.Time) string {
	var b strings.Builder
	b.WriteString(indentUnit)
	writeTitle(&b, list, now)

	for v := range list.Walk() {
		b.WriteString(strings.Repeat(indentUnit, v.Depth))
		b.WriteString(Marker(v.Index, v.Node.IsList()))
		b.WriteString(" ")
		if v.Node.IsList() {
			writeTitle(&b, v.Node, now)
			continue
		}
		b.WriteString(v.Node.Title)
		writeDateTag(&b, v.Node.Date, now)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHeader renders the one-line summary used in the list-of-lists view.
func RenderHeader(list *domain.Node, now time.Time) string {
	var b strings.Builder
	b.WriteString(StyleBlue.Render("->"))
	b.WriteString(" ")
	b.WriteString(list.Title)
	writeDateTag(&b, list.Date, now)
	b.WriteString("\n")
	return b.String()
}

// Marker returns the styled index marker for an entry or a sublist.
func Marker(index int, isList bool) string {
	if isList {
		return StyleBlue.Render(fmt.Sprintf("%d--->", index))
	}
	return StyleAqua.Render(fmt.Sprintf("%d)", index))
}

func writeTitle(b *strings.Builder, n *domain.Node, now time.Time) {
	b.WriteString(StyleUnderline.Render(n.Title))
	writeDateTag(b, n.Date, now)
	b.WriteString("\n")
}

func writeDateTag(b *strings.Builder, w *domain.When, now time.Time) {
	if tag := DateTag(w, now); tag != "" {
		b.WriteString(" ")
		b.WriteString(tag)
	}
}
