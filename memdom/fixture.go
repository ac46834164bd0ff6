package memdom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/kmicklas/ravel/backend"
)

// Snapshot renders h (and its subtree) to a deterministic, indentation-free
// string: tag names, sorted attributes, classes, and text content. Two
// trees built completely independently — one by driving ravel views
// against a Backend, one by parsing an HTML fixture string — compare equal
// exactly when they'd look the same in a real DOM. Adapted from the
// teacher's elems_test.go (Get + cmp.Equal against a *Node), which compared
// structs directly; memdom compares two distinct Backend instances with
// unrelated ids, so the comparison point here is a canonical string
// instead. See DESIGN.md.
func (b *Backend) Snapshot(h backend.Handle) string {
	var sb strings.Builder
	b.write(&sb, b.node(h))
	return sb.String()
}

func (b *Backend) write(sb *strings.Builder, n *node) {
	if n == nil {
		return
	}
	switch n.kind {
	case backend.TextNode:
		sb.WriteString(n.text)
		return
	case backend.Marker:
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.tag)

	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		if name == "class" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sb, " %s=%q", name, n.attrs[name])
	}
	if len(n.classes) > 0 {
		fmt.Fprintf(sb, " class=%q", strings.Join(n.classes, " "))
	}
	sb.WriteByte('>')

	for _, c := range n.children {
		b.write(sb, b.nodes[c])
	}

	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
}

// ParseFixture parses an HTML fragment into the same canonical form
// Snapshot produces, so tests can write `ParseFixture(tpl) == b.Snapshot(h)`
// instead of hand-writing the expected string.
func ParseFixture(fragment string) string {
	toks := html.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	var stack []string

	for {
		tt := toks.Next()
		switch tt {
		case html.ErrorToken:
			for i := len(stack) - 1; i >= 0; i-- {
				sb.WriteString("</")
				sb.WriteString(stack[i])
				sb.WriteByte('>')
			}
			return sb.String()

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := toks.Token()
			sb.WriteByte('<')
			sb.WriteString(tok.Data)

			var classes []string
			var names []string
			attrVal := make(map[string]string, len(tok.Attr))
			for _, a := range tok.Attr {
				if a.Key == "class" {
					classes = strings.Fields(a.Val)
					continue
				}
				names = append(names, a.Key)
				attrVal[a.Key] = a.Val
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(&sb, " %s=%q", name, attrVal[name])
			}
			if len(classes) > 0 {
				fmt.Fprintf(&sb, " class=%q", strings.Join(classes, " "))
			}
			sb.WriteByte('>')

			if tt == html.StartTagToken {
				stack = append(stack, tok.Data)
			}

		case html.EndTagToken:
			tok := toks.Token()
			sb.WriteString("</")
			sb.WriteString(tok.Data)
			sb.WriteByte('>')
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case html.TextToken:
			sb.WriteString(toks.Token().Data)
		}
	}
}
