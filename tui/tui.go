// Package tui implements backend.Backend against a terminal, rendering the
// retained tree to a styled string with lipgloss on every Render call.
// Grounded on newbpydev-bubblyui's lipgloss usage (styles keyed by a small
// fixed vocabulary of class names, JoinVertical/JoinHorizontal for layout);
// see DESIGN.md.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmicklas/ravel/backend"
)

type node struct {
	id       uint64
	kind     backend.NodeKind
	tag      string
	text     string
	attrs    map[string]string
	classes  []string
	children []uint64
	parent   uint64
}

// Backend renders into an in-memory tree, styled and joined into one
// string on demand by Render — there is no incremental terminal redraw
// here, only incremental retained-tree mutation; a host program (e.g. a
// bubbletea Model) calls Render once per frame.
type Backend struct {
	nodes  map[uint64]*node
	next   uint64
	rootID uint64
}

// New creates a tui backend with a single root container.
func New() (*Backend, backend.Handle) {
	b := &Backend{nodes: make(map[uint64]*node)}
	root := b.newNode(backend.Element, "root")
	b.rootID = root.id
	return b, backend.NewHandle(b, root.id)
}

func (b *Backend) newNode(kind backend.NodeKind, tag string) *node {
	b.next++
	n := &node{id: b.next, kind: kind, tag: tag}
	b.nodes[n.id] = n
	return n
}

func (b *Backend) node(h backend.Handle) *node { return b.nodes[h.ID()] }

func (b *Backend) CreateElement(tag string) backend.Handle {
	return backend.NewHandle(b, b.newNode(backend.Element, tag).id)
}

func (b *Backend) CreateText(text string) backend.Handle {
	n := b.newNode(backend.TextNode, "")
	n.text = text
	return backend.NewHandle(b, n.id)
}

func (b *Backend) CreateMarker() backend.Handle {
	return backend.NewHandle(b, b.newNode(backend.Marker, "").id)
}

func (b *Backend) Remove(h backend.Handle) {
	n := b.node(h)
	if n == nil {
		return
	}
	if p, ok := b.nodes[n.parent]; ok {
		p.children = removeID(p.children, n.id)
	}
	b.dropSubtree(n)
}

func (b *Backend) dropSubtree(n *node) {
	for _, c := range n.children {
		if cn, ok := b.nodes[c]; ok {
			b.dropSubtree(cn)
		}
	}
	delete(b.nodes, n.id)
}

func (b *Backend) MoveRange(first, last, anchor backend.Handle, hasAnchor bool) {
	fn, ln := b.node(first), b.node(last)
	if fn == nil || ln == nil || fn.parent != ln.parent {
		panic("tui: MoveRange requires first/last to share a parent")
	}
	p := b.nodes[fn.parent]
	fi, li := indexOf(p.children, fn.id), indexOf(p.children, ln.id)
	run := append([]uint64(nil), p.children[fi:li+1]...)
	rest := append(append([]uint64(nil), p.children[:fi]...), p.children[li+1:]...)
	at := len(rest)
	if hasAnchor {
		at = indexOf(rest, b.node(anchor).id)
	}
	out := make([]uint64, 0, len(rest)+len(run))
	out = append(out, rest[:at]...)
	out = append(out, run...)
	out = append(out, rest[at:]...)
	p.children = out
}

func (b *Backend) ChildAt(parent backend.Handle, index int) (backend.Handle, bool) {
	p := b.node(parent)
	if p == nil || index < 0 || index >= len(p.children) {
		return backend.Handle{}, false
	}
	return backend.NewHandle(b, p.children[index]), true
}

func (b *Backend) InsertChild(parent backend.Handle, index int, child backend.Handle) {
	p, cn := b.node(parent), b.node(child)
	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children, 0)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = cn.id
	cn.parent = p.id
}

func (b *Backend) IndexOf(parent, child backend.Handle) int {
	p := b.node(parent)
	if p == nil {
		return -1
	}
	return indexOf(p.children, b.node(child).id)
}

func (b *Backend) RangeLen(first, last backend.Handle) int {
	fn, ln := b.node(first), b.node(last)
	if fn == nil || ln == nil || fn.parent != ln.parent {
		return 0
	}
	p := b.nodes[fn.parent]
	fi, li := indexOf(p.children, fn.id), indexOf(p.children, ln.id)
	if fi == -1 || li == -1 {
		return 0
	}
	return li - fi + 1
}

func (b *Backend) ChildCount(parent backend.Handle) int {
	p := b.node(parent)
	if p == nil {
		return 0
	}
	return len(p.children)
}

func (b *Backend) SetAttribute(h backend.Handle, name, value string) {
	n := b.node(h)
	if n == nil {
		return
	}
	if name == "class" {
		n.classes = strings.Fields(value)
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

func (b *Backend) ClearAttribute(h backend.Handle, name string) {
	n := b.node(h)
	if n == nil {
		return
	}
	if name == "class" {
		n.classes = nil
		return
	}
	delete(n.attrs, name)
}

func (b *Backend) SetText(h backend.Handle, text string) {
	if n := b.node(h); n != nil {
		n.text = text
	}
}

// Listeners have no terminal-native counterpart to attach to; a host
// program polls bubbletea key/mouse messages itself and calls a Driver's
// Dispatch directly, so SetListener/ClearListener are no-ops here.
func (b *Backend) SetListener(h backend.Handle, event string, tok backend.Token)   {}
func (b *Backend) ClearListener(h backend.Handle, event string, tok backend.Token) {}

// classStyles maps the small fixed vocabulary of class names a tui view is
// expected to use onto lipgloss styles.
var classStyles = map[string]lipgloss.Style{
	"bold":   lipgloss.NewStyle().Bold(true),
	"dim":    lipgloss.NewStyle().Faint(true),
	"error":  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"ok":     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"muted":  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	"border": lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
}

// Render walks the tree rooted at h and returns it as a styled string.
// Elements tagged "row" join their children horizontally; every other
// element (including the default "root"/"div") joins vertically.
func (b *Backend) Render(h backend.Handle) string {
	return b.render(b.node(h))
}

func (b *Backend) render(n *node) string {
	if n == nil {
		return ""
	}
	if n.kind == backend.TextNode {
		return n.text
	}
	if n.kind == backend.Marker {
		return ""
	}

	parts := make([]string, 0, len(n.children))
	for _, c := range n.children {
		parts = append(parts, b.render(b.nodes[c]))
	}

	var out string
	if n.tag == "row" {
		out = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, c := range n.classes {
		if style, ok := classStyles[c]; ok {
			out = style.Render(out)
		}
	}
	return out
}

func indexOf(ids []uint64, id uint64) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func removeID(ids []uint64, id uint64) []uint64 {
	i := indexOf(ids, id)
	if i == -1 {
		return ids
	}
	return append(ids[:i], ids[i+1:]...)
}
