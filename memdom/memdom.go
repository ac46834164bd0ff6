// Package memdom is a fake retained backend for tests. It never touches a
// real screen; it just records enough structure (a tree of nodes, plus an
// append-only op log) that tests can assert on it: the op log structurally,
// with go-cmp, the same way the teacher's elems_test.go asserts on its own
// Node tree; the tree itself as a canonical string (see Snapshot), since
// independently built Backend instances don't share an id space to diff.
package memdom

import (
	"fmt"
	"strings"

	"github.com/kmicklas/ravel/backend"
)

// OpKind names a single mutation recorded in the backend's op log. Tests
// assert on sequences of these to verify the testable properties of
// SPEC_FULL.md §8 (e.g. "exactly one move_before, zero creates/removes").
type OpKind int

const (
	OpCreateElement OpKind = iota
	OpCreateText
	OpCreateMarker
	OpRemove
	OpMoveRange
	OpSetAttribute
	OpClearAttribute
	OpSetText
	OpSetListener
	OpClearListener
)

func (k OpKind) String() string {
	switch k {
	case OpCreateElement:
		return "create-element"
	case OpCreateText:
		return "create-text"
	case OpCreateMarker:
		return "create-marker"
	case OpRemove:
		return "remove"
	case OpMoveRange:
		return "move-range"
	case OpSetAttribute:
		return "set-attribute"
	case OpClearAttribute:
		return "clear-attribute"
	case OpSetText:
		return "set-text"
	case OpSetListener:
		return "set-listener"
	case OpClearListener:
		return "clear-listener"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one recorded mutation. Fields not relevant to a given Kind are zero.
type Op struct {
	Kind  OpKind
	ID    uint64
	Name  string
	Value string
}

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

// Backend is the fake backend. The zero value is not usable; use New.
type Backend struct {
	nodes  map[uint64]*node
	next   uint64
	rootID uint64
	Ops    []Op
}

// New creates a backend with a single root element container named tag
// (e.g. "body" or "#app"), mirroring a DOM mount point.
func New(tag string) (*Backend, backend.Handle) {
	b := &Backend{nodes: make(map[uint64]*node)}
	root := b.newNode(backend.Element, tag)
	b.rootID = root.id
	return b, backend.NewHandle(b, root.id)
}

func (b *Backend) newNode(kind backend.NodeKind, tag string) *node {
	b.next++
	n := &node{id: b.next, kind: kind, tag: tag}
	b.nodes[n.id] = n
	return n
}

func (b *Backend) node(h backend.Handle) *node {
	return b.nodes[b.id(h)]
}

// id extracts the numeric id backend.Handle hides behind its opaque API.
func (b *Backend) id(h backend.Handle) uint64 { return h.ID() }

func (b *Backend) CreateElement(tag string) backend.Handle {
	n := b.newNode(backend.Element, tag)
	b.Ops = append(b.Ops, Op{Kind: OpCreateElement, ID: n.id, Name: tag})
	return backend.NewHandle(b, n.id)
}

func (b *Backend) CreateText(text string) backend.Handle {
	n := b.newNode(backend.TextNode, "")
	n.text = text
	b.Ops = append(b.Ops, Op{Kind: OpCreateText, ID: n.id, Value: text})
	return backend.NewHandle(b, n.id)
}

func (b *Backend) CreateMarker() backend.Handle {
	n := b.newNode(backend.Marker, "")
	b.Ops = append(b.Ops, Op{Kind: OpCreateMarker, ID: n.id})
	return backend.NewHandle(b, n.id)
}

func (b *Backend) Remove(h backend.Handle) {
	n := b.node(h)
	if n == nil {
		return
	}
	if p, ok := b.nodes[n.parent]; ok {
		p.children = removeID(p.children, n.id)
	}
	b.deleteSubtree(n)
	b.Ops = append(b.Ops, Op{Kind: OpRemove, ID: n.id})
}

func (b *Backend) deleteSubtree(n *node) {
	for _, c := range n.children {
		if cn, ok := b.nodes[c]; ok {
			b.deleteSubtree(cn)
		}
	}
	delete(b.nodes, n.id)
}

func (b *Backend) MoveRange(first, last, anchor backend.Handle, hasAnchor bool) {
	fn, ln := b.node(first), b.node(last)
	if fn == nil || ln == nil || fn.parent != ln.parent {
		panic("memdom: MoveRange requires first/last to share a parent")
	}
	p := b.nodes[fn.parent]
	fi := indexOf(p.children, fn.id)
	li := indexOf(p.children, ln.id)
	if fi == -1 || li == -1 || li < fi {
		panic("memdom: MoveRange: first/last not in parent's child order")
	}
	run := append([]uint64(nil), p.children[fi:li+1]...)
	rest := append(append([]uint64(nil), p.children[:fi]...), p.children[li+1:]...)

	at := len(rest)
	if hasAnchor {
		an := b.node(anchor)
		if an == nil || an.parent != p.id {
			panic("memdom: MoveRange anchor not a child of the same parent")
		}
		at = indexOf(rest, an.id)
	}

	out := make([]uint64, 0, len(rest)+len(run))
	out = append(out, rest[:at]...)
	out = append(out, run...)
	out = append(out, rest[at:]...)
	p.children = out

	b.Ops = append(b.Ops, Op{Kind: OpMoveRange, ID: fn.id, Name: fmt.Sprint(ln.id)})
}

func (b *Backend) ChildAt(parent backend.Handle, index int) (backend.Handle, bool) {
	p := b.node(parent)
	if p == nil || index < 0 || index >= len(p.children) {
		return backend.Handle{}, false
	}
	return backend.NewHandle(b, p.children[index]), true
}

func (b *Backend) InsertChild(parent backend.Handle, index int, child backend.Handle) {
	p := b.node(parent)
	cn := b.node(child)
	if p == nil || cn == nil {
		panic("memdom: InsertChild on unknown handle")
	}
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
	return indexOf(p.children, b.id(child))
}

func (b *Backend) RangeLen(first, last backend.Handle) int {
	fn, ln := b.node(first), b.node(last)
	if fn == nil || ln == nil || fn.parent != ln.parent {
		return 0
	}
	p := b.nodes[fn.parent]
	fi, li := indexOf(p.children, fn.id), indexOf(p.children, ln.id)
	if fi == -1 || li == -1 || li < fi {
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
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	b.Ops = append(b.Ops, Op{Kind: OpSetAttribute, ID: n.id, Name: name, Value: value})
}

func (b *Backend) ClearAttribute(h backend.Handle, name string) {
	n := b.node(h)
	if n == nil {
		return
	}
	if name == "class" {
		n.classes = nil
	}
	delete(n.attrs, name)
	b.Ops = append(b.Ops, Op{Kind: OpClearAttribute, ID: n.id, Name: name})
}

func (b *Backend) SetText(h backend.Handle, text string) {
	n := b.node(h)
	if n == nil {
		return
	}
	n.text = text
	b.Ops = append(b.Ops, Op{Kind: OpSetText, ID: n.id, Value: text})
}

func (b *Backend) SetListener(h backend.Handle, event string, tok backend.Token) {
	b.Ops = append(b.Ops, Op{Kind: OpSetListener, ID: b.id(h), Name: event, Value: fmt.Sprint(tok)})
}

func (b *Backend) ClearListener(h backend.Handle, event string, tok backend.Token) {
	b.Ops = append(b.Ops, Op{Kind: OpClearListener, ID: b.id(h), Name: event, Value: fmt.Sprint(tok)})
}

// Root returns the backend's mount-point handle.
func (b *Backend) Root() backend.Handle { return backend.NewHandle(b, b.rootID) }

// ResetOps clears the op log without touching the tree, so a test can build
// an initial state and then assert only on what a second cycle did.
func (b *Backend) ResetOps() { b.Ops = nil }

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
