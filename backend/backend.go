// Package backend abstracts the retained target a ravel driver renders into.
//
// It knows nothing about views, models, or reconciliation: it only creates,
// removes, and mutates opaque nodes, and lets a cursor walk a sibling list.
// DOM today, a terminal or native target later (see memdom, domdriver, tui).
package backend

// NodeKind distinguishes the handful of backend node shapes a cursor can
// create. Attributes and listeners only apply to Element.
type NodeKind int

const (
	Element NodeKind = iota
	TextNode
	Marker
)

// Handle is an opaque reference to a single retained backend node. The zero
// Handle never refers to a real node; it is used as the "no handle" value
// (e.g. move_before with no next sibling).
type Handle struct {
	be Backend
	id uint64
}

// Valid reports whether h refers to a real backend node.
func (h Handle) Valid() bool { return h.be != nil }

// ID returns the numeric id a backend implementation minted this handle
// with. It means nothing to application or ravel code; it exists so a
// Backend implementation can recover its own bookkeeping key from a handle
// it's handed back across the interface boundary.
func (h Handle) ID() uint64 { return h.id }

func (h Handle) SetAttribute(name, value string) { h.be.SetAttribute(h, name, value) }
func (h Handle) ClearAttribute(name string)      { h.be.ClearAttribute(h, name) }
func (h Handle) SetText(text string)             { h.be.SetText(h, text) }
func (h Handle) SetListener(event string, tok Token) {
	h.be.SetListener(h, event, tok)
}
func (h Handle) ClearListener(event string, tok Token) {
	h.be.ClearListener(h, event, tok)
}
func (h Handle) Remove() { h.be.Remove(h) }

// NewHandle is used only by Backend implementations to mint their own
// handles; application and ravel code never constructs one directly.
func NewHandle(be Backend, id uint64) Handle { return Handle{be: be, id: id} }

// Token is a stable, opaque id the driver's event sink maps back to a
// handler slot. It never refers to backend state; it exists purely for the
// indirection described in spec §4.2 so a listener can be replaced on
// rebuild without reattaching it on the backend.
type Token uint64

// Backend is the minimal surface every retained target implements. All
// mutation is expressed in terms of Handle; no backend implementation needs
// to know about views or models.
type Backend interface {
	CreateElement(tag string) Handle
	CreateText(text string) Handle
	CreateMarker() Handle

	// Remove detaches h (and, for Element, everything nested under it) from
	// its parent. It does not affect h's siblings' positions.
	Remove(h Handle)

	// MoveRange relocates the contiguous run of siblings from first to last
	// (inclusive, as currently linked) to immediately before anchor. If
	// hasAnchor is false the range is moved to the end of its parent's
	// child list. first and last must share a parent.
	MoveRange(first, last Handle, anchor Handle, hasAnchor bool)

	// ChildAt returns the index-th child of parent, if any.
	ChildAt(parent Handle, index int) (Handle, bool)

	// InsertChild inserts child as the index-th child of parent, shifting
	// later children right.
	InsertChild(parent Handle, index int, child Handle)

	// IndexOf returns child's current index among parent's children, or -1.
	IndexOf(parent Handle, child Handle) int

	// RangeLen counts the siblings from first to last inclusive.
	RangeLen(first, last Handle) int

	// ChildCount returns the number of children parent currently has, used
	// to position a cursor at the end of a sibling list (e.g. to stage a
	// newly built keyed-sequence entry before Phase B moves it into place).
	ChildCount(parent Handle) int

	SetAttribute(h Handle, name, value string)
	ClearAttribute(h Handle, name string)
	SetText(h Handle, text string)

	SetListener(h Handle, event string, tok Token)
	ClearListener(h Handle, event string, tok Token)
}
