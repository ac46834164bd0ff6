//go:build js && wasm

// Package domdriver implements backend.Backend against a real browser DOM,
// batching every mutation into a single byte-coded instruction stream per
// cycle and flushing it to JS with one js.CopyBytesToJS call instead of one
// js.Value method call per mutation. Grounded on the teacher's XAS
// bytecode (render.go's serialize/AddInstr) and its JS bridge
// (update_js.go's JSUpdate/DrawAndLoop), generalized from whole-tree
// reserialization every cycle to per-cursor-mutation opcodes emitted as
// backend.Backend methods are called; see DESIGN.md.
package domdriver

import (
	"strconv"
	"syscall/js"

	"github.com/kmicklas/ravel/backend"
)

type opcode byte

const (
	opCreateElement opcode = iota
	opCreateText
	opCreateMarker
	opRemove
	opMoveRange
	opInsertChild
	opSetAttribute
	opClearAttribute
	opSetText
	opSetListener
	opClearListener
	opTerm
)

// Backend renders into a live DOM subtree via a JS shim that exposes one
// entry point (Flush) taking the accumulated instruction stream. Cursor
// queries (ChildAt/IndexOf/RangeLen/ChildCount) are answered from an
// in-process shadow child-order table kept in lockstep with the emitted
// instructions, rather than round-tripping to JS on every query — the
// same bookkeeping memdom does for tests, here serving the real target.
type Backend struct {
	next     uint64
	program  []byte
	children map[uint64][]uint64
	parent   map[uint64]uint64
	flush    js.Value // JS function: (Uint8Array) => void
}

// New wires a domdriver.Backend to a JS-side shim object exposing a
// `flush(Uint8Array)` method and a `dispatch` callback slot Bridge fills
// in. rootTag names the element domdriver creates and hands back as the
// mount point.
func New(shim js.Value, rootTag string) (*Backend, backend.Handle) {
	b := &Backend{
		flush:    shim.Get("flush"),
		children: make(map[uint64][]uint64),
		parent:   make(map[uint64]uint64),
	}
	root := b.CreateElement(rootTag)
	return b, root
}

func (b *Backend) emit(op opcode, id uint64, args ...string) {
	b.program = append(b.program, byte(op))
	b.program = strconv.AppendUint(b.program, id, 10)
	b.program = append(b.program, 0)
	for _, a := range args {
		b.program = append(b.program, []byte(a)...)
		b.program = append(b.program, 0)
	}
}

// Flush sends every mutation recorded since the last Flush to the JS shim
// in one call, then clears the buffer. A driver calls this once at the end
// of every cycle.
func (b *Backend) Flush() {
	b.program = append(b.program, byte(opTerm))
	dst := js.Global().Get("Uint8Array").New(len(b.program))
	js.CopyBytesToJS(dst, b.program)
	b.flush.Invoke(dst)
	b.program = b.program[:0]
}

func (b *Backend) newHandle() backend.Handle {
	b.next++
	return backend.NewHandle(b, b.next)
}

func (b *Backend) CreateElement(tag string) backend.Handle {
	h := b.newHandle()
	b.emit(opCreateElement, h.ID(), tag)
	return h
}

func (b *Backend) CreateText(text string) backend.Handle {
	h := b.newHandle()
	b.emit(opCreateText, h.ID(), text)
	return h
}

func (b *Backend) CreateMarker() backend.Handle {
	h := b.newHandle()
	b.emit(opCreateMarker, h.ID())
	return h
}

func (b *Backend) Remove(h backend.Handle) {
	id := h.ID()
	if p, ok := b.parent[id]; ok {
		b.children[p] = removeID(b.children[p], id)
		delete(b.parent, id)
	}
	b.dropSubtree(id)
	b.emit(opRemove, id)
}

func (b *Backend) dropSubtree(id uint64) {
	for _, c := range b.children[id] {
		b.dropSubtree(c)
		delete(b.parent, c)
	}
	delete(b.children, id)
}

func (b *Backend) MoveRange(first, last, anchor backend.Handle, hasAnchor bool) {
	fp, lp := b.parent[first.ID()], b.parent[last.ID()]
	if fp != lp {
		panic("domdriver: MoveRange requires first/last to share a parent")
	}
	siblings := b.children[fp]
	fi, li := indexOf(siblings, first.ID()), indexOf(siblings, last.ID())
	if fi == -1 || li == -1 || li < fi {
		panic("domdriver: MoveRange: first/last not in parent's child order")
	}
	run := append([]uint64(nil), siblings[fi:li+1]...)
	rest := append(append([]uint64(nil), siblings[:fi]...), siblings[li+1:]...)

	at := len(rest)
	a := "none"
	if hasAnchor {
		at = indexOf(rest, anchor.ID())
		a = strconv.FormatUint(anchor.ID(), 10)
	}

	out := make([]uint64, 0, len(rest)+len(run))
	out = append(out, rest[:at]...)
	out = append(out, run...)
	out = append(out, rest[at:]...)
	b.children[fp] = out

	b.emit(opMoveRange, first.ID(), strconv.FormatUint(last.ID(), 10), a)
}

func (b *Backend) ChildAt(parent backend.Handle, index int) (backend.Handle, bool) {
	cs := b.children[parent.ID()]
	if index < 0 || index >= len(cs) {
		return backend.Handle{}, false
	}
	return backend.NewHandle(b, cs[index]), true
}

func (b *Backend) InsertChild(parent backend.Handle, index int, child backend.Handle) {
	pid, cid := parent.ID(), child.ID()
	cs := b.children[pid]
	if index < 0 || index > len(cs) {
		index = len(cs)
	}
	cs = append(cs, 0)
	copy(cs[index+1:], cs[index:])
	cs[index] = cid
	b.children[pid] = cs
	b.parent[cid] = pid

	b.emit(opInsertChild, pid, strconv.Itoa(index), strconv.FormatUint(cid, 10))
}

func (b *Backend) IndexOf(parent, child backend.Handle) int {
	return indexOf(b.children[parent.ID()], child.ID())
}

func (b *Backend) RangeLen(first, last backend.Handle) int {
	fp, lp := b.parent[first.ID()], b.parent[last.ID()]
	if fp != lp {
		return 0
	}
	cs := b.children[fp]
	fi, li := indexOf(cs, first.ID()), indexOf(cs, last.ID())
	if fi == -1 || li == -1 || li < fi {
		return 0
	}
	return li - fi + 1
}

func (b *Backend) ChildCount(parent backend.Handle) int {
	return len(b.children[parent.ID()])
}

func (b *Backend) SetAttribute(h backend.Handle, name, value string) {
	b.emit(opSetAttribute, h.ID(), name, value)
}

func (b *Backend) ClearAttribute(h backend.Handle, name string) {
	b.emit(opClearAttribute, h.ID(), name)
}

func (b *Backend) SetText(h backend.Handle, text string) {
	b.emit(opSetText, h.ID(), text)
}

func (b *Backend) SetListener(h backend.Handle, event string, tok backend.Token) {
	b.emit(opSetListener, h.ID(), event, strconv.FormatUint(uint64(tok), 10))
}

func (b *Backend) ClearListener(h backend.Handle, event string, tok backend.Token) {
	b.emit(opClearListener, h.ID(), event, strconv.FormatUint(uint64(tok), 10))
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

// Bridge registers the browser-side event listener that feeds DOM events
// back into a Driver via dispatch, mirroring the teacher's JSUpdate's
// (Entity, IntentType) => Action lookup, generalized to route by the
// stable backend.Token a Listener attribute registered instead of by
// (entity, intent type) pair.
func Bridge(shim js.Value, dispatch func(tok backend.Token, payload js.Value)) js.Func {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		tok := backend.Token(args[0].Int())
		var payload js.Value
		if len(args) > 1 {
			payload = args[1]
		}
		dispatch(tok, payload)
		return js.Null()
	})
	shim.Set("dispatch", fn)
	return fn
}
