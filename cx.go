// Package ravel implements the view/state reconciliation protocol: a
// strongly typed tree of view descriptors, rebuilt every cycle, walked in
// lockstep with a parallel tree of retained state so the backend is
// mutated in place. No structural diff is ever computed; matching is by
// position and static type.
package ravel

import "github.com/kmicklas/ravel/backend"

// Cx ("build context") bundles everything Build and Rebuild need: the
// cursor marking where in the backend's sibling list the current view
// belongs, the event sink handlers register with, and the inherited
// environment. Named after, and structurally descended from, the teacher's
// Context; see DESIGN.md.
type Cx struct {
	Cursor *backend.Cursor
	Sink   *EventSink

	// Debug toggles the strict, fatal-on-misuse behavior of §7 (duplicate
	// keys panic instead of taking last-write-wins with a logged warning). Sourced from
	// Config at EntryPoint time and otherwise read-only for the rest of a
	// cycle, so it is carried directly rather than through the generic Env
	// mechanism.
	Debug bool

	env *env
}

// enter returns a Cx scoped to a fresh cursor over parent's own children,
// keeping the same sink/env/debug — used by Elem to recurse into its
// children independently of its own position in its parent's list.
func (cx Cx) enter(parent backend.Handle) Cx {
	next := cx
	next.Cursor = cx.Cursor.Enter(parent)
	return next
}

// withCursor returns a Cx identical to cx but scoped to a different cursor
// — used by Keyed to re-enter one entry's own marker-bracketed range.
func (cx Cx) withCursor(c *backend.Cursor) Cx {
	next := cx
	next.Cursor = c
	return next
}

// View is the core abstraction: every view descriptor type declares an
// associated retained-state type S (carried as View's own type parameter,
// since Go has no associated types) and three operations.
//
//   - Build inserts new backend nodes at cx.Cursor, registers any event
//     handlers with cx.Sink, and returns fresh retained state. The cursor is
//     left advanced past the inserted range.
//   - Rebuild walks the existing retained state and the new descriptor in
//     parallel, mutating backend nodes to match v and updating s in place.
//     It advances cx.Cursor identically to Build's exit position. It must
//     never read from a prior descriptor — none is kept.
//   - Teardown releases every backend handle and handler-table entry s
//     holds. Unlike Build/Rebuild it must operate purely on s, never on the
//     descriptor's own fields: a removed keyed-sequence entry or a
//     type-mismatched Dyn has no live descriptor to call through, only a
//     zero-valued one of the right static type (see DESIGN.md).
type View[S any] interface {
	Build(cx Cx) S
	Rebuild(s S, cx Cx)
	Teardown(s S, cx Cx)
}
