package ravel

import (
	"reflect"

	"github.com/kmicklas/ravel/backend"
)

// Dyn type-erases a View so a slot can hold any one of several
// unrelated view types across rebuilds, at the cost of the static
// Rebuild-in-place fast path. The build/rebuild/teardown closures captured
// by NewDyn stand in for the vtable of function pointers spec §4.3
// describes, and reflect.Type serves as the runtime type token — the same
// reflect.TypeOf precedent the teacher's context.go uses for its own
// value-store keys. See DESIGN.md.
type Dyn struct {
	typ      reflect.Type
	build    func(cx Cx) any
	rebuild  func(s any, cx Cx)
	teardown func(s any, cx Cx)
}

// NewDyn wraps a concrete view for storage in a Dyn slot.
func NewDyn[S any](v View[S]) Dyn {
	return Dyn{
		typ:     reflect.TypeOf(v),
		build:   func(cx Cx) any { return v.Build(cx) },
		rebuild: func(s any, cx Cx) { v.Rebuild(s.(S), cx) },
		teardown: func(s any, cx Cx) {
			var state S
			if s != nil {
				state = s.(S)
			}
			v.Teardown(state, cx)
		},
	}
}

// DynState is Dyn's retained state: a marker-bracketed region holding the
// currently active variant's state, its type token, and the teardown
// closure that knows how to tear that variant down.
type DynState struct {
	start, end backend.Handle
	typ        reflect.Type
	state      any
	teardown   func(s any, cx Cx)
}

func (d Dyn) Build(cx Cx) *DynState {
	start := cx.Cursor.InsertMarker()
	state := d.build(cx)
	end := cx.Cursor.InsertMarker()
	return &DynState{start: start, end: end, typ: d.typ, state: state, teardown: d.teardown}
}

func (d Dyn) Rebuild(s *DynState, cx Cx) {
	cx.Cursor.Advance() // start marker

	if d.typ == s.typ {
		d.rebuild(s.state, cx)
	} else {
		s.teardown(s.state, cx)
		s.state = d.build(cx)
		s.typ = d.typ
		s.teardown = d.teardown
	}

	cx.Cursor.Advance() // end marker
}

func (d Dyn) Teardown(s *DynState, cx Cx) {
	s.teardown(s.state, cx)
	s.start.Remove()
	s.end.Remove()
}
