package ravel

import "github.com/kmicklas/ravel/backend"

// OptionalState is Optional's retained state: a marker-bracketed region that
// holds either nothing or one inner view's state.
type OptionalState[S any] struct {
	start, end backend.Handle
	present    bool
	inner      S
}

// Optional renders Value between two marker nodes when Present, and nothing
// between them otherwise. Grounded on the teacher's Nothing() sentinel node,
// generalized because ravel never re-serializes the whole tree on a
// None<->Some transition — only the bracketed region changes; see
// DESIGN.md.
type Optional[S any, V View[S]] struct {
	Present bool
	Value   V
}

func (o Optional[S, V]) Build(cx Cx) *OptionalState[S] {
	start := cx.Cursor.InsertMarker()
	var inner S
	if o.Present {
		inner = o.Value.Build(cx)
	}
	end := cx.Cursor.InsertMarker()
	return &OptionalState[S]{start: start, end: end, present: o.Present, inner: inner}
}

func (o Optional[S, V]) Rebuild(s *OptionalState[S], cx Cx) {
	cx.Cursor.Advance() // start marker

	switch {
	case s.present && o.Present:
		o.Value.Rebuild(s.inner, cx)
	case s.present && !o.Present:
		var zero V
		zero.Teardown(s.inner, cx)
		var zeroState S
		s.inner = zeroState
	case !s.present && o.Present:
		s.inner = o.Value.Build(cx)
	}
	s.present = o.Present

	cx.Cursor.Advance() // end marker
}

func (o Optional[S, V]) Teardown(s *OptionalState[S], cx Cx) {
	if s.present {
		var zero V
		zero.Teardown(s.inner, cx)
	}
	s.start.Remove()
	s.end.Remove()
}
