package ravel

import "github.com/kmicklas/ravel/backend"

// EitherState is Either's retained state: a marker-bracketed region holding
// exactly one of two variants' retained state at a time.
type EitherState[SA, SB any] struct {
	start, end backend.Handle
	isA        bool
	a          SA
	b          SB
}

// Either renders variant A or variant B between two markers, switching
// between them (tearing down the old variant, building the new one) when
// IsA flips. The two-branch counterpart of Optional — same marker-bracket
// technique, generalized from the teacher's Nothing() sentinel to an
// arbitrary pair of statically typed alternatives; see DESIGN.md.
type Either[SA, SB any, A View[SA], B View[SB]] struct {
	IsA bool
	A   A
	B   B
}

func (e Either[SA, SB, A, B]) Build(cx Cx) *EitherState[SA, SB] {
	start := cx.Cursor.InsertMarker()
	s := &EitherState[SA, SB]{start: start, isA: e.IsA}
	if e.IsA {
		s.a = e.A.Build(cx)
	} else {
		s.b = e.B.Build(cx)
	}
	s.end = cx.Cursor.InsertMarker()
	return s
}

func (e Either[SA, SB, A, B]) Rebuild(s *EitherState[SA, SB], cx Cx) {
	cx.Cursor.Advance() // start marker

	switch {
	case s.isA && e.IsA:
		e.A.Rebuild(s.a, cx)
	case !s.isA && !e.IsA:
		e.B.Rebuild(s.b, cx)
	case s.isA && !e.IsA:
		var zeroA A
		zeroA.Teardown(s.a, cx)
		var zeroSA SA
		s.a = zeroSA
		s.b = e.B.Build(cx)
	case !s.isA && e.IsA:
		var zeroB B
		zeroB.Teardown(s.b, cx)
		var zeroSB SB
		s.b = zeroSB
		s.a = e.A.Build(cx)
	}
	s.isA = e.IsA

	cx.Cursor.Advance() // end marker
}

func (e Either[SA, SB, A, B]) Teardown(s *EitherState[SA, SB], cx Cx) {
	if s.isA {
		var zero A
		zero.Teardown(s.a, cx)
	} else {
		var zero B
		zero.Teardown(s.b, cx)
	}
	s.start.Remove()
	s.end.Remove()
}
