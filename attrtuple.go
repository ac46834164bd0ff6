package ravel

import "github.com/kmicklas/ravel/backend"

// AttrList is the same Attribute protocol, under the name used where an
// Elem's attribute slot is filled by a fixed tuple of attributes rather than
// a single one. Attrs1..Attrs4 below implement it by composing narrower
// Attribute[S] values; see DESIGN.md — tuples of attributes have no direct
// teacher analogue (the teacher's attrs are a dynamically typed map) and are
// grounded instead in the plain Go-generics idiom used for Tuple2..Tuple4.
type AttrList[S any] = Attribute[S]

// NoAttrs is the empty attribute list, used for elements with none.
type NoAttrs struct{}

func (NoAttrs) Build(h backend.Handle, cx Cx) struct{}             { return struct{}{} }
func (NoAttrs) Rebuild(s struct{}, h backend.Handle, cx Cx)        {}
func (NoAttrs) Teardown(s struct{}, h backend.Handle, cx Cx)       {}

// Attrs1 wraps a single attribute, for symmetry with Attrs2..Attrs4.
type Attrs1[S1 any, A1 Attribute[S1]] struct {
	A1 A1
}

func (a Attrs1[S1, A1]) Build(h backend.Handle, cx Cx) S1 {
	return a.A1.Build(h, cx)
}

func (a Attrs1[S1, A1]) Rebuild(s S1, h backend.Handle, cx Cx) {
	a.A1.Rebuild(s, h, cx)
}

func (a Attrs1[S1, A1]) Teardown(s S1, h backend.Handle, cx Cx) {
	a.A1.Teardown(s, h, cx)
}

// Attrs2State is the retained state of an Attrs2 list.
type Attrs2State[S1, S2 any] struct {
	S1 S1
	S2 S2
}

type Attrs2[S1, S2 any, A1 Attribute[S1], A2 Attribute[S2]] struct {
	A1 A1
	A2 A2
}

func (a Attrs2[S1, S2, A1, A2]) Build(h backend.Handle, cx Cx) Attrs2State[S1, S2] {
	return Attrs2State[S1, S2]{
		S1: a.A1.Build(h, cx),
		S2: a.A2.Build(h, cx),
	}
}

func (a Attrs2[S1, S2, A1, A2]) Rebuild(s Attrs2State[S1, S2], h backend.Handle, cx Cx) {
	a.A1.Rebuild(s.S1, h, cx)
	a.A2.Rebuild(s.S2, h, cx)
}

func (a Attrs2[S1, S2, A1, A2]) Teardown(s Attrs2State[S1, S2], h backend.Handle, cx Cx) {
	a.A1.Teardown(s.S1, h, cx)
	a.A2.Teardown(s.S2, h, cx)
}

// Attrs3State is the retained state of an Attrs3 list.
type Attrs3State[S1, S2, S3 any] struct {
	S1 S1
	S2 S2
	S3 S3
}

type Attrs3[S1, S2, S3 any, A1 Attribute[S1], A2 Attribute[S2], A3 Attribute[S3]] struct {
	A1 A1
	A2 A2
	A3 A3
}

func (a Attrs3[S1, S2, S3, A1, A2, A3]) Build(h backend.Handle, cx Cx) Attrs3State[S1, S2, S3] {
	return Attrs3State[S1, S2, S3]{
		S1: a.A1.Build(h, cx),
		S2: a.A2.Build(h, cx),
		S3: a.A3.Build(h, cx),
	}
}

func (a Attrs3[S1, S2, S3, A1, A2, A3]) Rebuild(s Attrs3State[S1, S2, S3], h backend.Handle, cx Cx) {
	a.A1.Rebuild(s.S1, h, cx)
	a.A2.Rebuild(s.S2, h, cx)
	a.A3.Rebuild(s.S3, h, cx)
}

func (a Attrs3[S1, S2, S3, A1, A2, A3]) Teardown(s Attrs3State[S1, S2, S3], h backend.Handle, cx Cx) {
	a.A1.Teardown(s.S1, h, cx)
	a.A2.Teardown(s.S2, h, cx)
	a.A3.Teardown(s.S3, h, cx)
}

// Attrs4State is the retained state of an Attrs4 list.
type Attrs4State[S1, S2, S3, S4 any] struct {
	S1 S1
	S2 S2
	S3 S3
	S4 S4
}

type Attrs4[S1, S2, S3, S4 any, A1 Attribute[S1], A2 Attribute[S2], A3 Attribute[S3], A4 Attribute[S4]] struct {
	A1 A1
	A2 A2
	A3 A3
	A4 A4
}

func (a Attrs4[S1, S2, S3, S4, A1, A2, A3, A4]) Build(h backend.Handle, cx Cx) Attrs4State[S1, S2, S3, S4] {
	return Attrs4State[S1, S2, S3, S4]{
		S1: a.A1.Build(h, cx),
		S2: a.A2.Build(h, cx),
		S3: a.A3.Build(h, cx),
		S4: a.A4.Build(h, cx),
	}
}

func (a Attrs4[S1, S2, S3, S4, A1, A2, A3, A4]) Rebuild(s Attrs4State[S1, S2, S3, S4], h backend.Handle, cx Cx) {
	a.A1.Rebuild(s.S1, h, cx)
	a.A2.Rebuild(s.S2, h, cx)
	a.A3.Rebuild(s.S3, h, cx)
	a.A4.Rebuild(s.S4, h, cx)
}

func (a Attrs4[S1, S2, S3, S4, A1, A2, A3, A4]) Teardown(s Attrs4State[S1, S2, S3, S4], h backend.Handle, cx Cx) {
	a.A1.Teardown(s.S1, h, cx)
	a.A2.Teardown(s.S2, h, cx)
	a.A3.Teardown(s.S3, h, cx)
	a.A4.Teardown(s.S4, h, cx)
}
