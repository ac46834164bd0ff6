package ravel

import "github.com/kmicklas/ravel/backend"

// ElemState is an element view's retained state: the element's own handle,
// plus the retained state of its attribute list and its children.
type ElemState[AS, CS any] struct {
	node  backend.Handle
	attrs AS
	child CS
}

// Elem is a backend element with a tag, an attribute list, and a single
// child view (itself typically a Tuple2..Tuple4 for multiple children).
// Grounded on the teacher's Node (tag/classes/attrs/children), generalized
// to a distinct generic type per (Tag, Attrs, Children) combination instead
// of one dynamically typed node struct; see DESIGN.md.
type Elem[AS, CS any, A AttrList[AS], C View[CS]] struct {
	Tag      string
	Attrs    A
	Children C
}

func (e Elem[AS, CS, A, C]) Build(cx Cx) *ElemState[AS, CS] {
	h := cx.Cursor.InsertElement(e.Tag)
	s := &ElemState[AS, CS]{node: h}
	s.attrs = e.Attrs.Build(h, cx)
	s.child = e.Children.Build(cx.enter(h))
	return s
}

func (e Elem[AS, CS, A, C]) Rebuild(s *ElemState[AS, CS], cx Cx) {
	cx.Cursor.Advance()
	e.Attrs.Rebuild(s.attrs, s.node, cx)
	e.Children.Rebuild(s.child, cx.enter(s.node))
}

func (e Elem[AS, CS, A, C]) Teardown(s *ElemState[AS, CS], cx Cx) {
	var zeroAttrs A
	var zeroChild C
	zeroAttrs.Teardown(s.attrs, s.node, cx)
	zeroChild.Teardown(s.child, cx)
	s.node.Remove()
}
