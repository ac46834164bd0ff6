package ravel

import "github.com/kmicklas/ravel/backend"

// Attribute is the attribute-side counterpart of View: instead of inserting
// nodes of its own, it mutates the element handle it's attached to. Grounded
// on the teacher's Node.AddAttr/AddBoolAttr/AddClasses/OnIntent; see
// DESIGN.md.
type Attribute[S any] interface {
	Build(h backend.Handle, cx Cx) S
	Rebuild(s S, h backend.Handle, cx Cx)
	Teardown(s S, h backend.Handle, cx Cx)
}

// StringAttr sets a single string-valued attribute, e.g. id or placeholder.
type StringAttr struct {
	Name  string
	Value string
}

// stringAttrState is held by pointer (like a View's retained state) rather
// than by value, so Rebuild's cached value actually persists across cycles
// instead of being discarded with its value-receiver copy.
type stringAttrState struct {
	name  string
	value string
}

func (a StringAttr) Build(h backend.Handle, cx Cx) *stringAttrState {
	h.SetAttribute(a.Name, a.Value)
	return &stringAttrState{name: a.Name, value: a.Value}
}

func (a StringAttr) Rebuild(s *stringAttrState, h backend.Handle, cx Cx) {
	if a.Value == s.value {
		return
	}
	h.SetAttribute(a.Name, a.Value)
	s.value = a.Value
}

func (a StringAttr) Teardown(s *stringAttrState, h backend.Handle, cx Cx) {
	h.ClearAttribute(s.name)
}

// BoolAttr presence-toggles an attribute, e.g. disabled or checked.
type BoolAttr struct {
	Name  string
	Value bool
}

// boolAttrState is held by pointer for the same reason stringAttrState is:
// Rebuild's cached set-ness must persist into the next cycle, not just the
// current call's value-receiver copy.
type boolAttrState struct {
	name string
	set  bool
}

func (a BoolAttr) Build(h backend.Handle, cx Cx) *boolAttrState {
	if a.Value {
		h.SetAttribute(a.Name, "")
	}
	return &boolAttrState{name: a.Name, set: a.Value}
}

func (a BoolAttr) Rebuild(s *boolAttrState, h backend.Handle, cx Cx) {
	if a.Value && !s.set {
		h.SetAttribute(a.Name, "")
	} else if !a.Value && s.set {
		h.ClearAttribute(a.Name)
	}
	s.set = a.Value
}

func (a BoolAttr) Teardown(s *boolAttrState, h backend.Handle, cx Cx) {
	if s.set {
		h.ClearAttribute(s.name)
	}
}

// ClassAttr accumulates into the element's "class" attribute. Per the Open
// Question resolution in DESIGN.md, entries are kept in the stable order
// they're supplied in, space-joined, with no deduplication.
type ClassAttr []string

// classAttrState is held by pointer for the same reason; see stringAttrState.
type classAttrState struct {
	joined string
}

func join(classes []string) string {
	out := ""
	for i, c := range classes {
		if i > 0 {
			out += " "
		}
		out += c
	}
	return out
}

func (a ClassAttr) Build(h backend.Handle, cx Cx) *classAttrState {
	s := &classAttrState{joined: join(a)}
	if s.joined != "" {
		h.SetAttribute("class", s.joined)
	}
	return s
}

func (a ClassAttr) Rebuild(s *classAttrState, h backend.Handle, cx Cx) {
	joined := join(a)
	if joined == s.joined {
		return
	}
	if joined == "" {
		h.ClearAttribute("class")
	} else {
		h.SetAttribute("class", joined)
	}
	s.joined = joined
}

func (a ClassAttr) Teardown(s *classAttrState, h backend.Handle, cx Cx) {
	if s.joined != "" {
		h.ClearAttribute("class")
	}
}

// Listener binds an event to a typed handler. The backend listener is
// attached once, at Build; Rebuild only ever replaces the handler the
// sink's token points at, per spec §4.2.
type Listener[M any] struct {
	Event string
	Kind  EventKind
	Handle Handler[M]
}

type ListenerState struct {
	event string
	tok   backend.Token
}

func (l Listener[M]) Build(h backend.Handle, cx Cx) ListenerState {
	assert(h.Valid(), "ravel: listener %q attached to an invalid handle", l.Event)
	tok := RegisterHandler(cx.Sink, l.Handle)
	h.SetListener(l.Event, tok)
	return ListenerState{event: l.Event, tok: tok}
}

func (l Listener[M]) Rebuild(s ListenerState, h backend.Handle, cx Cx) {
	ReplaceHandler(cx.Sink, s.tok, l.Handle)
}

func (l Listener[M]) Teardown(s ListenerState, h backend.Handle, cx Cx) {
	h.ClearListener(s.event, s.tok)
	cx.Sink.drop(s.tok)
}
