package ravel

import "github.com/kmicklas/ravel/backend"

// EventKind enumerates the backend events ravel's listener attributes bind
// to. Renamed, re-keyed descendant of the teacher's IntentType
// (engine.go); see DESIGN.md.
type EventKind int

//go:generate go tool stringer -type EventKind

const (
	NoEvent EventKind = iota
	Click
	DoubleClick
	DragStart
	DragOver
	DragEnd
	Drop
	Scroll
	Input
	Change
	Blur
	Submit
	KeyDown
	MouseEnter
	MouseLeave
)

// Event is the record handed to a handler: the kind of backend event that
// fired, plus whatever payload that backend attaches (e.g. the new value of
// an input on Change, the key name on KeyDown).
type Event struct {
	Kind    EventKind
	Payload any
}

// Handler is an event handler closure with direct mutable access to the
// application model, per spec §4.2/§9 ("event handlers with mutable model
// access").
type Handler[M any] func(model *M, evt Event)

// EventSink is the interface Driver provides to Build/Rebuild so listener
// attributes can register and replace handlers. Tokens are stable across
// rebuilds within a retained node's lifetime: registration happens in
// Build, replacement in Rebuild, so the backend listener is attached
// exactly once no matter how many times the view rebuilds (spec §4.3).
//
// Internally the sink only ever stores type-erased closures
// (func(any, Event)); RegisterHandler/ReplaceHandler close over the
// model's concrete type once, at the call site, so application code never
// sees the erasure — only Listener[M] and Driver[M] need to know M at all.
type EventSink struct {
	handlers map[backend.Token]func(model any, evt Event)
	next     backend.Token
}

func newEventSink() *EventSink {
	return &EventSink{handlers: make(map[backend.Token]func(any, Event))}
}

// NewEventSink creates an empty sink, for driving Build/Rebuild directly
// in tests without going through a Driver.
func NewEventSink() *EventSink { return newEventSink() }

func (s *EventSink) register(h func(model any, evt Event)) backend.Token {
	s.next++
	tok := s.next
	s.handlers[tok] = h
	return tok
}

func (s *EventSink) replace(tok backend.Token, h func(model any, evt Event)) {
	s.handlers[tok] = h
}

// drop removes a token's handler, e.g. when the listener attribute that
// registered it is torn down.
func (s *EventSink) drop(tok backend.Token) { delete(s.handlers, tok) }

// dispatch runs the handler registered for tok against model, if any. A
// stale token (its node was torn down after the event fired but before the
// queue drained) is silently dropped, per spec §7.
func (s *EventSink) dispatch(model any, tok backend.Token, evt Event) bool {
	h, ok := s.handlers[tok]
	if !ok {
		return false
	}
	h(model, evt)
	return true
}

// Dispatch runs the handler tok points at against model, for tests driving
// a Listener's effect without a full Driver. Returns false if tok has no
// registered handler (e.g. its node was already torn down).
func Dispatch(sink *EventSink, model any, tok backend.Token, evt Event) bool {
	return sink.dispatch(model, tok, evt)
}

// RegisterHandler registers a typed handler and returns its token.
func RegisterHandler[M any](sink *EventSink, h Handler[M]) backend.Token {
	return sink.register(func(model any, evt Event) { h(model.(*M), evt) })
}

// ReplaceHandler overwrites the handler at tok with a freshly constructed
// closure from the new descriptor, without touching the backend listener.
func ReplaceHandler[M any](sink *EventSink, tok backend.Token, h Handler[M]) {
	sink.replace(tok, func(model any, evt Event) { h(model.(*M), evt) })
}
