package ravel

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kmicklas/ravel/backend"
	"github.com/kmicklas/ravel/memdom"
)

// Scenarios from spec.md §8, driven directly against memdom so each
// invariant is checked against the op log, not just the rendered string.

func TestScenarioTextUpdate(t *testing.T) {
	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := Text("a")
	s := v.Build(cx)

	be.ResetOps()
	Text("b").Rebuild(s, newCx(be, root))

	want := []memdom.Op{{Kind: memdom.OpSetText, ID: s.node.ID(), Value: "b"}}
	if diff := cmp.Diff(want, be.Ops); diff != "" {
		t.Fatalf("op log mismatch (-want +got):\n%s", diff)
	}
	if got, want := be.Snapshot(root), body(`b`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioCounter(t *testing.T) {
	type view = Elem[struct{}, Tuple3State[*TextState, *TextState, *ElemState[ListenerState, *TextState]], NoAttrs, Tuple3[*TextState, *TextState, *ElemState[ListenerState, *TextState], Text, Text, Elem[ListenerState, *TextState, Attrs1[ListenerState, Listener[int]], Text]]]

	render := func(n *int) view {
		return view{
			Tag: "div",
			Children: Tuple3[*TextState, *TextState, *ElemState[ListenerState, *TextState], Text, Text, Elem[ListenerState, *TextState, Attrs1[ListenerState, Listener[int]], Text]]{
				V1: Text("count: "),
				V2: Text(strconv.Itoa(*n)),
				V3: Elem[ListenerState, *TextState, Attrs1[ListenerState, Listener[int]], Text]{
					Tag: "button",
					Attrs: Attrs1[ListenerState, Listener[int]]{
						A1: Listener[int]{
							Event: "click",
							Kind:  Click,
							Handle: func(m *int, evt Event) {
								*m++
							},
						},
					},
					Children: Text("+"),
				},
			},
		}
	}

	be, root := memdom.New("body")
	model := new(int)
	sink := NewEventSink()
	cx := Cx{Sink: sink, Cursor: backend.NewCursor(be, root)}

	v := render(model)
	s := v.Build(cx)

	tok := s.child.S3.attrs.tok

	for range 3 {
		Dispatch(sink, model, tok, Event{Kind: Click})
		v := render(model)
		v.Rebuild(s, newCx(be, root))
	}

	if *model != 3 {
		t.Fatalf("model = %d, want 3", *model)
	}
	if got, want := be.Snapshot(root), body(`<div>count: 3<button>+</button></div>`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioToggleBranch(t *testing.T) {
	type onView = Text
	type offView = Elem[struct{}, *TextState, NoAttrs, Text]
	type view = Either[*TextState, *ElemState[struct{}, *TextState], onView, offView]

	render := func(flag bool) view {
		if flag {
			return view{IsA: true, A: Text("on")}
		}
		return view{IsA: false, B: offView{Tag: "div", Children: Text("off")}}
	}

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := render(true)
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(`on`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	render(false).Rebuild(s, newCx(be, root))
	if got, want := be.Snapshot(root), body(`<div>off</div>`); got != want {
		t.Fatalf("after toggle: got %q, want %q", got, want)
	}
}

func TestScenarioKeyedListShuffle(t *testing.T) {
	intItems := func(keys ...int) []KeyedItem[int, Text] {
		out := make([]KeyedItem[int, Text], len(keys))
		for i, k := range keys {
			out[i] = KeyedItem[int, Text]{Key: k, Value: Text(strconv.Itoa(k))}
		}
		return out
	}

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := Keyed[int, *TextState, Text]{Items: intItems(1, 2, 3, 4)}
	s := v.Build(cx)

	entry4 := s.entries[4]

	be.ResetOps()
	Keyed[int, *TextState, Text]{Items: intItems(4, 1, 2, 3)}.Rebuild(s, newCx(be, root))

	// Content is unchanged for every surviving key, so Phase A emits nothing;
	// Phase B's LIS over [3,0,1,2] keeps keys 1,2,3 in place and moves only
	// key 4's marker-bracketed range, anchored immediately before key 1 —
	// exactly the move_before(4, 1) the spec calls out.
	want := []memdom.Op{{
		Kind: memdom.OpMoveRange,
		ID:   entry4.start.ID(),
		Name: strconv.FormatUint(entry4.end.ID(), 10),
	}}
	if diff := cmp.Diff(want, be.Ops); diff != "" {
		t.Fatalf("op log mismatch (-want +got):\n%s", diff)
	}
	if got, want := be.Snapshot(root), body(`4123`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioOptionalAppearance(t *testing.T) {
	type view = Optional[*TextState, Text]

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := view{Present: false, Value: Text("x")}
	s := v.Build(cx)

	view{Present: true, Value: Text("x")}.Rebuild(s, newCx(be, root))
	if got, want := be.Snapshot(root), body(`x`); got != want {
		t.Fatalf("after appearing: got %q, want %q", got, want)
	}

	view{Present: false, Value: Text("x")}.Rebuild(s, newCx(be, root))
	if got, want := be.Snapshot(root), body(``); got != want {
		t.Fatalf("after disappearing: got %q, want %q", got, want)
	}
}

func TestScenarioDynamicSwap(t *testing.T) {
	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := NewDyn[*TextState](Text("a"))
	s := v.Build(cx)

	type boxView = Elem[struct{}, *TextState, NoAttrs, Text]
	NewDyn[*ElemState[struct{}, *TextState]](boxView{Tag: "div", Children: Text("a")}).Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`<div>a</div>`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTeardownCompletenessReleasesHandlerToken(t *testing.T) {
	type view = Elem[ListenerState, struct{}, Attrs1[ListenerState, Listener[int]], NoChildren]

	be, root := memdom.New("body")
	sink := NewEventSink()
	cx := Cx{Sink: sink, Cursor: backend.NewCursor(be, root)}

	v := view{
		Tag: "button",
		Attrs: Attrs1[ListenerState, Listener[int]]{
			A1: Listener[int]{Event: "click", Kind: Click, Handle: func(m *int, evt Event) { *m++ }},
		},
	}
	s := v.Build(cx)
	tok := s.attrs.tok

	model := new(int)
	if !Dispatch(sink, model, tok, Event{Kind: Click}) {
		t.Fatal("expected the freshly registered token to dispatch")
	}

	v.Teardown(s, Cx{Sink: sink, Cursor: backend.NewCursor(be, root)})

	if Dispatch(sink, model, tok, Event{Kind: Click}) {
		t.Fatal("a torn-down token should no longer dispatch")
	}
	if n := be.ChildCount(root); n != 0 {
		t.Fatalf("teardown should remove the element, root has %d children", n)
	}
}
