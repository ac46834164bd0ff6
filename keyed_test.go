package ravel

import (
	"testing"

	"github.com/kmicklas/ravel/backend"
	"github.com/kmicklas/ravel/memdom"
)

type keyedView = Keyed[string, *TextState, Text]

func items(pairs ...string) []KeyedItem[string, Text] {
	out := make([]KeyedItem[string, Text], 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, KeyedItem[string, Text]{Key: pairs[i], Value: Text(pairs[i+1])})
	}
	return out
}

func TestKeyedBuildOrdersByItems(t *testing.T) {
	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := keyedView{Items: items("a", "A", "b", "B", "c", "C")}
	v.Build(cx)

	if got, want := be.Snapshot(root), body(`ABC`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestKeyedReorderEmitsMinimalMoves(t *testing.T) {
	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := keyedView{Items: items("a", "A", "b", "B", "c", "C", "d", "D")}
	s := v.Build(cx)

	be.ResetOps()
	v2 := keyedView{Items: items("a", "A", "c", "C", "b", "B", "d", "D")}
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`ACBD`); got != want {
		t.Fatalf("after reorder: got %q, want %q", got, want)
	}

	moves := 0
	for _, op := range be.Ops {
		switch op.Kind {
		case memdom.OpCreateElement, memdom.OpCreateText, memdom.OpRemove:
			t.Fatalf("a pure reorder should not create or remove nodes, got op %v", op)
		case memdom.OpMoveRange:
			moves++
		}
	}
	if moves != 1 {
		t.Fatalf("swapping b and c (both single-item runs) should take exactly one move, got %d", moves)
	}
}

func TestKeyedInsertAndRemove(t *testing.T) {
	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := keyedView{Items: items("a", "A", "b", "B", "c", "C")}
	s := v.Build(cx)

	v2 := keyedView{Items: items("a", "A", "x", "X", "c", "C")}
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`AXC`); got != want {
		t.Fatalf("after insert+remove: got %q, want %q", got, want)
	}
}

func TestKeyedContentRebuildsInPlaceWithoutMoveWhenOrderUnchanged(t *testing.T) {
	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := keyedView{Items: items("a", "A", "b", "B")}
	s := v.Build(cx)

	be.ResetOps()
	v2 := keyedView{Items: items("a", "A2", "b", "B2")}
	v2.Rebuild(s, newCx(be, root))

	for _, op := range be.Ops {
		if op.Kind == memdom.OpMoveRange {
			t.Fatalf("content-only change should not move anything, got op %v", op)
		}
	}
	if got, want := be.Snapshot(root), body(`A2B2`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestKeyedDuplicateKeyLastWriteWinsOutsideDebug(t *testing.T) {
	be, root := memdom.New("body")
	cx := Cx{Sink: newEventSink(), Cursor: backend.NewCursor(be, root), Debug: false}

	v := keyedView{Items: items("a", "first", "a", "second")}
	v.Build(cx)

	if got, want := be.Snapshot(root), body(`second`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestKeyedDuplicateKeyPanicsInDebug(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a duplicate key in Debug mode")
		}
	}()

	be, root := memdom.New("body")
	cx := Cx{Sink: newEventSink(), Cursor: backend.NewCursor(be, root), Debug: true}

	v := keyedView{Items: items("a", "first", "a", "second")}
	v.Build(cx)
}
