package ravel

import (
	"testing"

	"github.com/kmicklas/ravel/memdom"
)

func TestOptionalAppearsAndDisappears(t *testing.T) {
	type opt = Optional[*TextState, Text]

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := opt{Present: false, Value: Text("note")}
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(``); got != want {
		t.Fatalf("absent: got %q, want %q", got, want)
	}

	v2 := opt{Present: true, Value: Text("note")}
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`note`); got != want {
		t.Fatalf("present: got %q, want %q", got, want)
	}

	v3 := opt{Present: false, Value: Text("note")}
	v3.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(``); got != want {
		t.Fatalf("absent again: got %q, want %q", got, want)
	}

	v3.Teardown(s, newCx(be, root))
	if n := be.ChildCount(root); n != 0 {
		t.Fatalf("teardown: root has %d children, want 0 (markers should be gone)", n)
	}
}

func TestOptionalRebuildsInPlaceWhenStillPresent(t *testing.T) {
	type opt = Optional[*TextState, Text]

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := opt{Present: true, Value: Text("a")}
	s := v.Build(cx)

	be.ResetOps()
	v2 := opt{Present: true, Value: Text("b")}
	v2.Rebuild(s, newCx(be, root))

	for _, op := range be.Ops {
		if op.Kind == memdom.OpCreateElement || op.Kind == memdom.OpCreateText || op.Kind == memdom.OpRemove {
			t.Fatalf("rebuild of a still-present Optional should only mutate text, got op %v", op)
		}
	}
	if got, want := be.Snapshot(root), body(`b`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
