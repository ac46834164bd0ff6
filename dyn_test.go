package ravel

import (
	"testing"

	"github.com/kmicklas/ravel/memdom"
)

func TestDynSwapsVariantByType(t *testing.T) {
	type box = Elem[struct{}, *TextState, NoAttrs, Text]

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := NewDyn[*TextState](Text("plain"))
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(`plain`); got != want {
		t.Fatalf("initial Text variant: got %q, want %q", got, want)
	}

	v2 := NewDyn[*ElemState[struct{}, *TextState]](box{Tag: "strong", Children: Text("urgent")})
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`<strong>urgent</strong>`); got != want {
		t.Fatalf("switched to Elem variant: got %q, want %q", got, want)
	}

	v3 := NewDyn[*ElemState[struct{}, *TextState]](box{Tag: "strong", Children: Text("still urgent")})
	v3.Rebuild(s, newCx(be, root))
	be.ResetOps()

	v4 := NewDyn[*ElemState[struct{}, *TextState]](box{Tag: "strong", Children: Text("even more urgent")})
	v4.Rebuild(s, newCx(be, root))

	for _, op := range be.Ops {
		if op.Kind == memdom.OpCreateElement {
			t.Fatalf("rebuild within the same variant's type should not recreate the element, got op %v", op)
		}
	}
	if got, want := be.Snapshot(root), body(`<strong>even more urgent</strong>`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
