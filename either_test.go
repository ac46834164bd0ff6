package ravel

import (
	"testing"

	"github.com/kmicklas/ravel/memdom"
)

func TestEitherSwitchesBranches(t *testing.T) {
	type view = Either[*ElemState[struct{}, *TextState], *ElemState[struct{}, *TextState], Elem[struct{}, *TextState, NoAttrs, Text], Elem[struct{}, *TextState, NoAttrs, Text]]

	mkA := func(text string) view {
		return view{IsA: true, A: Elem[struct{}, *TextState, NoAttrs, Text]{Tag: "a", Children: Text(text)}}
	}
	mkB := func(text string) view {
		return view{IsA: false, B: Elem[struct{}, *TextState, NoAttrs, Text]{Tag: "b", Children: Text(text)}}
	}

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := mkA("loading")
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(`<a>loading</a>`); got != want {
		t.Fatalf("initial A branch: got %q, want %q", got, want)
	}

	v2 := mkB("done")
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`<b>done</b>`); got != want {
		t.Fatalf("switched to B: got %q, want %q", got, want)
	}

	v3 := mkA("loading again")
	v3.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`<a>loading again</a>`); got != want {
		t.Fatalf("switched back to A: got %q, want %q", got, want)
	}
}
