package ravel

import (
	"testing"

	"github.com/kmicklas/ravel/backend"
	"github.com/kmicklas/ravel/memdom"
)

func newCx(be backend.Backend, root backend.Handle) Cx {
	return Cx{Sink: newEventSink(), Cursor: backend.NewCursor(be, root)}
}

// body wraps a fixture fragment in the mount-point tag every test backend
// in this package uses, so fixtures can be written as plain fragments.
func body(fragment string) string {
	return memdom.ParseFixture("<body>" + fragment + "</body>")
}

func TestElemBuildRebuild(t *testing.T) {
	type view = Elem[struct{}, *TextState, NoAttrs, Text]

	mk := func(text string) view {
		return Elem[struct{}, *TextState, NoAttrs, Text]{Tag: "div", Children: Text(text)}
	}

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := mk("hello")
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(`<div>hello</div>`); got != want {
		t.Fatalf("after build: got %q, want %q", got, want)
	}

	v2 := mk("goodbye")
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`<div>goodbye</div>`); got != want {
		t.Fatalf("after rebuild: got %q, want %q", got, want)
	}

	be.ResetOps()
	mk("goodbye").Rebuild(s, newCx(be, root))
	if len(be.Ops) != 0 {
		t.Fatalf("rebuilding with an unchanged string should emit no ops, got %v", be.Ops)
	}
}

func TestElemAttrsAndClass(t *testing.T) {
	type attrs = Attrs2[*stringAttrState, *classAttrState, StringAttr, ClassAttr]
	type view = Elem[Attrs2State[*stringAttrState, *classAttrState], *TextState, attrs, Text]

	mk := func(id string, classes []string, text string) view {
		return Elem[Attrs2State[*stringAttrState, *classAttrState], *TextState, attrs, Text]{
			Tag: "p",
			Attrs: attrs{
				A1: StringAttr{Name: "id", Value: id},
				A2: ClassAttr(classes),
			},
			Children: Text(text),
		}
	}

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := mk("label-1", []string{"flex", "bold"}, "hi")
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(`<p id="label-1" class="flex bold">hi</p>`); got != want {
		t.Fatalf("after build: got %q, want %q", got, want)
	}

	v2 := mk("label-1", nil, "hi")
	v2.Rebuild(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(`<p id="label-1">hi</p>`); got != want {
		t.Fatalf("after clearing class: got %q, want %q", got, want)
	}

	be.ResetOps()
	mk("label-1", nil, "hi").Rebuild(s, newCx(be, root))
	for _, op := range be.Ops {
		if op.Kind == memdom.OpSetAttribute && op.Name == "id" {
			t.Fatalf("rebuilding with an unchanged id should not re-emit set_attribute, got %v", be.Ops)
		}
	}
}

func TestElemTeardownRemovesNode(t *testing.T) {
	type view = Elem[struct{}, *TextState, NoAttrs, Text]

	be, root := memdom.New("body")
	cx := newCx(be, root)

	v := view{Tag: "span", Children: Text("bye")}
	s := v.Build(cx)

	if got, want := be.Snapshot(root), body(`<span>bye</span>`); got != want {
		t.Fatalf("after build: got %q, want %q", got, want)
	}

	v.Teardown(s, newCx(be, root))

	if got, want := be.Snapshot(root), body(``); got != want {
		t.Fatalf("after teardown: got %q, want %q", got, want)
	}
}
