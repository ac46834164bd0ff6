// Package html is a small hand-written manifest of HTML elements and
// attributes, the concrete vocabulary applications build views out of.
// Grounded on the teacher's render.go (Node's tag/attrs/children shape,
// generalized per SPEC_FULL.md into ravel's distinct generic Elem type);
// see DESIGN.md.
package html

import "github.com/kmicklas/ravel"

func elem[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](tag string, attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return ravel.Elem[AS, CS, A, C]{Tag: tag, Attrs: attrs, Children: children}
}

func Div[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("div", attrs, children)
}

func Span[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("span", attrs, children)
}

func P[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("p", attrs, children)
}

func Button[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("button", attrs, children)
}

func Input[AS any, A ravel.AttrList[AS]](attrs A) ravel.Elem[AS, struct{}, A, ravel.NoChildren] {
	return ravel.Elem[AS, struct{}, A, ravel.NoChildren]{Tag: "input", Attrs: attrs}
}

func A[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("a", attrs, children)
}

func Ul[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("ul", attrs, children)
}

func Li[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("li", attrs, children)
}

func Label[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("label", attrs, children)
}

func Form[AS, CS any, A ravel.AttrList[AS], C ravel.View[CS]](attrs A, children C) ravel.Elem[AS, CS, A, C] {
	return elem[AS, CS]("form", attrs, children)
}

func ID(v string) ravel.StringAttr          { return ravel.StringAttr{Name: "id", Value: v} }
func Value(v string) ravel.StringAttr       { return ravel.StringAttr{Name: "value", Value: v} }
func Placeholder(v string) ravel.StringAttr { return ravel.StringAttr{Name: "placeholder", Value: v} }
func Href(v string) ravel.StringAttr        { return ravel.StringAttr{Name: "href", Value: v} }
func Type_(v string) ravel.StringAttr       { return ravel.StringAttr{Name: "type", Value: v} }
func For(v string) ravel.StringAttr         { return ravel.StringAttr{Name: "for", Value: v} }
func Class(classes ...string) ravel.ClassAttr { return ravel.ClassAttr(classes) }

func Checked(v bool) ravel.BoolAttr  { return ravel.BoolAttr{Name: "checked", Value: v} }
func Disabled(v bool) ravel.BoolAttr { return ravel.BoolAttr{Name: "disabled", Value: v} }

func OnClick[M any](h ravel.Handler[M]) ravel.Listener[M] {
	return ravel.Listener[M]{Event: "click", Kind: ravel.Click, Handle: h}
}

func OnInput[M any](h ravel.Handler[M]) ravel.Listener[M] {
	return ravel.Listener[M]{Event: "input", Kind: ravel.Input, Handle: h}
}

func OnChange[M any](h ravel.Handler[M]) ravel.Listener[M] {
	return ravel.Listener[M]{Event: "change", Kind: ravel.Change, Handle: h}
}

func OnSubmit[M any](h ravel.Handler[M]) ravel.Listener[M] {
	return ravel.Listener[M]{Event: "submit", Kind: ravel.Submit, Handle: h}
}

func OnBlur[M any](h ravel.Handler[M]) ravel.Listener[M] {
	return ravel.Listener[M]{Event: "blur", Kind: ravel.Blur, Handle: h}
}
