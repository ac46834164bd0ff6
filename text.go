package ravel

import "github.com/kmicklas/ravel/backend"

// Text is a leaf view rendering a single backend text node. Grounded on the
// teacher's Node.Text/SetText/OpAddText; see DESIGN.md.
type Text string

// TextState is Text's retained state: one backend text node handle plus
// the last string emitted to it, so an unchanged rebuild emits no op.
type TextState struct {
	node backend.Handle
	text string
}

func (v Text) Build(cx Cx) *TextState {
	h := cx.Cursor.InsertText(string(v))
	return &TextState{node: h, text: string(v)}
}

func (v Text) Rebuild(s *TextState, cx Cx) {
	cx.Cursor.Advance()
	if string(v) == s.text {
		return
	}
	s.node.SetText(string(v))
	s.text = string(v)
}

func (v Text) Teardown(s *TextState, cx Cx) {
	s.node.Remove()
}
