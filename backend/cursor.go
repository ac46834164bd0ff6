package backend

// Cursor points at an insertion position among the children of a single
// parent handle. It is ephemeral: never stored across a build/rebuild
// cycle, always either passed down through a View's Build/Rebuild call or
// freshly constructed to walk one keyed-sequence entry's own range.
type Cursor struct {
	be     Backend
	parent Handle
	index  int
}

// NewCursor starts a cursor at the beginning of parent's children.
func NewCursor(be Backend, parent Handle) *Cursor {
	return &Cursor{be: be, parent: parent}
}

// NewCursorAt starts a cursor at a specific index into parent's children,
// used to re-enter a keyed-sequence entry's own marker-bracketed range
// without disturbing the outer cursor's position.
func NewCursorAt(be Backend, parent Handle, index int) *Cursor {
	return &Cursor{be: be, parent: parent, index: index}
}

func (c *Cursor) Backend() Backend { return c.be }
func (c *Cursor) Parent() Handle   { return c.parent }

// Current returns the node presently at the cursor's position, without
// advancing.
func (c *Cursor) Current() (Handle, bool) { return c.be.ChildAt(c.parent, c.index) }

// Advance skips the node currently at the cursor's position: used during
// rebuild, when the backend node there already matches what the new
// descriptor wants and needs no structural change.
func (c *Cursor) Advance() { c.index++ }

// AdvanceBy skips n nodes at once — used when a subtree's own footprint
// (e.g. a keyed sequence's total node count) isn't tracked one node at a
// time by the caller.
func (c *Cursor) AdvanceBy(n int) { c.index += n }

// Insert creates no node itself; it places an already-created handle at
// the cursor's position and advances past it. Used during build.
func (c *Cursor) Insert(h Handle) {
	c.be.InsertChild(c.parent, c.index, h)
	c.index++
}

func (c *Cursor) InsertElement(tag string) Handle {
	h := c.be.CreateElement(tag)
	c.Insert(h)
	return h
}

func (c *Cursor) InsertText(text string) Handle {
	h := c.be.CreateText(text)
	c.Insert(h)
	return h
}

func (c *Cursor) InsertMarker() Handle {
	h := c.be.CreateMarker()
	c.Insert(h)
	return h
}

// Enter returns a fresh cursor scoped to parent's own children — used by
// Elem to recurse into its children independently of its own position in
// its parent's list.
func (c *Cursor) Enter(parent Handle) *Cursor {
	return &Cursor{be: c.be, parent: parent}
}

// NewCursorAtEnd starts a cursor positioned after parent's last child,
// used to stage a brand-new keyed-sequence entry's content before Phase B
// moves its bracketed range into its final position.
func NewCursorAtEnd(be Backend, parent Handle) *Cursor {
	return &Cursor{be: be, parent: parent, index: be.ChildCount(parent)}
}
