package pattern

import "github.com/npillmayer/rewrite/ast"

// Cursor is a position within a sequence of sibling nodes. A pattern
// advances it on success and must restore it on failure.
type Cursor struct {
	Siblings []*ast.Node
	Pos      int
}

// NewCursor positions a Cursor at the start of parent's children. parent
// may be nil for a synthetic top-level match (no In() checks possible).
func NewCursor(parent *ast.Node) *Cursor {
	if parent == nil {
		return &Cursor{}
	}
	return &Cursor{Siblings: parent.Children()}
}

// AtEnd reports whether the cursor has consumed every sibling.
func (c *Cursor) AtEnd() bool {
	return c.Pos >= len(c.Siblings)
}

// current returns the node at the cursor's position, or nil at end.
func (c *Cursor) current() *ast.Node {
	if c.AtEnd() {
		return nil
	}
	return c.Siblings[c.Pos]
}
