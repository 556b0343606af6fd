package ast

import "github.com/npillmayer/rewrite/token"

// Equals reports structural equality: same tag; same location iff the
// tag carries FlagPrint; pairwise structural equality of children.
func Equals(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag {
		return false
	}
	if a.Tag.Has(token.FlagPrint) && !a.Loc.Equal(b.Loc) {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equals(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies the subtree rooted at n. Symbol tables are never
// copied — they are recomputed by a later binding pass.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{Tag: n.Tag, Loc: n.Loc}
	if n.Tag.Has(token.FlagSymtab) {
		c.tab = newTable()
	}
	for _, ch := range n.children {
		c.PushBack(Clone(ch))
	}
	return c
}
