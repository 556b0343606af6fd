package pattern

import (
	"regexp"

	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/token"
)

// Any matches exactly one node, failing at end.
func Any() Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		if c.AtEnd() {
			return false
		}
		c.Pos++
		return true
	}}
}

// T matches one node whose tag equals tag.
func T(tag *token.Token) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		n := c.current()
		if n == nil || n.Tag != tag {
			return false
		}
		c.Pos++
		return true
	}}
}

// TRe matches one node of tag whose location view fully matches re.
func TRe(tag *token.Token, re *regexp.Regexp) Pattern {
	full := regexp.MustCompile(`^(?:` + re.String() + `)$`)
	return Pattern{match: func(c *Cursor, m *Match) bool {
		n := c.current()
		if n == nil || n.Tag != tag {
			return false
		}
		if !full.MatchString(n.Loc.Text()) {
			return false
		}
		c.Pos++
		return true
	}}
}

// First is zero-width; it succeeds iff the cursor is at the first
// child of its parent. Rep(First) == First (custom_rep).
func First() Pattern {
	return Pattern{
		customRep: true,
		match: func(c *Cursor, m *Match) bool {
			return c.Pos == 0
		},
	}
}

// Last is zero-width; it succeeds iff the cursor is at end.
// Rep(Last) == Last (custom_rep).
func Last() Pattern {
	return Pattern{
		customRep: true,
		match: func(c *Cursor, m *Match) bool {
			return c.AtEnd()
		},
	}
}

// In is zero-width; true iff the current node's immediate parent's tag
// is in tags. Inside a Rep wrapper the check relaxes to any ancestor:
// Rep switches this pattern's mode exactly once, at construction, via
// anyAncestor below, rather than toggling a per-match cursor flag.
func In(tags ...*token.Token) Pattern {
	set := token.In(tags...)
	build := func(anyAncestor bool) matchFunc {
		return func(c *Cursor, m *Match) bool {
			n := c.current()
			if n == nil {
				return false
			}
			if anyAncestor {
				for p := n.Parent(); p != nil; p = p.Parent() {
					if set.Has(p.Tag) {
						return true
					}
				}
				return false
			}
			p := n.Parent()
			return p != nil && set.Has(p.Tag)
		}
	}
	var self Pattern
	self = Pattern{
		match:     build(false),
		customRep: true,
		anyAncestor: func() Pattern {
			return Pattern{
				match:       build(true),
				customRep:   true,
				anyAncestor: self.anyAncestor,
			}
		},
	}
	return self
}

// TryMatch attempts p against parent's children, starting at position
// pos, rooted at root for Fresh(). On success it returns the resulting
// Match and the cursor position immediately past the match.
func TryMatch(p Pattern, parent *ast.Node, pos int, root *ast.Node) (*Match, int, bool) {
	c := &Cursor{Siblings: parent.Children(), Pos: pos}
	m := NewMatch(root)
	if !p.match(c, m) {
		return nil, pos, false
	}
	return m, c.Pos, true
}
