package pattern

import (
	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/token"
)

// Seq is atomic sequencing: p then q, restoring the cursor and
// captures if q fails after p succeeded.
func Seq(p, q Pattern) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		save := *c
		snap := m.snapshot()
		if !p.match(c, m) {
			*c = save
			m.restore(snap)
			return false
		}
		if !q.match(c, m) {
			*c = save
			m.restore(snap)
			return false
		}
		return true
	}}
}

// Or is ordered choice: try p; on failure, reset captures and cursor
// and try q.
func Or(p, q Pattern) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		save := *c
		snap := m.snapshot()
		if p.match(c, m) {
			return true
		}
		*c = save
		m.restore(snap)
		return q.match(c, m)
	}}
}

// Opt always succeeds, advancing only if p did.
func Opt(p Pattern) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		save := *c
		snap := m.snapshot()
		if !p.match(c, m) {
			*c = save
			m.restore(snap)
		}
		return true
	}}
}

// Rep is zero-or-more repetition of p. If p declares
// custom_rep, Rep(p) has exactly p's semantics and delegates rather
// than looping; for an In()-built p this additionally switches its
// parent-context check from "immediate parent" to "any ancestor",
// decided once here at construction.
func Rep(p Pattern) Pattern {
	if p.customRep {
		if p.anyAncestor != nil {
			return p.anyAncestor()
		}
		return p
	}
	return Pattern{customRep: true, match: func(c *Cursor, m *Match) bool {
		for {
			save := *c
			snap := m.snapshot()
			if !p.match(c, m) {
				*c = save
				m.restore(snap)
				return true
			}
			if c.Pos == save.Pos {
				// a zero-width success would loop forever; one
				// iteration is enough to honor it.
				return true
			}
		}
	}}
}

// Not succeeds iff p fails and the cursor is not at end; on success it
// consumes one node.
func Not(p Pattern) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		if c.AtEnd() {
			return false
		}
		save := *c
		snap := m.snapshot()
		if p.match(c, m) {
			*c = save
			m.restore(snap)
			return false
		}
		*c = save
		m.restore(snap)
		c.Pos++
		return true
	}}
}

// Lookahead is a positive predicate: run p but restore the cursor
// either way; zero-width.
func Lookahead(p Pattern) Pattern {
	return Pattern{
		customRep: true,
		match: func(c *Cursor, m *Match) bool {
			save := *c
			snap := m.snapshot()
			ok := p.match(c, m)
			*c = save
			if !ok {
				m.restore(snap)
			}
			return ok
		},
	}
}

// NegLookahead is a negative predicate: run p, restore the cursor and
// captures regardless, and succeed iff p failed.
func NegLookahead(p Pattern) Pattern {
	return Pattern{
		customRep: true,
		match: func(c *Cursor, m *Match) bool {
			save := *c
			snap := m.snapshot()
			ok := p.match(c, m)
			*c = save
			m.restore(snap)
			return !ok
		},
	}
}

// Descend matches p against exactly one node X, then matches q against
// X's children from their beginning; q must match. On overall success
// the outer cursor advances past X.
func Descend(p, q Pattern) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		save := *c
		snap := m.snapshot()
		start := c.Pos
		if !p.match(c, m) || c.Pos != start+1 {
			*c = save
			m.restore(snap)
			return false
		}
		x := c.Siblings[start]
		inner := &Cursor{Siblings: x.Children()}
		if !q.match(inner, m) {
			*c = save
			m.restore(snap)
			return false
		}
		return true
	}}
}

// Capture records the matched range [start, it) under name on success
//. A later capture under the same token
// overwrites an earlier one, per the textual-order overwrite rule.
func Capture(p Pattern, name *token.Token) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		start := c.Pos
		if !p.match(c, m) {
			return false
		}
		m.set(name, append([]*ast.Node(nil), c.Siblings[start:c.Pos]...))
		return true
	}}
}

// Action runs fn over the matched range after p succeeds; if fn
// returns false, the match fails and the cursor/captures are restored
//.
func Action(p Pattern, fn func(matched []*ast.Node) bool) Pattern {
	return Pattern{match: func(c *Cursor, m *Match) bool {
		save := *c
		snap := m.snapshot()
		if !p.match(c, m) {
			*c = save
			m.restore(snap)
			return false
		}
		if !fn(c.Siblings[save.Pos:c.Pos]) {
			*c = save
			m.restore(snap)
			return false
		}
		return true
	}}
}
