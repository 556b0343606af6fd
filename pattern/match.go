package pattern

import (
	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/loc"
	"github.com/npillmayer/rewrite/token"
)

// Match collects captures made while matching a pattern against a
// sibling sequence, and gives effects access to fresh-name generation
// rooted at the tree being rewritten.
type Match struct {
	root     *ast.Node
	captures map[*token.Token][]*ast.Node
}

// NewMatch creates an empty Match anchored at root, used for Fresh.
func NewMatch(root *ast.Node) *Match {
	return &Match{root: root, captures: make(map[*token.Token][]*ast.Node)}
}

// Fresh delegates to the tree root's symbol table (ast.Node.Fresh).
func (m *Match) Fresh(prefix string) loc.Location {
	return m.root.Fresh(prefix)
}

// First returns the first node of the capture recorded under name, or
// nil if name was never captured.
func (m *Match) First(name *token.Token) *ast.Node {
	r := m.captures[name]
	if len(r) == 0 {
		return nil
	}
	return r[0]
}

// Range returns the full node range recorded under name.
func (m *Match) Range(name *token.Token) []*ast.Node {
	return m.captures[name]
}

// Merge absorbs other's captures into m, a later key overwriting an
// earlier one only where both define it (used when composing
// sub-matches taken by separate pattern invocations).
func (m *Match) Merge(other *Match) {
	for k, v := range other.captures {
		m.captures[k] = v
	}
}

// Reset clears every capture, for reuse between rule attempts at the
// same cursor position.
func (m *Match) Reset() {
	m.captures = make(map[*token.Token][]*ast.Node)
}

// snapshot/restore give combinators (Seq, Or, Opt, Not, lookaheads,
// Action) an atomic rollback of captures alongside the cursor, without
// exposing the capture map itself.
func (m *Match) snapshot() map[*token.Token][]*ast.Node {
	cp := make(map[*token.Token][]*ast.Node, len(m.captures))
	for k, v := range m.captures {
		cp[k] = v
	}
	return cp
}

func (m *Match) restore(snap map[*token.Token][]*ast.Node) {
	m.captures = snap
}

func (m *Match) set(name *token.Token, nodes []*ast.Node) {
	m.captures[name] = nodes
}
