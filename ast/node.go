package ast

import (
	"github.com/npillmayer/rewrite/loc"
	"github.com/npillmayer/rewrite/token"
)

// ErrorTag marks a node as an opaque error envelope: patterns never
// descend into a node of this tag (see package rewrite).
var ErrorTag = token.New("Error", 0)

// LiftTag marks a node whose children should be relocated up the
// spine to the nearest ancestor of matching tag (see package rewrite).
var LiftTag = token.New("Lift", 0)

// Node is a tagged tree node: a token tag, a location, an ordered
// sequence of children, a non-owning back-reference to its parent,
// eager error/lift propagation flags, and — when Tag.Has(token.FlagSymtab)
// — an attached symbol table.
type Node struct {
	Tag      *token.Token
	Loc      loc.Location
	children []*Node
	parent   *Node

	containsError bool
	containsLift  bool

	tab *table
}

// New allocates a node with no children. If tag carries FlagSymtab, a
// fresh symbol table is attached.
func New(tag *token.Token, at ...loc.Location) *Node {
	n := &Node{Tag: tag}
	if len(at) > 0 {
		n.Loc = at[0]
	}
	if tag.Has(token.FlagSymtab) {
		n.tab = newTable()
	}
	return n
}

// Parent returns the node's current parent, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children as a read-only view. Callers
// must not retain and mutate the backing array across subsequent
// mutations of n.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// ContainsError reports whether some descendant of n carries ErrorTag.
// n's own tag is not taken into account: an Error node with no Error
// descendants reports false.
func (n *Node) ContainsError() bool {
	return n.containsError
}

// ContainsLift reports whether some descendant of n carries LiftTag.
// n's own tag is not taken into account: a Lift node with no Lift
// descendants reports false.
func (n *Node) ContainsLift() bool {
	return n.containsLift
}

// --- mutators ---------------------------------------------------------

// PushBack appends c as the last child, claiming parenthood, and
// propagates error/lift flags up the spine. A nil c is ignored.
func (n *Node) PushBack(c *Node) {
	if c == nil {
		return
	}
	c.parent = n
	n.children = append(n.children, c)
	n.onChildAttached(c)
}

// PushFront prepends c as the first child. A nil c is ignored.
func (n *Node) PushFront(c *Node) {
	if c == nil {
		return
	}
	c.parent = n
	n.children = append([]*Node{c}, n.children...)
	n.onChildAttached(c)
}

// Insert places c at position pos among the children. A nil c is ignored.
func (n *Node) Insert(pos int, c *Node) {
	if c == nil {
		return
	}
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = c
	n.onChildAttached(c)
}

// PushBackEphemeral appends c as the last child WITHOUT claiming
// parenthood — used for temporary envelopes unpacked within the same
// pass. Error/lift flags still propagate, since this is still an
// insertion along the spine; only the parent back-reference is
// withheld.
func (n *Node) PushBackEphemeral(c *Node) {
	if c == nil {
		return
	}
	n.children = append(n.children, c)
	n.onChildAttached(c)
}

// PopBack removes and returns the last child, clearing its parent
// back-reference if (and only if) n actually owns it.
func (n *Node) PopBack() *Node {
	if len(n.children) == 0 {
		return nil
	}
	last := n.children[len(n.children)-1]
	n.children = n.children[:len(n.children)-1]
	if last.parent == n {
		last.parent = nil
	}
	return last
}

// Erase removes children[first:last], clearing the parent
// back-reference of every removed child that n actually owns (never
// for ephemeral children, whose parent never pointed at n).
func (n *Node) Erase(first, last int) []*Node {
	removed := append([]*Node(nil), n.children[first:last]...)
	for _, c := range removed {
		if c.parent == n {
			c.parent = nil
		}
	}
	n.children = append(n.children[:first], n.children[last:]...)
	return removed
}

// Replace swaps old for new in place. old must be a child of n, or
// ErrNotFound is returned. If new is nil, old is erased instead. On a
// swap, new takes over old's position and parenthood, and error/lift
// flags propagate as on any other insertion.
func (n *Node) Replace(old, new *Node) error {
	idx := -1
	for i, c := range n.children {
		if c == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if new == nil {
		n.Erase(idx, idx+1)
		return nil
	}
	if old.parent == n {
		old.parent = nil
	}
	new.parent = n
	n.children[idx] = new
	n.onChildAttached(new)
	return nil
}

// Splice removes children[first:last] and inserts repl in their place,
// claiming parenthood of each non-nil replacement and propagating
// error/lift flags as any other insertion would. It returns the
// removed nodes, exactly as Erase does.
func (n *Node) Splice(first, last int, repl ...*Node) []*Node {
	removed := n.Erase(first, last)
	pos := first
	for _, c := range repl {
		if c == nil {
			continue
		}
		n.Insert(pos, c)
		pos++
	}
	return removed
}

// ResetContainsError reports n's ContainsError flag and clears it.
// Used by package rewrite's error-extraction walk, which clears
// propagation flags as it descends and re-derives them the next time
// a descendant actually carries ErrorTag.
func (n *Node) ResetContainsError() bool {
	v := n.containsError
	n.containsError = false
	return v
}

// RefreshLiftFlag recomputes n.ContainsLift from n's current children
// and propagates any change upward, stopping at the first ancestor
// whose flag is already correct.
func (n *Node) RefreshLiftFlag() {
	for cur := n; cur != nil; cur = cur.parent {
		v := false
		for _, c := range cur.children {
			if c.Tag == LiftTag || c.containsLift {
				v = true
				break
			}
		}
		if cur.containsLift == v {
			return
		}
		cur.containsLift = v
	}
}

// --- error/lift propagation ---------------------------------------

func (n *Node) onChildAttached(c *Node) {
	propagateFlag(n, c.Tag == ErrorTag || c.containsError,
		(*Node).ContainsError, setErrorFlag)
	propagateFlag(n, c.Tag == LiftTag || c.containsLift,
		(*Node).ContainsLift, setLiftFlag)
}

func setErrorFlag(n *Node, v bool) { n.containsError = v }
func setLiftFlag(n *Node, v bool)  { n.containsLift = v }

// propagateFlag walks from start upward (inclusive), setting the flag
// via set(cur, true) for as long as qualifies holds and the ancestor
// doesn't already carry it; it stops at the first ancestor that
// already has the flag set.
func propagateFlag(start *Node, qualifies bool, get func(*Node) bool, set func(*Node, bool)) {
	if !qualifies {
		return
	}
	for cur := start; cur != nil; cur = cur.parent {
		if get(cur) {
			return
		}
		set(cur, true)
	}
}
