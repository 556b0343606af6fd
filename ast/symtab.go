package ast

import (
	"strconv"

	"github.com/cnf/structhash"

	"github.com/npillmayer/rewrite/loc"
	"github.com/npillmayer/rewrite/token"
)

// bucket holds all bindings recorded under one literal name, plus the
// name's own text for collision resolution (see table.find below).
type bucket struct {
	text  string
	nodes []*Node
}

// table is a per-scope binding store plus an ordered include list and
// a fresh-name counter. Its map is keyed by a structhash digest of the
// binding name's text for a fast first probe; buckets carry the
// literal text too, so a digest collision between two distinct names
// never merges their binding lists.
type table struct {
	byDigest     map[string][]*bucket
	includes     []*Node
	freshCounter int
}

func newTable() *table {
	return &table{byDigest: make(map[string][]*bucket)}
}

func digestOf(text string) string {
	d, err := structhash.Hash(text, 1)
	if err != nil {
		// structhash only fails on unhashable types; a string never
		// is one, but fall back to the raw text as a key rather than
		// propagate an error from a pure lookup.
		return text
	}
	return d
}

func (t *table) find(text string, create bool) *bucket {
	key := digestOf(text)
	for _, b := range t.byDigest[key] {
		if b.text == text {
			return b
		}
	}
	if !create {
		return nil
	}
	b := &bucket{text: text}
	t.byDigest[key] = append(t.byDigest[key], b)
	return b
}

func (t *table) bind(name loc.Location, n *Node) {
	b := t.find(name.Text(), true)
	b.nodes = append(b.nodes, n)
}

func (t *table) lookupBindings(name loc.Location) []*Node {
	b := t.find(name.Text(), false)
	if b == nil {
		return nil
	}
	return b.nodes
}

// allBuckets flattens the digest-keyed map into one slice, for
// deterministic serialization (see print.go).
func (t *table) allBuckets() []*bucket {
	var all []*bucket
	for _, list := range t.byDigest {
		all = append(all, list...)
	}
	return all
}

// --- Node methods exposing scope/symbol-table operations ---------------

// Scope returns the nearest strict ancestor whose token carries
// FlagSymtab, or nil if none.
func (n *Node) Scope() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.Tag.Has(token.FlagSymtab) {
			return p
		}
	}
	return nil
}

// Bind attaches n as a binding of name in its enclosing scope. It
// returns ErrNoScope if n has no enclosing scope. The returned bool is
// false iff some existing binding for name in that scope already
// carries FlagShadowing.
func (n *Node) Bind(name loc.Location) (bool, error) {
	scope := n.Scope()
	if scope == nil {
		return false, ErrNoScope
	}
	ok := true
	for _, existing := range scope.tab.lookupBindings(name) {
		if existing.Tag.Has(token.FlagShadowing) {
			ok = false
			break
		}
	}
	scope.tab.bind(name, n)
	tracer().Debugf("bound %s in scope %s (shadow-clear=%v)", name.Text(), scope.Tag.Name(), ok)
	return ok, nil
}

// Include appends inc to the current scope's include list. Returns
// ErrNoScope if n has no enclosing scope.
func (n *Node) Include(inc *Node) error {
	scope := n.Scope()
	if scope == nil {
		return ErrNoScope
	}
	scope.tab.includes = append(scope.tab.includes, inc)
	return nil
}

// Lookup performs upward name resolution from n, using n's own
// location as the key: starting at n.Scope(), collect bindings tagged
// FlagLookup (restricted to those preceding n when the scope requires
// def-before-use), append the scope's includes unconditionally, and
// stop once the scope limit `until` was just processed or any
// collected binding carries FlagShadowing.
func (n *Node) Lookup(until *Node) []*Node {
	var results []*Node
	for scope := n.Scope(); scope != nil; scope = scope.Scope() {
		var collected []*Node
		for _, b := range scope.tab.lookupBindings(n.Loc) {
			if !b.Tag.Has(token.FlagLookup) {
				continue
			}
			if scope.Tag.Has(token.FlagDefBeforeUse) && !Precedes(b, n) {
				continue
			}
			collected = append(collected, b)
		}
		results = append(results, collected...)
		results = append(results, scope.tab.includes...)
		shadow := false
		for _, b := range collected {
			if b.Tag.Has(token.FlagShadowing) {
				shadow = true
				break
			}
		}
		if scope == until || shadow {
			break
		}
	}
	return results
}

// Lookdown collects bindings for name in n's own symbol table,
// restricted to tags carrying FlagLookdown. Includes are not
// consulted. Returns nil if n has no symbol table of its own.
func (n *Node) Lookdown(name loc.Location) []*Node {
	if n.tab == nil {
		return nil
	}
	var result []*Node
	for _, b := range n.tab.lookupBindings(name) {
		if b.Tag.Has(token.FlagLookdown) {
			result = append(result, b)
		}
	}
	return result
}

// Look collects all bindings for name in n's own symbol table, with
// no flag filter and without consulting includes.
func (n *Node) Look(name loc.Location) []*Node {
	if n.tab == nil {
		return nil
	}
	return append([]*Node(nil), n.tab.lookupBindings(name)...)
}

// Fresh delegates to the tree root's symbol table, producing a
// synthetic Location of the form "prefix$k" with k monotonically
// increasing for the lifetime of the root.
func (n *Node) Fresh(prefix string) loc.Location {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	if root.tab == nil {
		root.tab = newTable()
	}
	root.tab.freshCounter++
	return loc.Synthetic(prefix + "$" + strconv.Itoa(root.tab.freshCounter))
}
