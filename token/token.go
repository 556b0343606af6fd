/*
Package token implements a small, process-wide registry of node-kind
identifiers ("tokens") together with a closed set of capability flags.

Tokens are compared by identity, never by name: two calls to New with
the same name produce two distinct tokens. Tags a language frontend
wants to share are expected to declare a single package-level *Token
and reuse it, exactly the way a grammar declares its terminals once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Flags is a bitset of capability flags drawn from a closed set.
type Flags uint8

// The closed set of capability flags a token may carry.
const (
	// FlagPrint marks that a node's location text is significant when
	// comparing nodes of this tag for structural equality.
	FlagPrint Flags = 1 << iota
	// FlagSymtab marks that nodes of this tag own a symbol table scope.
	FlagSymtab
	// FlagDefBeforeUse marks that the scope owned by this tag requires a
	// definition to textually precede a use.
	FlagDefBeforeUse
	// FlagShadowing marks that a binding of this tag hides outer
	// bindings for the same name.
	FlagShadowing
	// FlagLookup marks that the node can be returned by upward name
	// resolution (Node.Lookup).
	FlagLookup
	// FlagLookdown marks that the node can be returned by scoped-name
	// resolution (Node.Lookdown).
	FlagLookdown
)

// Token uniquely identifies a node kind. Tokens compare by identity;
// they are intended to be process-wide constants declared at
// initialization, mirroring runtime.Tag in spirit but keyed by pointer
// rather than by name, so two tags with the same display name never
// collide.
type Token struct {
	name  string
	flags Flags
}

// New allocates a fresh token with the given display name and flags.
// Calling New twice with the same name yields two distinct tokens.
func New(name string, flags Flags) *Token {
	return &Token{name: name, flags: flags}
}

// Name returns the token's display name, used only for diagnostics and
// the debug print format — never for equality.
func (t *Token) Name() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// Has reports whether t carries all bits of f.
func (t *Token) Has(f Flags) bool {
	return t != nil && t.flags&f == f
}

// String is a debug Stringer.
func (t *Token) String() string {
	return fmt.Sprintf("%s", t.Name())
}

// Set is a membership set of tokens, consulted by the In(...) pattern
// predicate. Backed by gods' hashset; package ast uses the same
// library's arraylist for its Drop worklist.
type Set struct {
	set *hashset.Set
}

// In builds a token Set from the given tokens, for use with the
// pattern-combinator `In` predicate and similar membership checks.
func In(tokens ...*Token) Set {
	items := make([]interface{}, len(tokens))
	for i, t := range tokens {
		items[i] = t
	}
	return Set{set: hashset.New(items...)}
}

// Has reports whether t is a member of the set.
func (s Set) Has(t *Token) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(t)
}
