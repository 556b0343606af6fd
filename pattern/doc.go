/*
Package pattern implements a combinator algebra for matching linear
sequences of sibling nodes, with captures, lookahead, repetition,
descent into children, and parent-context predicates.

Combinators are built by small functions rather than operator
overloads, matching the way terex/termr builds its RewriteRule/Match
pairing and the way lr/sppf's Cursor walks a tree without recursion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rewrite.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("rewrite.pattern")
}
