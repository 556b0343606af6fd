package rewrite

import "github.com/npillmayer/rewrite/token"

// SeqTag marks a rule effect's result as an unpacking envelope: its
// children splice into the matched range in place of a single node.
var SeqTag = token.New("Seq", 0)

// NoChangeTag marks a rule effect's result as a declared no-op: the
// match is treated as if the rule never fired, and the next rule is
// tried at the same cursor position.
var NoChangeTag = token.New("NoChange", 0)
