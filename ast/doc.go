/*
Package ast implements the in-memory tagged tree used throughout this
module: nodes with parent back-references, ordered children, eager
error/lift propagation flags, and — for nodes whose token carries the
symtab capability — an attached scope.

The symbol table lives in this package rather than a separate one
because Node.Lookup needs to walk *Node ancestors directly; splitting
the table out would either force an import cycle or push Node into
holding an interface just to dodge one, which buys nothing a real
frontend would want.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rewrite.ast'.
func tracer() tracing.Trace {
	return tracing.Select("rewrite.ast")
}
