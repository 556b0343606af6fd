/*
Package driver wires a parser, an ordered sequence of rewrite passes,
and a well-formedness schema per stage into a single pipeline: parse,
validate, then run each pass in turn, validating and gathering
in-tree Error nodes after each, short-circuiting the remaining stages
once errors have accumulated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rewrite.driver'.
func tracer() tracing.Trace {
	return tracing.Select("rewrite.driver")
}
