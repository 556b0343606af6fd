/*
Trepl is a small interactive demo of package driver: it tokenizes a
single line of input against a toy grammar (single-letter leaves
A..H, parenthesized Group nodes, brace-delimited Block scopes), runs
it through a couple of example rewrite stages, and prints the
resulting tree.

This command is a demo consumer, not a general-purpose tool: the
tokenizer is intentionally trivial, standing in for whatever real
frontend a caller of package driver would otherwise supply.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rewrite.trepl'.
func tracer() tracing.Trace {
	return tracing.Select("rewrite.trepl")
}
