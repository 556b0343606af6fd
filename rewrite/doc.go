/*
Package rewrite implements the rewrite-pass executor: a Pass holds an
ordered list of Rules, an optional once-per-run pre/post hook, per-tag
hooks, and a direction (top-down or bottom-up, optionally combined
with a once-only restriction). Running a pass repeatedly scans a
node's children, tries each rule at each cursor position, applies the
winning rule's effect, and iterates to a fixed point, resolving Lift
envelopes after every iteration. GetErrors collects Error nodes; the
driver calls it between passes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rewrite.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("rewrite.rewrite")
}
