package ast

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// Print renders n in a fixed debug format:
//
//	(TAG locLen:locText children…)
//
// with a scope block `{ name = tag … include name … }` appended right
// after a symtab-owning node's tag/location, before its children. This
// is a fixed textual contract, not a place for a pretty-printing
// library — it is built with fmt only, the same way runtime.Tag and
// runtime.Scope format themselves.
func Print(w io.Writer, n *Node) {
	if n == nil {
		fmt.Fprint(w, "()")
		return
	}
	fmt.Fprintf(w, "(%s %d:%s", n.Tag.Name(), n.Loc.Len(), n.Loc.Text())
	if n.tab != nil {
		fmt.Fprint(w, " ")
		printScope(w, n.tab)
	}
	for _, c := range n.children {
		fmt.Fprint(w, " ")
		Print(w, c)
	}
	fmt.Fprint(w, ")")
}

func printScope(w io.Writer, t *table) {
	buckets := t.allBuckets()
	slices.SortFunc(buckets, func(a, b *bucket) bool { return a.text < b.text })
	fmt.Fprint(w, "{")
	for i, b := range buckets {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		if len(b.nodes) == 1 {
			fmt.Fprintf(w, "%s = %s", b.text, b.nodes[0].Tag.Name())
		} else {
			fmt.Fprintf(w, "%s =", b.text)
			for _, nd := range b.nodes {
				fmt.Fprintf(w, " %s", nd.Tag.Name())
			}
		}
	}
	for _, inc := range t.includes {
		fmt.Fprintf(w, " include %s", inc.Tag.Name())
	}
	fmt.Fprint(w, "}")
}
