package rewrite

import "github.com/npillmayer/rewrite/ast"

// GetErrors walks n's subtree collecting every Error node that has no
// further Error descendants, clearing the ContainsError propagation
// flag as it goes: a node whose flag was set is descended into (with
// its own flag reset) to find the Error nodes beneath it; a node
// whose flag was clear stops there, and is collected itself if it is
// tagged Error. An Error node that itself contains further Error
// nodes is a grouping node only, not reported here — its descendants
// are. The driver calls this between passes.
func GetErrors(n *ast.Node) []*ast.Node {
	var collected []*ast.Node
	var walk func(cur *ast.Node)
	walk = func(cur *ast.Node) {
		if cur.ResetContainsError() {
			for _, c := range cur.Children() {
				walk(c)
			}
			return
		}
		if cur.Tag == ast.ErrorTag {
			collected = append(collected, cur)
		}
	}
	walk(n)
	return collected
}
