package wf

import "github.com/npillmayer/rewrite/ast"

// Report holds an offending node paired with a diagnostic message. A
// zero Report (Node == nil) means "no offense to report".
type Report struct {
	Node    *ast.Node
	Message string
}

// Schema checks a tree's shape and reports the first (or only)
// violation found. Check must not mutate root.
type Schema interface {
	Check(root *ast.Node) (bool, Report)
}

// Permissive is the default Schema: it never objects. Driver.Stages
// without a meaningful shape constraint use it, and tests use it
// wherever a stage's exact shape isn't under test.
var Permissive Schema = permissive{}

type permissive struct{}

func (permissive) Check(root *ast.Node) (bool, Report) {
	return true, Report{}
}
