package main

import (
	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/pattern"
	"github.com/npillmayer/rewrite/rewrite"
	"github.com/npillmayer/rewrite/token"
	"github.com/npillmayer/rewrite/wf"
)

// tagXCapture is collapseStage's pattern-internal capture key,
// distinct from any grammar tag.
var tagXCapture = token.New("x", 0)

// collapseStage: a Group nested directly inside another Group, with
// exactly one child, is replaced by that child —
//
//	In(Group) * (T(Group) << Any[x] * End) >> _(x)
func collapseStage() *rewrite.Pass {
	x := tagXCapture
	rule := pattern.Seq(
		pattern.In(groupTag),
		pattern.Descend(
			pattern.T(groupTag),
			pattern.Seq(pattern.Capture(pattern.Any(), x), pattern.Last()),
		),
	)
	return &rewrite.Pass{
		Direction: rewrite.TopDown,
		Rules: []rewrite.Rule{
			{Pattern: rule, Effect: func(m *pattern.Match) *ast.Node {
				return m.First(x)
			}},
		},
	}
}

// promoteStage: two adjacent A leaves promote to a single B —
//
//	T(A) * T(A) >> B
func promoteStage() *rewrite.Pass {
	rule := pattern.Seq(pattern.T(letters['A']), pattern.T(letters['A']))
	return &rewrite.Pass{
		Direction: rewrite.TopDown,
		Rules: []rewrite.Rule{
			{Pattern: rule, Effect: func(m *pattern.Match) *ast.Node {
				return ast.New(letters['B'])
			}},
		},
	}
}

// noEmptyGroups rejects a tree containing a Group with no children.
// collapseStage does not remove empty Groups, so an input holding one
// fails this check after that stage; it is kept here as a simple
// demonstration of wiring a Schema into a Stage.
type noEmptyGroups struct{}

func (noEmptyGroups) Check(root *ast.Node) (bool, wf.Report) {
	if offender := findEmptyGroup(root); offender != nil {
		return false, wf.Report{Node: offender, Message: "empty Group survived collapseStage"}
	}
	return true, wf.Report{}
}

func findEmptyGroup(n *ast.Node) *ast.Node {
	if n.Tag == groupTag && n.Len() == 0 {
		return n
	}
	for _, c := range n.Children() {
		if offender := findEmptyGroup(c); offender != nil {
			return offender
		}
	}
	return nil
}
