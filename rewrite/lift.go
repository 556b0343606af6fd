package rewrite

import "github.com/npillmayer/rewrite/ast"

// lift resolves Lift envelopes within n's subtree, working bottom-up:
// a node C tagged Lift is removed from its parent's children and
// treated, alongside any envelope that already bubbled up unconsumed
// from deeper in the tree, as a pending envelope at this level. A
// pending envelope L is consumed here when L's first child's tag
// equals n's own tag: L's remaining children are spliced in at the
// position the branch that carried it currently occupies — before
// that branch, not after it — and matching resumes from there rather
// than skipping past it. Anything left over is returned to n's
// caller to retry one level up; Pass.Run treats a non-empty result
// from the pass root as ErrUnresolvedLift.
func lift(n *ast.Node) []*ast.Node {
	var uplift []*ast.Node
	pos := 0
	for pos < n.Len() {
		c := n.Children()[pos]
		pending := lift(c)
		advance := true
		if c.Tag == ast.LiftTag {
			pending = append([]*ast.Node{c}, pending...)
			n.Erase(pos, pos+1)
			n.RefreshLiftFlag()
			advance = false
		}
		for _, l := range pending {
			if l.Len() == 0 {
				continue
			}
			front := l.Children()[0]
			if front.Tag == n.Tag {
				rest := l.Children()[1:]
				for i, r := range rest {
					n.Insert(pos+i, r)
				}
				pos += len(rest)
				advance = false
			} else {
				uplift = append(uplift, l)
			}
		}
		if advance {
			pos++
		}
	}
	return uplift
}
