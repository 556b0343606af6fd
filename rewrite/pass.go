package rewrite

import (
	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/loc"
	"github.com/npillmayer/rewrite/pattern"
	"github.com/npillmayer/rewrite/token"
)

// Effect computes a replacement for a successful match. Its result is
// interpreted by tag: nil deletes the matched range; a result tagged
// SeqTag splices its children in place of the matched range; a result
// tagged NoChangeTag declares the match ineffective; anything else
// replaces the matched range with that single node.
type Effect func(m *pattern.Match) *ast.Node

// Rule pairs a pattern with the effect to run when it matches.
type Rule struct {
	Pattern pattern.Pattern
	Effect  Effect
}

// Direction is a bitmask selecting how a Pass walks a node's children.
// Exactly one of TopDown or BottomUp must be set; Once may be OR'ed in.
type Direction uint8

const (
	TopDown Direction = 1 << iota
	BottomUp
	Once
)

// TagHook runs once for a given node, keyed by its tag, at pass-apply
// entry/exit.
type TagHook func(n *ast.Node)

// RunHook runs once per Pass.Run, before/after the fixed-point loop,
// and contributes to the reported change count.
type RunHook func() int

// Pass is an ordered rule set plus hooks and a walk direction.
type Pass struct {
	Rules     []Rule
	PreHook   RunHook
	PostHook  RunHook
	PreTag    map[*token.Token]TagHook
	PostTag   map[*token.Token]TagHook
	Direction Direction

	// MaxIterations, when positive, caps the fixed-point loop in Run:
	// exceeding it aborts the pass with ErrIterationLimit rather than
	// looping forever on a rule set that never settles. Zero means
	// unbounded. A driver sets this from its Config's iteration
	// ceiling.
	MaxIterations int
}

// Run iterates Pass.apply(root) to a fixed point (or exactly once, if
// Once is set), resolving Lift envelopes after every iteration, and
// returns root itself (rewriting happens in place), the iteration
// count, and the total reported change count.
func (p *Pass) Run(root *ast.Node) (out *ast.Node, iterations int, totalChanges int, err error) {
	if p.PreHook != nil {
		totalChanges += p.PreHook()
	}
	for {
		changes := p.apply(root, root)
		totalChanges += changes
		iterations++
		unresolved := lift(root)
		if len(unresolved) > 0 {
			return root, iterations, totalChanges, ErrUnresolvedLift
		}
		if p.MaxIterations > 0 && iterations >= p.MaxIterations && changes != 0 {
			return root, iterations, totalChanges, ErrIterationLimit
		}
		if p.Direction&Once != 0 {
			break
		}
		if changes == 0 {
			break
		}
	}
	if p.PostHook != nil {
		totalChanges += p.PostHook()
	}
	return root, iterations, totalChanges, nil
}

// apply applies the pass's rules across n's children, recursing per
// Direction, and returns the number of changes made within n's
// subtree during this call.
func (p *Pass) apply(root, n *ast.Node) int {
	if n.Tag == ast.ErrorTag || n.Tag == ast.LiftTag {
		return 0
	}
	if hook, ok := p.PreTag[n.Tag]; ok {
		hook(n)
	}
	changes := 0
	pos := 0
	for pos < n.Len() {
		child := n.Children()[pos]
		if child.Tag == ast.ErrorTag || child.Tag == ast.LiftTag {
			pos++
			continue
		}
		if p.Direction&BottomUp != 0 {
			changes += p.apply(root, child)
		}
		replaced := p.step(root, n, pos)
		if replaced >= 0 {
			changes += replaced
		}

		switch {
		case p.Direction&Once != 0:
			if p.Direction&TopDown != 0 && replaced != 0 {
				to := replaced
				if to < 1 {
					to = 1
				}
				end := pos + to
				if end > n.Len() {
					end = n.Len()
				}
				for i := pos; i < end; i++ {
					changes += p.apply(root, n.Children()[i])
				}
			}
			if replaced >= 0 {
				pos += replaced
			} else {
				pos++
			}
		case replaced >= 0:
			// Something changed: earlier siblings may now newly
			// match, so re-examine from the start.
			pos = 0
		default:
			if p.Direction&TopDown != 0 {
				changes += p.apply(root, child)
			}
			pos++
		}
	}
	if hook, ok := p.PostTag[n.Tag]; ok {
		hook(n)
	}
	return changes
}

// step tries each rule in order at position pos among n's children,
// resetting the Match between attempts. It returns the number of
// nodes the winning effect replaced the matched range with (0 for a
// delete, the splice count for a Seq effect, 1 otherwise), or -1 if
// no rule fired.
func (p *Pass) step(root, n *ast.Node, pos int) int {
	for _, rule := range p.Rules {
		m, end, ok := pattern.TryMatch(rule.Pattern, n, pos, root)
		if !ok {
			continue
		}
		result := rule.Effect(m)
		if result != nil && result.Tag == NoChangeTag {
			continue
		}
		switch {
		case result == nil:
			n.Erase(pos, end)
			return 0
		case result.Tag == SeqTag:
			kids := append([]*ast.Node(nil), result.Children()...)
			removed := n.Splice(pos, end, kids...)
			fb := unionLocs(removed)
			for _, k := range kids {
				fillLocation(k, fb)
			}
			return len(kids)
		default:
			removed := n.Splice(pos, end, result)
			fillLocation(result, unionLocs(removed))
			return 1
		}
	}
	return -1
}

// unionLocs computes the smallest Location spanning every node's Loc
// in erased, for inheritance by synthesized replacement nodes.
func unionLocs(erased []*ast.Node) loc.Location {
	var u loc.Location
	for _, n := range erased {
		u = loc.Union(u, n.Loc)
	}
	return u
}

// fillLocation assigns fallback to every node in n's subtree that
// still lacks a source location, recursively.
func fillLocation(n *ast.Node, fallback loc.Location) {
	if n == nil {
		return
	}
	if n.Loc.IsZero() {
		n.Loc = fallback
	}
	for _, c := range n.Children() {
		fillLocation(c, fallback)
	}
}
