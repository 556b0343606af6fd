package rewrite

import (
	"testing"

	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/loc"
	"github.com/npillmayer/rewrite/pattern"
	"github.com/npillmayer/rewrite/token"
)

var (
	tagRoot  = token.New("Root", 0)
	tagA     = token.New("A", 0)
	tagB     = token.New("B", 0)
	tagC     = token.New("C", 0)
	tagGroup = token.New("Group", 0)
)

func kids(n *ast.Node) []*token.Token {
	tags := make([]*token.Token, n.Len())
	for i, c := range n.Children() {
		tags[i] = c.Tag
	}
	return tags
}

func sameTags(got []*token.Token, want ...*token.Token) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// A -> B, run to a fixed point: every A anywhere under root becomes a B.
func TestRunReplaceToFixedPoint(t *testing.T) {
	root := ast.New(tagRoot)
	root.PushBack(ast.New(tagA))
	root.PushBack(ast.New(tagA))
	root.PushBack(ast.New(tagC))

	p := &Pass{
		Direction: TopDown,
		Rules: []Rule{
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				return ast.New(tagB)
			}},
		},
	}
	_, iterations, changes, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changes != 2 {
		t.Fatalf("expected 2 changes, got %d", changes)
	}
	if iterations < 2 {
		t.Fatalf("expected at least 2 iterations to observe a no-change fixed point, got %d", iterations)
	}
	if !sameTags(kids(root), tagB, tagB, tagC) {
		t.Fatalf("unexpected children: %v", kids(root))
	}
}

// A B -> Seq(C C): splicing two nodes in place of a two-node match.
func TestStepSeqEffectSplices(t *testing.T) {
	root := ast.New(tagRoot)
	root.PushBack(ast.New(tagA))
	root.PushBack(ast.New(tagB))

	p := &Pass{
		Direction: TopDown | Once,
		Rules: []Rule{
			{Pattern: pattern.Seq(pattern.T(tagA), pattern.T(tagB)), Effect: func(m *pattern.Match) *ast.Node {
				seq := ast.New(SeqTag)
				seq.PushBackEphemeral(ast.New(tagC))
				seq.PushBackEphemeral(ast.New(tagC))
				return seq
			}},
		},
	}
	_, _, changes, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changes != 2 {
		t.Fatalf("expected 2 changes (splice count), got %d", changes)
	}
	if !sameTags(kids(root), tagC, tagC) {
		t.Fatalf("unexpected children: %v", kids(root))
	}
}

// A -> nil deletes the matched node outright.
func TestStepNilEffectDeletes(t *testing.T) {
	root := ast.New(tagRoot)
	root.PushBack(ast.New(tagA))
	root.PushBack(ast.New(tagB))

	p := &Pass{
		Direction: TopDown,
		Rules: []Rule{
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				return nil
			}},
		},
	}
	_, _, changes, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changes != 0 {
		t.Fatalf("a delete reports 0 replaced nodes, got %d", changes)
	}
	if !sameTags(kids(root), tagB) {
		t.Fatalf("unexpected children: %v", kids(root))
	}
}

// NoChangeTag falls through to the next rule at the same position.
func TestNoChangeFallsThroughToNextRule(t *testing.T) {
	root := ast.New(tagRoot)
	root.PushBack(ast.New(tagA))

	var firstTried, secondTried int
	p := &Pass{
		Direction: TopDown | Once,
		Rules: []Rule{
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				firstTried++
				return ast.New(NoChangeTag)
			}},
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				secondTried++
				return ast.New(tagB)
			}},
		},
	}
	_, _, changes, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstTried != 1 || secondTried != 1 {
		t.Fatalf("expected both rules tried once, got %d %d", firstTried, secondTried)
	}
	if changes != 1 {
		t.Fatalf("expected 1 change from the second rule, got %d", changes)
	}
	if !sameTags(kids(root), tagB) {
		t.Fatalf("unexpected children: %v", kids(root))
	}
}

// BottomUp recurses into children before trying rules at this level;
// a rule targeting the parent tag only fires after descendants have
// already been rewritten.
func TestBottomUpRecursesBeforeApplyingAtThisLevel(t *testing.T) {
	root := ast.New(tagRoot)
	group := ast.New(tagGroup)
	group.PushBack(ast.New(tagA))
	root.PushBack(group)

	var order []string
	p := &Pass{
		Direction: BottomUp,
		Rules: []Rule{
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				order = append(order, "A")
				return ast.New(tagB)
			}},
			{Pattern: pattern.T(tagGroup), Effect: func(m *pattern.Match) *ast.Node {
				order = append(order, "Group")
				return ast.New(NoChangeTag)
			}},
		},
	}
	_, _, _, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) < 2 || order[0] != "A" {
		t.Fatalf("expected A's rule to fire before Group's, got %v", order)
	}
	if !sameTags(kids(group), tagB) {
		t.Fatalf("unexpected children under group: %v", kids(group))
	}
}

// Once restricts a pass to a single apply() call; a rule that would
// keep firing on every iteration under the default fixed-point loop
// only fires the number of times a single top-to-bottom sweep visits.
func TestOnceRunsExactlyOneIteration(t *testing.T) {
	root := ast.New(tagRoot)
	root.PushBack(ast.New(tagA))

	p := &Pass{
		Direction: TopDown | Once,
		Rules: []Rule{
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				return ast.New(tagA)
			}},
		},
	}
	_, iterations, changes, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterations != 1 {
		t.Fatalf("expected exactly 1 iteration under Once, got %d", iterations)
	}
	if changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes)
	}
}

// A rule set that never reaches a fixed point aborts once MaxIterations
// is exceeded, rather than looping forever.
func TestMaxIterationsAborts(t *testing.T) {
	root := ast.New(tagRoot)
	root.PushBack(ast.New(tagA))

	p := &Pass{
		Direction:     TopDown,
		MaxIterations: 3,
		Rules: []Rule{
			{Pattern: pattern.T(tagA), Effect: func(m *pattern.Match) *ast.Node {
				return ast.New(tagA)
			}},
		},
	}
	_, iterations, _, err := p.Run(root)
	if err != ErrIterationLimit {
		t.Fatalf("expected ErrIterationLimit, got %v", err)
	}
	if iterations != 3 {
		t.Fatalf("expected exactly 3 iterations before aborting, got %d", iterations)
	}
}

// A Lift envelope whose first child's tag matches an ancestor's tag
// splices its remaining children in at the position the carrying
// branch currently occupies — before that branch, not after it — and
// the branch node itself no longer carries the envelope.
func TestLiftResolvesAtMatchingAncestor(t *testing.T) {
	root := ast.New(tagRoot)
	group := ast.New(tagGroup)
	root.PushBack(group)

	envelope := ast.New(ast.LiftTag)
	envelope.PushBackEphemeral(ast.New(tagRoot))
	envelope.PushBackEphemeral(ast.New(tagC))
	group.PushBack(envelope)

	p := &Pass{
		Direction: TopDown | Once,
		Rules:     nil,
	}
	_, _, _, err := p.Run(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTags(kids(root), tagC, tagGroup) {
		t.Fatalf("expected the lifted C spliced in before group at root, got root=%v", kids(root))
	}
	if group.Len() != 0 {
		t.Fatalf("expected the envelope to be gone from group's children, got %v", kids(group))
	}
}

// A Lift envelope that never finds a matching ancestor by the time it
// reaches the pass root is reported as ErrUnresolvedLift.
func TestUnresolvedLiftIsReported(t *testing.T) {
	root := ast.New(tagRoot)
	envelope := ast.New(ast.LiftTag)
	envelope.PushBackEphemeral(ast.New(tagB))
	envelope.PushBackEphemeral(ast.New(tagC))
	root.PushBack(envelope)

	p := &Pass{Direction: TopDown | Once}
	_, _, _, err := p.Run(root)
	if err != ErrUnresolvedLift {
		t.Fatalf("expected ErrUnresolvedLift, got %v", err)
	}
}

// GetErrors collects leaf Error nodes (no further Error descendants)
// and leaves the tree itself untouched.
func TestGetErrorsCollectsLeavesOnly(t *testing.T) {
	root := ast.New(tagRoot)
	outer := ast.New(ast.ErrorTag)
	inner := ast.New(ast.ErrorTag)
	outer.PushBack(inner)
	root.PushBack(outer)
	root.PushBack(ast.New(tagA))

	errs := GetErrors(root)
	if len(errs) != 1 || errs[0] != inner {
		t.Fatalf("expected exactly the innermost Error node, got %v", errs)
	}
	if root.Len() != 2 {
		t.Fatalf("GetErrors must not detach nodes from the tree, got %d children", root.Len())
	}
	if outer.Len() != 1 {
		t.Fatalf("GetErrors must not detach the inner Error node from its parent, got %d children", outer.Len())
	}
}

// A synthesized replacement node with no location of its own inherits
// the union of the locations it replaced.
func TestFillLocationInheritsFromReplacedRange(t *testing.T) {
	buf := loc.NewBuffer("src", "ab")
	root := ast.New(tagRoot)
	a := ast.New(tagA, loc.New(buf, 0, 1))
	b := ast.New(tagB, loc.New(buf, 1, 2))
	root.PushBack(a)
	root.PushBack(b)

	p := &Pass{
		Direction: TopDown | Once,
		Rules: []Rule{
			{Pattern: pattern.Seq(pattern.T(tagA), pattern.T(tagB)), Effect: func(m *pattern.Match) *ast.Node {
				return ast.New(tagC)
			}},
		},
	}
	if _, _, _, err := p.Run(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Len() != 1 || root.Children()[0].Tag != tagC {
		t.Fatalf("expected a single C child, got %v", kids(root))
	}
	got := root.Children()[0].Loc
	want := loc.New(buf, 0, 2)
	if !got.Equal(want) {
		t.Fatalf("expected inherited location %v, got %v", want, got)
	}
}
