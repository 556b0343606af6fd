package ast

// depth returns the number of ancestors above n.
func depth(n *Node) int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// siblingsTowardCommonParent equalizes a and b's depths by walking the
// deeper one upward, then walks both upward in lockstep until their
// parents coincide, returning the resulting pair. If a == b, both
// results are a.
func siblingsTowardCommonParent(a, b *Node) (*Node, *Node) {
	da, db := depth(a), depth(b)
	for da > db {
		a = a.parent
		da--
	}
	for db > da {
		b = b.parent
		db--
	}
	for a.parent != b.parent {
		a = a.parent
		b = b.parent
	}
	return a, b
}

// CommonParent returns the nearest common ancestor of a and b.
func CommonParent(a, b *Node) *Node {
	x, y := siblingsTowardCommonParent(a, b)
	if x == y {
		return x
	}
	return x.parent
}

// Precedes reports whether a textually precedes b: they are distinct,
// and a's position among its parent's children is less than b's.
// Consequently an ancestor never precedes its descendant, nor the
// reverse.
func Precedes(a, b *Node) bool {
	x, y := siblingsTowardCommonParent(a, b)
	if x == y {
		return false
	}
	parent := x.parent
	if parent == nil {
		return false
	}
	ix, iy := indexIn(parent, x), indexIn(parent, y)
	if ix < 0 || iy < 0 {
		return false
	}
	return ix < iy
}

func indexIn(parent, child *Node) int {
	for i, c := range parent.children {
		if c == child {
			return i
		}
	}
	return -1
}
