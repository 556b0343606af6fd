/*
Package loc implements source locations: a reference into a named
source buffer plus a byte range, generalizing gorgo.Span with an
explicit buffer handle so that locations from different inputs are
never silently unioned together.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loc

import "fmt"

// Buffer is a named source buffer. Views into it (Location.Text) are
// borrowed, never copied.
type Buffer struct {
	Name string
	Text string
}

// NewBuffer wraps source text under a name, for use in Locations.
func NewBuffer(name, text string) *Buffer {
	return &Buffer{Name: name, Text: text}
}

// Location is a pair (source buffer handle, byte range). A zero
// Location is the unit Location: an empty range with no buffer.
// Synthetic locations (no backing buffer, for nodes fabricated by
// rewrite effects) carry their text directly in synth.
type Location struct {
	buf        *Buffer
	start, end int
	synth      string
	isSynth    bool
}

// New creates a Location referencing [start,end) of buf.
func New(buf *Buffer, start, end int) Location {
	return Location{buf: buf, start: start, end: end}
}

// Synthetic creates a standalone Location carrying its own text,
// unconnected to any source buffer — used for synthesized nodes that
// have no originating source text.
func Synthetic(text string) Location {
	return Location{synth: text, isSynth: true}
}

// IsZero reports whether l is the unit Location.
func (l Location) IsZero() bool {
	return l.buf == nil && !l.isSynth && l.start == 0 && l.end == 0
}

// Text returns the borrowed byte view this Location covers.
func (l Location) Text() string {
	if l.isSynth {
		return l.synth
	}
	if l.buf == nil {
		return ""
	}
	if l.start < 0 || l.end > len(l.buf.Text) || l.start > l.end {
		return ""
	}
	return l.buf.Text[l.start:l.end]
}

// Buffer returns the backing buffer, or nil for synthetic/unit locations.
func (l Location) Buffer() *Buffer {
	return l.buf
}

// Len reports the byte length of the covered range.
func (l Location) Len() int {
	if l.isSynth {
		return len(l.synth)
	}
	return l.end - l.start
}

// Equal compares two locations by buffer identity and range (or, for
// synthetic locations, by their literal text).
func (l Location) Equal(other Location) bool {
	if l.isSynth || other.isSynth {
		return l.isSynth == other.isSynth && l.synth == other.synth
	}
	return l.buf == other.buf && l.start == other.start && l.end == other.end
}

// Union returns the smallest Location containing both a and b. If
// either is the unit Location, the other is returned unchanged. If
// either is synthetic, the result is a synthetic Location whose text is
// a's text followed by b's. It panics if both are non-synthetic and reference different buffers —
// that is a caller bug, not a recoverable condition.
func Union(a, b Location) Location {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if a.isSynth || b.isSynth {
		return Synthetic(a.Text() + b.Text())
	}
	if a.buf != b.buf {
		panic("loc: Union of locations from different buffers")
	}
	start, end := a.start, a.end
	if b.start < start {
		start = b.start
	}
	if b.end > end {
		end = b.end
	}
	return Location{buf: a.buf, start: start, end: end}
}

// String renders a Location as "name:start..end" for diagnostics.
func (l Location) String() string {
	if l.isSynth {
		return fmt.Sprintf("<synthetic %q>", l.synth)
	}
	if l.buf == nil {
		return "<unit>"
	}
	return fmt.Sprintf("%s:%d..%d", l.buf.Name, l.start, l.end)
}
