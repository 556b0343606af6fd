package main

import (
	"fmt"

	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/loc"
	"github.com/npillmayer/rewrite/token"
)

// The demo grammar: single letters A..H as leaves, "(...)" as a plain
// Group, "{...}" as a symtab-owning Block.
var (
	letters = map[byte]*token.Token{
		'A': token.New("A", 0),
		'B': token.New("B", 0),
		'C': token.New("C", 0),
		'D': token.New("D", 0),
		'E': token.New("E", 0),
		'F': token.New("F", 0),
		'G': token.New("G", 0),
		'H': token.New("H", 0),
	}
	groupTag = token.New("Group", 0)
	blockTag = token.New("Block", token.FlagSymtab)
	topTag   = token.New("Top", 0)
)

// tokenizer walks a line byte by byte, building a tree of Group and
// Block nodes over letter leaves. There is no lexer-vs-parser split
// here — the grammar is flat enough that one recursive-descent pass
// over bytes suffices.
type tokenizer struct {
	buf *loc.Buffer
	src string
	pos int
}

// parseLine tokenizes source into a tree, returning the lone top-level
// item bare when there is exactly one, or wrapping several under a
// synthetic Top node.
func parseLine(source string) (*ast.Node, error) {
	t := &tokenizer{buf: loc.NewBuffer("trepl", source), src: source}
	items, err := t.sequence()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("trepl: empty input")
	}
	if len(items) == 1 {
		return items[0], nil
	}
	top := ast.New(topTag)
	for _, it := range items {
		top.PushBack(it)
	}
	return top, nil
}

func (t *tokenizer) skipSpace() {
	for t.pos < len(t.src) && (t.src[t.pos] == ' ' || t.src[t.pos] == '\t') {
		t.pos++
	}
}

func (t *tokenizer) sequence() ([]*ast.Node, error) {
	var items []*ast.Node
	for {
		t.skipSpace()
		if t.pos >= len(t.src) || t.src[t.pos] == ')' || t.src[t.pos] == '}' {
			return items, nil
		}
		item, err := t.item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (t *tokenizer) item() (*ast.Node, error) {
	start := t.pos
	switch c := t.src[t.pos]; {
	case c == '(':
		t.pos++
		kids, err := t.sequence()
		if err != nil {
			return nil, err
		}
		if t.pos >= len(t.src) || t.src[t.pos] != ')' {
			return nil, fmt.Errorf("trepl: unterminated group starting at column %d", start)
		}
		t.pos++
		n := ast.New(groupTag, loc.New(t.buf, start, t.pos))
		for _, k := range kids {
			n.PushBack(k)
		}
		return n, nil
	case c == '{':
		t.pos++
		kids, err := t.sequence()
		if err != nil {
			return nil, err
		}
		if t.pos >= len(t.src) || t.src[t.pos] != '}' {
			return nil, fmt.Errorf("trepl: unterminated block starting at column %d", start)
		}
		t.pos++
		n := ast.New(blockTag, loc.New(t.buf, start, t.pos))
		for _, k := range kids {
			n.PushBack(k)
		}
		return n, nil
	case letters[c] != nil:
		t.pos++
		return ast.New(letters[c], loc.New(t.buf, start, t.pos)), nil
	default:
		return nil, fmt.Errorf("trepl: unexpected character %q at column %d", c, start)
	}
}
