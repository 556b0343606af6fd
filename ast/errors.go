package ast

import "errors"

// ErrNotFound is returned by Replace when the given "old" node is not
// a child of the receiver.
var ErrNotFound = errors.New("ast: node is not a child of the receiver")

// ErrNoScope is returned by Bind and Include when the node has no
// enclosing scope.
var ErrNoScope = errors.New("ast: no enclosing scope")
