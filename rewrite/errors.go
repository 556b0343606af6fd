package rewrite

import "errors"

// ErrUnresolvedLift is returned by Pass.Run when a Lift envelope
// reaches the pass root without ever finding a matching ancestor tag.
var ErrUnresolvedLift = errors.New("rewrite: unresolved lift reached pass root")

// ErrIterationLimit is returned by Pass.Run when MaxIterations is set
// and the fixed-point loop exceeds it — a safety valve against a
// mistuned rule set that never reaches a fixed point. It does not
// change rewrite semantics; it only aborts the run.
var ErrIterationLimit = errors.New("rewrite: pass exceeded its iteration limit")
