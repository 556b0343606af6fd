package driver

import (
	"errors"
	"fmt"

	"github.com/npillmayer/rewrite/wf"
)

// ErrIterationLimit is returned when a stage's pass exceeds its
// configured iteration ceiling. Driver.Run returns it wrapped together
// with rewrite.ErrIterationLimit and the offending stage's name, so
// errors.Is matches either sentinel.
var ErrIterationLimit = errors.New("driver: a stage exceeded its iteration ceiling")

// SchemaViolation is a driver-level error distinct from in-tree Error
// nodes: it reports a well-formedness failure between stages, fatal to
// the run, per the failure semantics that separate schema violations
// from Error nodes accumulated as data.
type SchemaViolation struct {
	Stage  string
	Report wf.Report
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("driver: schema violation after stage %q: %s", e.Stage, e.Report.Message)
}
