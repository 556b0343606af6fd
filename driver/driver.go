package driver

import (
	"errors"
	"fmt"

	"github.com/npillmayer/rewrite/ast"
	"github.com/npillmayer/rewrite/rewrite"
	"github.com/npillmayer/rewrite/wf"
)

// Stage pairs a rewrite pass with the schema its output must satisfy.
// A nil Schema is treated as wf.Permissive.
type Stage struct {
	Name   string
	Pass   *rewrite.Pass
	Schema wf.Schema
}

func (s Stage) schema() wf.Schema {
	if s.Schema == nil {
		return wf.Permissive
	}
	return s.Schema
}

// Driver owns an ordered list of stages plus the initial parser and
// its schema, implementing the three-step pipeline: parse and
// validate, run each stage in order validating and gathering Error
// nodes after each (short-circuiting once any stage accumulates
// errors), and return the final tree, the collected errors, and
// per-stage metrics.
type Driver struct {
	Parse         func(source string) (*ast.Node, error)
	InitialSchema wf.Schema
	Stages        []Stage
	Config        *Config
}

func (d *Driver) initialSchema() wf.Schema {
	if d.InitialSchema == nil {
		return wf.Permissive
	}
	return d.InitialSchema
}

// Run parses source, validates the result, then runs every stage in
// order. A schema violation — at the initial parse or after any stage
// — aborts the run with a *SchemaViolation; a stage's pass itself
// failing (ErrUnresolvedLift, ErrIterationLimit) aborts the run with
// that error wrapped with the stage's name. Error nodes accumulated by
// a stage are data, not control flow: they are gathered and, once any
// stage produces one, short-circuit the remaining stages rather than
// abort the run outright.
func (d *Driver) Run(source string) (*ast.Node, []*ast.Node, []Metrics, error) {
	root, err := d.Parse(source)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("driver: parse failed: %w", err)
	}
	if ok, report := d.initialSchema().Check(root); !ok {
		return nil, nil, nil, &SchemaViolation{Stage: "<parse>", Report: report}
	}

	var allErrors []*ast.Node
	var metrics []Metrics

	for _, stage := range d.Stages {
		if d.Config != nil && d.Config.IterationCeiling > 0 && stage.Pass.MaxIterations == 0 {
			stage.Pass.MaxIterations = d.Config.IterationCeiling
		}

		tracer().Infof("running stage %q", stage.Name)
		newRoot, iterations, changes, err := stage.Pass.Run(root)
		root = newRoot
		metrics = append(metrics, Metrics{Stage: stage.Name, Iterations: iterations, Changes: changes})
		if err != nil {
			if errors.Is(err, rewrite.ErrIterationLimit) {
				return root, allErrors, metrics, fmt.Errorf("driver: stage %q: %w: %w", stage.Name, ErrIterationLimit, err)
			}
			return root, allErrors, metrics, fmt.Errorf("driver: stage %q: %w", stage.Name, err)
		}

		if ok, report := stage.schema().Check(root); !ok {
			return root, allErrors, metrics, &SchemaViolation{Stage: stage.Name, Report: report}
		}

		stageErrors := rewrite.GetErrors(root)
		if len(stageErrors) > 0 {
			allErrors = append(allErrors, stageErrors...)
			break
		}
	}

	return root, allErrors, metrics, nil
}
