package genetic

import (
	"errors"
	"fmt"
)

// ErrPrecondition is matched by every *PreconditionError via errors.Is
var ErrPrecondition = errors.New("genetic: precondition violated")

// ConfigurationError reports an invalid engine configuration at construction time
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("genetic: invalid configuration: %s %s", e.Field, e.Reason)
}

// PreconditionError signals an operator called in a state the engine never produces.
// It indicates a driver ordering bug and is not meant to be retried.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("genetic: %s: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

func precondition(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// EvaluationError wraps a failure of the fitness evaluator for one population member
type EvaluationError struct {
	Index int
	Err   error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("genetic: evaluation of member %d failed: %v", e.Index, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
