// internal/acr/errors.go
package acr

import (
	"errors"
	"fmt"
)

// ErrEmptyPipeline is returned when Run is handed no invocations.
var ErrEmptyPipeline = errors.New("no build invocations to run")

// StepError wraps a failed build invocation with the step it belongs to.
// The underlying build service error surfaces verbatim; nothing is
// interpreted, retried, or translated.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: build invocation failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
