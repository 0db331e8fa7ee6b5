// internal/acr/run.go
//
// The runner executes build invocations strictly sequentially and in
// declaration order. Each invocation blocks until the build service
// returns. There is deliberately no parallelism: later images depend on
// earlier ones being present in the registry.
package acr

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/netruk44/acrpipe/internal/executil"
)

// Options controls runner behavior across the whole pipeline.
type Options struct {
	// KeepGoing runs the remaining steps even when one fails, reporting
	// the combined error at the end. The default is fail-fast: the first
	// failed step aborts the pipeline.
	KeepGoing bool
}

// Run executes the invocations in order against the runner.
//
// Returns nil only if every step succeeded. Under fail-fast the error is
// the first *StepError encountered; under KeepGoing it is the join of all
// step errors.
func Run(ctx context.Context, runner executil.Runner, invocations []Invocation, opts Options) error {
	if len(invocations) == 0 {
		return ErrEmptyPipeline
	}

	var failed []error

	for i, iv := range invocations {
		label := stepLabel(iv, i)

		args, err := iv.Args()
		if err != nil {
			serr := &StepError{Step: label, Err: err}
			if !opts.KeepGoing {
				return serr
			}
			failed = append(failed, serr)
			continue
		}

		log.Info("building image",
			"step", label,
			"ref", iv.Ref(),
			"registry", iv.Registry,
			"dockerfile", dockerfileOrDefault(iv),
		)
		log.Debug("invoking build service",
			"cmd", AzBinary+" "+executil.QuoteArgs(redactArgs(args)))

		if err := runner.Run(ctx, AzBinary, args...); err != nil {
			serr := &StepError{Step: label, Err: err}
			if !opts.KeepGoing {
				return serr
			}
			log.Error("step failed, continuing", "step", label, "err", err)
			failed = append(failed, serr)
		}
	}

	return errors.Join(failed...)
}

func stepLabel(iv Invocation, index int) string {
	if iv.Step != "" {
		return iv.Step
	}
	return fmt.Sprintf("%d", index+1)
}

func dockerfileOrDefault(iv Invocation) string {
	if iv.Dockerfile != "" {
		return iv.Dockerfile
	}
	return "Dockerfile"
}
