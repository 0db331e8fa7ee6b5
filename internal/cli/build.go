package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/netruk44/acrpipe/internal/acr"
	"github.com/netruk44/acrpipe/internal/executil"
	"github.com/netruk44/acrpipe/internal/pipeline"
)

// Represents the 'acrpipe build' command.
type BuildCmd struct {
	Manifest  string `short:"m" help:"Path to the pipeline manifest." env:"ACRPIPE_MANIFEST" placeholder:"PATH"`
	Registry  string `short:"r" help:"Override the registry for every step." env:"ACRPIPE_REGISTRY"`
	DryRun    bool   `help:"Print the build commands without invoking the build service." env:"ACRPIPE_DRY_RUN"`
	KeepGoing bool   `help:"Run remaining steps even when one fails." env:"ACRPIPE_KEEP_GOING"`
	NoLogs    bool   `help:"Do not stream build logs from the service." env:"ACRPIPE_NO_LOGS"`
}

// Executes the build command: load the manifest, resolve invocations, run
// them in order against the registry build service.
func (c *BuildCmd) Run(ctx context.Context) error {
	p, err := pipeline.Load(c.Manifest)
	if err != nil {
		return err
	}
	if c.Registry != "" {
		p.Registry = c.Registry
	}

	invocations := p.Invocations()
	for i := range invocations {
		invocations[i].NoLogs = c.NoLogs
	}

	var runner executil.Runner
	if c.DryRun {
		runner = executil.DryRunner{Out: os.Stdout}
	} else {
		runner = executil.New()
		if err := acr.CheckCLI(ctx, runner); err != nil {
			return err
		}
	}

	log.Info("running pipeline",
		"registry", p.Registry,
		"steps", len(invocations),
		"keep_going", c.KeepGoing,
		"dry_run", c.DryRun,
	)

	if err := acr.Run(ctx, runner, invocations, acr.Options{KeepGoing: c.KeepGoing}); err != nil {
		return err
	}

	log.Info("pipeline complete", "steps", len(invocations))
	return nil
}
