package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/netruk44/acrpipe/internal/acr"
	"github.com/netruk44/acrpipe/internal/executil"
	"github.com/netruk44/acrpipe/internal/pipeline"
)

// Represents the 'acrpipe plan' command.
type PlanCmd struct {
	Manifest string `short:"m" help:"Path to the pipeline manifest." env:"ACRPIPE_MANIFEST" placeholder:"PATH"`
	Registry string `short:"r" help:"Override the registry for every step." env:"ACRPIPE_REGISTRY"`
}

// Executes the plan command.
func (c *PlanCmd) Run() error {
	p, err := pipeline.Load(c.Manifest)
	if err != nil {
		return err
	}
	if c.Registry != "" {
		p.Registry = c.Registry
	}
	return printPlan(os.Stdout, p)
}

// printPlan emits a scannable report of what build would do, in order.
func printPlan(w io.Writer, p *pipeline.Pipeline) error {
	fmt.Fprintln(w, "Build Plan")
	fmt.Fprintln(w, "----------")
	fmt.Fprintf(w, "Registry : %s\n", p.Registry)
	fmt.Fprintf(w, "Steps    : %d\n", len(p.Steps))
	fmt.Fprintln(w)

	for i, iv := range p.Invocations() {
		args, err := iv.Args()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, iv.Step)
		fmt.Fprintf(w, "   Image      : %s\n", iv.Ref())
		fmt.Fprintf(w, "   Dockerfile : %s\n", orDefault(iv.Dockerfile, "Dockerfile"))
		fmt.Fprintf(w, "   Context    : %s\n", orDefault(iv.Context, "."))
		fmt.Fprintf(w, "   Command    : %s %s\n", acr.AzBinary, executil.QuoteArgs(args))
		fmt.Fprintln(w)
	}
	return nil
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
