package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/netruk44/acrpipe/internal/version"
)

// Represents the root command for acrpipe.
var RootCmd struct {
	Quiet bool `short:"q" help:"Suppress informational output."`
	Debug bool `short:"d" help:"Enable debug output."`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Run the build pipeline."`
	Plan    PlanCmd    `cmd:"" help:"Print the resolved build plan without executing."`
	Tags    TagsCmd    `cmd:"" help:"List registry tags for a repository."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Execute parses arguments, configures logging, and runs the selected
// subcommand. Interrupts cancel the context so an in-flight build
// invocation is terminated rather than orphaned.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name("acrpipe"),
		kong.Description("Runs an ordered pipeline of Azure Container Registry builds."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version.String(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

func configureLogger() {
	switch {
	case RootCmd.Debug:
		log.SetLevel(log.DebugLevel)
	case RootCmd.Quiet:
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	log.SetOutput(os.Stderr)
}
