package cli

import (
	"context"
	"fmt"

	"github.com/netruk44/acrpipe/pkg/registry"
)

// Represents the 'acrpipe tags' command.
type TagsCmd struct {
	Repository string `arg:"" help:"Repository to inspect (e.g. steamvibes-api)."`
	Registry   string `short:"r" default:"netruk44" help:"Registry name." env:"ACRPIPE_REGISTRY"`
}

// Executes the tags command. Handy after a pipeline run to confirm what
// the build service actually pushed.
func (c *TagsCmd) Run(ctx context.Context) error {
	client, err := registry.NewClient(c.Registry)
	if err != nil {
		return err
	}

	tags, err := client.Tags.List(ctx, c.Repository)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		fmt.Printf("no tags found for %s\n", c.Repository)
		return nil
	}
	for _, t := range tags {
		fmt.Printf("%s\t%s\t%s\n", t.Name, t.Digest, t.Created.Format("2006-01-02 15:04:05"))
	}
	return nil
}
