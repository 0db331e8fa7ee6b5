package cli

import (
	"fmt"

	"github.com/netruk44/acrpipe/internal/version"
)

// Represents the 'acrpipe version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Println(version.String())
	return nil
}
