package assets

import (
	"embed"
	"fmt"
)

//go:embed acrpipe.yaml
var manifestFS embed.FS

// DefaultManifest returns the embedded canonical pipeline manifest: the
// steamvibes base image followed by the API image.
func DefaultManifest() ([]byte, error) {
	data, err := manifestFS.ReadFile("acrpipe.yaml")
	if err != nil {
		return nil, fmt.Errorf("embedded manifest unavailable: %w", err)
	}
	return data, nil
}
