// internal/pipeline/load.go
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netruk44/acrpipe/internal/assets"
)

// DefaultManifestPath is where Load looks when no path is given.
const DefaultManifestPath = "acrpipe.yaml"

// Load reads, validates, and unmarshals a pipeline manifest.
//
// With an empty path it tries ./acrpipe.yaml and, if that does not exist,
// falls back to the embedded default pipeline (the two steamvibes builds).
// An explicitly named manifest must exist.
func Load(path string) (*Pipeline, error) {
	content, source, err := readManifest(path)
	if err != nil {
		return nil, err
	}

	if err := validateSchema(content); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var p Pipeline
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &p, nil
}

// Default returns the embedded canonical pipeline.
func Default() (*Pipeline, error) {
	return Load("")
}

func readManifest(path string) ([]byte, string, error) {
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read manifest %s: %w", path, err)
		}
		return content, path, nil
	}

	content, err := os.ReadFile(DefaultManifestPath)
	if err == nil {
		return content, DefaultManifestPath, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("read manifest %s: %w", DefaultManifestPath, err)
	}

	content, err = assets.DefaultManifest()
	if err != nil {
		return nil, "", err
	}
	return content, "embedded default manifest", nil
}
