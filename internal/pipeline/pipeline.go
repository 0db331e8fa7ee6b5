// internal/pipeline/pipeline.go
//
// A pipeline is an ordered list of registry-build steps. Declaration order
// is execution order: the steamvibes base image is declared before the API
// image whose Dockerfile references it.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/netruk44/acrpipe/internal/acr"
)

// Step is one build invocation as authored in the manifest.
type Step struct {
	Name       string            `yaml:"name" json:"name"`
	Image      string            `yaml:"image" json:"image"`
	Tag        string            `yaml:"tag,omitempty" json:"tag,omitempty"`
	Dockerfile string            `yaml:"dockerfile,omitempty" json:"dockerfile,omitempty"`
	Context    string            `yaml:"context,omitempty" json:"context,omitempty"`
	BuildArgs  map[string]string `yaml:"build_args,omitempty" json:"build_args,omitempty"`
	Platform   string            `yaml:"platform,omitempty" json:"platform,omitempty"`
	Target     string            `yaml:"target,omitempty" json:"target,omitempty"`
	NoCache    bool              `yaml:"no_cache,omitempty" json:"no_cache,omitempty"`
}

// Pipeline is the full manifest: a registry plus its ordered steps.
type Pipeline struct {
	Registry string `yaml:"registry" json:"registry"`
	Steps    []Step `yaml:"steps" json:"steps"`
}

// Validate checks the structural rules the build service cannot report
// nicely on its own: a registry, at least one step, unique step names.
// Per-step reference validation happens when assembling invocations.
func (p *Pipeline) Validate() error {
	if strings.TrimSpace(p.Registry) == "" {
		return fmt.Errorf("pipeline: registry is empty")
	}
	if len(p.Steps) == 0 {
		return fmt.Errorf("pipeline: no steps defined")
	}

	seen := make(map[string]struct{}, len(p.Steps))
	for i, s := range p.Steps {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("pipeline: step %d has no name", i+1)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("pipeline: duplicate step name %q", name)
		}
		seen[name] = struct{}{}

		if strings.TrimSpace(s.Image) == "" {
			return fmt.Errorf("pipeline: step %q has no image", name)
		}
	}
	return nil
}

// Invocations maps the steps to build invocations in declaration order.
func (p *Pipeline) Invocations() []acr.Invocation {
	out := make([]acr.Invocation, 0, len(p.Steps))
	for _, s := range p.Steps {
		out = append(out, acr.Invocation{
			Step:       s.Name,
			Registry:   p.Registry,
			Repository: s.Image,
			Tag:        s.Tag,
			Dockerfile: s.Dockerfile,
			Context:    s.Context,
			BuildArgs:  sortedArgs(s.BuildArgs),
			Platform:   s.Platform,
			Target:     s.Target,
			NoCache:    s.NoCache,
		})
	}
	return out
}

// sortedArgs flattens a build-arg map into deterministic key order.
func sortedArgs(in map[string]string) [][2]string {
	if len(in) == 0 {
		return nil
	}
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, in[k]})
	}
	return out
}
