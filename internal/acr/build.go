// internal/acr/build.go
package acr

import (
	"fmt"
	"strings"
)

// AzBinary is the CLI that fronts the registry build service.
const AzBinary = "az"

// Args assembles the `az acr build` argument vector for the invocation.
//
// Values are passed through to the build service verbatim; only the parts
// that would make the service reject the request outright are validated
// here (registry present, lowercase repository, legal tag).
func (iv Invocation) Args() ([]string, error) {
	reg := strings.TrimSpace(iv.Registry)
	if reg == "" {
		return nil, fmt.Errorf("step %q: registry is empty", iv.Step)
	}

	repo := strings.TrimSpace(iv.Repository)
	if !validRepository(repo) {
		return nil, fmt.Errorf("step %q: invalid repository %q (must be lowercase, no spaces)", iv.Step, repo)
	}

	tag := strings.TrimSpace(iv.Tag)
	if tag == "" {
		tag = "latest"
	}
	if !validTag(tag) {
		return nil, fmt.Errorf("step %q: invalid tag %q", iv.Step, tag)
	}

	df := strings.TrimSpace(iv.Dockerfile)
	if df == "" {
		df = "Dockerfile"
	}
	ctxPath := strings.TrimSpace(iv.Context)
	if ctxPath == "" {
		ctxPath = "."
	}

	args := []string{
		"acr", "build",
		"--registry", reg,
		"--image", repo + ":" + tag,
		"--file", df,
	}

	for _, kv := range iv.BuildArgs {
		if kv[0] != "" {
			args = append(args, "--build-arg", kv[0]+"="+kv[1])
		}
	}
	if iv.Platform != "" {
		args = append(args, "--platform", iv.Platform)
	}
	if iv.Target != "" {
		args = append(args, "--target", iv.Target)
	}
	if iv.NoCache {
		args = append(args, "--no-cache")
	}
	if iv.NoLogs {
		args = append(args, "--no-logs")
	}
	if iv.NoPush {
		args = append(args, "--no-push")
	}

	args = append(args, ctxPath)
	return args, nil
}
