// internal/acr/azcli.go
//
// Preflight for the Azure CLI. `az acr build` has been stable for a long
// time, but `az version` itself only exists from azure-cli 2.4, and the
// build command's --no-logs/--platform surface settled around 2.20. We
// check once before running the pipeline so a stale CLI fails with a clear
// message instead of mid-pipeline.
package acr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/netruk44/acrpipe/internal/executil"
)

// MinCLIVersion is the lowest azure-cli release the pipeline supports.
const MinCLIVersion = "2.20.0"

// CheckCLI verifies that the az CLI is invocable and recent enough.
func CheckCLI(ctx context.Context, runner executil.Runner) error {
	out, err := runner.Output(ctx, AzBinary, "version", "--output", "json")
	if err != nil {
		return fmt.Errorf("azure cli not available (is az installed and on PATH?): %w", err)
	}

	var payload struct {
		CLI string `json:"azure-cli"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return fmt.Errorf("unexpected az version output: %w", err)
	}
	if payload.CLI == "" {
		return fmt.Errorf("az version reported no azure-cli component")
	}

	v, err := semver.NewVersion(payload.CLI)
	if err != nil {
		return fmt.Errorf("unparseable azure-cli version %q: %w", payload.CLI, err)
	}

	constraint, err := semver.NewConstraint(">= " + MinCLIVersion)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("azure-cli %s is too old, need >= %s", payload.CLI, MinCLIVersion)
	}
	return nil
}
