package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netruk44/acrpipe/internal/pipeline"
)

func TestPrintPlan(t *testing.T) {
	p := &pipeline.Pipeline{
		Registry: "netruk44",
		Steps: []pipeline.Step{
			{Name: "base", Image: "steamvibes-api-base", Tag: "latest", Dockerfile: "model_base.Dockerfile"},
			{Name: "api", Image: "steamvibes-api", Tag: "v0.3_x64"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printPlan(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "Registry : netruk44")
	assert.Contains(t, out, "Steps    : 2")
	assert.Contains(t, out, "1. base")
	assert.Contains(t, out, "2. api")
	assert.Contains(t, out, "steamvibes-api-base:latest")
	assert.Contains(t, out, "steamvibes-api:v0.3_x64")
	assert.Contains(t, out, "az acr build --registry netruk44 --image steamvibes-api-base:latest --file model_base.Dockerfile .")

	// Base step is rendered before the API step.
	assert.Less(t, strings.Index(out, "1. base"), strings.Index(out, "2. api"))
}

func TestPrintPlanInvalidStep(t *testing.T) {
	p := &pipeline.Pipeline{
		Registry: "netruk44",
		Steps: []pipeline.Step{
			{Name: "bad", Image: "NotLowercase"},
		},
	}

	var buf bytes.Buffer
	require.Error(t, printPlan(&buf, p))
}
