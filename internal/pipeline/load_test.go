package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acrpipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, `
registry: netruk44
steps:
  - name: base
    image: steamvibes-api-base
    tag: latest
    dockerfile: model_base.Dockerfile
  - name: api
    image: steamvibes-api
    tag: v0.3_x64
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "netruk44", p.Registry)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, "base", p.Steps[0].Name)
	assert.Equal(t, "api", p.Steps[1].Name)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, `
registry: netruk44
parallel: true
steps:
  - name: base
    image: steamvibes-api-base
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	path := writeManifest(t, `
registry: netruk44
steps:
  - name: base
    image: steamvibes-api-base
    no_cache: "yes please"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingSteps(t *testing.T) {
	path := writeManifest(t, `
registry: netruk44
steps: []
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingExplicitManifest(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestLoadFallsBackToEmbeddedDefault(t *testing.T) {
	// Run from a directory with no acrpipe.yaml.
	chdir(t, t.TempDir())

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "netruk44", p.Registry)
	assert.Len(t, p.Steps, 2)
}

func TestLoadPrefersLocalManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultManifestPath), []byte(`
registry: otherreg
steps:
  - name: only
    image: something
`), 0o644))
	chdir(t, dir)

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "otherreg", p.Registry)
	require.Len(t, p.Steps, 1)
}
