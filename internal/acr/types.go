// internal/acr/types.go
package acr

import "fmt"

// Invocation is a single registry-build request: everything needed to ask
// the ACR build service to construct one image.
type Invocation struct {
	Step       string // human-readable step name, used in logs and errors
	Registry   string // ACR registry name (e.g. "netruk44")
	Repository string // image repository (e.g. "steamvibes-api")
	Tag        string // image tag (e.g. "v0.3_x64")

	Dockerfile string // default: "Dockerfile"
	Context    string // default: "."

	BuildArgs [][2]string // KEY,VALUE (deterministic)
	Platform  string      // optional --platform (e.g. "linux/amd64")
	Target    string      // optional multi-stage target

	NoCache bool // az acr build --no-cache
	NoLogs  bool // do not stream build logs
	NoPush  bool // build without pushing the result
}

// Ref returns the repository:tag reference the invocation produces.
func (iv Invocation) Ref() string {
	return fmt.Sprintf("%s:%s", iv.Repository, iv.Tag)
}
