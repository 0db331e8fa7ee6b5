// internal/version/version.go
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// String to indicate a local (non-pipeline) build.
const defaultLocalBuild = "(local)"

var (
	version   = "" // Version number (e.g., "0.3.1"), set via ldflags
	gitCommit = "" // Git commit hash, set via ldflags
)

// Version returns the semver-normalized version number.
//
// A "v" prefix is stripped and the remainder is canonicalized through
// semver parsing; unparseable values pass through untouched so a broken
// release script still yields something printable.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultLocalBuild
	}
	parsed, err := semver.NewVersion(strings.TrimPrefix(strings.ToLower(v), "v"))
	if err != nil {
		return v
	}
	return parsed.String()
}

// Commit returns the short git commit hash, or "" for local builds.
func Commit() string {
	c := strings.TrimSpace(gitCommit)
	if len(c) > 8 {
		c = c[:8]
	}
	return c
}

// IsLocal reports whether this binary was built outside the release
// pipeline (no version stamped in).
func IsLocal() bool {
	return strings.TrimSpace(version) == ""
}

// String returns a detailed version line for the version command.
func String() string {
	if IsLocal() {
		return defaultLocalBuild
	}
	s := Version()
	if c := Commit(); c != "" {
		s = fmt.Sprintf("%s %s", s, c)
	}
	return fmt.Sprintf("%s [%s]", s, runtime.GOARCH)
}
