// internal/acr/utils.go
package acr

import (
	"regexp"
	"strings"
)

// ---- Reference validation ----

// ACR repositories follow the docker distribution grammar: lowercase
// path components separated by ".", "_", "__", "-" or "/".
var repoAllowed = regexp.MustCompile(`^[a-z0-9]+(?:(?:[._]|__|[-]+)[a-z0-9]+)*(?:/[a-z0-9]+(?:(?:[._]|__|[-]+)[a-z0-9]+)*)*$`)

// Tags may mix case but are limited to word characters, ".", "_" and "-",
// capped at 128 characters.
var tagAllowed = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]{0,127}$`)

func validRepository(repo string) bool {
	return repo != "" && len(repo) <= 256 && repoAllowed.MatchString(repo)
}

func validTag(tag string) bool {
	return tagAllowed.MatchString(tag)
}

// ---- Redaction ----

// redactArgs masks suspicious --build-arg values before they hit logs.
// The executed command is never modified.
func redactArgs(args []string) []string {
	sus := func(k string) bool {
		k = strings.ToUpper(k)
		return strings.Contains(k, "PASSWORD") ||
			strings.Contains(k, "TOKEN") ||
			strings.Contains(k, "SECRET") ||
			k == "AZURE_CLIENT_SECRET" ||
			k == "AWS_SECRET_ACCESS_KEY" ||
			k == "GITHUB_TOKEN" || k == "GH_TOKEN"
	}
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] != "--build-arg" {
			continue
		}
		kv := out[i+1]
		if eq := strings.IndexByte(kv, '='); eq > 0 {
			key := kv[:eq]
			if sus(key) && kv[eq+1:] != "" {
				out[i+1] = key + "=REDACTED"
			}
		}
	}
	return out
}
