package version

import (
	"strings"
	"testing"
)

func setBuildInfo(t *testing.T, v, commit string) {
	t.Helper()
	oldVersion, oldCommit := version, gitCommit
	version, gitCommit = v, commit
	t.Cleanup(func() {
		version, gitCommit = oldVersion, oldCommit
	})
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"unset means local", "", "(local)"},
		{"plain semver", "1.2.3", "1.2.3"},
		{"v prefix stripped", "v1.2.3", "1.2.3"},
		{"uppercase prefix stripped", "V2.0.0", "2.0.0"},
		{"whitespace trimmed", "  1.0.0  ", "1.0.0"},
		{"prerelease preserved", "1.4.0-rc.1", "1.4.0-rc.1"},
		{"unparseable passes through", "release-7", "release-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildInfo(t, tt.version, "")
			if got := Version(); got != tt.want {
				t.Errorf("Version() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommit(t *testing.T) {
	setBuildInfo(t, "1.0.0", "a1b2c3d4e5f6a7b8")
	if got := Commit(); got != "a1b2c3d4" {
		t.Errorf("Commit() = %q, want %q", got, "a1b2c3d4")
	}

	setBuildInfo(t, "1.0.0", "abc")
	if got := Commit(); got != "abc" {
		t.Errorf("short hash should pass through, got %q", got)
	}
}

func TestString(t *testing.T) {
	setBuildInfo(t, "", "deadbeef")
	if got := String(); got != "(local)" {
		t.Errorf("local build should report (local), got %q", got)
	}

	setBuildInfo(t, "v0.3.0", "a1b2c3d4e5")
	got := String()
	if got == "(local)" {
		t.Fatal("stamped build must not report (local)")
	}
	for _, want := range []string{"0.3.0", "a1b2c3d4"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, expected it to contain %q", got, want)
		}
	}
}

func TestIsLocal(t *testing.T) {
	setBuildInfo(t, "", "")
	if !IsLocal() {
		t.Error("expected local build")
	}
	setBuildInfo(t, "1.0.0", "deadbeef")
	if IsLocal() {
		t.Error("expected pipeline build")
	}
}
