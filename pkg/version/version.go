// Package version reports the build's identity for logs, user agents,
// and the swarmletctl version command.
package version

import "runtime/debug"

// AppName prefixes every version string.
const AppName = "swarmlet"

// commit may be injected at build time:
//
//	go build -ldflags "-X github.com/swarmlet/swarmlet/pkg/version.commit=<sha>"
//
// Container builds use this because the image has no .git directory.
var commit string

// GitCommit is the short commit hash identifying this build, or "dev"
// when neither an ldflags injection nor VCS build info is available
// (go test, builds outside a checkout).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commit != "" {
		return short(commit)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return short(s.Value)
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full is the canonical "swarmlet/<commit>" form.
func Full() string {
	return AppName + "/" + GitCommit
}
