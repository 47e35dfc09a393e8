// Package version exposes build metadata.
//
// Values set with -ldflags win over what debug.BuildInfo reports:
//
//	-X github.com/codeready-toolchain/runsheet/pkg/version.release=v0.3.0
//	-X github.com/codeready-toolchain/runsheet/pkg/version.commitOverride=$(git rev-parse HEAD)
//	-X github.com/codeready-toolchain/runsheet/pkg/version.buildDate=2026-10-19T10:00:00Z
package version

import (
	"runtime/debug"
	"time"
)

// AppName is used in user agents and calendar product ids.
const AppName = "runsheet"

const unknown = "dev"

var (
	release        string
	commitOverride string
	buildDate      string
)

// Info is the build metadata of the running binary.
type Info struct {
	Version string
	Commit  string // short hash, 8 chars at most
	Date    string // RFC3339, or "unknown"
}

// GitCommit is the short commit hash, "dev" when unknown.
var GitCommit = Get().Commit

// Get resolves the build metadata.
func Get() Info {
	info := Info{Version: release, Commit: commitOverride, Date: buildDate}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	info.Commit = short(info.Commit)
	if info.Date == "" {
		info.Date = "unknown"
	} else if t, err := time.Parse(time.RFC3339, info.Date); err == nil {
		info.Date = t.UTC().Format(time.RFC3339)
	}
	return info
}

func short(commit string) string {
	switch {
	case commit == "":
		return unknown
	case len(commit) > 8:
		return commit[:8]
	}
	return commit
}

// Full returns "runsheet/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
