// Package version reports build metadata for the imstyle binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X bennypowers.dev/imstyle/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// Info is the build metadata printed by `imstyle version`
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
}

// Get collects build metadata
func Get() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
}

// String formats the metadata on one line
func (i Info) String() string {
	var b strings.Builder
	b.WriteString("imstyle ")
	b.WriteString(i.Version)
	if i.GitCommit != "unknown" {
		fmt.Fprintf(&b, " (commit: %s)", i.GitCommit)
	}
	if i.BuildTime != "unknown" {
		fmt.Fprintf(&b, " built %s", i.BuildTime)
	}
	return b.String()
}

// GetVersion resolves the version from ldflags, module build info, or
// git metadata, in that order
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "(devel)" && v != "" {
			return v
		}
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}
	v := GitTag
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	if short != "" && !strings.HasSuffix(GitTag, short) {
		v += "-" + short
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}
