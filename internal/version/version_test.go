package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildVars(t *testing.T, version, commit, tag, dirty string) {
	t.Helper()
	origVersion, origCommit, origTag, origDirty, origTime := Version, GitCommit, GitTag, GitDirty, BuildTime
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty, BuildTime = origVersion, origCommit, origTag, origDirty, origTime
	})
	Version, GitCommit, GitTag, GitDirty = version, commit, tag, dirty
}

func TestGetVersion(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		withBuildVars(t, "dev", "unknown", "unknown", "")
		// test binaries report (devel) as their module version
		assert.Equal(t, "dev", GetVersion())
	})

	t.Run("ldflags", func(t *testing.T) {
		withBuildVars(t, "v1.2.3", "unknown", "unknown", "")
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("git tag and commit", func(t *testing.T) {
		withBuildVars(t, "dev", "abc1234567", "v1.2.3", "")
		assert.Equal(t, "v1.2.3-abc1234", GetVersion())
	})

	t.Run("dirty tree", func(t *testing.T) {
		withBuildVars(t, "dev", "abc1234567", "v1.2.3", "dirty")
		assert.Equal(t, "v1.2.3-abc1234-dirty", GetVersion())
	})

	t.Run("tag already names the commit", func(t *testing.T) {
		withBuildVars(t, "dev", "abc1234", "v1.2.3-abc1234", "")
		assert.Equal(t, "v1.2.3-abc1234", GetVersion())
	})
}

func TestInfo(t *testing.T) {
	withBuildVars(t, "v0.1.0", "deadbeef", "v0.1.0", "dirty")
	BuildTime = "2026-01-01T00:00:00Z"

	info := Get()
	assert.Equal(t, "v0.1.0", info.Version)
	assert.True(t, info.Dirty)
	assert.Equal(t, "imstyle v0.1.0 (commit: deadbeef) built 2026-01-01T00:00:00Z", info.String())

	withBuildVars(t, "v0.1.0", "unknown", "unknown", "")
	BuildTime = "unknown"
	assert.Equal(t, "imstyle v0.1.0", Get().String())
}
