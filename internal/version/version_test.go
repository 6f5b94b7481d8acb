/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBuildInfo replaces the embedded build metadata for one test
func withBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	original := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = original })
}

// withLinkerFlags sets the ldflags variables for one test
func withLinkerFlags(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = version, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = v, c, d })
}

func TestInfo_ContainsAllExpectedComponents(t *testing.T) {
	withBuildInfo(t, nil)

	info := Info()

	lines := strings.Split(info, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "sitestack dev", lines[0])
	assert.Contains(t, info, "Git commit: unknown")
	assert.Contains(t, info, "Build date: unknown")
	assert.Contains(t, info, "Go version: "+runtime.Version())
	assert.Contains(t, info, "Platform:   "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestCurrent_PrefersLinkerFlags(t *testing.T) {
	withLinkerFlags(t, "v1.2.0", "a1b2c3d", "2025-01-27 14:30:45 UTC")
	withBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.9.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffffffffff"}},
	})

	info := Current()

	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "a1b2c3d", info.GitCommit)
	assert.Equal(t, "2025-01-27 14:30:45 UTC", info.BuildDate)
	assert.Equal(t, "v1.2.0", Short())
}

func TestCurrent_FallsBackToModuleBuildInfo(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-03-01T10:00:00Z"},
		},
	})

	info := Current()

	assert.Equal(t, "v0.3.1", info.Version)
	assert.Equal(t, "0123456", info.GitCommit)
	assert.Equal(t, "2025-03-01T10:00:00Z", info.BuildDate)
}

func TestCurrent_IgnoresDevelBuilds(t *testing.T) {
	withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	assert.Equal(t, "dev", Current().Version)
}
