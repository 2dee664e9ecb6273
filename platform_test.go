package pyext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFor(t *testing.T) {
	assert.Equal(t, PlatformWindows, platformFor("windows"))
	assert.Equal(t, PlatformUnix, platformFor("linux"))
	assert.Equal(t, PlatformUnix, platformFor("darwin"))
	assert.Equal(t, PlatformUnix, platformFor("freebsd"))

	assert.True(t, PlatformWindows.IsWindows())
	assert.False(t, PlatformUnix.IsWindows())
}

func TestPlatformTag(t *testing.T) {
	testCases := []struct {
		goos, goarch string
		expected     string
	}{
		{"linux", "amd64", "linux_x86_64"},
		{"linux", "arm64", "linux_aarch64"},
		{"linux", "386", "linux_i686"},
		{"windows", "amd64", "win_amd64"},
		{"windows", "386", "win32"},
		{"windows", "arm64", "win_arm64"},
		{"darwin", "arm64", "macosx_11_0_arm64"},
		{"darwin", "amd64", "macosx_10_9_x86_64"},
		{"freebsd", "riscv64", "freebsd_riscv64"},
	}

	for _, tc := range testCases {
		t.Run(tc.goos+"/"+tc.goarch, func(t *testing.T) {
			assert.Equal(t, tc.expected, PlatformTag(tc.goos, tc.goarch))
		})
	}
}
