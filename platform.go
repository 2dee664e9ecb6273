package pyext

import (
	"fmt"
	"runtime"
)

// Platform identifies the host family that drives toolchain argument
// selection.
type Platform string

// Platform values
const (
	PlatformUnix    Platform = "unix"
	PlatformWindows Platform = "windows"
)

const platformWindows = "windows"

// DetectPlatform returns the profile for the running host.
// It is recomputed on every call and never cached.
func DetectPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	if goos == platformWindows {
		return PlatformWindows
	}
	return PlatformUnix
}

// IsWindows reports whether p is the windows profile.
func (p Platform) IsWindows() bool {
	return p == PlatformWindows
}

// PlatformTag returns the wheel platform tag for a GOOS/GOARCH pair,
// e.g. "linux_x86_64" or "win_amd64".
func PlatformTag(goos, goarch string) string {
	switch goos {
	case platformWindows:
		switch goarch {
		case "386":
			return "win32"
		case "arm64":
			return "win_arm64"
		default:
			return "win_amd64"
		}
	case "darwin":
		if goarch == "arm64" {
			return "macosx_11_0_arm64"
		}
		return "macosx_10_9_x86_64"
	default:
		return fmt.Sprintf("%s_%s", goos, machineName(goarch))
	}
}

// HostPlatformTag returns the wheel platform tag of the running host.
func HostPlatformTag() string {
	return PlatformTag(runtime.GOOS, runtime.GOARCH)
}

func machineName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7l"
	default:
		return goarch
	}
}
