package pyext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is the release number of the package being built.
//
// It is always a full major.minor.patch triple. The short form (major.minor)
// is used where documentation tooling expects a "version" separate from the
// full "release".
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// String returns the full dotted release string, e.g. "0.5.2".
func (v Version) String() string {
	return FormatVersion(v.Major, v.Minor, v.Patch)
}

// Short returns the major.minor prefix, e.g. "0.5".
func (v Version) Short() string {
	return FormatVersion(v.Major, v.Minor)
}

// FormatVersion joins version components with dots.
//
// It accepts any prefix of a version triple:
//
//	FormatVersion(0, 5, 2) // "0.5.2"
//	FormatVersion(0, 5)    // "0.5"
func FormatVersion(parts ...uint64) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = strconv.FormatUint(p, 10)
	}
	return strings.Join(strs, ".")
}

// ParseVersion parses a release string into a Version.
//
// A leading "v" is tolerated. Partial versions such as "1.2" are completed
// with zeros. Pre-release and build metadata are rejected because the
// package release string carries only the numeric triple.
func ParseVersion(version string) (Version, error) {
	sv, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("parsing version %q: %w", version, err)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Version{}, fmt.Errorf("parsing version %q: pre-release and build metadata are not supported", version)
	}
	return Version{Major: sv.Major(), Minor: sv.Minor(), Patch: sv.Patch()}, nil
}

// DocVersions returns the (version, release) pair used by documentation
// builds: the short major.minor form and the full release string.
func DocVersions(v Version) (version, release string) {
	return v.Short(), v.String()
}
