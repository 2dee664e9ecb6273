package pyext

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	testCases := []struct {
		parts    []uint64
		expected string
	}{
		{[]uint64{0, 5, 2}, "0.5.2"},
		{[]uint64{0, 5}, "0.5"},
		{[]uint64{1, 0, 0}, "1.0.0"},
		{[]uint64{10, 20, 30}, "10.20.30"},
		{[]uint64{3, 12}, "3.12"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatVersion(tc.parts...))
		})
	}
}

func TestFormatVersionMatchesDottedJoin(t *testing.T) {
	for a := uint64(0); a < 4; a++ {
		for b := uint64(0); b < 12; b += 3 {
			for c := uint64(0); c < 25; c += 7 {
				assert.Equal(t, fmt.Sprintf("%d.%d.%d", a, b, c), Version{a, b, c}.String())
				assert.Equal(t, fmt.Sprintf("%d.%d", a, b), Version{a, b, c}.Short())
			}
		}
	}
}

func TestVersionReleaseAndShort(t *testing.T) {
	v := Version{Major: 0, Minor: 5, Patch: 2}

	assert.Equal(t, "0.5.2", v.String())
	assert.Equal(t, "0.5", v.Short())

	version, release := DocVersions(v)
	assert.Equal(t, "0.5", version)
	assert.Equal(t, "0.5.2", release)
}

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		input    string
		expected Version
	}{
		{"0.5.2", Version{0, 5, 2}},
		{"v1.2.3", Version{1, 2, 3}},
		{"2.7", Version{2, 7, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseVersion(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestParseVersionRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3-rc.1", "1.2.3+build5"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVersion(input)
			assert.Error(t, err)
		})
	}
}
