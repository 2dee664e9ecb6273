package pyext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTools(t *testing.T, available ...string) {
	t.Helper()
	orig := execLookPath
	t.Cleanup(func() { execLookPath = orig })

	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	execLookPath = func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func TestCheckRequiredTools(t *testing.T) {
	withTools(t, "cmake", "gmake")

	require.NoError(t, CheckRequiredTools([]ToolRequirement{
		{Name: "cmake", Purpose: "CMake build system"},
		{Name: "make", Alternatives: []string{"gmake"}},
		{Name: "ninja", Optional: true},
	}))

	err := CheckRequiredTools([]ToolRequirement{{Name: "cc", Purpose: "C compiler"}})
	require.Error(t, err)
	assert.Equal(t, "cc (C compiler) not found in PATH", err.Error())

	err = CheckRequiredTools([]ToolRequirement{{Name: "cc"}, {Name: "swig"}})
	require.Error(t, err)
	assert.Equal(t, "missing required tools: cc, swig", err.Error())
}

func TestStageToolCheckers(t *testing.T) {
	withTools(t, "cmake")

	config := &BuildConfig{Platform: PlatformUnix}
	var configurer ToolChecker = &ToolchainConfigurer{}
	var builder ToolChecker = &ToolchainBuilder{}

	assert.NoError(t, configurer.CheckTools(config))
	assert.Error(t, builder.CheckTools(config), "make is missing")

	assert.NoError(t, builder.CheckTools(&BuildConfig{Platform: PlatformWindows}))
}
